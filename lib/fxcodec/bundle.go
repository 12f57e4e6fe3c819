// Copyright 2025 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package fxcodec

import "encoding/binary"

// QuantizedBundle is the output of Compress and the input of
// Decompress (spec §3, §6). It fully owns its three coefficient
// planes; there is no cross-ownership with the Image that produced or
// will consume it.
type QuantizedBundle struct {
	Width     int
	Height    int
	K         float64
	Method    Kernel
	SkipQuant bool
	NumBlocks int

	Y  []Block
	Cb []Block
	Cr []Block

	// RawY, RawCb, RawCr optionally hold the pre-quantization DCT
	// coefficients, for debugging. Nil unless requested.
	RawY, RawCb, RawCr []Block
}

// FreeBundle releases a QuantizedBundle allocated by Compress. As with
// FreeImage, Go's garbage collector does the actual reclamation; this
// preserves the explicit allocate/free symmetry spec §4.8 requires of
// boundary code.
func FreeBundle(bundle *QuantizedBundle) {
	if bundle == nil {
		return
	}
	bundle.Y, bundle.Cb, bundle.Cr = nil, nil, nil
	bundle.RawY, bundle.RawCb, bundle.RawCr = nil, nil, nil
}

// EncodeWireBody serializes the Y, Cb, Cr planes to the little-endian
// int16 wire body described in spec §6: num_blocks*64 Y coefficients,
// then Cb, then Cr. Coefficients are narrowed from int32 to int16 —
// callers must ensure Compress was run with quantization enabled and
// a quantization table that keeps outputs in int16 range.
func (bundle *QuantizedBundle) EncodeWireBody() []byte {
	total := bundle.NumBlocks * 64 * 3
	out := make([]byte, total*2)
	offset := 0
	for _, plane := range [][]Block{bundle.Y, bundle.Cb, bundle.Cr} {
		for _, blk := range plane {
			for i := 0; i < 64; i++ {
				binary.LittleEndian.PutUint16(out[offset:], uint16(int16(blk[i])))
				offset += 2
			}
		}
	}
	return out
}

// DecodeWireBody populates bundle.Y, bundle.Cb, bundle.Cr from a wire
// body produced by EncodeWireBody. NumBlocks, Width, Height, K and
// Method must already be set on bundle (they travel out-of-band, as
// HTTP headers in lib/transport — see spec §6).
func (bundle *QuantizedBundle) DecodeWireBody(body []byte) error {
	n := bundle.NumBlocks
	want := n * 64 * 3 * 2
	if len(body) != want {
		return ErrInvalidDimensions
	}
	bundle.Y = make([]Block, n)
	bundle.Cb = make([]Block, n)
	bundle.Cr = make([]Block, n)
	offset := 0
	for _, plane := range [][]Block{bundle.Y, bundle.Cb, bundle.Cr} {
		for bi := range plane {
			for i := 0; i < 64; i++ {
				plane[bi][i] = int32(int16(binary.LittleEndian.Uint16(body[offset:])))
				offset += 2
			}
		}
	}
	return nil
}
