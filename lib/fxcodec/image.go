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

// Colorspace tags the interpretation of Image.Pixels (spec §3).
type Colorspace uint8

const (
	ColorspaceRGB Colorspace = iota
	ColorspaceGrayscale
)

// Image is the source/sink of color pixels: the only boundary-owned
// handle that crosses into Compress and out of Decompress. Compress
// treats it as read-only; Decompress allocates and returns a fresh one.
// There is no destructor in Go (the garbage collector owns the
// backing array), but FreeImage exists to keep the explicit
// allocate/free symmetry spec §3 calls for, so boundary code that
// tracks lifetimes explicitly (lib/transport, cmd/*) has a single call
// site to instrument or override.
type Image struct {
	Width      int
	Height     int
	Colorspace Colorspace
	// Pixels is row-major, interleaved R,G,B,R,G,B,... for
	// ColorspaceRGB (length 3*Width*Height), or row-major gray samples
	// for ColorspaceGrayscale (length Width*Height).
	Pixels []byte
}

// validate checks the invariants Compress requires of its input image
// (spec §4.8).
func (img *Image) validate() error {
	if img == nil || img.Pixels == nil {
		return ErrNullPointer
	}
	if img.Width <= 0 || img.Height <= 0 {
		return ErrInvalidDimensions
	}
	wantLen := img.Width * img.Height
	if img.Colorspace == ColorspaceRGB {
		wantLen *= 3
	}
	if len(img.Pixels) != wantLen {
		return ErrInvalidDimensions
	}
	return nil
}

// FreeImage releases an Image allocated by Decompress. Go's garbage
// collector reclaims the backing array once img goes out of scope; this
// function exists to preserve the single-owner allocate/free symmetry
// spec §3 and §4.8 describe, and to give callers a place to zero
// sensitive buffers if a future caller needs that.
func FreeImage(img *Image) {
	if img == nil {
		return
	}
	img.Pixels = nil
}
