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

// Params are the knobs of one Compress call (spec §3).
type Params struct {
	K         float64
	Method    Kernel
	SkipQuant bool
	// UseStandardTables is part of spec §3's Params but has no
	// alternate to select between: spec §9 scopes custom quantization
	// tables out entirely ("alternate tables are out of scope"), so the
	// Annex K luma/chroma Q50 tables in consts.go are the only base
	// tables this package ever builds from. The field is kept on
	// Params so callers that serialize Params wholesale (e.g. a future
	// wire format) don't need a breaking change if that Non-goal is
	// ever lifted; Compress does not branch on it.
	UseStandardTables bool
	// KeepRaw requests that the pre-quantization DCT coefficients be
	// retained on the bundle for debugging (spec §3's "optionally").
	KeepRaw bool
}

// compressChannel runs the five-step pipeline of spec §4.7, steps 1-3,
// for one plane: extract, scale the quant table, forward-transform and
// quantize each block.
func compressChannel(plane []int32, w, h int, base [64]int32, p Params) (quantized, raw []Block, n int) {
	blocks := extractChannel(plane, w, h)
	n = len(blocks)

	if p.SkipQuant {
		// Open Question resolution (spec §9 / DESIGN.md): SkipQuant
		// bypasses quantize/dequantize entirely, on both sides, for
		// every kernel including Approximate.
		out := make([]Block, n)
		for i, blk := range blocks {
			out[i] = p.Method.Transform2D(blk, true)
		}
		if p.KeepRaw {
			raw = append([]Block(nil), out...)
		}
		return out, raw, n
	}

	qt := buildQuantTable(base, p.K, p.Method)
	recip := buildRecipTable(qt)

	quantized = make([]Block, n)
	if p.KeepRaw {
		raw = make([]Block, n)
	}
	for i, blk := range blocks {
		d := p.Method.Transform2D(blk, true)
		if p.KeepRaw {
			raw[i] = d
		}
		quantized[i] = quantizeFast(d, qt, recip)
	}
	return quantized, raw, n
}

// decompressChannel runs spec §4.7 steps 4-5: dequantize, inverse
// transform, and reconstruct the plane.
func decompressChannel(quantized []Block, w, h int, base [64]int32, p Params) []int32 {
	n := len(quantized)
	out := make([]Block, n)

	if p.SkipQuant {
		for i, blk := range quantized {
			out[i] = p.Method.Transform2D(blk, false)
		}
		return reconstructChannel(out, w, h)
	}

	qt := buildQuantTable(base, p.K, p.Method)
	for i, blk := range quantized {
		r := dequantize(blk, qt)
		out[i] = p.Method.Transform2D(r, false)
	}
	return reconstructChannel(out, w, h)
}
