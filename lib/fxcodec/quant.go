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

// QuantTable is a flat 8x8 quantization table in row-major order, the
// result of scaling a base table (q50Luma or q50Chroma) by a quality
// factor k and, for the Approximate kernel, by the norm-correction
// factor (spec §4.5).
type QuantTable [64]int32

// recipTable holds, per entry, the reciprocal-multiplication constant
// used by the fast quantize path.
type recipTable [64]uint32

// scaleTable computes scaled[i] = max(1, (base[i] * floor(k*1024)) >> 10)
// (spec §4.5's "Scale").
func scaleTable(base [64]int32, k float64) QuantTable {
	kFixed := int64(k * 1024)
	var qt QuantTable
	for i := 0; i < 64; i++ {
		v := (int64(base[i]) * kFixed) >> 10
		if v < 1 {
			v = 1
		}
		qt[i] = int32(v)
	}
	return qt
}

// applyApproxNormCorrection multiplies qt[i*8+j] by N[i]*N[j]/2^20 with
// rounding, clamped to >= 1 (spec §4.5's "Approximate-norm correction").
// It is only applied when the Approximate kernel is selected.
func applyApproxNormCorrection(qt QuantTable) QuantTable {
	var out QuantTable
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			idx := i*8 + j
			v := roundDiv(int64(qt[idx])*approxRowNorm[i]*approxRowNorm[j], SCALE)
			if v < 1 {
				v = 1
			}
			out[idx] = int32(v)
		}
	}
	return out
}

// buildQuantTable scales base by k and, for the Approximate kernel,
// applies the norm correction.
func buildQuantTable(base [64]int32, k float64, kernel Kernel) QuantTable {
	qt := scaleTable(base, k)
	if kernel == KernelApproximate {
		qt = applyApproxNormCorrection(qt)
	}
	return qt
}

// buildRecipTable precomputes recip[i] = ((1<<16) + qt[i]/2) / qt[i]
// for the fast quantize path (spec §4.5's "Quantize (fast path)").
func buildRecipTable(qt QuantTable) recipTable {
	var r recipTable
	for i := 0; i < 64; i++ {
		q := int64(qt[i])
		r[i] = uint32(((1 << 16) + q/2) / q)
	}
	return r
}

// quantizeFast is the reciprocal-multiplication quantize recipe used on
// the embedded device; the host must use the identical recipe so the
// two sides agree to the bit (spec §4.5).
func quantizeFast(b Block, qt QuantTable, recip recipTable) Block {
	var out Block
	for i := 0; i < 64; i++ {
		c := int64(b[i])
		neg := c < 0
		if neg {
			c = -c
		}
		q := int64(qt[i])
		m := ((c + q/2) * int64(recip[i])) >> 16
		if neg {
			m = -m
		}
		out[i] = int32(m)
	}
	return out
}

// quantizeSlow is the round_div reference used as a cross-check in test
// suites (spec §4.5).
func quantizeSlow(b Block, qt QuantTable) Block {
	var out Block
	for i := 0; i < 64; i++ {
		out[i] = int32(roundDiv(int64(b[i]), int64(qt[i])))
	}
	return out
}

// dequantize is the plain-multiply inverse; no shift (spec §4.5).
func dequantize(b Block, qt QuantTable) Block {
	var out Block
	for i := 0; i < 64; i++ {
		out[i] = b[i] * qt[i]
	}
	return out
}
