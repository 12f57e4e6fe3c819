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

// SCALE is the fixed-point scale used for every trigonometric constant
// in the exact (non-approximate) kernels: SCALE = 2^20.
const SCALE int64 = 1 << 20

// Trig constants, frozen per spec §4.1. These are exact integers, not
// derived from floating point at run time; the values equal
// round(cos|sin(angle) * SCALE) for the angles the Loeffler and Matrix
// kernels need.
const (
	C1     int64 = 1028428
	S1     int64 = 204567
	C3     int64 = 871859
	S3     int64 = 582558
	C6     int64 = 401273
	S6     int64 = 968758
	SQRT_2 int64 = 1482910
)

// q50Luma and q50Chroma are the standard JPEG Annex K quantization
// matrices at quality 50, stored flat in row-major order. Cross-checked
// numerically against original_source/src/constantes.py's Q50_LUMA and
// Q50_CHROMA arrays.
var q50Luma = [64]int32{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var q50Chroma = [64]int32{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// approxRowNorm holds round(sqrt(norm^2) * 1024) for each row of the
// Cintra-Bayer forward matrix, whose rows have squared norms
// {8, 6, 4, 6, 8, 6, 4, 6}. Used by the quantizer's approximate-norm
// correction (spec §4.5).
var approxRowNorm = [8]int64{2896, 2508, 2048, 2508, 2896, 2508, 2048, 2508}

// roundDiv divides n by positive d, rounding to the nearer integer and
// breaking ties away from zero (spec §4.1's round_div).
func roundDiv(n, d int64) int64 {
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}

// truncDiv divides n by positive d, truncating toward zero (C-style),
// spec §4.1's trunc_div.
func truncDiv(n, d int64) int64 {
	return n / d
}
