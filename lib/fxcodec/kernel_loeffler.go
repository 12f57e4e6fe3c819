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

// loefflerForward implements the 11-multiplication fast DCT of
// Loeffler, Ligtenberg and Moschytz, per spec §4.2.1.
func loefflerForward(x [8]int32) [8]int32 {
	s07 := int64(x[0]) + int64(x[7])
	d07 := int64(x[0]) - int64(x[7])
	s16 := int64(x[1]) + int64(x[6])
	d16 := int64(x[1]) - int64(x[6])
	s25 := int64(x[2]) + int64(x[5])
	d25 := int64(x[2]) - int64(x[5])
	s34 := int64(x[3]) + int64(x[4])
	d34 := int64(x[3]) - int64(x[4])

	e0 := s07 + s34
	e3 := s07 - s34
	e1 := s16 + s25
	e2 := s16 - s25

	o0 := d07 + d34
	o1 := d16 + d25
	o2 := d16 - d25
	o3 := d07 - d34

	var y [8]int32
	y[0] = int32(roundDiv((e0+e1)*SCALE, 2*SQRT_2))
	y[4] = int32(roundDiv((e0-e1)*SCALE, 2*SQRT_2))
	y[2] = int32(roundDiv(C6*e2+S6*e3, 2*SCALE))
	y[6] = int32(roundDiv(-S6*e2+C6*e3, 2*SCALE))
	y[1] = int32(roundDiv(C3*o0+C1*o1+S1*o2+S3*o3, 2*SQRT_2))
	y[3] = int32(roundDiv(S1*o0-C3*o1+S3*o2+C1*o3, 2*SQRT_2))
	y[5] = int32(roundDiv(C1*o0-S3*o1-C3*o2-S1*o3, 2*SQRT_2))
	y[7] = int32(roundDiv(-S3*o0+S1*o1-C1*o2+C3*o3, 2*SQRT_2))
	return y
}

// loefflerInverse implements the deferred-division inverse mandated by
// spec §4.2.2: the even path (DC/e2/e3 rotation) is carried forward as
// exact multiplies without any intermediate division, the odd path is
// brought to the same scale with exactly one round_div each, and every
// final sample is produced with exactly one round_div(., 8*SCALE).
// Dividing early, as the butterflies are unwound stage by stage, is
// what breaks round-trip bit-equality (property P1) — this is the one
// place in the kernel where algebraic "simplification" is forbidden.
func loefflerInverse(z [8]int32) [8]int32 {
	Z0, Z1, Z2, Z3, Z4, Z5, Z6, Z7 :=
		int64(z[0]), int64(z[1]), int64(z[2]), int64(z[3]),
		int64(z[4]), int64(z[5]), int64(z[6]), int64(z[7])

	// Even path, carried at 2*e_i*SCALE with no division at all.
	E0 := 2 * (Z0 + Z4) * SQRT_2
	E1 := 2 * (Z0 - Z4) * SQRT_2
	E2 := 4 * (C6*Z2 - S6*Z6)
	E3 := 4 * (S6*Z2 + C6*Z6)

	// Odd path: the transpose of the forward 4x4 rotation, brought to
	// 2*o_i*SCALE with a single round_div each.
	t0 := C3*Z1 + S1*Z3 + C1*Z5 - S3*Z7
	t1 := C1*Z1 - C3*Z3 - S3*Z5 + S1*Z7
	t2 := S1*Z1 + S3*Z3 - C3*Z5 - C1*Z7
	t3 := S3*Z1 + C1*Z3 - S1*Z5 + C3*Z7

	O0 := roundDiv(2*SQRT_2*t0, SCALE)
	O1 := roundDiv(2*SQRT_2*t1, SCALE)
	O2 := roundDiv(2*SQRT_2*t2, SCALE)
	O3 := roundDiv(2*SQRT_2*t3, SCALE)

	denom := 8 * SCALE
	var x [8]int32
	x[0] = int32(roundDiv(E0+E3+O0+O3, denom))
	x[7] = int32(roundDiv(E0+E3-O0-O3, denom))
	x[1] = int32(roundDiv(E1+E2+O1+O2, denom))
	x[6] = int32(roundDiv(E1+E2-O1-O2, denom))
	x[2] = int32(roundDiv(E1-E2+O1-O2, denom))
	x[5] = int32(roundDiv(E1-E2-O1+O2, denom))
	x[3] = int32(roundDiv(E0-E3+O0-O3, denom))
	x[4] = int32(roundDiv(E0-E3-O0+O3, denom))
	return x
}
