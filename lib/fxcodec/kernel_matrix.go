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

// matrixCos[k][n] = round(cos(pi*k*(2n+1)/16) * SCALE), the direct
// 8-point DCT-II cosine basis (spec §4.2.3). It is built once, at
// package init, from the seven frozen trig constants in consts.go by
// exploiting the cosine table's period-32 symmetry — no
// floating-point trigonometry is evaluated, only integer table lookups
// and negation, satisfying spec §4.1's "no run-time derivation from
// floating point" rule.
var matrixCos [8][8]int64

// cosMagnitude holds round(cos(pi*m/16)*SCALE) for m = 0..8, built from
// the frozen constants. cos(pi*m/16) for m = 9..31 is recovered from
// this table by the period-32 symmetry of cosine (cosMagnitudeAt).
var cosMagnitude = [9]int64{
	SCALE, // m=0
	C1,    // m=1
	S6,    // m=2 (cos(pi/8))
	C3,    // m=3
	0,     // m=4, filled in init (SCALE/sqrt(2), derived below)
	S3,    // m=5
	C6,    // m=6
	S1,    // m=7
	0,     // m=8
}

// norm0 and normK are NORM[0] and NORM[k>0] from spec §4.2.3.
var norm0 int64
var normK int64 = SCALE / 2

func init() {
	cosMagnitude[4] = roundDiv(SCALE*SCALE, SQRT_2)
	norm0 = roundDiv(SCALE*SCALE, 2*SQRT_2)

	for k := 0; k < 8; k++ {
		for n := 0; n < 8; n++ {
			matrixCos[k][n] = cosMagnitudeAt(k * (2*n + 1))
		}
	}
}

// cosMagnitudeAt returns round(cos(pi*m/16)*SCALE) for any integer m,
// using the period-32, mirror-at-16 symmetry of the cosine function.
func cosMagnitudeAt(m int) int64 {
	m = ((m % 32) + 32) % 32
	if m <= 8 {
		return cosMagnitude[m]
	}
	if m <= 16 {
		return -cosMagnitude[16-m]
	}
	if m <= 24 {
		return -cosMagnitude[m-16]
	}
	return cosMagnitude[32-m]
}

func normOf(k int) int64 {
	if k == 0 {
		return norm0
	}
	return normK
}

// matrixForward is the direct, 64-multiply reference DCT (spec
// §4.2.3). It exists to validate the fast Loeffler kernel and is used
// as-is (not just for debugging) whenever Params selects the Matrix
// kernel.
func matrixForward(x [8]int32) [8]int32 {
	var y [8]int32
	for k := 0; k < 8; k++ {
		var sum int64
		for n := 0; n < 8; n++ {
			sum += int64(x[n]) * matrixCos[k][n]
		}
		y[k] = int32(roundDiv(sum*normOf(k), SCALE*SCALE))
	}
	return y
}

// matrixInverse is the symmetric inverse of matrixForward.
func matrixInverse(z [8]int32) [8]int32 {
	var x [8]int32
	for n := 0; n < 8; n++ {
		var sum int64
		for k := 0; k < 8; k++ {
			sum += int64(z[k]) * normOf(k) * matrixCos[k][n]
		}
		x[n] = int32(roundDiv(sum, SCALE*SCALE))
	}
	return x
}
