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

// approxForward is the zero-multiplication integer approximation of
// the Cintra-Bayer transform (spec §4.2.4): every coefficient is a sum
// or difference of inputs, drawn from a {-1, 0, +1} matrix.
func approxForward(x [8]int32) [8]int32 {
	x0, x1, x2, x3, x4, x5, x6, x7 := x[0], x[1], x[2], x[3], x[4], x[5], x[6], x[7]
	var y [8]int32
	y[0] = x0 + x1 + x2 + x3 + x4 + x5 + x6 + x7
	y[1] = x0 + x1 + x2 - x5 - x6 - x7
	y[2] = x0 - x3 - x4 + x7
	y[3] = x0 - x2 - x3 + x4 + x5 - x7
	y[4] = x0 - x1 - x2 + x3 + x4 - x5 - x6 + x7
	y[5] = x0 - x1 + x3 - x4 + x6 - x7
	y[6] = -x1 + x2 + x5 - x6
	y[7] = -x1 + x2 - x3 + x4 - x5 + x6
	return y
}

// approxPrescale holds 24/norm^2 for each of the forward matrix's eight
// rows, whose squared norms are {8, 6, 4, 6, 8, 6, 4, 6} (spec §4.2.4).
var approxPrescale = [8]int32{3, 4, 6, 4, 3, 4, 6, 4}

// approxInverse is the transpose of the forward integer matrix applied
// to the pre-scaled coefficients, per spec §4.2.4. It is derived
// directly from approxForward's equations above, not transliterated
// from the non-orthonormal inverse found in the Python original (whose
// coefficient pattern does not match this transpose — see DESIGN.md).
func approxInverse(y [8]int32) [8]int32 {
	s0 := y[0] * approxPrescale[0]
	s1 := y[1] * approxPrescale[1]
	s2 := y[2] * approxPrescale[2]
	s3 := y[3] * approxPrescale[3]
	s4 := y[4] * approxPrescale[4]
	s5 := y[5] * approxPrescale[5]
	s6 := y[6] * approxPrescale[6]
	s7 := y[7] * approxPrescale[7]

	var x [8]int32
	x[0] = int32(roundDiv(int64(s0+s1+s2+s3+s4+s5), 24))
	x[1] = int32(roundDiv(int64(s0+s1-s4-s5-s6-s7), 24))
	x[2] = int32(roundDiv(int64(s0+s1-s3-s4+s6+s7), 24))
	x[3] = int32(roundDiv(int64(s0-s2-s3+s4+s5-s7), 24))
	x[4] = int32(roundDiv(int64(s0-s2+s3+s4-s5+s7), 24))
	x[5] = int32(roundDiv(int64(s0-s1+s3-s4+s6-s7), 24))
	x[6] = int32(roundDiv(int64(s0-s1-s4+s5-s6+s7), 24))
	x[7] = int32(roundDiv(int64(s0-s1+s2-s3+s4-s5), 24))
	return x
}
