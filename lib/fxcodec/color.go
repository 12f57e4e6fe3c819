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

// rgbToYCbCr converts one pixel from int32 RGB in [0,255] to the
// level-shifted, integer BT.601 Y/Cb/Cr used internally (spec §4.6).
// The level shift of 128 is baked into Y; Cb and Cr are centered at 0.
func rgbToYCbCr(r, g, b int32) (y, cb, cr int32) {
	R, G, B := int64(r), int64(g), int64(b)
	y = int32(truncDiv(299*R+587*G+114*B+500, 1000) - 128)
	cb = int32(truncDiv(-169*R-331*G+500*B+500, 1000))
	cr = int32(truncDiv(500*R-419*G-81*B+500, 1000))
	return y, cb, cr
}

// ycbcrToRGB is the inverse of rgbToYCbCr, clamping each output channel
// to [0,255] (spec §4.6).
func ycbcrToRGB(y, cb, cr int32) (r, g, b int32) {
	yPrime := int64(y) + 128
	Cb, Cr := int64(cb), int64(cr)
	r = clamp255(yPrime + truncDiv(1402*Cr+500, 1000))
	g = clamp255(yPrime - truncDiv(344*Cb+714*Cr+500, 1000))
	b = clamp255(yPrime + truncDiv(1772*Cb+500, 1000))
	return r, g, b
}

func clamp255(v int64) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int32(v)
}
