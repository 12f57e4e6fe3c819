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

import "testing"

// TestColorRoundTrip checks property P7: every (r,g,b) survives a
// round trip through rgbToYCbCr/ycbcrToRGB within +/-2 per channel.
func TestColorRoundTrip(t *testing.T) {
	for r := int32(0); r <= 255; r += 5 {
		for g := int32(0); g <= 255; g += 5 {
			for b := int32(0); b <= 255; b += 5 {
				y, cb, cr := rgbToYCbCr(r, g, b)
				r2, g2, b2 := ycbcrToRGB(y, cb, cr)
				if abs32(r2-r) > 2 || abs32(g2-g) > 2 || abs32(b2-b) > 2 {
					t.Fatalf("(%d,%d,%d) -> (%d,%d,%d) -> (%d,%d,%d)", r, g, b, y, cb, cr, r2, g2, b2)
				}
			}
		}
	}
}

// TestColorGray128IsZero checks scenario 2: a mid-gray pixel color
// converts to Y=0, Cb=0, Cr=0.
func TestColorGray128IsZero(t *testing.T) {
	y, cb, cr := rgbToYCbCr(128, 128, 128)
	if y != 0 || cb != 0 || cr != 0 {
		t.Errorf("rgbToYCbCr(128,128,128) = (%d,%d,%d); want (0,0,0)", y, cb, cr)
	}
	r, g, b := ycbcrToRGB(0, 0, 0)
	if r != 128 || g != 128 || b != 128 {
		t.Errorf("ycbcrToRGB(0,0,0) = (%d,%d,%d); want (128,128,128)", r, g, b)
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
