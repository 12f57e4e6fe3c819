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

// scanOrder is the standard JPEG zigzag permutation, scanOrder[scan
// position] = flat index within an 8x8 block in row-major order. It is
// the only scan direction this package implements — the inverse
// permutation (flat index -> scan position) that spec §9 notes as a
// byproduct of an earlier implementation is not needed by anything in
// this package.
//
// This table is identical, entry for entry, to the teacher's own
// zigzag table (lib/lowleveljpeg's zigzag [64]uint8) and to
// original_source/pc_receiver.py's ZIGZAG_SCAN.
var scanOrder = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}
