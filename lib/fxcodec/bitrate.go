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

// EstimateBitrate computes bits-per-pixel across all three planes of a
// bundle using the zigzag last-nonzero heuristic (spec §4.9). It is not
// an entropy-coder-accurate figure; it is a comparable proxy across
// kernels and k values.
func EstimateBitrate(bundle *QuantizedBundle) float64 {
	var totalBits int64
	var totalBlocks int
	for _, plane := range [][]Block{bundle.Y, bundle.Cb, bundle.Cr} {
		for _, blk := range plane {
			totalBits += lastNonzeroBits(blk)
			totalBlocks++
		}
	}
	if totalBlocks == 0 {
		return 0
	}
	return float64(totalBits) / float64(totalBlocks*64)
}

// lastNonzeroBits returns (L+1)*8 where L is the scan position of the
// last nonzero coefficient in zigzag order, or 0 if the block is all
// zero.
func lastNonzeroBits(blk Block) int64 {
	last := -1
	for pos := 63; pos >= 0; pos-- {
		if blk[scanOrder[pos]] != 0 {
			last = pos
			break
		}
	}
	if last < 0 {
		return 0
	}
	return int64(last+1) * 8
}
