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

// Block is a fixed-shape 8x8 tile of coefficients or samples, stored as
// a contiguous 64-element flat array in row-major order. Blocks carry
// no independent identity; they are indexed by position within a
// channel by the caller.
type Block [64]int32

// at returns the element at row r, column c (0-7 each).
func (b *Block) at(r, c int) int32 { return b[r*8+c] }

// set assigns the element at row r, column c (0-7 each).
func (b *Block) set(r, c int, v int32) { b[r*8+c] = v }

const blockDim = 8

// numBlocks returns ceil(w/8) * ceil(h/8), the block count for a plane
// of the given dimensions (spec §4.4).
func numBlocks(w, h int) (bw, bh, n int) {
	bw = (w + blockDim - 1) / blockDim
	bh = (h + blockDim - 1) / blockDim
	return bw, bh, bw * bh
}

// extractChannel splits a w*h int32 plane (row-major) into
// ceil(w/8)*ceil(h/8) Blocks, filled in row-major block order: block
// (bi, bj) lands at flat index bj*bw+bi. Edge blocks that run past the
// plane's right or bottom edge are zero-padded, not edge-replicated —
// a deliberate departure from the teacher's fillRightAndDown, required
// by spec §4.4.
func extractChannel(plane []int32, w, h int) []Block {
	bw, bh, n := numBlocks(w, h)
	blocks := make([]Block, n)
	for bj := 0; bj < bh; bj++ {
		for bi := 0; bi < bw; bi++ {
			blk := &blocks[bj*bw+bi]
			originY := bj * blockDim
			originX := bi * blockDim
			rows := blockDim
			if originY+rows > h {
				rows = h - originY
			}
			cols := blockDim
			if originX+cols > w {
				cols = w - originX
			}
			for r := 0; r < rows; r++ {
				srcRow := (originY + r) * w
				for c := 0; c < cols; c++ {
					blk.set(r, c, plane[srcRow+originX+c])
				}
			}
			// Remaining rows/cols of blk are already zero (Go
			// zero-values the backing array on make).
		}
	}
	return blocks
}

// reconstructChannel is the exact inverse of extractChannel: it copies
// the in-bounds region of each block back into a freshly allocated w*h
// plane, discarding the padded samples (spec §4.4, property P8).
func reconstructChannel(blocks []Block, w, h int) []int32 {
	bw, _, _ := numBlocks(w, h)
	plane := make([]int32, w*h)
	for idx := range blocks {
		blk := &blocks[idx]
		bj := idx / bw
		bi := idx % bw
		originY := bj * blockDim
		originX := bi * blockDim
		rows := blockDim
		if originY+rows > h {
			rows = h - originY
		}
		cols := blockDim
		if originX+cols > w {
			cols = w - originX
		}
		for r := 0; r < rows; r++ {
			dstRow := (originY + r) * w
			for c := 0; c < cols; c++ {
				plane[dstRow+originX+c] = blk.at(r, c)
			}
		}
	}
	return plane
}
