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

// TestExtractReconstructIdentity checks that extracting and
// reconstructing an exact multiple-of-8 plane is lossless.
func TestExtractReconstructIdentity(t *testing.T) {
	w, h := 16, 8
	plane := make([]int32, w*h)
	for i := range plane {
		plane[i] = int32(i)
	}
	blocks := extractChannel(plane, w, h)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d; want 2", len(blocks))
	}
	got := reconstructChannel(blocks, w, h)
	for i := range plane {
		if got[i] != plane[i] {
			t.Fatalf("index %d: got %d want %d", i, got[i], plane[i])
		}
	}
}

// TestExtractZeroPads checks spec §4.4: edge blocks are zero-padded,
// not edge-replicated.
func TestExtractZeroPads(t *testing.T) {
	w, h := 5, 5
	plane := make([]int32, w*h)
	for i := range plane {
		plane[i] = 7
	}
	blocks := extractChannel(plane, w, h)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d; want 1", len(blocks))
	}
	blk := blocks[0]
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			want := int32(0)
			if r < h && c < w {
				want = 7
			}
			if got := blk.at(r, c); got != want {
				t.Errorf("(%d,%d) = %d; want %d", r, c, got, want)
			}
		}
	}
}

// TestReconstructIgnoresPadding checks property P8: poking arbitrary
// values into the padded region of an edge block must not change the
// reconstructed in-bounds samples.
func TestReconstructIgnoresPadding(t *testing.T) {
	w, h := 5, 5
	plane := make([]int32, w*h)
	for i := range plane {
		plane[i] = int32(i + 1)
	}
	blocks := extractChannel(plane, w, h)
	baseline := reconstructChannel(append([]Block(nil), blocks...), w, h)

	poked := append([]Block(nil), blocks...)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if r >= h || c >= w {
				poked[0].set(r, c, 12345)
			}
		}
	}
	got := reconstructChannel(poked, w, h)
	for i := range baseline {
		if got[i] != baseline[i] {
			t.Fatalf("index %d: got %d want %d after poking padding", i, got[i], baseline[i])
		}
	}
}

func TestNumBlocks(t *testing.T) {
	cases := []struct{ w, h, n int }{
		{16, 8, 2},
		{5, 5, 1},
		{320, 240, 40 * 30},
		{8, 8, 1},
		{9, 8, 2},
	}
	for _, c := range cases {
		_, _, n := numBlocks(c.w, c.h)
		if n != c.n {
			t.Errorf("numBlocks(%d,%d) = %d; want %d", c.w, c.h, n, c.n)
		}
	}
}
