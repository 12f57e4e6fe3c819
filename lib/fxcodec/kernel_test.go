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

import (
	"math/rand"
	"testing"
)

// TestLoefflerRoundTrip checks property P1: for every 8-vector in
// [-1024, 1024], idct(dct(x)) == x exactly. The deferred-division
// inverse exists precisely to make this hold.
func TestLoefflerRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 5000; trial++ {
		var x [8]int32
		for i := range x {
			x[i] = int32(rng.Intn(2049) - 1024)
		}
		z := loefflerForward(x)
		got := loefflerInverse(z)
		if got != x {
			t.Fatalf("trial %d: round trip mismatch: x=%v z=%v got=%v", trial, x, z, got)
		}
	}
}

// TestLoefflerRoundTripEdges exercises the boundary values explicitly,
// since random sampling under-weights the extremes.
func TestLoefflerRoundTripEdges(t *testing.T) {
	cases := [][8]int32{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1024, 1024, 1024, 1024, 1024, 1024, 1024, 1024},
		{-1024, -1024, -1024, -1024, -1024, -1024, -1024, -1024},
		{1024, -1024, 1024, -1024, 1024, -1024, 1024, -1024},
		{1, -1, 0, 0, 0, 0, 0, 0},
	}
	for _, x := range cases {
		got := loefflerInverse(loefflerForward(x))
		if got != x {
			t.Errorf("x=%v: round trip got %v", x, got)
		}
	}
}

// TestMatrixRoundTrip checks property P2 for the in-range domain.
func TestMatrixRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 5000; trial++ {
		var x [8]int32
		for i := range x {
			x[i] = int32(rng.Intn(2049) - 1024)
		}
		got := matrixInverse(matrixForward(x))
		for i := range x {
			if d := got[i] - x[i]; d < -1 || d > 1 {
				t.Fatalf("trial %d: x=%v got=%v (index %d off by %d)", trial, x, got, i, d)
			}
		}
	}
}

// TestApproxForwardInverseIsExactTranspose checks that approxInverse is
// the true algebraic inverse of approxForward for inputs where the
// /24 division is exact (multiples of 24 after prescaling), which
// holds whenever x is the zero vector or a DC-only constant vector.
func TestApproxForwardInverseIsExactTranspose(t *testing.T) {
	for c := int32(-100); c <= 100; c += 17 {
		x := [8]int32{c, c, c, c, c, c, c, c}
		got := approxInverse(approxForward(x))
		if got != x {
			t.Errorf("constant vector c=%d: got %v", c, got)
		}
	}
}

// TestIdentityKernel checks property P4's transform half directly.
func TestIdentityKernel(t *testing.T) {
	x := [8]int32{1, 2, 3, 4, 5, 6, 7, 8}
	if got := identity1D(x); got != x {
		t.Errorf("identity1D(%v) = %v", x, got)
	}
}

// TestTransform2DOrderMatters checks spec §4.3's claim that swapping
// row/column order changes output for Matrix, by comparing the forward
// (rows-then-columns) path against a manually column-then-row pass.
func TestTransform2DOrderMatters(t *testing.T) {
	var b Block
	rng := rand.New(rand.NewSource(3))
	for i := range b {
		b[i] = int32(rng.Intn(511) - 255)
	}
	forward := KernelMatrix.Transform2D(b, true)

	// Manually apply columns-then-rows using the same primitives
	// Transform2D composes, to confirm it differs from the
	// canonical rows-then-columns result for a generic block.
	swapped := transform2D(b, matrixForward, false)
	if forward == swapped {
		t.Skip("block happened to be order-independent; not a useful counterexample")
	}
}

// TestKernelRoundTripViaTransform2D exercises the full 2D wrapper for
// Loeffler and Identity, the two kernels with exact round-trip
// contracts.
func TestKernelRoundTripViaTransform2D(t *testing.T) {
	for _, k := range []Kernel{KernelLoeffler, KernelIdentity} {
		var b Block
		rng := rand.New(rand.NewSource(int64(k) + 10))
		for i := range b {
			b[i] = int32(rng.Intn(2049) - 1024)
		}
		d := k.Transform2D(b, true)
		got := k.Transform2D(d, false)
		if got != b {
			t.Errorf("kernel %v: Transform2D round trip: want %v got %v", k, b, got)
		}
	}
}

func TestParseKernel(t *testing.T) {
	cases := map[string]Kernel{
		"loeffler": KernelLoeffler,
		"matrix":   KernelMatrix,
		"approx":   KernelApproximate,
		"identity": KernelIdentity,
	}
	for s, want := range cases {
		got, err := ParseKernel(s)
		if err != nil || got != want {
			t.Errorf("ParseKernel(%q) = %v, %v; want %v, nil", s, got, err, want)
		}
	}
	if _, err := ParseKernel("bogus"); err != ErrInvalidMethod {
		t.Errorf("ParseKernel(bogus) error = %v; want ErrInvalidMethod", err)
	}
}
