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

// Kernel is a tagged variant over the four one-dimensional transform
// pairs this codec supports (spec §9: "replace runtime string
// selection with a tagged variant"). Each case selects a kernel1D
// forward/inverse pair; Transform2D resolves the pair once per call
// and then invokes the chosen kernel1D through a function value for
// each of the sixteen row passes.
type Kernel uint8

const (
	KernelLoeffler Kernel = iota
	KernelMatrix
	KernelApproximate
	KernelIdentity
)

// String returns the lowercase wire token for k (spec §6: "loeffler |
// matrix | approx | identity").
func (k Kernel) String() string {
	switch k {
	case KernelLoeffler:
		return "loeffler"
	case KernelMatrix:
		return "matrix"
	case KernelApproximate:
		return "approx"
	case KernelIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// ParseKernel resolves a wire token to a Kernel, returning
// ErrInvalidMethod for anything outside the known set.
func ParseKernel(s string) (Kernel, error) {
	switch s {
	case "loeffler":
		return KernelLoeffler, nil
	case "matrix":
		return KernelMatrix, nil
	case "approx":
		return KernelApproximate, nil
	case "identity":
		return KernelIdentity, nil
	default:
		return 0, ErrInvalidMethod
	}
}

// kernel1D is a one-dimensional 8-point transform, consuming and
// producing eight signed integers via a fixed-size array (spec §4.2).
type kernel1D func(x [8]int32) [8]int32

// pair returns the forward/inverse kernel1D functions for k.
func (k Kernel) pair() (forward, inverse kernel1D) {
	switch k {
	case KernelLoeffler:
		return loefflerForward, loefflerInverse
	case KernelMatrix:
		return matrixForward, matrixInverse
	case KernelApproximate:
		return approxForward, approxInverse
	default:
		return identity1D, identity1D
	}
}

// Transform2D applies a 1D kernel to an 8x8 block as a separable
// two-dimensional transform (spec §4.3). The forward order is
// rows-then-columns; the inverse order is columns-then-rows. Swapping
// these orders on one side only gives numerically different output for
// the Matrix and Loeffler kernels, because their rounding is not
// symmetric between rows and columns — the orders are part of the
// contract, not an implementation detail.
func (k Kernel) Transform2D(b Block, forward bool) Block {
	f, inv := k.pair()
	if forward {
		return transform2D(b, f, true)
	}
	return transform2D(b, inv, false)
}

func transform2D(b Block, fn kernel1D, rowsFirst bool) Block {
	apply := func(blk Block) Block {
		var out Block
		for r := 0; r < blockDim; r++ {
			var row [8]int32
			for c := 0; c < blockDim; c++ {
				row[c] = blk.at(r, c)
			}
			row = fn(row)
			for c := 0; c < blockDim; c++ {
				out.set(r, c, row[c])
			}
		}
		return out
	}
	transpose := func(blk Block) Block {
		var out Block
		for r := 0; r < blockDim; r++ {
			for c := 0; c < blockDim; c++ {
				out.set(c, r, blk.at(r, c))
			}
		}
		return out
	}

	if rowsFirst {
		// Forward: rows, transpose, rows (== original columns), transpose back.
		step1 := apply(b)
		step2 := transpose(step1)
		step3 := apply(step2)
		return transpose(step3)
	}
	// Inverse: columns first == transpose, rows, transpose, rows.
	step1 := transpose(b)
	step2 := apply(step1)
	step3 := transpose(step2)
	return apply(step3)
}
