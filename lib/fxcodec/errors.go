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

import "errors"

// Code is a small, stable status code, mirrored across the device and
// host implementations of this codec (spec §7). It exists alongside the
// sentinel errors below so that boundary code which needs to put a
// status on the wire (lib/transport) does not need to re-derive one by
// string-matching an error value.
type Code int32

const (
	CodeSuccess            Code = 0
	CodeNullPointer        Code = -1
	CodeInvalidDimensions  Code = -2
	CodeAllocationFailed   Code = -3
	CodeInvalidMethod      Code = -4
)

// ErrNullPointer, ErrInvalidDimensions, ErrAllocationFailed and
// ErrInvalidMethod are the four failure sentinels a caller checks with
// errors.Is. They are returned directly, never wrapped, by the core;
// boundary packages are expected to wrap them with call-site context
// (see SPEC_FULL.md §10.2).
var (
	ErrNullPointer       = errors.New("fxcodec: required input or output is nil")
	ErrInvalidDimensions = errors.New("fxcodec: width or height is non-positive, or data length does not match dimensions")
	ErrAllocationFailed  = errors.New("fxcodec: allocation failed")
	ErrInvalidMethod     = errors.New("fxcodec: kernel selector is not one of loeffler, matrix, approx, identity")
)

// CodeOf maps a core error to its stable status code. A nil err maps to
// CodeSuccess; an error that is none of the four sentinels maps to
// CodeAllocationFailed, the closest-matching "something went wrong
// internally" bucket.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrNullPointer):
		return CodeNullPointer
	case errors.Is(err, ErrInvalidDimensions):
		return CodeInvalidDimensions
	case errors.Is(err, ErrInvalidMethod):
		return CodeInvalidMethod
	default:
		return CodeAllocationFailed
	}
}

// String returns the stable, human-readable literal for a code, the
// "lookup from code to constant literal" required by spec §7.
func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "Success"
	case CodeNullPointer:
		return "NullPointer"
	case CodeInvalidDimensions:
		return "InvalidDimensions"
	case CodeAllocationFailed:
		return "AllocationFailed"
	case CodeInvalidMethod:
		return "InvalidMethod"
	default:
		return "Unknown"
	}
}
