// Copyright 2025 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package fxcodec implements a deterministic, fixed-point 8x8
// block-based lossy image codec modeled on the baseline JPEG transform
// pipeline. It offers three interchangeable one-dimensional transform
// kernels (an 11-multiplication Loeffler fast DCT, a direct 8x8 matrix
// DCT, and a zero-multiplication integer approximation of the
// Cintra-Bayer transform), a reciprocal-multiplication quantizer, and
// integer BT.601 color conversion.
//
// Every arithmetic step is specified down to the rounding rule so that
// a capture device and a host receiver running independent
// implementations of this package agree to the bit. The package does
// no I/O, no logging and no entropy coding; it is called from, not the
// caller of, the boundary packages under lib/.
package fxcodec
