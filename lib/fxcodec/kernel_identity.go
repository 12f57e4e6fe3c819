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

// identity1D is a pass-through kernel (spec §4.2.5), used to debug the
// color and quantization paths without any transform. With k=1 and
// unity quantization it makes the full pipeline round-trip exactly
// (property P4).
func identity1D(x [8]int32) [8]int32 { return x }
