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

func TestLastNonzeroBits(t *testing.T) {
	var allZero Block
	if got := lastNonzeroBits(allZero); got != 0 {
		t.Errorf("all-zero block: got %d want 0", got)
	}

	var dcOnly Block
	dcOnly[0] = 5
	if got := lastNonzeroBits(dcOnly); got != 8 {
		t.Errorf("DC-only block: got %d want 8", got)
	}

	var lastScanEntry Block
	lastScanEntry[scanOrder[63]] = 1
	if got := lastNonzeroBits(lastScanEntry); got != 64*8 {
		t.Errorf("last scan position set: got %d want %d", got, 64*8)
	}
}

func TestEstimateBitrateEmptyBundle(t *testing.T) {
	bundle := &QuantizedBundle{}
	if got := EstimateBitrate(bundle); got != 0 {
		t.Errorf("EstimateBitrate(empty) = %v; want 0", got)
	}
}
