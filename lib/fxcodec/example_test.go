// Copyright 2025 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package fxcodec_test

import (
	"fmt"
	"log"

	"github.com/oceancam/fxcodec/lib/fxcodec"
)

// Example_compressDecompress demonstrates the basic Compress/Decompress
// round trip across the three kernels at a fixed quality factor, on a
// tiny synthetic image. It mirrors the teacher's own
// Example_yCbCr444 in spirit: one source image run through several
// named transform variants.
func Example_compressDecompress() {
	const w, h = 8, 8
	pixels := make([]byte, 3*w*h)
	for i := 0; i < w*h; i++ {
		pixels[3*i+0] = byte(i * 4)
		pixels[3*i+1] = byte(255 - i*4)
		pixels[3*i+2] = 128
	}
	img := &fxcodec.Image{Width: w, Height: h, Colorspace: fxcodec.ColorspaceRGB, Pixels: pixels}

	for _, method := range []fxcodec.Kernel{fxcodec.KernelLoeffler, fxcodec.KernelMatrix, fxcodec.KernelApproximate, fxcodec.KernelIdentity} {
		bundle, err := fxcodec.Compress(img, fxcodec.Params{K: 1.0, Method: method})
		if err != nil {
			log.Fatalf("Compress: %v", err)
		}
		out, err := fxcodec.Decompress(bundle)
		if err != nil {
			log.Fatalf("Decompress: %v", err)
		}
		fmt.Printf("%-8s blocks=%d bytes=%d\n", method, bundle.NumBlocks, len(out.Pixels))
	}

	// Output:
	// loeffler blocks=1 bytes=192
	// matrix   blocks=1 bytes=192
	// approx   blocks=1 bytes=192
	// identity blocks=1 bytes=192
}
