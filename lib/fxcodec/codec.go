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

// Compress drives the three-channel compress pass described in spec
// §4.8: validate the image, color-convert to three planes, and run the
// channel pipeline per plane with the luma table for Y and the chroma
// table for Cb and Cr.
//
// The out-parameter/status-code shape of the original C-style
// interface (spec §6) is replaced here with an idiomatic (value, error)
// return — callers that need the stable numeric code for a wire
// protocol can recover it with CodeOf(err).
func Compress(img *Image, p Params) (*QuantizedBundle, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}
	if img.Colorspace != ColorspaceRGB {
		return nil, ErrInvalidDimensions
	}

	if err := validateKernel(p.Method); err != nil {
		return nil, err
	}

	w, h := img.Width, img.Height
	yPlane := make([]int32, w*h)
	cbPlane := make([]int32, w*h)
	crPlane := make([]int32, w*h)
	for i := 0; i < w*h; i++ {
		r := int32(img.Pixels[3*i+0])
		g := int32(img.Pixels[3*i+1])
		b := int32(img.Pixels[3*i+2])
		y, cb, cr := rgbToYCbCr(r, g, b)
		yPlane[i], cbPlane[i], crPlane[i] = y, cb, cr
	}

	yQ, yRaw, n := compressChannel(yPlane, w, h, q50Luma, p)
	cbQ, cbRaw, _ := compressChannel(cbPlane, w, h, q50Chroma, p)
	crQ, crRaw, _ := compressChannel(crPlane, w, h, q50Chroma, p)

	bundle := &QuantizedBundle{
		Width:     w,
		Height:    h,
		K:         p.K,
		Method:    p.Method,
		SkipQuant: p.SkipQuant,
		NumBlocks: n,
		Y:         yQ,
		Cb:        cbQ,
		Cr:        crQ,
	}
	if p.KeepRaw {
		bundle.RawY, bundle.RawCb, bundle.RawCr = yRaw, cbRaw, crRaw
	}
	return bundle, nil
}

// Decompress reverses Compress: dequantize and inverse-transform each
// channel, then color-convert back to an interleaved RGB image,
// clamping each channel (spec §4.8).
func Decompress(bundle *QuantizedBundle) (*Image, error) {
	if bundle == nil || bundle.Y == nil || bundle.Cb == nil || bundle.Cr == nil {
		return nil, ErrNullPointer
	}
	if bundle.Width <= 0 || bundle.Height <= 0 {
		return nil, ErrInvalidDimensions
	}

	p := Params{K: bundle.K, Method: bundle.Method, SkipQuant: bundle.SkipQuant}
	w, h := bundle.Width, bundle.Height

	yPlane := decompressChannel(bundle.Y, w, h, q50Luma, p)
	cbPlane := decompressChannel(bundle.Cb, w, h, q50Chroma, p)
	crPlane := decompressChannel(bundle.Cr, w, h, q50Chroma, p)

	pixels := make([]byte, 3*w*h)
	for i := 0; i < w*h; i++ {
		r, g, b := ycbcrToRGB(yPlane[i], cbPlane[i], crPlane[i])
		pixels[3*i+0] = byte(r)
		pixels[3*i+1] = byte(g)
		pixels[3*i+2] = byte(b)
	}

	return &Image{
		Width:      w,
		Height:     h,
		Colorspace: ColorspaceRGB,
		Pixels:     pixels,
	}, nil
}

// validateKernel confirms the kernel selector is known, before any
// plane is allocated (spec §4.8: "Select the kernel via the selector
// (fail with InvalidMethod on unknown)" happens ahead of allocation).
func validateKernel(k Kernel) error {
	switch k {
	case KernelLoeffler, KernelMatrix, KernelApproximate, KernelIdentity:
		return nil
	default:
		return ErrInvalidMethod
	}
}
