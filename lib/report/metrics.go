// Package report computes quality metrics and renders comparison
// charts for a sweep of compress/decompress runs. Both concerns are
// external collaborators per spec.md — the core codec in lib/fxcodec
// never imports this package (SPEC_FULL.md §11.3).
package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// PSNR computes peak signal-to-noise ratio in dB between a source and
// a reconstructed byte buffer of equal length (e.g. two Image.Pixels
// slices), following spec.md's quality-metrics section. It returns
// +Inf for a bit-identical pair, matching the mathematical definition
// at zero mean squared error. source and reconstructed commonly cross
// an HTTP handler boundary (lib/transport's /capture and /process), so
// a length mismatch is reported as an error rather than a panic.
func PSNR(source, reconstructed []byte) (float64, error) {
	mse, err := MSE(source, reconstructed)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(255*255/mse), nil
}

// MSE computes mean squared error between two equal-length byte
// buffers using gonum/stat's Mean reduction over the per-sample
// squared differences.
func MSE(source, reconstructed []byte) (float64, error) {
	if len(source) != len(reconstructed) {
		return 0, fmt.Errorf("report: MSE length mismatch: %d vs %d", len(source), len(reconstructed))
	}
	if len(source) == 0 {
		return 0, nil
	}
	sq := make([]float64, len(source))
	for i := range source {
		d := float64(source[i]) - float64(reconstructed[i])
		sq[i] = d * d
	}
	return stat.Mean(sq, nil), nil
}

// SSIMFunc is the signature of an external structural-similarity
// implementation. spec.md explicitly keeps perceptual quality metrics
// outside the core codec and transport layers; this package does not
// call an SSIMFunc, and SweepPoint (plot.go) has no SSIM field. A
// caller that wants SSIM supplies one of these rather than this
// package vendoring a particular library.
type SSIMFunc func(source, reconstructed []byte, width, height int) float64
