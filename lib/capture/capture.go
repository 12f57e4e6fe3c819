// Package capture supplies images to compress: a Capturer interface
// with a file-backed implementation for development and tests, and a
// build-tag-gated webcam implementation (SPEC_FULL.md §11.4).
package capture

import (
	"os"

	"github.com/pkg/errors"

	"github.com/oceancam/fxcodec/lib/fxcodec"
	"github.com/oceancam/fxcodec/lib/imageio"
)

// Capturer produces one fxcodec.Image per call. Implementations may be
// stateless (FileCapturer, replaying the same still) or stateful (a
// webcam grabbing a fresh frame each call).
type Capturer interface {
	CaptureFrame() (*fxcodec.Image, error)
}

// FileCapturer returns the same decoded still image on every call,
// useful for development and deterministic tests that stand in for
// actual hardware.
type FileCapturer struct {
	img *fxcodec.Image
}

// NewFileCapturer decodes the PNG/JPEG/BMP file at path once, and
// returns a Capturer that replays it.
func NewFileCapturer(path string) (*FileCapturer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "capture: open %s", path)
	}
	defer f.Close()

	img, err := imageio.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "capture: decode %s", path)
	}
	return &FileCapturer{img: img}, nil
}

// CaptureFrame returns a fresh copy of the decoded still, so callers
// that mutate or free the returned Image never corrupt the next call.
func (c *FileCapturer) CaptureFrame() (*fxcodec.Image, error) {
	pixels := make([]byte, len(c.img.Pixels))
	copy(pixels, c.img.Pixels)
	return &fxcodec.Image{
		Width:      c.img.Width,
		Height:     c.img.Height,
		Colorspace: c.img.Colorspace,
		Pixels:     pixels,
	}, nil
}
