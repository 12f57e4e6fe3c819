// Package imageio decodes and encodes fxcodec.Image values to and from
// PNG, JPEG and BMP container files. It is a thin boundary adapter —
// spec.md names "image file I/O (decode/encode of PNG/JPEG/BMP
// containers)" as an external collaborator, out of scope for the core
// codec itself (SPEC_FULL.md §11.1).
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/oceancam/fxcodec/lib/fxcodec"
)

// Format selects the container format for Encode.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
)

// Decode reads a PNG, JPEG or BMP image from r and converts it to an
// fxcodec.Image with ColorspaceRGB, discarding any alpha channel.
func Decode(r io.Reader) (*fxcodec.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "imageio: decode")
	}
	return fromImage(src), nil
}

// fromImage converts a standard library image.Image into an
// fxcodec.Image, row-major RGB, dropping alpha.
func fromImage(src image.Image) *fxcodec.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 3*w*h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			pixels[i+0] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			i += 3
		}
	}
	return &fxcodec.Image{Width: w, Height: h, Colorspace: fxcodec.ColorspaceRGB, Pixels: pixels}
}

// Encode writes img to w in the given container format.
func Encode(w io.Writer, img *fxcodec.Image, format Format) error {
	if img.Colorspace != fxcodec.ColorspaceRGB {
		return errors.New("imageio: only ColorspaceRGB images can be encoded")
	}
	rgba := toRGBA(img)
	switch format {
	case FormatPNG:
		return errors.Wrap(png.Encode(w, rgba), "imageio: png encode")
	case FormatJPEG:
		return errors.Wrap(jpeg.Encode(w, rgba, &jpeg.Options{Quality: 95}), "imageio: jpeg encode")
	case FormatBMP:
		return errors.Wrap(bmp.Encode(w, rgba), "imageio: bmp encode")
	default:
		return fmt.Errorf("imageio: unknown format %d", format)
	}
}

func toRGBA(img *fxcodec.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := (y*img.Width + x) * 3
			out.SetRGBA(x, y, color.RGBA{
				R: img.Pixels[i+0],
				G: img.Pixels[i+1],
				B: img.Pixels[i+2],
				A: 255,
			})
		}
	}
	return out
}
