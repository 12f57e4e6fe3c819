package report

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// palette gives each kernel's line a stable, distinguishable color
// across the handful of lines a sweep ever plots (loeffler, matrix,
// approx, identity).
var palette = []color.Color{
	color.RGBA{R: 0xd6, G: 0x2f, B: 0x2f, A: 0xff},
	color.RGBA{R: 0x2f, G: 0x6b, B: 0xd6, A: 0xff},
	color.RGBA{R: 0x2f, G: 0xa8, B: 0x4b, A: 0xff},
	color.RGBA{R: 0xb0, G: 0x7a, B: 0x0a, A: 0xff},
}

// SweepPoint is one (kernel, k) measurement from a comparison run —
// the data compare_methods.py accumulates per row before plotting.
type SweepPoint struct {
	Kernel  string
	K       float64
	PSNR    float64
	Bitrate float64
}

// SaveBitrateVsK renders a bitrate-vs-k comparison chart, one line per
// kernel, grouping points the way compare_methods.py groups its
// K_FACTORS sweep by method before plotting.
func SaveBitrateVsK(points []SweepPoint, path string) error {
	return saveSweepChart(points, path, "Bitrate vs k", "bits/pixel", func(p SweepPoint) float64 { return p.Bitrate })
}

// SavePSNRVsK renders a PSNR-vs-k comparison chart, one line per
// kernel.
func SavePSNRVsK(points []SweepPoint, path string) error {
	return saveSweepChart(points, path, "PSNR vs k", "dB", func(p SweepPoint) float64 { return p.PSNR })
}

func saveSweepChart(points []SweepPoint, path, title, yLabel string, value func(SweepPoint) float64) error {
	byKernel := map[string]plotter.XYs{}
	var order []string
	for _, pt := range points {
		if _, ok := byKernel[pt.Kernel]; !ok {
			order = append(order, pt.Kernel)
		}
		byKernel[pt.Kernel] = append(byKernel[pt.Kernel], plotter.XY{X: pt.K, Y: value(pt)})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "k"
	p.Y.Label.Text = yLabel

	for i, kernel := range order {
		line, scatter, err := plotter.NewLinePoints(byKernel[kernel])
		if err != nil {
			return errors.Wrapf(err, "report: line for kernel %q", kernel)
		}
		c := palette[i%len(palette)]
		line.Color = c
		scatter.Color = c
		p.Add(line, scatter)
		p.Legend.Add(kernel, line, scatter)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "report: save chart")
	}
	return nil
}
