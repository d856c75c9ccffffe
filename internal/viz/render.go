package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// fieldGrid adapts vorticity samples to the heatmap grid interface, with the
// first sample index along x and the second along y.
type fieldGrid struct {
	samples [][]float64
	p       float64
}

func (g fieldGrid) Dims() (int, int) { return len(g.samples), len(g.samples) }

func (g fieldGrid) Z(c, r int) float64 { return g.samples[c][r] }

func (g fieldGrid) X(c int) float64 { return float64(c) * g.p / float64(len(g.samples)) }

func (g fieldGrid) Y(r int) float64 { return float64(r) * g.p / float64(len(g.samples)) }

// RenderField writes a heatmap of the samples on a [0,p) x [0,p) domain.
// The color scale is symmetric about zero so the two vorticity signs map to
// the two ends of the diverging palette. The output format follows the file
// extension (png, svg, pdf, ...).
func RenderField(samples [][]float64, p, cmax float64, title, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to render")
	}
	if cmax <= 0 {
		cmax = 1
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-cmax)
	cmap.SetMax(cmax)

	hm := plotter.NewHeatMap(fieldGrid{samples: samples, p: p}, cmap.Palette(256))
	hm.Min = -cmax
	hm.Max = cmax

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	pl.Add(hm)

	return pl.Save(6*vg.Inch, 6*vg.Inch, path)
}

// RenderSeries writes energy and enstrophy against time as a line chart.
func RenderSeries(times, energy, enstrophy []float64, title, path string) error {
	if len(times) == 0 {
		return fmt.Errorf("no series to render")
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "time"
	pl.Legend.Top = true

	energyLine, err := plotter.NewLine(seriesXYs(times, energy))
	if err != nil {
		return err
	}
	energyLine.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

	enstrophyLine, err := plotter.NewLine(seriesXYs(times, enstrophy))
	if err != nil {
		return err
	}
	enstrophyLine.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

	pl.Add(energyLine, enstrophyLine)
	pl.Legend.Add("energy", energyLine)
	pl.Legend.Add("enstrophy", enstrophyLine)

	return pl.Save(8*vg.Inch, 4*vg.Inch, path)
}

func seriesXYs(times, values []float64) plotter.XYs {
	n := len(times)
	if len(values) < n {
		n = len(values)
	}
	xys := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		xys[i].X = times[i]
		xys[i].Y = values[i]
	}
	return xys
}
