// +build ignore

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/vdobler/colorscale"
	"github.com/vdobler/colorscale/data"
	"github.com/vdobler/colorscale/dist"
	"github.com/vdobler/colorscale/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// 40 runs of a noisy damped oscillation sampled at 12 positions.
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, 12)
	runs := make([][]float64, 40)
	for i := range runs {
		runs[i] = make([]float64, len(x))
		for j := range x {
			x[j] = float64(j)
			runs[i][j] = 3*math.Exp(-x[j]/6)*math.Sin(x[j]/2) + rng.NormFloat64()*0.4
		}
	}
	sample := data.Matrix(runs)

	opts, err := dist.ParseArgs(map[string]any{
		"mean":        true,
		"shadestds":   1,
		"fadepctiles": 90,
		"barc":        "black",
		"capsize":     3,
	}, dist.Options{Env: dist.Env{Logger: logger}})
	check(err)
	ranges, err := dist.ErrorRanges(sample, opts)
	check(err)

	p, err := plot.New()
	check(err)
	p.Title.Text = "Error Ranges"
	p.X.Label.Text = "X-Axis"
	p.Y.Label.Text = "Y-Axis"
	indicators, err := geom.Indicators(x, ranges, color.RGBA{0x1f, 0x77, 0xb4, 0xff})
	check(err)
	p.Add(indicators...)
	for _, ind := range ranges.Indicators {
		fmt.Printf("%-5s %s\n", ind.Tier, ind.Label)
	}

	// Color the centers by their value on a diverging scale.
	copts := colorscale.NewOptions()
	copts.Env = colorscale.Env{Logger: logger}
	res, err := colorscale.Resolve([]*data.Array{data.Vector(ranges.Center...)}, copts)
	check(err)
	cm := geom.NewColorMap(res)
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i] = plotter.XY{X: x[i], Y: ranges.Center[i]}
	}
	s, err := plotter.NewScatter(pts)
	check(err)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cm.At(ranges.Center[i])
		if err != nil {
			c = color.Black
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	}
	p.Add(s)
	check(p.Save(16*vg.Centimeter, 10*vg.Centimeter, "errorbars.png"))

	cb, ticker := geom.ColorBar(res, true)
	legend, err := plot.New()
	check(err)
	legend.Title.Text = res.Cmap.Name
	legend.HideX()
	legend.Add(cb)
	if ticker != nil {
		legend.Y.Tick.Marker = ticker
	}
	check(legend.Save(3*vg.Centimeter, 10*vg.Centimeter, "colorbar.png"))
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
