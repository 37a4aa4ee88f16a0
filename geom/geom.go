// Package geom turns resolved color scales and error indicators into
// gonum plotters.
//
// ColorMap and AxisScale adapt the colormaps and normalizers of a
// colorscale.Result to the palette and axis interfaces of gonum/plot.
// Band and the helpers around plotter.YErrorBars draw the indicators
// computed by package dist.
package geom

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"github.com/vdobler/colorscale"
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/dist"
	"github.com/vdobler/colorscale/norm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// ColorMap

// ColorMap is a palette.ColorMap drawing colors from a colormap through
// a normalizer. Values outside [Min,Max] are errors unless the colormap
// extends to that side.
type ColorMap struct {
	Cmap *cmap.Colormap
	Norm norm.Normalizer

	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*ColorMap)(nil)

// NewColorMap returns the color map of a resolved color scale.
func NewColorMap(res colorscale.Result) *ColorMap {
	return &ColorMap{
		Cmap:  res.Cmap,
		Norm:  res.Norm,
		min:   res.Vmin,
		max:   res.Vmax,
		alpha: 1,
	}
}

// normalizer returns Norm with the current range applied. Discrete
// normalizers keep the range of their levels.
func (cm *ColorMap) normalizer() norm.Normalizer {
	if n, ok := cm.Norm.(norm.Norm); ok {
		return n.WithRange(cm.min, cm.max)
	}
	return cm.Norm
}

// At implements palette.ColorMap.
func (cm *ColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < cm.min && !cm.Cmap.Extend.HasMin():
		return nil, palette.ErrUnderflow
	case v > cm.max && !cm.Cmap.Extend.HasMax():
		return nil, palette.ErrOverflow
	}
	return withAlpha(cm.Cmap.At(cm.normalizer().Normalize(v)), cm.alpha), nil
}

// Max implements palette.ColorMap.
func (cm *ColorMap) Max() float64 { return cm.max }

// SetMax implements palette.ColorMap.
func (cm *ColorMap) SetMax(v float64) { cm.max = v }

// Min implements palette.ColorMap.
func (cm *ColorMap) Min() float64 { return cm.min }

// SetMin implements palette.ColorMap.
func (cm *ColorMap) SetMin(v float64) { cm.min = v }

// Alpha implements palette.ColorMap.
func (cm *ColorMap) Alpha() float64 { return cm.alpha }

// SetAlpha implements palette.ColorMap; a must lie in [0,1].
func (cm *ColorMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("geom: alpha out of range")
	}
	cm.alpha = a
}

// Palette returns n colors sampled evenly from Min to Max.
func (cm *ColorMap) Palette(n int) palette.Palette {
	colors := make(colorList, n)
	for i := range colors {
		v := cm.min
		if n > 1 {
			v += float64(i) / float64(n-1) * (cm.max - cm.min)
		}
		c, err := cm.At(v)
		if err != nil {
			c = color.Transparent
		}
		colors[i] = c
	}
	return colors
}

type colorList []color.Color

func (c colorList) Colors() []color.Color { return c }

// ----------------------------------------------------------------------------
// AxisScale

// AxisScale is a plot.Normalizer laying out an axis like a continuous
// normalizer, e.g. with logarithmic or symmetric logarithmic spacing.
type AxisScale struct {
	norm.Norm
}

var _ plot.Normalizer = AxisScale{}

// Normalize implements plot.Normalizer.
func (s AxisScale) Normalize(min, max, x float64) float64 {
	return s.Norm.WithRange(min, max).Normalize(x)
}

// ----------------------------------------------------------------------------
// ColorBar

// ColorBar returns a color bar for res together with a ticker marking
// the level centers or the levels of discrete scales. The ticker is nil
// for continuous scales.
func ColorBar(res colorscale.Result, vertical bool) (*plotter.ColorBar, plot.Ticker) {
	cb := &plotter.ColorBar{
		ColorMap: NewColorMap(res),
		Vertical: vertical,
		Colors:   res.Cmap.Len(),
	}
	ticks := res.Ticks
	if ticks == nil {
		ticks = res.Levels
	}
	if ticks == nil {
		return cb, nil
	}
	// Enough colors to resolve the narrowest bin.
	if w := minSpacing(res.Levels); w > 0 {
		if n := int(math.Ceil(4 * (res.Vmax - res.Vmin) / w)); n > cb.Colors {
			cb.Colors = n
		}
	}
	constant := make(plot.ConstantTicks, len(ticks))
	for i, t := range ticks {
		constant[i] = plot.Tick{Value: t, Label: strconv.FormatFloat(t, 'g', 4, 64)}
	}
	return cb, constant
}

func minSpacing(xs []float64) float64 {
	w := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		w = math.Min(w, math.Abs(xs[i]-xs[i-1]))
	}
	if math.IsInf(w, 1) {
		return 0
	}
	return w
}

// ----------------------------------------------------------------------------
// Band

// Band fills the area between Lower and Upper. Positions where either
// bound is NaN split the band into separate polygons.
type Band struct {
	X, Lower, Upper []float64

	Fill   color.Color
	Border draw.LineStyle
}

// NewBand returns the band of a shading or fading indicator at
// positions x. The fill color is derived from parent unless the style
// sets one.
func NewBand(x []float64, ind dist.Indicator, parent color.Color) (*Band, error) {
	if len(x) != len(ind.Lower) {
		return nil, errLength(len(x), len(ind.Lower))
	}
	return &Band{
		X:      append([]float64(nil), x...),
		Lower:  append([]float64(nil), ind.Lower...),
		Upper:  append([]float64(nil), ind.Upper...),
		Fill:   ind.Style.FillColor(parent),
		Border: ind.Style.Line,
	}, nil
}

// Plot implements plot.Plotter.
func (b *Band) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, seg := range segments(len(b.X), b.valid) {
		pts := make([]vg.Point, 0, 2*(seg[1]-seg[0]))
		for i := seg[0]; i < seg[1]; i++ {
			pts = append(pts, vg.Point{X: trX(b.X[i]), Y: trY(b.Upper[i])})
		}
		for i := seg[1] - 1; i >= seg[0]; i-- {
			pts = append(pts, vg.Point{X: trX(b.X[i]), Y: trY(b.Lower[i])})
		}
		if b.Fill != nil {
			c.FillPolygon(b.Fill, c.ClipPolygonXY(pts))
		}
		if b.Border.Color != nil && b.Border.Width > 0 {
			pts = append(pts, pts[0])
			c.StrokeLines(b.Border, c.ClipLinesXY(pts)...)
		}
	}
}

// DataRange implements plot.DataRanger.
func (b *Band) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for i := range b.X {
		if !b.valid(i) {
			continue
		}
		xmin, xmax = math.Min(xmin, b.X[i]), math.Max(xmax, b.X[i])
		ymin = math.Min(ymin, math.Min(b.Lower[i], b.Upper[i]))
		ymax = math.Max(ymax, math.Max(b.Lower[i], b.Upper[i]))
	}
	return xmin, xmax, ymin, ymax
}

func (b *Band) valid(i int) bool {
	return !math.IsNaN(b.X[i]) && !math.IsNaN(b.Lower[i]) && !math.IsNaN(b.Upper[i])
}

// ----------------------------------------------------------------------------
// ErrorBars

// errorPoints pairs centers with the distances to their bounds.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// NewErrorBars returns the error bars of a bar or box indicator at
// positions x. Positions without valid bounds are omitted. Boxes with
// a center marker get an additional scatter plotter.
func NewErrorBars(x []float64, ind dist.Indicator) ([]plot.Plotter, error) {
	if len(x) != len(ind.Lower) {
		return nil, errLength(len(x), len(ind.Lower))
	}
	var pts errorPoints
	for i := range x {
		if !ind.Valid(i) || math.IsNaN(x[i]) || math.IsNaN(ind.Center[i]) {
			continue
		}
		y := ind.Center[i]
		pts.XYs = append(pts.XYs, plotter.XY{X: x[i], Y: y})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{y - ind.Lower[i], ind.Upper[i] - y})
	}
	if len(pts.XYs) == 0 {
		return nil, nil
	}
	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, err
	}
	bars.LineStyle = ind.Style.Line
	bars.CapWidth = ind.Style.CapWidth
	out := []plot.Plotter{bars}

	if ind.Style.Marker.Radius > 0 {
		s, err := plotter.NewScatter(pts.XYs)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = ind.Style.Marker
		out = append(out, s)
	}
	return out, nil
}

// ----------------------------------------------------------------------------
// Indicators

// Indicators returns the plotters of all indicators of res at positions
// x in drawing order: lower ZOrder first, bands before bars on ties.
// The bands use parent as their color unless styled otherwise.
func Indicators(x []float64, res dist.Result, parent color.Color) ([]plot.Plotter, error) {
	inds := append([]dist.Indicator(nil), res.Indicators...)
	sort.SliceStable(inds, func(i, j int) bool {
		return inds[i].Style.ZOrder < inds[j].Style.ZOrder
	})
	var out []plot.Plotter
	for _, ind := range inds {
		switch ind.Tier {
		case dist.Shade, dist.Fade:
			b, err := NewBand(x, ind, parent)
			if err != nil {
				return nil, err
			}
			if len(segments(len(b.X), b.valid)) > 0 {
				out = append(out, b)
			}
		default:
			ps, err := NewErrorBars(x, ind)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
	}
	return out, nil
}
