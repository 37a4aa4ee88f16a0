package geom

import (
	"image/color"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/colorscale"
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/data"
	"github.com/vdobler/colorscale/dist"
	"github.com/vdobler/colorscale/norm"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
	nan  = math.NaN()
)

func twoColors() colorscale.Result {
	n := norm.New(norm.Linear).WithRange(0, 10)
	return colorscale.Result{
		Cmap:       cmap.FromColors("test", red, blue),
		Norm:       n,
		Continuous: n,
		Vmin:       0,
		Vmax:       10,
	}
}

func TestSegments(t *testing.T) {
	for i, tc := range []struct {
		valid []bool
		want  [][2]int
	}{
		{nil, nil},
		{[]bool{false, false}, nil},
		{[]bool{true, true, true}, [][2]int{{0, 3}}},
		{[]bool{true, true, false, true, false, false, true}, [][2]int{{0, 2}, {3, 4}, {6, 7}}},
	} {
		got := segments(len(tc.valid), func(j int) bool { return tc.valid[j] })
		assert.Equal(t, tc.want, got, "%d. segments(%v)", i, tc.valid)
	}
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.Color(red), withAlpha(red, 1))
	got := withAlpha(red, 0.5).(color.NRGBA64)
	assert.Equal(t, uint16(0xffff), got.R)
	assert.Equal(t, uint16(0x7fff), got.A)
	assert.Nil(t, withAlpha(nil, 0.5))
}

func TestColorMapAt(t *testing.T) {
	cm := NewColorMap(twoColors())
	for i, tc := range []struct {
		v    float64
		want color.Color
		err  error
	}{
		{2, red, nil},
		{8, blue, nil},
		{nan, nil, palette.ErrNaN},
		{-1, nil, palette.ErrUnderflow},
		{11, nil, palette.ErrOverflow},
	} {
		got, err := cm.At(tc.v)
		if got != tc.want || err != tc.err {
			t.Errorf("%d. At(%g) = %v, %v, want %v, %v", i, tc.v, got, err, tc.want, tc.err)
		}
	}

	res := twoColors()
	res.Cmap.Extend = cmap.ExtendBoth
	cm = NewColorMap(res)
	c, err := cm.At(-1)
	assert.NoError(t, err)
	assert.Equal(t, color.Color(red), c)
	c, err = cm.At(11)
	assert.NoError(t, err)
	assert.Equal(t, color.Color(blue), c)
}

func TestColorMapRange(t *testing.T) {
	cm := NewColorMap(twoColors())
	c, err := cm.At(1)
	require.NoError(t, err)
	assert.Equal(t, color.Color(red), c)
	cm.SetMin(-10)
	assert.Equal(t, -10.0, cm.Min())
	assert.Equal(t, 10.0, cm.Max())
	c, err = cm.At(1)
	require.NoError(t, err)
	assert.Equal(t, color.Color(blue), c)

	cm.SetAlpha(0.5)
	assert.Equal(t, 0.5, cm.Alpha())
	c, err = cm.At(-5)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x7fff), c.(color.NRGBA64).A)
	assert.Panics(t, func() { cm.SetAlpha(2) })

	cm.SetMax(20)
	assert.Equal(t, 20.0, cm.Max())
	_, err = cm.At(15)
	assert.NoError(t, err)
}

func TestColorMapPalette(t *testing.T) {
	cm := NewColorMap(twoColors())
	colors := cm.Palette(3).Colors()
	require.Len(t, colors, 3)
	assert.Equal(t, []color.Color{red, blue, blue}, colors)
	assert.Len(t, cm.Palette(1).Colors(), 1)
}

func TestAxisScale(t *testing.T) {
	s := AxisScale{norm.New(norm.Log)}
	assert.InDelta(t, 0.5, s.Normalize(1, 100, 10), 1e-12)
	assert.InDelta(t, 0.0, AxisScale{norm.New(norm.Linear)}.Normalize(2, 4, 2), 1e-12)
}

func TestColorBar(t *testing.T) {
	cb, ticker := ColorBar(twoColors(), true)
	assert.Nil(t, ticker)
	assert.Equal(t, 2, cb.Colors)
	assert.True(t, cb.Vertical)

	res := twoColors()
	res.Levels = []float64{0, 5, 10}
	cb, ticker = ColorBar(res, false)
	require.NotNil(t, ticker)
	ticks := ticker.Ticks(0, 10)
	require.Len(t, ticks, 3)
	for i, want := range []string{"0", "5", "10"} {
		if ticks[i].Label != want {
			t.Errorf("tick %d = %q, want %q", i, ticks[i].Label, want)
		}
	}
	assert.Equal(t, 8, cb.Colors)

	res.Ticks = []float64{2.5, 7.5}
	_, ticker = ColorBar(res, false)
	assert.Len(t, ticker.Ticks(0, 10), 2)
}

func TestNewErrorBars(t *testing.T) {
	ind := dist.Indicator{
		Tier:   dist.Bar,
		Center: []float64{2, nan, 4},
		Lower:  []float64{1, 0, 3},
		Upper:  []float64{4, 1, 6},
		Style:  dist.Style{CapWidth: vg.Points(6)},
	}
	ps, err := NewErrorBars([]float64{1, 2, 3}, ind)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	bars := ps[0].(*plotter.YErrorBars)
	require.Len(t, bars.XYs, 2)
	assert.Equal(t, 3.0, bars.XYs[1].X)
	assert.Equal(t, 1.0, bars.YErrors[0].Low)
	assert.Equal(t, 2.0, bars.YErrors[0].High)
	assert.Equal(t, vg.Points(6), bars.CapWidth)

	ind.Style.Marker.Radius = vg.Points(1)
	ps, err = NewErrorBars([]float64{1, 2, 3}, ind)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.IsType(t, &plotter.Scatter{}, ps[1])

	_, err = NewErrorBars([]float64{1, 2}, ind)
	assert.Error(t, err)
}

func TestBand(t *testing.T) {
	ind := dist.Indicator{
		Tier:   dist.Shade,
		Center: []float64{1, 2, 3},
		Lower:  []float64{1, nan, 0},
		Upper:  []float64{2, 3, 5},
		Style:  dist.Style{Alpha: 0.5},
	}
	b, err := NewBand([]float64{0, 1, 2}, ind, blue)
	require.NoError(t, err)
	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, []float64{0, 2, 0, 5}, []float64{xmin, xmax, ymin, ymax})
	assert.Len(t, segments(len(b.X), b.valid), 2)
	assert.Equal(t, uint8(128), b.Fill.(color.NRGBA).A)

	_, err = NewBand([]float64{0}, ind, blue)
	assert.Error(t, err)
}

func TestIndicators(t *testing.T) {
	env := dist.Env{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	sample := data.Matrix([][]float64{{1, 2}, {3, 4}, {5, 100}})
	res, err := dist.ErrorRanges(sample, dist.Options{
		Env:   env,
		Means: true,
		Bar:   dist.Request{Std: dist.Auto()},
		Shade: dist.Request{Std: dist.Auto()},
	})
	require.NoError(t, err)

	// Put the band on top.
	for i := range res.Indicators {
		if res.Indicators[i].Tier == dist.Shade {
			res.Indicators[i].Style.ZOrder = 10
		}
	}
	ps, err := Indicators([]float64{1, 2}, res, red)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.IsType(t, &plotter.YErrorBars{}, ps[0])
	assert.IsType(t, &Band{}, ps[1])
}
