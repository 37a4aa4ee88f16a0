package colorscale

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/data"
	"github.com/vdobler/colorscale/norm"
	"gonum.org/v1/plot"
)

func autoOpts(mod func(*AutoOptions)) AutoOptions {
	o := NewAutoOptions()
	o.Env = quiet()
	if mod != nil {
		mod(&o)
	}
	return o
}

func levelOpts(mod func(*LevelOptions)) LevelOptions {
	o := NewLevelOptions()
	o.Env = quiet()
	if mod != nil {
		mod(&o)
	}
	return o
}

func equalLevels(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9*math.Max(1, math.Abs(b[i])) {
			return false
		}
	}
	return true
}

func TestMaxNTicks(t *testing.T) {
	for i, tc := range []struct {
		bins      int
		symmetric bool
		min, max  float64
		want      []float64
	}{
		{5, false, 1, 88.6, []float64{0, 20, 40, 60, 80, 100}},
		{5, true, -2, 5, []float64{-5, -2.5, 0, 2.5, 5}},
		{10, false, 0, 1, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{4, false, 0, 1, []float64{0, 0.25, 0.5, 0.75, 1}},
		{3, false, -0.3, 0.3, []float64{-0.5, 0, 0.5}},
		{11, false, 1000, 3000, []float64{1000, 1200, 1400, 1600, 1800, 2000, 2200, 2400, 2600, 2800, 3000}},
	} {
		var got []float64
		for _, tick := range (maxNTicks{Bins: tc.bins, Symmetric: tc.symmetric}).Ticks(tc.min, tc.max) {
			got = append(got, tick.Value)
		}
		if !equalLevels(got, tc.want) {
			t.Errorf("%d. maxNTicks{%d, %t}.Ticks(%g, %g) = %v, want %v",
				i, tc.bins, tc.symmetric, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestMaxNTicksDegenerate(t *testing.T) {
	ticks := maxNTicks{Bins: 5}.Ticks(3, 3)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, ticks[0].Value, 3.0)
	assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 3.0)
}

func TestGenerateLevels(t *testing.T) {
	scenario := []*data.Array{data.Matrix([][]float64{{1, 2}, {3, 4}, {5, 100}})}

	got := GenerateLevels(scenario, autoOpts(func(o *AutoOptions) {
		o.Count = 5
		o.Robust = RobustWidth(96)
	}))
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, got)

	// Fixed limits close the range: levels beyond them are dropped.
	got = GenerateLevels(nil, autoOpts(func(o *AutoOptions) {
		o.Count = 5
		o.Vmin, o.Vmax = 1, 88.6
	}))
	assert.Equal(t, []float64{20, 40, 60, 80}, got)

	// Too few remaining levels revert the trimming.
	got = GenerateLevels(nil, autoOpts(func(o *AutoOptions) {
		o.Locator = plot.ConstantTicks{{Value: 0}, {Value: 10}, {Value: 20}, {Value: 30}}
		o.Count = 4
		o.Vmin, o.Vmax = 12, 18
	}))
	assert.Equal(t, []float64{0, 10, 20, 30}, got)

	got = GenerateLevels([]*data.Array{data.Vector(-2, 2, 5)}, autoOpts(func(o *AutoOptions) {
		o.Count = 5
		o.Symmetric = true
	}))
	assert.Contains(t, got, 0.0)
	assert.Equal(t, -got[0], got[len(got)-1])
}

func TestGenerateLevelsDensify(t *testing.T) {
	got := GenerateLevels(nil, autoOpts(func(o *AutoOptions) {
		o.Locator = plot.ConstantTicks{{Value: 0}, {Value: 25}, {Value: 50}, {Value: 75}, {Value: 100}}
		o.Count = 20
		o.Vmin, o.Vmax = 0, 100
	}))
	require.GreaterOrEqual(t, len(got), 15)
	require.Len(t, got, 17)
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, 6.25, got[i]-got[i-1], 1e-9)
	}

	// Log normalizer: subdivisions are even in log space.
	got = GenerateLevels([]*data.Array{data.Vector(1, 1000)}, autoOpts(func(o *AutoOptions) {
		o.Norm = norm.New(norm.Log)
		o.Count = 9
	}))
	require.Len(t, got, 7)
	assert.InDelta(t, math.Sqrt(10), got[1], 1e-9)
}

func TestGenerateLevelsUnsupported(t *testing.T) {
	got := GenerateLevels([]*data.Array{data.Vector(-5, 5)}, autoOpts(func(o *AutoOptions) {
		o.Norm = norm.New(norm.Log)
	}))
	assert.Nil(t, got)
}

func TestGenerateLevelsOverflow(t *testing.T) {
	huge := []*data.Array{data.Vector(-1e308, 1e308)}
	got := GenerateLevels(huge, autoOpts(func(o *AutoOptions) { o.Count = 5 }))
	assert.Nil(t, got)

	res, err := Resolve(huge, resolveOpts(func(o *Options) { o.Levels = LevelCount(5) }))
	require.NoError(t, err)
	assert.Nil(t, res.Levels)
}

func TestCentersToEdges(t *testing.T) {
	for i, tc := range []struct {
		values, want []float64
	}{
		{[]float64{1, 2, 4, 8}, []float64{0.5, 1.5, 2.5, 5.5, 10.5}},
		{[]float64{8, 4, 2, 1}, []float64{10.5, 5.5, 2.5, 1.5, 0.5}},
		{[]float64{0, 1, 2}, []float64{-0.5, 0.5, 1.5, 2.5}},
		{[]float64{1, 10, 11}, []float64{-3.5, 5.5, 10.5, 11.5}},
	} {
		if got := CentersToEdges(tc.values); !equalLevels(got, tc.want) {
			t.Errorf("%d. CentersToEdges(%v) = %v, want %v", i, tc.values, got, tc.want)
		}
	}
}

func TestCentersToEdgesRoundTrip(t *testing.T) {
	for _, values := range [][]float64{
		{1, 2, 4, 8},
		{-3, -1, 0, 0.5, 3},
		{100, 50, 20, 10},
	} {
		edges := CentersToEdges(values)
		require.Len(t, edges, len(values)+1)
		for i, v := range values {
			assert.InDelta(t, v, 0.5*(edges[i]+edges[i+1]), 1e-12, "values %v", values)
		}
	}
}

func TestResolveLevels(t *testing.T) {
	lev, err := ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelList(0, 1, 2, 3)
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, lev.Levels)
	assert.Equal(t, 0.0, lev.Vmin)
	assert.Equal(t, 3.0, lev.Vmax)
	assert.Nil(t, lev.Norm)
	assert.False(t, lev.Descending)

	// Uneven spacing selects the segmented normalizer.
	lev, err = ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelList(1, 2, 5, 10, 20)
	}))
	require.NoError(t, err)
	seg, ok := lev.Norm.(norm.Norm)
	require.True(t, ok)
	assert.Equal(t, norm.Segmented, seg.Kind)
	assert.Equal(t, []float64{1, 2, 5, 10, 20}, seg.Levels)

	// Descending lists keep their order.
	lev, err = ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelList(3, 2, 1, 0)
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1, 0}, lev.Levels)
	assert.True(t, lev.Descending)
	assert.Equal(t, 0.0, lev.Vmin)

	// Near duplicates are dropped.
	lev, err = ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelList(0, 1, 1+1e-15, 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, lev.Levels)
}

func TestResolveLevelsErrors(t *testing.T) {
	for i, tc := range []struct {
		name string
		mod  func(*LevelOptions)
	}{
		{"too few", func(o *LevelOptions) { o.Levels = LevelList(3.0) }},
		{"not monotonic", func(o *LevelOptions) { o.Levels = LevelList(0, 2, 1) }},
		{"not finite", func(o *LevelOptions) { o.Levels = LevelList(0, math.NaN(), 1) }},
		{"filtered away", func(o *LevelOptions) {
			o.Levels = LevelList(-2, -1, 0)
			o.Positive = true
		}},
	} {
		_, err := ResolveLevels(nil, levelOpts(tc.mod))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%d. %s: got error %v, want ErrInvalidInput", i, tc.name, err)
		}
	}

	lev, err := ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelList(3.0)
		o.MinLevels = 1
	}))
	require.NoError(t, err)
	assert.Equal(t, 2.0, lev.Vmin)
	assert.Equal(t, 4.0, lev.Vmax)
}

func TestResolveLevelsValues(t *testing.T) {
	lev, err := ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Values = LevelList(1, 2, 3)
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, lev.Levels)
	assert.Equal(t, []float64{1, 2, 3}, lev.Ticks)

	lev, err = ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Values = LevelList(5)
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, lev.Levels)

	// Centers of a log normalizer are converted in log space.
	lev, err = ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Values = LevelList(1, 10, 100)
		o.Norm = norm.New(norm.Log)
	}))
	require.NoError(t, err)
	require.Len(t, lev.Levels, 4)
	assert.InDelta(t, math.Sqrt(10), lev.Levels[1], 1e-9)
	assert.InDelta(t, math.Sqrt(1000), lev.Levels[2], 1e-9)

	// A count of values is a count of levels plus one.
	lev, err = ResolveLevels([]*data.Array{data.Vector(0, 1)}, levelOpts(func(o *LevelOptions) {
		o.Values = LevelCount(4)
	}))
	require.NoError(t, err)
	assert.True(t, equalLevels(lev.Levels, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}), "got %v", lev.Levels)
}

func TestResolveLevelsConflicts(t *testing.T) {
	lev, err := ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelList(0, 1, 2)
		o.Values = LevelList(5, 6)
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, lev.Levels)
	assert.Len(t, lev.Warnings, 1)

	lev, err = ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelList(-2, -1, 0, 1, 2)
		o.Positive, o.Negative = true, true
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, lev.Levels)
	assert.Len(t, lev.Warnings, 1)

	d, err := norm.NewDiscrete([]float64{0, 5, 10}, norm.New(norm.Linear), norm.UniqueNeither, 1)
	require.NoError(t, err)
	lev, err = ResolveLevels(nil, levelOpts(func(o *LevelOptions) {
		o.Levels = LevelCount(20)
		o.Norm = d
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5, 10}, lev.Levels)
	assert.Len(t, lev.Warnings, 1)
	assert.Same(t, d, lev.Norm)
}

func TestRestrictLevels(t *testing.T) {
	levels := []float64{-1, -0.5, 1e-9, 0.5, 1}
	assert.Equal(t, []float64{-1, -0.5, 0.5, 1}, restrictLevels(levels, true, false, false))
	assert.Equal(t, []float64{1e-9, 0.5, 1}, restrictLevels(levels, false, true, false))
	assert.Equal(t, []float64{-1, -0.5, 1e-9}, restrictLevels(levels, false, false, true))
	assert.Equal(t, levels, restrictLevels(levels, false, false, false))
}

func TestBuildDiscreteNorm(t *testing.T) {
	levels := []float64{0, 1, 2, 3}
	lin := norm.New(norm.Linear)

	viridis, err := cmap.Lookup("viridis")
	require.NoError(t, err)
	n, cm, err := BuildDiscreteNorm(levels, lin, viridis, cmap.ExtendNeither, 2)
	require.NoError(t, err)
	d, ok := n.(*norm.Discrete)
	require.True(t, ok)
	assert.Equal(t, norm.UniqueNeither, d.Unique)
	assert.Equal(t, 1.0, d.Step)
	assert.Same(t, viridis, cm)

	n, _, err = BuildDiscreteNorm(levels, lin, viridis, cmap.ExtendBoth, 2)
	require.NoError(t, err)
	assert.Equal(t, norm.UniqueBoth, n.(*norm.Discrete).Unique)

	withOver := viridis.Copy()
	withOver.Over = viridis.Colors[0]
	n, _, err = BuildDiscreteNorm(levels, lin, withOver, cmap.ExtendBoth, 2)
	require.NoError(t, err)
	assert.Equal(t, norm.UniqueMin, n.(*norm.Discrete).Unique)

	withUnder := viridis.Copy()
	withUnder.Under = viridis.Colors[0]
	n, _, err = BuildDiscreteNorm(levels, lin, withUnder, cmap.ExtendBoth, 2)
	require.NoError(t, err)
	assert.Equal(t, norm.UniqueMax, n.(*norm.Discrete).Unique)
	n, _, err = BuildDiscreteNorm(levels, lin, withUnder, cmap.ExtendMin, 2)
	require.NoError(t, err)
	assert.Equal(t, norm.UniqueNeither, n.(*norm.Discrete).Unique)

	hue, err := cmap.Lookup("hue")
	require.NoError(t, err)
	n, _, err = BuildDiscreteNorm(levels, lin, hue, cmap.ExtendNeither, 2)
	require.NoError(t, err)
	assert.Equal(t, norm.UniqueBoth, n.(*norm.Discrete).Unique)
	assert.Equal(t, 0.5, n.(*norm.Discrete).Step)

	_, _, err = BuildDiscreteNorm([]float64{1}, lin, viridis, cmap.ExtendNeither, 2)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	n, _, err = BuildDiscreteNorm([]float64{1}, lin, viridis, cmap.ExtendNeither, 1)
	require.NoError(t, err)
	assert.IsType(t, norm.Norm{}, n)
}

func TestBuildDiscreteNormQualitative(t *testing.T) {
	tab, err := cmap.Lookup("tab10")
	require.NoError(t, err)
	levels := []float64{0, 1, 2, 3, 4}

	_, cm, err := BuildDiscreteNorm(levels, norm.New(norm.Linear), tab, cmap.ExtendNeither, 2)
	require.NoError(t, err)
	assert.Len(t, cm.Colors, 4)
	assert.Nil(t, cm.Under)
	assert.Len(t, tab.Colors, 10, "input untouched")

	_, cm, err = BuildDiscreteNorm(levels, norm.New(norm.Linear), tab, cmap.ExtendBoth, 2)
	require.NoError(t, err)
	assert.Len(t, cm.Colors, 4)
	assert.Equal(t, tab.Colors[0], cm.Under)
	assert.Equal(t, tab.Colors[5], cm.Over)
	assert.Equal(t, tab.Colors[1], cm.Colors[0])

	// Fewer colors than bins wrap around.
	two := cmap.FromColors("two", tab.Colors[0], tab.Colors[1])
	_, cm, err = BuildDiscreteNorm(levels, norm.New(norm.Linear), two, cmap.ExtendNeither, 2)
	require.NoError(t, err)
	assert.Equal(t, tab.Colors[0], cm.Colors[2])
}
