package colorscale

import (
	"math"
	"sort"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/data"
	"github.com/vdobler/colorscale/norm"
	"gonum.org/v1/plot"
)

// AutoOptions controls GenerateLevels.
type AutoOptions struct {
	LimitOptions

	// Count is the approximate number of levels wanted; 0 means the
	// configured default.
	Count int

	// Locator overrides the tick locator derived from Norm.
	Locator plot.Ticker

	// Norm selects the default locator (log and symlog get their own)
	// and the space in which sparse levels are densified.
	Norm norm.Norm

	// Extend permits one level beyond a fixed limit on the extended side.
	Extend cmap.Extend
}

// NewAutoOptions returns options with automatic limits and a linear
// normalizer.
func NewAutoOptions() AutoOptions {
	return AutoOptions{
		LimitOptions: NewLimitOptions(),
		Norm:         norm.New(norm.Linear),
	}
}

// GenerateLevels returns "nice" level boundaries for the samples. It
// returns nil if the locator cannot produce ticks for the data range,
// e.g. a log locator on non-positive data.
func GenerateLevels(samples []*data.Array, o AutoOptions) []float64 {
	e := newEnv(o.Env)
	return generateLevels(e, samples, o)
}

func generateLevels(e *env, samples []*data.Array, o AutoOptions) []float64 {
	count := o.Count
	if count <= 0 {
		count = e.cfg.Cmap.Levels
	}
	n := o.Norm
	locator := o.Locator
	if locator == nil {
		switch n.Kind {
		case norm.Log:
			locator = plot.LogTicks{}
		case norm.SymLog:
			locator = norm.SymlogTicks{LinThresh: n.LinThresh, Base: n.Base}
		default:
			locator = maxNTicks{Bins: count, Symmetric: o.Symmetric}
		}
	}

	lo := o.LimitOptions
	vcenter, centered := n.Center()
	switch {
	case centered:
		lo.Vcenter = vcenter
	case have(lo.Vcenter):
		vcenter, centered = lo.Vcenter, true
	}
	automin, automax := !have(lo.Vmin), !have(lo.Vmax)
	vmin, vmax := resolveLimits(e, samples, lo)
	if centered {
		vmin, vmax = vmin-vcenter, vmax-vcenter
	}
	levels, ok := tickValues(locator, vmin, vmax)
	if !ok {
		e.debug("autolev", "locator", locator, "vmin", vmin, "vmax", vmax, "levels", nil)
		return nil
	}
	if centered {
		vmin, vmax = vmin+vcenter, vmax+vcenter
		for i := range levels {
			levels[i] += vcenter
		}
	}

	if !o.Symmetric {
		levels = trimLevels(levels, vmin, vmax,
			!automin || o.Extend.HasMin(), !automax || o.Extend.HasMax())
	}

	if nn := count / len(levels); nn >= 2 && len(levels) >= 2 {
		levels = densify(levels, n, nn)
	}
	e.debug("autolev", "count", count, "vmin", vmin, "vmax", vmax, "levels", levels)
	return levels
}

// trimLevels drops candidates far outside [vmin,vmax]. One level beyond
// each limit is kept unless the limit is closed, i.e. fixed by the user or
// extended; a result with fewer than 3 levels reverts the trimming.
func trimLevels(levels []float64, vmin, vmax float64, closedMin, closedMax bool) []float64 {
	i0, i1 := 0, len(levels)
	for i, l := range levels {
		if l < vmin {
			i0 = i
		}
	}
	if levels[i0] < vmin && closedMin {
		i0++
	}
	for i, l := range levels {
		if l > vmax {
			i1 = i + 1
			if closedMax {
				i1--
			}
			break
		}
	}
	if i1-i0 < 3 {
		return levels
	}
	return levels[i0:i1]
}

// densify subdivides each interval of levels into nn parts, evenly in
// the space normalized by n.
func densify(levels []float64, n norm.Norm, nn int) []float64 {
	last := len(levels) - 1
	n = n.WithRange(levels[0], levels[last])
	if n.Kind == norm.Segmented && len(n.Levels) < 2 {
		n.Levels = []float64{levels[0], levels[last]}
	}
	dense := make([]float64, 0, last*nn+1)
	for i := 0; i < last; i++ {
		ys := vec.Linspace(n.Normalize(levels[i]), n.Normalize(levels[i+1]), nn+1)
		dense = append(dense, levels[i])
		for _, y := range ys[1:nn] {
			dense = append(dense, n.Inverse(y))
		}
	}
	return append(dense, levels[last])
}

// tickValues returns the sorted major tick values of loc over
// [min,max]. A locator which panics, overflows to infinite ticks or
// yields no ticks reports false.
func tickValues(loc plot.Ticker, min, max float64) (vals []float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			vals, ok = nil, false
		}
	}()
	if math.IsInf(min, 0) || math.IsInf(max, 0) || math.IsInf(max-min, 0) {
		return nil, false
	}
	_, majorOnly := loc.(plot.LogTicks)
	for _, t := range loc.Ticks(min, max) {
		if math.IsInf(t.Value, 0) {
			return nil, false
		}
		if (majorOnly && t.IsMinor()) || math.IsNaN(t.Value) {
			continue
		}
		vals = append(vals, t.Value)
	}
	if len(vals) == 0 {
		return nil, false
	}
	sort.Float64s(vals)
	uniq := vals[:1]
	for _, v := range vals[1:] {
		if v != uniq[len(uniq)-1] {
			uniq = append(uniq, v)
		}
	}
	return uniq, true
}

// ----------------------------------------------------------------------------
// MaxN locator

// maxNTicks places at most Bins+1 ticks at multiples of a nice step
// covering [min,max]. Symmetric ticks cover [-m,m] with m the larger
// magnitude of the two limits, so 0 is always a tick.
type maxNTicks struct {
	Bins      int
	Symmetric bool
}

var _ plot.Ticker = maxNTicks{}

// Ticks implements plot.Ticker.
func (t maxNTicks) Ticks(min, max float64) []plot.Tick {
	if t.Symmetric {
		m := math.Max(math.Abs(min), math.Abs(max))
		min, max = -m, m
	}
	min, max = nonsingular(min, max)
	steps := stepTicker{min: min, max: max}
	opts := scale.TickOptions{Max: t.Bins + 1}
	level, ok := opts.FindLevel(steps, steps.guess(t.Bins))
	var vals []float64
	if ok {
		vals = steps.TicksAtLevel(level).([]float64)
	} else {
		vals = vec.Linspace(min, max, t.Bins+1)
	}
	ticks := make([]plot.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}

// nonsingular widens an empty or inverted interval.
func nonsingular(min, max float64) (float64, float64) {
	if max < min {
		min, max = max, min
	}
	if max-min > 1e-12*math.Max(math.Abs(min), math.Abs(max)) {
		return min, max
	}
	if min == 0 && max == 0 {
		return -1e-3, 1e-3
	}
	return min - 1e-3*math.Abs(min), max + 1e-3*math.Abs(max)
}

// niceSteps are the step mantissas; level l uses
// niceSteps[l mod 4] * 10^(l div 4).
var niceSteps = [4]float64{1, 2, 2.5, 5}

// stepTicker is the scale.Ticker behind maxNTicks.
type stepTicker struct {
	min, max float64
}

func (s stepTicker) step(level int) (mant float64, exp int) {
	exp = level / 4
	if level%4 < 0 {
		exp--
	}
	return niceSteps[level-4*exp], exp
}

// value returns k steps of the given level, computed as a quotient for
// negative exponents so 0.1 times 3 is exactly 0.3.
func (s stepTicker) value(k float64, level int) float64 {
	mant, exp := s.step(level)
	if exp < 0 {
		return k * mant / math.Pow10(-exp)
	}
	return k * mant * math.Pow10(exp)
}

func (s stepTicker) bounds(level int) (first, last float64) {
	size := s.value(1, level)
	const eps = 1e-10
	return math.Floor(s.min/size + eps), math.Ceil(s.max/size - eps)
}

func (s stepTicker) guess(bins int) int {
	if bins < 1 {
		bins = 1
	}
	return 4 * int(math.Floor(math.Log10((s.max-s.min)/float64(bins))))
}

// CountTicks implements scale.Ticker.
func (s stepTicker) CountTicks(level int) int {
	first, last := s.bounds(level)
	n := last - first + 1
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// TicksAtLevel implements scale.Ticker.
func (s stepTicker) TicksAtLevel(level int) interface{} {
	first, last := s.bounds(level)
	ticks := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		ticks = append(ticks, s.value(k, level))
	}
	return ticks
}
