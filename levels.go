package colorscale

import (
	"fmt"
	"math"

	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/data"
	"github.com/vdobler/colorscale/norm"
	"gonum.org/v1/plot"
)

// LevelSpec is either a count N or an explicit List of levels. The zero
// value means neither was given.
type LevelSpec struct {
	N    int
	List []float64
}

// LevelCount requests about n levels.
func LevelCount(n int) LevelSpec { return LevelSpec{N: n} }

// LevelList requests exactly the levels x.
func LevelList(x ...float64) LevelSpec { return LevelSpec{List: x} }

// IsZero reports whether s requests nothing.
func (s LevelSpec) IsZero() bool { return s.N == 0 && s.List == nil }

// IsList reports whether s is an explicit list.
func (s LevelSpec) IsList() bool { return s.List != nil }

func (s LevelSpec) String() string {
	if s.IsList() {
		return fmt.Sprint(s.List)
	}
	return fmt.Sprint(s.N)
}

// LevelOptions controls ResolveLevels.
type LevelOptions struct {
	LimitOptions

	// Levels are the level edges, Values the level centers. A count of
	// Values yields N+1 levels.
	Levels, Values LevelSpec

	// Norm is the requested normalizer, nil for automatic. A
	// *norm.Discrete or a segmented norm.Norm with levels supplies the
	// levels itself.
	Norm norm.Normalizer

	// Locator and Extend are passed on to GenerateLevels.
	Locator plot.Ticker
	Extend  cmap.Extend

	// MinLevels is the minimum number of levels; 0 means 2.
	MinLevels int

	// Nozero removes the zero level.
	Nozero bool

	// SkipAutolev suppresses the generation of levels from a count.
	SkipAutolev bool
}

// NewLevelOptions returns options with automatic limits and levels.
func NewLevelOptions() LevelOptions {
	return LevelOptions{LimitOptions: NewLimitOptions()}
}

// Levels is the result of ResolveLevels.
type Levels struct {
	// Levels are the strictly monotonic level edges in the order given;
	// nil if no levels could be determined.
	Levels []float64

	// Ticks are the level centers if the levels were derived from
	// Values.
	Ticks []float64

	// Vmin and Vmax span the levels; NaN if there are none.
	Vmin, Vmax float64

	// Norm is the requested normalizer or, for unevenly spaced levels
	// without one, a segmented norm.Norm.
	Norm norm.Normalizer

	// Descending is set for decreasing levels.
	Descending bool

	Warnings []string
}

// ResolveLevels determines the level edges from an explicit list, a list
// of centers or a count. The result keeps at least MinLevels levels or
// an error wrapping ErrInvalidInput is returned.
func ResolveLevels(samples []*data.Array, o LevelOptions) (Levels, error) {
	e := newEnv(o.Env)
	lev, err := resolveLevels(e, samples, o)
	lev.Warnings = e.warnings
	return lev, err
}

func resolveLevels(e *env, samples []*data.Array, o LevelOptions) (Levels, error) {
	res := Levels{Vmin: math.NaN(), Vmax: math.NaN(), Norm: o.Norm}
	minLevels := o.MinLevels
	if minLevels <= 0 {
		minLevels = 2
	}
	if o.Positive && o.Negative {
		e.warnf("Incompatible arguments positive=true and negative=true. Using the former.")
		o.Negative = false
	}
	if !o.Levels.IsZero() && !o.Values.IsZero() {
		e.warnf("Incompatible arguments levels=%v and values=%v. Using the former.", o.Levels, o.Values)
		o.Values = LevelSpec{}
	}
	if !o.Values.IsZero() && !o.Values.IsList() {
		o.Levels = LevelCount(o.Values.N + 1)
		o.Values = LevelSpec{}
	}

	boundaries := normLevels(o.Norm)
	var levels []float64
	var err error
	switch {
	case boundaries != nil:
		if !o.Levels.IsZero() || !o.Values.IsZero() {
			e.warnf("Ignoring levels=%v values=%v. Using the levels of norm %v instead.", o.Levels, o.Values, o.Norm)
		}
		levels = boundaries
	case o.Values.IsList():
		values, err := sanitizeLevels("values", o.Values.List, 1)
		if err != nil {
			return res, err
		}
		res.Ticks = values
		levels = valueEdges(values, o.Norm)
	case o.Levels.IsList():
		levels, err = sanitizeLevels("levels", o.Levels.List, minLevels)
		if err != nil {
			return res, err
		}
	case o.SkipAutolev:
		return res, nil
	default:
		ao := AutoOptions{
			LimitOptions: o.LimitOptions,
			Count:        o.Levels.N,
			Locator:      o.Locator,
			Norm:         continuousOf(o.Norm),
			Extend:       o.Extend,
		}
		levels = generateLevels(e, samples, ao)
		if levels == nil {
			return res, nil
		}
	}

	levels = restrictLevels(levels, o.Nozero, o.Positive, o.Negative)
	if len(levels) < minLevels {
		return res, invalidf("%d level(s) %v remain, need at least %d", len(levels), levels, minLevels)
	}
	res.Levels = levels
	switch len(levels) {
	case 0:
	case 1:
		res.Vmin, res.Vmax = levels[0]-1, levels[0]+1
	default:
		r := data.Unset()
		r.Update(levels...)
		res.Vmin, res.Vmax = r.Min, r.Max
		res.Descending = levels[1] < levels[0]
		if !uniform(levels) && o.Norm == nil {
			res.Norm = norm.New(norm.Segmented)
		}
	}
	if seg, ok := res.Norm.(norm.Norm); ok && seg.Kind == norm.Segmented && len(levels) >= 2 {
		seg = seg.WithRange(res.Vmin, res.Vmax)
		seg.Levels = ascending(levels)
		res.Norm = seg
	}
	e.debug("levels", "levels", res.Levels, "vmin", res.Vmin, "vmax", res.Vmax, "norm", res.Norm)
	return res, nil
}

// normLevels returns the levels a boundary normalizer imposes.
func normLevels(n norm.Normalizer) []float64 {
	switch n := n.(type) {
	case *norm.Discrete:
		if n.Descending {
			return reversed(n.Levels)
		}
		return append([]float64(nil), n.Levels...)
	case norm.Norm:
		if n.Kind == norm.Segmented && len(n.Levels) >= 2 {
			return append([]float64(nil), n.Levels...)
		}
	}
	return nil
}

// continuousOf returns the continuous normalizer behind n, linear if
// there is none.
func continuousOf(n norm.Normalizer) norm.Norm {
	switch n := n.(type) {
	case norm.Norm:
		if n.Kind == norm.Auto {
			n.Kind = norm.Linear
		}
		return n
	case *norm.Discrete:
		return n.Norm
	}
	return norm.New(norm.Linear)
}

// valueEdges converts level centers to edges. A requested non-segmented
// normalizer converts in normalized space.
func valueEdges(values []float64, n norm.Normalizer) []float64 {
	if len(values) == 1 {
		return []float64{values[0] - 1, values[0] + 1}
	}
	c, ok := n.(norm.Norm)
	if !ok || c.Kind == norm.Auto || c.Kind == norm.Segmented {
		return CentersToEdges(values)
	}
	r := data.Unset()
	r.Update(values...)
	c = c.WithRange(r.Min, r.Max)
	ys := make([]float64, len(values))
	for i, v := range values {
		ys[i] = c.Normalize(v)
	}
	edges := midpointEdges(ys)
	for i, y := range edges {
		edges[i] = c.Inverse(y)
	}
	return edges
}

// CentersToEdges returns len(values)+1 edges such that each value is
// the midpoint of its two edges. If no monotonic solution exists the
// edges are the midpoints between values, extrapolated at both ends.
// Descending values give descending edges. values must have at least 2
// elements.
func CentersToEdges(values []float64) []float64 {
	descending := values[1] < values[0]
	v := values
	if descending {
		v = reversed(values)
	}
	edges := make([]float64, 1, len(v)+1)
	edges[0] = 1.5*v[0] - 0.5*v[1]
	for _, x := range v {
		edges = append(edges, 2*x-edges[len(edges)-1])
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] < edges[i-1] {
			edges = midpointEdges(v)
			break
		}
	}
	if descending {
		return reversed(edges)
	}
	return edges
}

func midpointEdges(v []float64) []float64 {
	n := len(v)
	edges := make([]float64, n+1)
	for i := 1; i < n; i++ {
		edges[i] = 0.5 * (v[i-1] + v[i])
	}
	edges[0] = v[0] - 0.5*(v[1]-v[0])
	edges[n] = v[n-1] + 0.5*(v[n-1]-v[n-2])
	return edges
}

// sanitizeLevels returns a copy of levels without near-duplicate
// neighbors. The result must be finite, strictly monotonic and have at
// least minSize elements.
func sanitizeLevels(key string, levels []float64, minSize int) ([]float64, error) {
	out := make([]float64, 0, len(levels))
	for _, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, invalidf("%s=%v must be finite", key, levels)
		}
		if n := len(out); n > 0 && nearlyEqual(out[n-1], l) {
			continue
		}
		out = append(out, l)
	}
	if len(out) < minSize {
		return nil, invalidf("%s=%v must have at least %d distinct element(s)", key, levels, minSize)
	}
	if len(out) >= 2 {
		up := out[1] > out[0]
		for i := 1; i < len(out); i++ {
			if (out[i] > out[i-1]) != up {
				return nil, invalidf("%s=%v must be monotonic", key, levels)
			}
		}
	}
	return out, nil
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// restrictLevels drops zero, negative or positive levels. Values within
// 1e-5 of the smallest spacing count as zero.
func restrictLevels(levels []float64, nozero, positive, negative bool) []float64 {
	if !nozero && !positive && !negative {
		return levels
	}
	atol := 1e-8
	if len(levels) > 2 {
		d := math.Inf(1)
		for i := 1; i < len(levels); i++ {
			d = math.Min(d, math.Abs(levels[i]-levels[i-1]))
		}
		atol = 1e-5 * d
	}
	out := make([]float64, 0, len(levels))
	for _, l := range levels {
		zero := math.Abs(l) <= atol
		switch {
		case nozero && zero:
		case positive && l < 0 && !zero:
		case negative && l > 0 && !zero:
		default:
			out = append(out, l)
		}
	}
	return out
}

// uniform reports whether levels are evenly spaced.
func uniform(levels []float64) bool {
	d0 := levels[1] - levels[0]
	for i := 2; i < len(levels); i++ {
		if math.Abs(levels[i]-levels[i-1]-d0) > 1e-8+1e-5*math.Abs(d0) {
			return false
		}
	}
	return true
}

func reversed(x []float64) []float64 {
	r := make([]float64, len(x))
	for i, v := range x {
		r[len(x)-1-i] = v
	}
	return r
}

func ascending(x []float64) []float64 {
	if len(x) >= 2 && x[1] < x[0] {
		return reversed(x)
	}
	return append([]float64(nil), x...)
}
