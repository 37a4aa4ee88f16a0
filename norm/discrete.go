package norm

import (
	"fmt"
	"math"
	"sort"
)

// Unique selects which end bins of a Discrete normalizer get a color of
// their own instead of sharing it with the adjacent interior bin.
type Unique int

const (
	UniqueNeither Unique = iota
	UniqueMin
	UniqueMax
	UniqueBoth
)

// String returns the name of u.
func (u Unique) String() string {
	return []string{"neither", "min", "max", "both"}[int(u)]
}

// HasMin reports whether the under-range bin is unique.
func (u Unique) HasMin() bool { return u == UniqueMin || u == UniqueBoth }

// HasMax reports whether the over-range bin is unique.
func (u Unique) HasMax() bool { return u == UniqueMax || u == UniqueBoth }

// endOffset moves the first and last destination slightly outside [0,1]
// so out-of-range data selects the under and over colors.
const endOffset = 1e-10

// Discrete maps values to a finite set of colormap positions, one per
// bin between adjacent Levels plus one under and one over bin. It is
// not invertible.
type Discrete struct {
	// Norm is the continuous normalizer applied before binning. Its range
	// spans the levels.
	Norm Norm

	// Levels are the ascending bin boundaries.
	Levels []float64

	// Descending is set if the levels were given in descending order;
	// the mapping is then flipped.
	Descending bool

	Unique Unique
	Step   float64

	bins []float64 // normalized levels
	dest []float64 // colormap positions, len(Levels)+1
}

// NewDiscrete returns a discrete normalizer for the strictly monotonic
// levels (at least two). The step scales the width of unique end bins
// relative to the adjacent interior bins.
func NewDiscrete(levels []float64, n Norm, unique Unique, step float64) (*Discrete, error) {
	if len(levels) < 2 {
		return nil, fmt.Errorf("norm: need at least 2 levels, got %d", len(levels))
	}
	lev := append([]float64(nil), levels...)
	descending := lev[1] < lev[0]
	if descending {
		for i, j := 0, len(lev)-1; i < j; i, j = i+1, j-1 {
			lev[i], lev[j] = lev[j], lev[i]
		}
	}
	for i := 1; i < len(lev); i++ {
		if !(lev[i] > lev[i-1]) {
			return nil, fmt.Errorf("norm: levels %v are not strictly monotonic", levels)
		}
	}

	vmin, vmax := lev[0], lev[len(lev)-1]
	n = n.WithRange(vmin, vmax)
	if n.Kind == Segmented {
		n.Levels = append([]float64(nil), lev...)
	}

	d := &Discrete{
		Norm:       n,
		Levels:     lev,
		Descending: descending,
		Unique:     unique,
		Step:       step,
		bins:       make([]float64, len(lev)),
	}
	for i, l := range lev {
		d.bins[i] = n.Normalize(l)
	}

	// Bin midpoints; the end bins start out as copies of their neighbors.
	mids := make([]float64, len(lev)+1)
	for i := 1; i < len(lev); i++ {
		mids[i] = 0.5 * (lev[i-1] + lev[i])
	}
	last := len(mids) - 1
	mids[0], mids[last] = mids[1], mids[last-1]
	if unique.HasMin() {
		mids[0] += step * (mids[1] - mids[2])
	}
	if unique.HasMax() {
		mids[last] += step * (mids[last-1] - mids[last-2])
	}

	// Stretch the midpoints to span the full range, separately on both
	// sides of a center.
	mmin, mmax := mids[0], mids[last]
	vc, centered := n.Center()
	for i, m := range mids {
		switch {
		case !centered:
			mids[i] = rescale(m, mmin, mmax, vmin, vmax)
		case m < vc:
			mids[i] = rescale(m, mmin, vc, vmin, vc)
		default:
			mids[i] = rescale(m, vc, mmax, vc, vmax)
		}
	}

	d.dest = make([]float64, len(mids))
	for i, m := range mids {
		d.dest[i] = n.Normalize(m)
	}
	d.dest[0] -= endOffset
	d.dest[last] += endOffset
	return d, nil
}

func rescale(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return 0.5 * (y0 + y1)
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// Bin returns the index of the bin x falls into: 0 is the under-range
// bin, len(Levels) the over-range bin. NaN yields -1.
func (d *Discrete) Bin(x float64) int {
	y := d.Norm.Normalize(x)
	if math.IsNaN(y) {
		return -1
	}
	return sort.SearchFloat64s(d.bins, y)
}

// Normalize maps x to the colormap position of its bin.
func (d *Discrete) Normalize(x float64) float64 {
	i := d.Bin(x)
	if i < 0 {
		return math.NaN()
	}
	y := d.dest[i]
	if d.Descending {
		y = 1 - y
	}
	return y
}

// Range returns the outermost levels.
func (d *Discrete) Range() (vmin, vmax float64) {
	return d.Levels[0], d.Levels[len(d.Levels)-1]
}

// Positions returns the colormap position of every bin, under-range
// bin first.
func (d *Discrete) Positions() []float64 {
	out := append([]float64(nil), d.dest...)
	if d.Descending {
		for i := range out {
			out[i] = 1 - out[i]
		}
	}
	return out
}
