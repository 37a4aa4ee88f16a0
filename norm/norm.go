// Package norm provides the normalizers which map data values onto the
// unit interval [0,1] that indexes a colormap.
//
// Continuous normalizers
//
// A Norm is selected by its Kind:
//   - Linear      maps [Vmin,Vmax] linearly to [0,1]
//   - Log         maps log(x) linearly, non-positive values yield NaN
//   - SymLog      linear within ±LinThresh, logarithmic outside
//   - Power       applies x^Gamma after the linear mapping
//   - Diverging   maps Vcenter to 0.5, optionally with equal scaling
//                 on both sides (Fair)
//   - Segmented   maps the i-th of n Levels to i/(n-1), piecewise linear
//
// Values outside [Vmin,Vmax] are mapped to values < 0 or > 1 except for
// Segmented which clamps.
//
// Discrete normalizers
//
// A Discrete normalizer wraps a Norm and a list of level boundaries and
// maps values to one color per bin between adjacent levels.
package norm

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// A Normalizer maps data values onto the unit interval.
type Normalizer interface {
	// Normalize maps x to [0,1]; out-of-range values may map outside.
	Normalize(x float64) float64

	// Range returns the data range mapped onto [0,1].
	Range() (vmin, vmax float64)
}

// ----------------------------------------------------------------------------
// Kind

// Kind selects one of the handful known normalizer types.
type Kind int

const (
	Auto Kind = iota // Not determined yet, behaves like Linear.
	Linear
	Log
	SymLog
	Power
	Diverging
	Segmented
)

var kindNames = []string{"auto", "linear", "log", "symlog", "power", "diverging", "segmented"}

// String returns the name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a normalizer name to a Kind. The empty string yields
// Auto.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "linear", "lin", "normalize":
		return Linear, nil
	case "log", "lognorm":
		return Log, nil
	case "symlog", "symlognorm":
		return SymLog, nil
	case "power", "pow", "powernorm":
		return Power, nil
	case "div", "diverging", "divergingnorm":
		return Diverging, nil
	case "segmented", "segments", "segmentednorm":
		return Segmented, nil
	}
	return Auto, fmt.Errorf("norm: unknown normalizer %q", name)
}

// ----------------------------------------------------------------------------
// Norm

// Norm is a continuous normalizer. The zero value is unusable: use New.
type Norm struct {
	Kind Kind

	// Vmin and Vmax are mapped to 0 and 1; NaN means not yet known.
	Vmin, Vmax float64

	// Vcenter is mapped to 0.5 by Diverging (where NaN means 0) and, if
	// set, by Segmented.
	Vcenter float64

	// Fair makes Diverging use the same scale on both sides of Vcenter.
	Fair bool

	LinThresh float64 // SymLog: half width of the linear region
	LinScale  float64 // SymLog: size of the linear region in decades
	Base      float64 // SymLog: logarithm base

	Gamma float64 // Power exponent

	Levels []float64 // Segmented: ascending boundaries
}

// New returns a normalizer of kind k with an unset range and the usual
// parameters.
func New(k Kind) Norm {
	return Norm{
		Kind:      k,
		Vmin:      math.NaN(),
		Vmax:      math.NaN(),
		Vcenter:   math.NaN(),
		Fair:      true,
		LinThresh: 1,
		LinScale:  1,
		Base:      10,
		Gamma:     1,
	}
}

// Parse returns New applied to the named kind.
func Parse(name string) (Norm, error) {
	k, err := ParseKind(name)
	if err != nil {
		return Norm{}, err
	}
	return New(k), nil
}

// WithRange returns a copy of n mapping [vmin,vmax] to [0,1].
func (n Norm) WithRange(vmin, vmax float64) Norm {
	m := n.Clone()
	m.Vmin, m.Vmax = vmin, vmax
	return m
}

// Clone returns a deep copy of n.
func (n Norm) Clone() Norm {
	if n.Levels != nil {
		n.Levels = append([]float64(nil), n.Levels...)
	}
	return n
}

// Range returns the data range of n.
func (n Norm) Range() (vmin, vmax float64) {
	if n.Kind == Segmented && len(n.Levels) >= 2 {
		return n.Levels[0], n.Levels[len(n.Levels)-1]
	}
	return n.Vmin, n.Vmax
}

// Center returns the value n maps to 0.5 if n has one.
func (n Norm) Center() (float64, bool) {
	switch n.Kind {
	case Diverging:
		if math.IsNaN(n.Vcenter) {
			return 0, true
		}
		return n.Vcenter, true
	case Segmented:
		return n.Vcenter, !math.IsNaN(n.Vcenter)
	}
	return math.NaN(), false
}

func (n Norm) String() string {
	return fmt.Sprintf("%s[%g:%g]", n.Kind, n.Vmin, n.Vmax)
}

// Normalize maps x to [0,1]. It returns NaN if x is NaN, the range of n
// is unset or x is outside the domain of n.
func (n Norm) Normalize(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if n.Kind == Segmented && len(n.Levels) >= 2 {
		return n.segmented(x)
	}

	vmin, vmax := n.Vmin, n.Vmax
	if math.IsNaN(vmin) || math.IsNaN(vmax) {
		return math.NaN()
	}

	switch n.Kind {
	case Auto, Linear, Segmented:
		if vmin == vmax {
			return 0
		}
		return scale.Linear{Min: vmin, Max: vmax}.Map(x)
	case Log:
		if x <= 0 || vmin <= 0 || vmax <= 0 {
			return math.NaN()
		}
		if vmin == vmax {
			return 0
		}
		return (math.Log(x) - math.Log(vmin)) / (math.Log(vmax) - math.Log(vmin))
	case SymLog:
		lo, hi := n.symlog(vmin), n.symlog(vmax)
		if lo == hi {
			return 0
		}
		return (n.symlog(x) - lo) / (hi - lo)
	case Power:
		if vmin == vmax {
			return 0
		}
		return signedPow((x-vmin)/(vmax-vmin), n.gamma())
	case Diverging:
		return n.diverging(x)
	}
	panic(n.Kind)
}

// Inverse maps y from [0,1] back to data space.
func (n Norm) Inverse(y float64) float64 {
	if math.IsNaN(y) {
		return math.NaN()
	}
	if n.Kind == Segmented && len(n.Levels) >= 2 {
		return n.segmentedInverse(y)
	}

	vmin, vmax := n.Vmin, n.Vmax
	if math.IsNaN(vmin) || math.IsNaN(vmax) {
		return math.NaN()
	}

	switch n.Kind {
	case Auto, Linear, Segmented:
		return scale.Linear{Min: vmin, Max: vmax}.Unmap(y)
	case Log:
		if vmin <= 0 || vmax <= 0 {
			return math.NaN()
		}
		return vmin * math.Pow(vmax/vmin, y)
	case SymLog:
		lo, hi := n.symlog(vmin), n.symlog(vmax)
		return n.symexp(lo + y*(hi-lo))
	case Power:
		return vmin + (vmax-vmin)*signedPow(y, 1/n.gamma())
	case Diverging:
		return n.divergingInverse(y)
	}
	panic(n.Kind)
}

func (n Norm) gamma() float64 {
	if n.Gamma <= 0 {
		return 1
	}
	return n.Gamma
}

func signedPow(t, g float64) float64 {
	if t < 0 {
		return -math.Pow(-t, g)
	}
	return math.Pow(t, g)
}

// symlog is linear with slope LinScale/LinThresh inside ±LinThresh and
// continues logarithmically outside.
func (n Norm) symlog(x float64) float64 {
	lt, ls, base := n.symParams()
	ax, sign := math.Abs(x), 1.0
	if x < 0 {
		sign = -1
	}
	if ax <= lt {
		return sign * ls * ax / lt
	}
	return sign * (ls + math.Log(ax/lt)/math.Log(base))
}

func (n Norm) symexp(y float64) float64 {
	lt, ls, base := n.symParams()
	ay, sign := math.Abs(y), 1.0
	if y < 0 {
		sign = -1
	}
	if ay <= ls {
		return sign * ay * lt / ls
	}
	return sign * lt * math.Pow(base, ay-ls)
}

func (n Norm) symParams() (linthresh, linscale, base float64) {
	linthresh, linscale, base = n.LinThresh, n.LinScale, n.Base
	if linthresh <= 0 {
		linthresh = 1
	}
	if linscale <= 0 {
		linscale = 1
	}
	if base <= 1 {
		base = 10
	}
	return linthresh, linscale, base
}

// divergingScales returns the data widths mapped onto [0,0.5] and
// [0.5,1].
func (n Norm) divergingScales() (vc, below, above float64) {
	vc, _ = n.Center()
	below, above = vc-n.Vmin, n.Vmax-vc
	if n.Fair {
		off := math.Max(math.Abs(below), math.Abs(above))
		return vc, off, off
	}
	// A degenerate side borrows the scale of the other one.
	if below <= 0 {
		below = above
	}
	if above <= 0 {
		above = below
	}
	return vc, below, above
}

func (n Norm) diverging(x float64) float64 {
	vc, below, above := n.divergingScales()
	switch {
	case x < vc && below > 0:
		return 0.5 - 0.5*(vc-x)/below
	case x >= vc && above > 0:
		return 0.5 + 0.5*(x-vc)/above
	}
	return 0.5
}

func (n Norm) divergingInverse(y float64) float64 {
	vc, below, above := n.divergingScales()
	if y < 0.5 {
		return vc - (0.5-y)*2*below
	}
	return vc + (y-0.5)*2*above
}

func (n Norm) segmented(x float64) float64 {
	y := interp(x, n.Levels, unitSpace(len(n.Levels)))
	if yc, ok := n.segmentedCenter(); ok {
		if y < yc {
			return 0.5 * y / yc
		}
		return 0.5 + 0.5*(y-yc)/(1-yc)
	}
	return y
}

func (n Norm) segmentedInverse(y float64) float64 {
	if yc, ok := n.segmentedCenter(); ok {
		if y < 0.5 {
			y = 2 * y * yc
		} else {
			y = yc + 2*(y-0.5)*(1-yc)
		}
	}
	return interp(y, unitSpace(len(n.Levels)), n.Levels)
}

// segmentedCenter returns the index-space position of Vcenter if it
// lies strictly inside the levels.
func (n Norm) segmentedCenter() (float64, bool) {
	if math.IsNaN(n.Vcenter) {
		return 0, false
	}
	yc := interp(n.Vcenter, n.Levels, unitSpace(len(n.Levels)))
	return yc, yc > 0 && yc < 1
}

func unitSpace(n int) []float64 {
	return vec.Linspace(0, 1, n)
}

// interp linearly interpolates x on the ascending points xp with values
// fp, clamping outside of xp.
func interp(x float64, xp, fp []float64) float64 {
	last := len(xp) - 1
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[last] {
		return fp[last]
	}
	i := 1
	for i < last && xp[i] < x {
		i++
	}
	x0, x1 := xp[i-1], xp[i]
	if x1 == x0 {
		return fp[i]
	}
	return fp[i-1] + (x-x0)/(x1-x0)*(fp[i]-fp[i-1])
}
