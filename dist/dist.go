// Package dist reduces distributions to center values and computes the
// error indicators drawn around them: thin bars and thick boxes for
// error bars, shading and fading for error bands.
//
// A distribution is a 2D array whose columns are the sample sets of the
// individual positions. All bounds returned are absolute coordinates.
package dist

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"github.com/vdobler/colorscale/rc"
)

// ErrInvalidInput is wrapped by all errors caused by invalid arguments.
var ErrInvalidInput = errors.New("dist: invalid input")

func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// Env carries the configuration and the logger a call runs with.
type Env struct {
	Config *rc.Config   // nil means rc.Global()
	Logger *slog.Logger // nil means slog.Default()
}

type env struct {
	cfg      *rc.Config
	log      *slog.Logger
	warnings []string
}

func newEnv(e Env) *env {
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}
	return &env{cfg: rc.Or(e.Config), log: log}
}

func (e *env) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.warnings = append(e.warnings, msg)
	e.log.Warn(msg)
}

// Tier is one of the four error indicators.
type Tier int

const (
	Bar   Tier = iota // thin error bars with caps
	Box               // thick error bars
	Shade             // opaque error band
	Fade              // translucent secondary error band
)

var tierNames = []string{"bar", "box", "shade", "fade"}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// defaults returns the standard deviation multiples and the percentiles
// used if the tier is requested without an explicit range.
func (t Tier) defaults() (stds, pctiles [2]float64) {
	switch t {
	case Box:
		return [2]float64{-1, 1}, [2]float64{25, 75}
	case Shade:
		return [2]float64{-2, 2}, [2]float64{10, 90}
	}
	return [2]float64{-3, 3}, [2]float64{0, 100}
}

// Spread selects a standard deviation or percentile range. The zero
// value is unset.
type Spread struct {
	set    bool
	auto   bool
	single bool
	lo, hi float64
}

// Auto requests the default range of the tier.
func Auto() Spread { return Spread{set: true, auto: true} }

// Symmetric requests ±k standard deviations or the central percentile
// range of width k. The sign of k is ignored.
func Symmetric(k float64) Spread {
	k = math.Abs(k)
	return Spread{set: true, single: true, lo: -k, hi: k}
}

// Between requests the standard deviation multiples or percentiles lo
// and hi.
func Between(lo, hi float64) Spread { return Spread{set: true, lo: lo, hi: hi} }

// IsSet reports whether s requests anything.
func (s Spread) IsSet() bool { return s.set }

func (s Spread) String() string {
	switch {
	case !s.set:
		return "unset"
	case s.auto:
		return "auto"
	case s.single:
		return fmt.Sprintf("%g", s.hi)
	}
	return fmt.Sprintf("(%g, %g)", s.lo, s.hi)
}

// stds returns the standard deviation multiples of s.
func (s Spread) stds(def [2]float64) (lo, hi float64) {
	if s.auto {
		return def[0], def[1]
	}
	return s.lo, s.hi
}

// pctiles returns the percentiles of s.
func (s Spread) pctiles(def [2]float64) (lo, hi float64) {
	switch {
	case s.auto:
		return def[0], def[1]
	case s.single:
		return 50 - s.hi/2, 50 + s.hi/2
	}
	return s.lo, s.hi
}

// Request describes what one tier should show. Data, Pctile and Std
// are tried in this order; the zero value shows nothing.
type Request struct {
	Std    Spread
	Pctile Spread

	// Data are explicit errors: N symmetric deviations from the centers
	// or a 2xN array of lower and upper bounds.
	Data [][]float64

	// Label replaces the automatic legend label.
	Label string

	// Hide turns the tier off, including the defaults of the plotting
	// command.
	Hide bool
}

// IsZero reports whether r requests nothing.
func (r Request) IsZero() bool {
	return r.Hide || !r.Std.IsSet() && !r.Pctile.IsSet() && r.Data == nil
}

// given reports whether r was set at all, including Hide.
func (r Request) given() bool {
	return r.Hide || r.Std.IsSet() || r.Pctile.IsSet() || r.Data != nil
}

// Indicator is a computed error indicator. Lower and Upper are absolute
// and NaN for positions without valid data.
type Indicator struct {
	Tier         Tier
	Center       []float64
	Lower, Upper []float64
	Label        string
	Style        Style
}

// Valid reports whether position i has finite bounds.
func (ind *Indicator) Valid(i int) bool {
	return !math.IsNaN(ind.Lower[i]) && !math.IsNaN(ind.Upper[i])
}
