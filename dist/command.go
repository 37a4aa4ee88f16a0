package dist

import (
	"fmt"

	"github.com/vdobler/colorscale/data"
)

// Command is the plotting command the indicators are drawn for. It
// decides which tiers turn on by default for distributions.
type Command int

const (
	LinePlot Command = iota
	ScatterPlot
	BarPlot
	ViolinPlot
)

var commandNames = []string{"line", "scatter", "bar", "violin"}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// defaults returns the bar and box requests used for distributions
// without explicit requests. Violins show the standard deviation box
// and, with extrema, the full range as bars. All other commands show
// the default bars.
func (c Command) defaults(extrema bool) (bar, box Request) {
	if c != ViolinPlot {
		return Request{Std: Auto()}, Request{}
	}
	if extrema {
		bar = Request{Pctile: Auto()}
	}
	return bar, Request{Std: Auto()}
}

// Options are the hints for ErrorRanges.
type Options struct {
	Env

	Command Command

	// Means and Medians reduce a 2D array to the column means or
	// medians.
	Means, Medians bool

	// Extrema lets violin plots show minima and maxima as bars.
	Extrema bool

	Bar, Box, Shade, Fade Request

	// BoxMarker overrides whether boxes get a center marker; violins
	// have one by default.
	BoxMarker *bool

	// Styles replaces DefaultStyles.
	Styles *Styles

	// Unused lists argument names the caller could not consume.
	Unused []string

	pending []string // warnings collected while parsing arguments
}

// Result is the outcome of ErrorRanges.
type Result struct {
	// Center are the positions the indicators are drawn around.
	Center []float64

	// Distribution is the reduced array, nil if a was not reduced.
	Distribution *data.Array

	// Indicators in drawing order: fade, shade, bar and box.
	Indicators []Indicator

	Warnings []string
}

// Get returns the indicator of tier t or nil.
func (r Result) Get(t Tier) *Indicator {
	for i := range r.Indicators {
		if r.Indicators[i].Tier == t {
			return &r.Indicators[i]
		}
	}
	return nil
}

// ErrorRanges reduces a and computes all requested indicators. A 1D
// array is used as the centers directly; a 2D array must be reduced
// with Means or Medians. If a is reduced and neither shading nor fading
// is requested the defaults of the command turn on.
func ErrorRanges(a *data.Array, o Options) (Result, error) {
	e := newEnv(o.Env)
	res, err := errorRanges(e, a, o)
	res.Warnings = e.warnings
	return res, err
}

func errorRanges(e *env, a *data.Array, o Options) (Result, error) {
	var res Result
	for _, w := range o.pending {
		e.warnf("%s", w)
	}
	if len(o.Unused) > 0 {
		e.warnf("Ignoring unused keyword argument(s): %v", o.Unused)
	}
	red, err := reduce(e, a, o.Means, o.Medians)
	if err != nil {
		return res, err
	}
	switch {
	case red.Distribution != nil:
		res.Center, res.Distribution = red.Center, red.Distribution
	case a.Rank() == 1:
		res.Center = a.Column(0)
	case a.Rank() == 0:
		return res, invalidf("missing sample array")
	default:
		return res, invalidf("%dD array needs means or medians", a.Rank())
	}

	bar, box := o.Bar, o.Box
	if res.Distribution != nil && !o.Shade.given() && !o.Fade.given() {
		defBar, defBox := o.Command.defaults(o.Extrema)
		if !bar.given() {
			bar = defBar
		}
		if !box.given() {
			box = defBox
		}
	}

	styles := DefaultStyles(e.cfg)
	if o.Styles != nil {
		styles = *o.Styles
	}
	marker := o.Command == ViolinPlot
	if o.BoxMarker != nil {
		marker = *o.BoxMarker
	}
	styles.withMarker(marker)

	shading, err := shadingOf(e, res.Center, res.Distribution, o.Shade, o.Fade, styles)
	if err != nil {
		return res, err
	}
	bars, err := barsOf(e, res.Center, res.Distribution, bar, box, styles)
	if err != nil {
		return res, err
	}
	res.Indicators = append(shading, bars...)
	return res, nil
}

// Bars computes thin bars and thick boxes around the centers with the
// default styles.
func Bars(center []float64, distribution *data.Array, bar, box Request, env Env) ([]Indicator, []string, error) {
	e := newEnv(env)
	inds, err := barsOf(e, center, distribution, bar, box, DefaultStyles(e.cfg))
	return inds, e.warnings, err
}

// Shading computes the shaded and the faded band around the centers
// with the default styles.
func Shading(center []float64, distribution *data.Array, shade, fade Request, env Env) ([]Indicator, []string, error) {
	e := newEnv(env)
	inds, err := shadingOf(e, center, distribution, shade, fade, DefaultStyles(e.cfg))
	return inds, e.warnings, err
}

func barsOf(e *env, center []float64, distribution *data.Array, bar, box Request, styles Styles) ([]Indicator, error) {
	return tiers(e, center, distribution, styles, []Tier{Bar, Box}, []Request{bar, box})
}

func shadingOf(e *env, center []float64, distribution *data.Array, shade, fade Request, styles Styles) ([]Indicator, error) {
	return tiers(e, center, distribution, styles, []Tier{Fade, Shade}, []Request{fade, shade})
}

func tiers(e *env, center []float64, distribution *data.Array, styles Styles, ts []Tier, reqs []Request) ([]Indicator, error) {
	var out []Indicator
	for i, t := range ts {
		ind, err := rangeOf(e, t, center, distribution, reqs[i])
		if err != nil {
			return nil, err
		}
		if ind == nil {
			continue
		}
		ind.Style = styles[t]
		out = append(out, *ind)
	}
	return out, nil
}
