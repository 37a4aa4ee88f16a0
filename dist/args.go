package dist

import (
	"github.com/pkg/errors"
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/internal/kwargs"
	"gonum.org/v1/plot/vg"
)

var argAliases = map[string]string{
	"mean":        "means",
	"median":      "medians",
	"showmeans":   "means",
	"showmedians": "medians",
	"showextrema": "extrema",
	"boxm":        "boxmarker",
	"bars":        "barstds",
	"barstd":      "barstds",
	"barpctile":   "barpctiles",
	"boxes":       "boxstds",
	"boxstd":      "boxstds",
	"boxpctile":   "boxpctiles",
	"shade":       "shadestds",
	"shadestd":    "shadestds",
	"shadepctile": "shadepctiles",
	"fade":        "fadestds",
	"fadestd":     "fadestds",
	"fadepctile":  "fadepctiles",
}

// styleAliases are the short forms of the per tier style keys.
var styleAliases = map[string]string{
	"c":  "color",
	"lw": "linewidth",
	"a":  "alpha",
	"z":  "zorder",
}

func init() {
	for _, t := range []Tier{Bar, Box, Shade, Fade} {
		for short, long := range styleAliases {
			argAliases[t.String()+short] = t.String() + long
		}
	}
}

// ParseArgs consumes the error indicator keys of args into a copy of
// base. Per tier (bar, box, shade, fade) the keys are
//
//	<tier>stds:    true, a multiple k for ±k or a pair of multiples
//	<tier>pctiles: true, a central width like 90 or a percentile pair
//	<tier>data:    symmetric deviations or lower and upper bounds
//	<tier>label, <tier>color, <tier>linewidth, <tier>alpha, <tier>zorder
//
// together with the shorthands bars, boxes, shade and fade for the
// standard deviation keys. False hides a tier. Conflicting and unknown
// keys are reported as warnings by ErrorRanges.
func ParseArgs(args map[string]any, base Options) (Options, error) {
	o := base
	b := kwargs.New(args, argAliases)
	o.pending = append(o.pending[:len(o.pending):len(o.pending)], b.Warnings()...)

	for _, arg := range []struct {
		key string
		dst *bool
	}{{"means", &o.Means}, {"medians", &o.Medians}, {"extrema", &o.Extrema}} {
		on, err := b.Flag(arg.key)
		if err != nil {
			return o, errors.Wrap(ErrInvalidInput, err.Error())
		}
		*arg.dst = *arg.dst || on
	}
	if p, err := b.Bool("boxmarker"); err != nil {
		return o, errors.Wrap(ErrInvalidInput, err.Error())
	} else if p != nil {
		o.BoxMarker = p
	}

	styles := DefaultStyles(o.Config)
	if o.Styles != nil {
		styles = *o.Styles
	}
	styled := false
	for _, t := range []struct {
		tier Tier
		dst  *Request
	}{{Bar, &o.Bar}, {Box, &o.Box}, {Shade, &o.Shade}, {Fade, &o.Fade}} {
		if err := parseRequest(b, t.tier, t.dst); err != nil {
			return o, errors.Wrap(ErrInvalidInput, err.Error())
		}
		changed, err := parseStyle(b, t.tier, &styles[t.tier])
		if err != nil {
			return o, errors.Wrap(ErrInvalidInput, err.Error())
		}
		styled = styled || changed
	}
	if x, ok, err := b.Float("capsize"); err != nil {
		return o, errors.Wrap(ErrInvalidInput, err.Error())
	} else if ok {
		styles[Bar].CapWidth = 2 * vg.Points(x)
		styled = true
	}
	if styled {
		o.Styles = &styles
	}
	o.Unused = append(o.Unused, b.Unused()...)
	return o, nil
}

// parseRequest reads the range keys of one tier into r.
func parseRequest(b *kwargs.Bag, t Tier, r *Request) error {
	hide := false
	for _, arg := range []struct {
		key string
		dst *Spread
	}{{"stds", &r.Std}, {"pctiles", &r.Pctile}} {
		v, ok := b.Take(t.String() + arg.key)
		if !ok {
			continue
		}
		if on, isBool := v.(bool); isBool && !on {
			hide = true
			continue
		}
		s, err := parseSpread(v)
		if err != nil {
			return errors.Wrapf(err, "%s%s", t, arg.key)
		}
		*arg.dst = s
	}
	if v, ok := b.Take(t.String() + "data"); ok {
		d, err := parseErrData(v)
		if err != nil {
			return errors.Wrapf(err, "%sdata", t)
		}
		r.Data = d
	}
	label, _, err := b.String(t.String() + "label")
	if err != nil {
		return err
	}
	if label != "" {
		r.Label = label
	}
	if hide && !r.Std.IsSet() && !r.Pctile.IsSet() && r.Data == nil {
		r.Hide = true
	}
	return nil
}

func parseSpread(v any) (Spread, error) {
	if on, ok := v.(bool); ok && on {
		return Auto(), nil
	}
	if k, ok := kwargs.ToFloat(v); ok {
		return Symmetric(k), nil
	}
	if xs, ok := kwargs.ToFloats(v); ok && len(xs) == 2 {
		return Between(xs[0], xs[1]), nil
	}
	return Spread{}, errors.Errorf("invalid value %v (%T): want true, a number or a pair", v, v)
}

func parseErrData(v any) ([][]float64, error) {
	switch d := v.(type) {
	case [][]float64:
		out := make([][]float64, len(d))
		for i, row := range d {
			out[i] = append([]float64(nil), row...)
		}
		return out, nil
	case []any:
		if len(d) > 0 {
			if _, nested := kwargs.ToFloats(d[0]); nested {
				out := make([][]float64, len(d))
				for i, row := range d {
					xs, ok := kwargs.ToFloats(row)
					if !ok {
						return nil, errors.Errorf("invalid row %v", row)
					}
					out[i] = xs
				}
				return out, nil
			}
		}
	}
	if xs, ok := kwargs.ToFloats(v); ok {
		return [][]float64{xs}, nil
	}
	return nil, errors.Errorf("invalid value %v (%T): want deviations or lower and upper bounds", v, v)
}

// parseStyle reads the style keys of one tier into s.
func parseStyle(b *kwargs.Bag, t Tier, s *Style) (bool, error) {
	changed := false
	name, _, err := b.String(t.String() + "color")
	if err != nil {
		return false, err
	}
	if name != "" {
		c, err := cmap.ParseColor(name)
		if err != nil {
			return false, err
		}
		if t == Shade || t == Fade {
			s.Fill = c
		} else {
			s.Line.Color = c
		}
		changed = true
	}
	for _, arg := range []struct {
		key   string
		apply func(float64)
	}{
		{"linewidth", func(x float64) { s.Line.Width = vg.Points(x) }},
		{"alpha", func(x float64) { s.Alpha = x }},
		{"zorder", func(x float64) { s.ZOrder = x }},
	} {
		x, ok, err := b.Float(t.String() + arg.key)
		if err != nil {
			return false, err
		}
		if ok {
			arg.apply(x)
			changed = true
		}
	}
	return changed, nil
}
