package colorscale

import (
	"image/color"

	"github.com/pkg/errors"
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/internal/kwargs"
	"github.com/vdobler/colorscale/norm"
	"github.com/vdobler/colorscale/rc"
	"gonum.org/v1/plot"
)

// Args is a bag of keyword arguments as collected by a plotting command.
// Keys are matched ignoring case and underscores.
type Args map[string]any

// argAliases maps alternative keywords to the canonical ones.
var argAliases = map[string]string{
	"N":     "levels",
	"c":     "colors",
	"color": "colors",
}

// ParseOptions consumes the known keys of args into a copy of base.
// Shorthands are translated:
//
//	robust:   true, a width like 90 or a percentile pair like [5, 95]
//	extend:   "neither", "min", "max", "both" or a bool
//	levels:   a count or a list, values likewise
//	cmap:     a name or a *cmap.Colormap
//	colors:   color names or a []color.Color
//	norm:     a name or a norm.Normalizer
//
// Conflicting and unknown keys are reported as warnings by Resolve.
func ParseOptions(args Args, base Options) (Options, error) {
	o := base
	b := kwargs.New(args, argAliases)
	o.pending = append(o.pending[:len(o.pending):len(o.pending)], b.Warnings()...)

	if err := parseColormapArgs(b, &o); err != nil {
		return o, errors.Wrap(ErrInvalidInput, err.Error())
	}
	if err := parseLimitArgs(b, &o); err != nil {
		return o, errors.Wrap(ErrInvalidInput, err.Error())
	}
	if err := parseLevelArgs(b, &o); err != nil {
		return o, errors.Wrap(ErrInvalidInput, err.Error())
	}
	o.Unused = append(o.Unused, b.Unused()...)
	return o, nil
}

func parseColormapArgs(b *kwargs.Bag, o *Options) error {
	if v, ok := b.Take("cmap"); ok {
		switch c := v.(type) {
		case string:
			o.CmapName = c
		case *cmap.Colormap:
			o.Cmap = c
		default:
			return errors.Errorf("invalid cmap=%v (%T)", v, v)
		}
	}
	if v, ok := b.Take("colors"); ok {
		colors, err := toColors(v)
		if err != nil {
			return err
		}
		o.Colors = colors
	}
	if v, ok := b.Take("norm"); ok {
		switch n := v.(type) {
		case string:
			nn, err := norm.Parse(n)
			if err != nil {
				return err
			}
			o.Norm = nn
		case norm.Normalizer:
			o.Norm = n
		default:
			return errors.Errorf("invalid norm=%v (%T)", v, v)
		}
	}

	var flags [4]bool
	for i, key := range []string{"sequential", "diverging", "cyclic", "qualitative"} {
		on, err := b.Flag(key)
		if err != nil {
			return err
		}
		flags[i] = on
	}
	kind, warnings := PickKind(Env{Logger: discardLogger}, flags[0], flags[1], flags[2], flags[3])
	if kind != cmap.KindAuto {
		o.Kind = kind
	}
	o.pending = append(o.pending, warnings...)

	if v, ok := b.Take("extend"); ok {
		switch x := v.(type) {
		case bool:
			o.Extend = cmap.ExtendNeither
			if x {
				o.Extend = cmap.ExtendBoth
			}
		case string:
			ext, err := cmap.ParseExtend(x)
			if err != nil {
				return err
			}
			o.Extend = ext
		default:
			return errors.Errorf("invalid extend=%v (%T)", v, v)
		}
	}

	var err error
	if o.Discrete, err = boolOr(b, "discrete", o.Discrete); err != nil {
		return err
	}
	if o.AutoDiverging, err = boolOr(b, "autodiverging", o.AutoDiverging); err != nil {
		return err
	}
	if n, ok, err := b.Int("lut"); err != nil {
		return err
	} else if ok {
		o.N = n
	}
	return nil
}

func parseLimitArgs(b *kwargs.Bag, o *Options) error {
	for _, arg := range []struct {
		key string
		dst *float64
	}{{"vmin", &o.Vmin}, {"vmax", &o.Vmax}, {"vcenter", &o.Vcenter}} {
		x, ok, err := b.Float(arg.key)
		if err != nil {
			return err
		}
		if ok {
			*arg.dst = x
		}
	}
	if v, ok := b.Take("robust"); ok {
		p, err := parseRobust(v, rc.Or(o.Config).Cmap.RobustWidth)
		if err != nil {
			return err
		}
		o.Robust = p
	}
	var err error
	if o.Inbounds, err = boolOr(b, "inbounds", o.Inbounds); err != nil {
		return err
	}
	for _, arg := range []struct {
		key string
		dst *bool
	}{{"negative", &o.Negative}, {"positive", &o.Positive}, {"symmetric", &o.Symmetric}, {"nozero", &o.Nozero}} {
		on, err := b.Flag(arg.key)
		if err != nil {
			return err
		}
		*arg.dst = *arg.dst || on
	}
	return nil
}

func parseLevelArgs(b *kwargs.Bag, o *Options) error {
	for _, arg := range []struct {
		key string
		dst *LevelSpec
	}{{"levels", &o.Levels}, {"values", &o.Values}} {
		v, ok := b.Take(arg.key)
		if !ok {
			continue
		}
		s, err := parseLevelSpec(arg.key, v)
		if err != nil {
			return err
		}
		*arg.dst = s
	}
	if v, ok := b.Take("locator"); ok {
		loc, isTicker := v.(plot.Ticker)
		if !isTicker {
			xs, isList := kwargs.ToFloats(v)
			if !isList {
				return errors.Errorf("invalid locator=%v (%T)", v, v)
			}
			ticks := make(plot.ConstantTicks, len(xs))
			for i, x := range xs {
				ticks[i] = plot.Tick{Value: x}
			}
			loc = ticks
		}
		o.Locator = loc
	}
	if n, ok, err := b.Int("min_levels"); err != nil {
		return err
	} else if ok {
		o.MinLevels = n
	}
	return nil
}

// parseRobust translates the robust shorthands into percentiles.
func parseRobust(v any, width float64) (Percentiles, error) {
	if on, ok := v.(bool); ok {
		if on {
			return RobustWidth(width), nil
		}
		return FullRange, nil
	}
	if w, ok := kwargs.ToFloat(v); ok {
		return RobustWidth(w), nil
	}
	if xs, ok := kwargs.ToFloats(v); ok && len(xs) == 2 {
		return Percentiles{xs[0], xs[1]}, nil
	}
	return Percentiles{}, errors.Errorf("invalid robust=%v: want bool, width or percentile pair", v)
}

// parseLevelSpec accepts a count, including whole floats like 5.0, or
// a list.
func parseLevelSpec(key string, v any) (LevelSpec, error) {
	if n, ok := kwargs.ToInt(v); ok {
		return LevelCount(n), nil
	}
	if xs, ok := kwargs.ToFloats(v); ok {
		return LevelList(xs...), nil
	}
	return LevelSpec{}, errors.Errorf("invalid %s=%v (%T): must be list or integer", key, v, v)
}

func toColors(v any) ([]color.Color, error) {
	switch c := v.(type) {
	case string:
		return cmap.ParseColors(c)
	case []string:
		return cmap.ParseColors(c...)
	case color.Color:
		return []color.Color{c}, nil
	case []color.Color:
		return append([]color.Color(nil), c...), nil
	case []any:
		out := make([]color.Color, len(c))
		for i, e := range c {
			cs, err := toColors(e)
			if err != nil {
				return nil, err
			}
			if len(cs) != 1 {
				return nil, errors.Errorf("invalid color %v", e)
			}
			out[i] = cs[0]
		}
		return out, nil
	}
	return nil, errors.Errorf("invalid colors=%v (%T)", v, v)
}

func boolOr(b *kwargs.Bag, key string, def *bool) (*bool, error) {
	p, err := b.Bool(key)
	if err != nil || p == nil {
		return def, err
	}
	return p, nil
}
