package colorscale

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/data"
	"github.com/vdobler/colorscale/norm"
	"github.com/vdobler/colorscale/rc"
)

// Options are the hints Resolve works from. Use NewOptions to get
// automatic limits.
type Options struct {
	LevelOptions

	// Cmap is an explicit colormap; CmapName names a registered one and
	// is used only if Cmap is nil. Colors builds an ad-hoc qualitative
	// colormap if neither is given.
	Cmap     *cmap.Colormap
	CmapName string
	Colors   []color.Color

	// Kind requests a colormap kind. A Vcenter implies Diverging.
	Kind cmap.Kind

	// Discrete forces discretization on or off. nil lets the hints,
	// the configuration and finally DefaultDiscrete decide.
	Discrete        *bool
	DefaultDiscrete bool

	// Contours marks contour plots which are always discrete.
	Contours bool

	// DefaultCmap replaces the configured colormap of the resolved kind.
	DefaultCmap string

	// AutoDiverging overrides the configured auto-diverging default.
	AutoDiverging *bool

	// N resamples the final colormap to N colors.
	N int

	// Unused lists argument names the caller could not consume.
	Unused []string

	pending []string // warnings collected while parsing arguments
}

// NewOptions returns options with automatic limits, levels and
// colormap.
func NewOptions() Options {
	return Options{LevelOptions: NewLevelOptions()}
}

// Result is the outcome of Resolve.
type Result struct {
	// Cmap is the final colormap with Extend set.
	Cmap *cmap.Colormap

	// Norm is the discrete normalizer if levels were resolved, the
	// continuous one otherwise.
	Norm norm.Normalizer

	// Continuous is the continuous normalizer.
	Continuous norm.Norm

	// Levels are the level edges, nil for continuous color mapping.
	// Ticks are the level centers if they were given.
	Levels, Ticks []float64

	Extend     cmap.Extend
	Vmin, Vmax float64

	// Kind is the resolved colormap kind, KindAuto if none was
	// requested or inferred.
	Kind       cmap.Kind
	Diverging  bool
	Descending bool

	Warnings []string
}

// Resolve determines the colormap, the normalizer and the levels of a
// color-mapped plot of the samples.
//
// Limits and levels are resolved once. Whether the result is diverging
// is decided afterwards from them and never feeds back into the limits.
func Resolve(samples []*data.Array, o Options) (Result, error) {
	e := newEnv(o.Env)
	res, err := resolve(e, samples, o)
	res.Warnings = e.warnings
	return res, err
}

func resolve(e *env, samples []*data.Array, o Options) (Result, error) {
	res := Result{Vmin: math.NaN(), Vmax: math.NaN()}
	for _, w := range o.pending {
		e.warnf("%s", w)
	}

	kind := o.Kind
	if have(o.Vcenter) {
		kind = pickKind(e, kind, cmap.Diverging)
	}

	// Colormap requested by the caller.
	autodiverging := e.cfg.AutoDiverging()
	if o.AutoDiverging != nil {
		autodiverging = *o.AutoDiverging
	}
	cm := o.Cmap
	if cm == nil && o.CmapName != "" {
		c, err := cmap.Lookup(o.CmapName)
		if err != nil {
			return res, errors.Wrapf(ErrInvalidInput, "cmap=%q: %v", o.CmapName, err)
		}
		cm = c
	}
	switch {
	case len(o.Colors) > 0 && cm != nil:
		e.warnf("You specified both cmap=%s and the qualitative colormap colors=%v. Ignoring colors.", cm.Name, o.Colors)
	case len(o.Colors) > 0:
		cm = cmap.FromColors("_no_name", o.Colors...)
	}
	if cm != nil {
		cm = cm.Copy()
		if cm.Kind != cmap.Diverging && !cmap.IsDiverging(cm.Name) {
			autodiverging = false
		}
	}

	// Special cases forcing extend and discrete.
	extend := o.Extend
	if kind == cmap.Cyclic || (cm != nil && cm.IsCyclic()) {
		if extend != cmap.ExtendNeither {
			e.warnf("Cyclic colormaps require extend=neither. Ignoring extend=%s.", extend)
		}
		extend = cmap.ExtendNeither
	}
	discrete := o.Discrete
	if kind == cmap.Qualitative || (cm != nil && cm.IsQualitative()) {
		if discrete != nil && !*discrete {
			e.warnf("Qualitative colormaps require discrete=true. Ignoring discrete=false.")
		}
		discrete = boolPtr(true)
	}
	if o.Contours {
		if discrete != nil && !*discrete {
			e.warnf("Contoured plots require discrete=true. Ignoring discrete=false.")
		}
		discrete = boolPtr(true)
	}
	if discrete == nil && o.hasLevelHints() {
		discrete = boolPtr(true)
	}
	if discrete == nil {
		discrete = e.cfg.Cmap.Discrete
	}
	if discrete == nil {
		discrete = &o.DefaultDiscrete
	}
	e.debug("cmap", "kind", kind, "discrete", *discrete, "autodiverging", autodiverging, "extend", extend)

	// Limits or levels.
	vmin, vmax := o.Vmin, o.Vmax
	n := o.Norm
	isdiverging := false
	var lev Levels
	if !*discrete && !o.SkipAutolev {
		vmin, vmax = resolveLimits(e, samples, o.LimitOptions)
		if autodiverging && have(vmin) && have(vmax) && math.Abs(sign(vmax)-sign(vmin)) == 2 {
			isdiverging = true
		}
	}
	if *discrete {
		lo := o.LevelOptions
		lo.Extend = extend
		var err error
		lev, err = resolveLevels(e, samples, lo)
		if err != nil {
			return res, err
		}
		switch {
		case lev.Levels != nil:
			vmin, vmax, n = lev.Vmin, lev.Vmax, lev.Norm
		case !o.SkipAutolev:
			// No levels for this data; fall back to continuous limits.
			vmin, vmax = resolveLimits(e, samples, o.LimitOptions)
		}
		if autodiverging && lev.Levels != nil && signGroups(lev.Levels) > 1 {
			isdiverging = true
		}
	}
	if kind == cmap.KindAuto && isdiverging {
		kind = cmap.Diverging
	}

	// Continuous normalizer.
	cont := continuousNorm(n, kind == cmap.Diverging, o.Vcenter, vmin, vmax)
	if autodiverging && cont.Kind == norm.Diverging {
		isdiverging = true
	}
	if kind == cmap.KindAuto && isdiverging {
		kind = cmap.Diverging
	}

	// Final colormap.
	if cm == nil {
		name := o.DefaultCmap
		if name == "" {
			name = defaultCmapName(e.cfg, kind)
		}
		c, err := cmap.Lookup(name)
		if err != nil {
			return res, errors.Wrapf(ErrInvalidInput, "default colormap %q: %v", name, err)
		}
		cm = c
	}

	res.Continuous = cont
	res.Norm = cont
	if d, ok := n.(*norm.Discrete); ok {
		res.Norm = d
		res.Continuous = d.Norm
	}
	if lev.Levels != nil {
		dn, c, err := BuildDiscreteNorm(lev.Levels, res.Norm, cm, extend, o.MinLevels)
		if err != nil {
			return res, err
		}
		res.Norm, cm = dn, c
	}
	if o.N > 0 {
		cm = cm.Resample(o.N)
	}
	if len(o.Unused) > 0 {
		e.warnf("Ignoring unused keyword argument(s): %v", o.Unused)
	}
	cm.Extend = extend

	res.Cmap = cm
	res.Levels = lev.Levels
	res.Ticks = lev.Ticks
	res.Descending = lev.Descending
	res.Extend = extend
	res.Vmin, res.Vmax = vmin, vmax
	res.Kind = kind
	res.Diverging = kind == cmap.Diverging
	e.debug("resolve", "cmap", res.Cmap, "norm", res.Norm, "levels", res.Levels, "extend", extend)
	return res, nil
}

func defaultCmapName(cfg *rc.Config, kind cmap.Kind) string {
	switch kind {
	case cmap.Sequential:
		return cfg.Cmap.Sequential
	case cmap.Diverging:
		return cfg.Cmap.Diverging
	case cmap.Cyclic:
		return cfg.Cmap.Cyclic
	case cmap.Qualitative:
		return cfg.Cmap.Qualitative
	}
	return cfg.Image.Cmap
}

// hasLevelHints reports whether any argument only makes sense for
// discrete levels was given.
func (o Options) hasLevelHints() bool {
	return !o.Levels.IsZero() || !o.Values.IsZero() || o.Locator != nil ||
		o.Negative || o.Positive || o.Symmetric
}

// continuousNorm returns the continuous normalizer for [vmin,vmax]
// derived from the requested one.
func continuousNorm(n norm.Normalizer, diverging bool, vcenter, vmin, vmax float64) norm.Norm {
	var c norm.Norm
	switch n := n.(type) {
	case norm.Norm:
		c = n.Clone()
		if c.Kind == norm.Auto {
			c.Kind = norm.Linear
			if diverging {
				c.Kind = norm.Diverging
			}
		}
	case *norm.Discrete:
		return n.Norm.Clone()
	default:
		c = norm.New(norm.Linear)
		if diverging {
			c = norm.New(norm.Diverging)
		}
	}
	switch c.Kind {
	case norm.Diverging, norm.Segmented:
		if have(vcenter) {
			c.Vcenter = vcenter
		} else if diverging && !have(c.Vcenter) {
			c.Vcenter = 0
		}
	}
	return c.WithRange(vmin, vmax)
}

// PickKind returns the single colormap kind selected by the flags. If
// more than one is set a warning is logged and the first one in the
// order sequential, diverging, cyclic, qualitative wins.
func PickKind(env Env, sequential, diverging, cyclic, qualitative bool) (cmap.Kind, []string) {
	e := newEnv(env)
	var kinds []cmap.Kind
	for i, on := range []bool{sequential, diverging, cyclic, qualitative} {
		if on {
			kinds = append(kinds, cmap.Sequential+cmap.Kind(i))
		}
	}
	return pickKind(e, kinds...), e.warnings
}

func pickKind(e *env, kinds ...cmap.Kind) cmap.Kind {
	pick := cmap.KindAuto
	var requested []cmap.Kind
	for _, k := range kinds {
		if k != cmap.KindAuto {
			requested = append(requested, k)
			if pick == cmap.KindAuto || k < pick {
				pick = k
			}
		}
	}
	if len(requested) > 1 && !allSame(requested) {
		e.warnf("Conflicting colormap kinds %v. Using %s.", requested, pick)
	}
	return pick
}

func allSame(kinds []cmap.Kind) bool {
	for _, k := range kinds[1:] {
		if k != kinds[0] {
			return false
		}
	}
	return true
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// signGroups counts the sign groups (negative, zero, positive) of levels
// with more than one member.
func signGroups(levels []float64) int {
	var count [3]int
	for _, l := range levels {
		count[int(sign(l))+1]++
	}
	groups := 0
	for _, c := range count {
		if c > 1 {
			groups++
		}
	}
	return groups
}
