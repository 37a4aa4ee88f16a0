package colorscale

import (
	"fmt"
	"math"

	"github.com/vdobler/colorscale/data"
	"github.com/vdobler/colorscale/rc"
)

// ----------------------------------------------------------------------------
// Percentiles

// Percentiles is the pair of percentiles (0 to 100) bounding the part of
// the data used for automatic limits. The zero value selects the
// configured default: the full range, or the central rc RobustWidth
// percent if rc Robust is set.
type Percentiles struct {
	Lo, Hi float64
}

// FullRange uses the literal minimum and maximum.
var FullRange = Percentiles{0, 100}

// RobustWidth returns the central w percent, e.g. 96 for the 2nd to
// 98th percentile.
func RobustWidth(w float64) Percentiles {
	return Percentiles{50 - w/2, 50 + w/2}
}

// IsZero reports whether p selects the configured default.
func (p Percentiles) IsZero() bool {
	return p == Percentiles{}
}

func (p Percentiles) orDefault(cfg *rc.Config) Percentiles {
	switch {
	case !p.IsZero():
		return p
	case cfg.Cmap.Robust:
		return RobustWidth(cfg.Cmap.RobustWidth)
	}
	return FullRange
}

func (p Percentiles) String() string {
	return fmt.Sprintf("(%g,%g)", p.Lo, p.Hi)
}

// ----------------------------------------------------------------------------
// Limits

// LimitOptions controls how the normalization range is determined.
type LimitOptions struct {
	Env

	// Vmin and Vmax fix the respective limit; NaN means automatic.
	Vmin, Vmax float64

	// Vcenter is the reference for Negative, Positive and Symmetric;
	// NaN means 0.
	Vcenter float64

	// Robust selects the data percentiles used for automatic limits.
	Robust Percentiles

	// Inbounds restricts the data to the locked limits of View. nil means
	// the configured default. Coords are paired with the samples by
	// index; ToCenters converts edge coordinates of matrices.
	Inbounds  *bool
	Coords    []data.Coords
	View      data.View
	ToCenters bool

	// Negative forces Vmax to Vcenter, Positive forces Vmin to Vcenter
	// and Symmetric centers the range on Vcenter. Each applies only to
	// automatic limits.
	Negative, Positive, Symmetric bool
}

// NewLimitOptions returns options with automatic limits.
func NewLimitOptions() LimitOptions {
	return LimitOptions{
		Vmin:    math.NaN(),
		Vmax:    math.NaN(),
		Vcenter: math.NaN(),
	}
}

// Limits is the result of ResolveLimits.
type Limits struct {
	Vmin, Vmax float64
	Warnings   []string
}

// ResolveLimits determines vmin and vmax from the samples. Samples of
// rank above 2 and nil samples are skipped. Without usable data the
// automatic limits fall back to 0 and 1.
func ResolveLimits(samples []*data.Array, o LimitOptions) Limits {
	e := newEnv(o.Env)
	vmin, vmax := resolveLimits(e, samples, o)
	return Limits{Vmin: vmin, Vmax: vmax, Warnings: e.warnings}
}

func resolveLimits(e *env, samples []*data.Array, o LimitOptions) (vmin, vmax float64) {
	vmin, vmax = o.Vmin, o.Vmax
	automin, automax := !have(vmin), !have(vmax)
	if !automin && !automax {
		return vmin, vmax
	}
	vcenter := o.Vcenter
	if !have(vcenter) {
		vcenter = 0
	}

	inbounds := e.cfg.Inbounds()
	if o.Inbounds != nil {
		inbounds = *o.Inbounds
	}
	p := o.Robust.orDefault(e.cfg)

	mins, maxs := data.Unset(), data.Unset()
	for i, z := range samples {
		if z == nil || z.Rank() > 2 {
			continue
		}
		if inbounds && i < len(o.Coords) && o.View.Locked() {
			z = o.View.InBounds(z, o.Coords[i], o.ToCenters)
		}
		lo, hi, ok := data.PercentileRange(z.Compressed(), p.Lo, p.Hi)
		if !ok {
			continue
		}
		mins.Update(lo)
		maxs.Update(hi)
	}
	if automin {
		vmin = mins.Min
		if !have(vmin) {
			vmin = 0
		}
	}
	if automax {
		vmax = maxs.Max
		if !have(vmax) {
			vmax = 1
		}
	}
	e.debug("limits", "vmin", vmin, "vmax", vmax, "percentiles", p)

	if o.Negative {
		if automax {
			vmax = vcenter
		} else {
			e.warnf("Incompatible arguments vmax=%g and negative=true. Ignoring the latter.", vmax)
		}
	}
	if o.Positive {
		if automin {
			vmin = vcenter
		} else {
			e.warnf("Incompatible arguments vmin=%g and positive=true. Ignoring the latter.", vmin)
		}
	}
	if o.Symmetric {
		lo, hi := vmin-vcenter, vmax-vcenter
		switch {
		case automin && !automax:
			lo = -hi
		case automax && !automin:
			hi = -lo
		case automin && automax:
			m := math.Max(math.Abs(lo), math.Abs(hi))
			lo, hi = -m, m
		default:
			e.warnf("Incompatible arguments vmin=%g, vmax=%g and symmetric=true. Ignoring the latter.", vmin, vmax)
		}
		vmin, vmax = lo+vcenter, hi+vcenter
	}
	return vmin, vmax
}
