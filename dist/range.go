package dist

import (
	"fmt"
	"math"

	"github.com/vdobler/colorscale/data"
	"gonum.org/v1/gonum/stat"
)

// Range computes the indicator of one tier around the centers. Standard
// deviation and percentile ranges need the distribution the centers
// were reduced from. Range returns a nil indicator if r requests
// nothing.
func Range(tier Tier, center []float64, distribution *data.Array, r Request, env Env) (*Indicator, []string, error) {
	e := newEnv(env)
	ind, err := rangeOf(e, tier, center, distribution, r)
	if ind != nil {
		ind.Style = DefaultStyles(e.cfg)[tier]
	}
	return ind, e.warnings, err
}

func rangeOf(e *env, tier Tier, center []float64, distribution *data.Array, r Request) (*Indicator, error) {
	if r.IsZero() {
		return nil, nil
	}
	ind := &Indicator{
		Tier:   tier,
		Center: append([]float64(nil), center...),
		Label:  r.Label,
	}
	stds, pctiles := tier.defaults()

	var err error
	switch {
	case r.Data != nil:
		for _, other := range []struct {
			name string
			s    Spread
		}{{"pctiles", r.Pctile}, {"stds", r.Std}} {
			if other.s.IsSet() {
				e.warnf("Got both %sdata and %s%s=%s. Using %sdata.", tier, tier, other.name, other.s, tier)
			}
		}
		ind.Lower, ind.Upper, err = explicitBounds(tier, center, r.Data)
		if ind.Label == "" {
			ind.Label = "uncertainty"
		}

	case r.Pctile.IsSet():
		if r.Std.IsSet() {
			e.warnf("Got both %spctiles=%s and %sstds=%s. Using %spctiles.", tier, r.Pctile, tier, r.Std, tier)
		}
		if err = checkDistribution(tier, "pctiles", center, distribution); err != nil {
			return nil, err
		}
		lo, hi := r.Pctile.pctiles(pctiles)
		if !(0 <= lo && lo <= hi && hi <= 100) {
			return nil, invalidf("%spctiles=%s: percentiles (%g, %g) must satisfy 0 <= lo <= hi <= 100", tier, r.Pctile, lo, hi)
		}
		ind.Lower, ind.Upper = percentileBounds(distribution, lo, hi)
		if ind.Label == "" {
			ind.Label = fmt.Sprintf("%g%% range", hi-lo)
		}

	default:
		if err = checkDistribution(tier, "stds", center, distribution); err != nil {
			return nil, err
		}
		lo, hi := r.Std.stds(stds)
		if lo > hi {
			return nil, invalidf("%sstds=%s: lower multiple %g exceeds upper %g", tier, r.Std, lo, hi)
		}
		ind.Lower, ind.Upper = stdBounds(center, distribution, lo, hi)
		if ind.Label == "" {
			ind.Label = stdLabel(lo, hi)
		}
	}
	if err != nil {
		return nil, err
	}
	return ind, nil
}

func checkDistribution(tier Tier, key string, center []float64, distribution *data.Array) error {
	if distribution == nil {
		return invalidf("%s%s requires a distribution: pass means or medians", tier, key)
	}
	if distribution.Cols() != len(center) {
		return invalidf("%s%s: distribution has %d columns for %d centers", tier, key, distribution.Cols(), len(center))
	}
	return nil
}

// explicitBounds converts symmetric deviations or lower and upper
// bounds to absolute bounds.
func explicitBounds(tier Tier, center []float64, errdata [][]float64) (lower, upper []float64, err error) {
	n := len(center)
	for _, row := range errdata {
		if len(row) != n {
			return nil, nil, invalidf("%sdata rows must have %d elements, got %d", tier, n, len(row))
		}
	}
	lower, upper = make([]float64, n), make([]float64, n)
	switch len(errdata) {
	case 1:
		for i, d := range errdata[0] {
			d = math.Abs(d)
			lower[i], upper[i] = center[i]-d, center[i]+d
		}
	case 2:
		copy(lower, errdata[0])
		copy(upper, errdata[1])
	default:
		return nil, nil, invalidf("%sdata must have 1 or 2 rows, got %d", tier, len(errdata))
	}
	return lower, upper, nil
}

func percentileBounds(distribution *data.Array, lo, hi float64) (lower, upper []float64) {
	n := distribution.Cols()
	lower, upper = make([]float64, n), make([]float64, n)
	for j := 0; j < n; j++ {
		s := data.Sorted(distribution.Column(j))
		lower[j], upper[j] = data.Percentile(s, lo), data.Percentile(s, hi)
	}
	return lower, upper
}

func stdBounds(center []float64, distribution *data.Array, lo, hi float64) (lower, upper []float64) {
	n := len(center)
	lower, upper = make([]float64, n), make([]float64, n)
	for j := range center {
		sd := popStdDev(columnValues(distribution, j))
		lower[j], upper[j] = center[j]+lo*sd, center[j]+hi*sd
	}
	return lower, upper
}

// popStdDev returns the population standard deviation of xs, NaN if xs
// is empty.
func popStdDev(xs []float64) float64 {
	switch len(xs) {
	case 0:
		return math.NaN()
	case 1:
		return 0
	}
	_, v := stat.MeanVariance(xs, nil)
	n := float64(len(xs))
	return math.Sqrt(v * (n - 1) / n)
}

func stdLabel(lo, hi float64) string {
	if lo == -hi {
		return fmt.Sprintf("%gσ range", hi)
	}
	return fmt.Sprintf("%g to %gσ range", lo, hi)
}
