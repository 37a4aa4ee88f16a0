package data

import (
	"math"
	"sort"
)

// Sorted returns the non-NaN values of xs in ascending order. The input
// is not modified.
func Sorted(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	sort.Float64s(out)
	return out
}

// Percentile returns the p-th percentile (0 <= p <= 100) of the ascending
// slice sorted. It interpolates linearly between the neighbours of the
// fractional index p/100*(n-1), so Percentile(s, 50) is the median and
// symmetric data yields symmetric percentiles. Percentiles at or beyond
// the ends yield the exact minimum or maximum. An empty slice yields NaN.
func Percentile(sorted []float64, p float64) float64 {
	switch {
	case len(sorted) == 0:
		return math.NaN()
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[len(sorted)-1]
	}
	k, frac := math.Modf(p / 100 * float64(len(sorted)-1))
	i := int(k)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// PercentileRange returns the lo-th and hi-th percentile of the non-NaN
// values of xs. The boolean is false if xs holds no such values.
func PercentileRange(xs []float64, lo, hi float64) (min, max float64, ok bool) {
	s := Sorted(xs)
	if len(s) == 0 {
		return math.NaN(), math.NaN(), false
	}
	return Percentile(s, lo), Percentile(s, hi), true
}
