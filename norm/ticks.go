package norm

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// SymlogTicks is a plot.Ticker placing major ticks at zero, at
// ±LinThresh and at ±LinThresh·Base^k outside the linear region. Ticks
// one step beyond [min,max] on either side are included.
type SymlogTicks struct {
	LinThresh float64
	Base      float64
}

// Ticks returns the ticks for [min,max].
func (t SymlogTicks) Ticks(min, max float64) []plot.Tick {
	lt, base := t.LinThresh, t.Base
	if lt <= 0 {
		lt = 1
	}
	if base <= 1 {
		base = 10
	}
	if min > max {
		min, max = max, min
	}

	// Magnitudes lt·base^k up to the first one reaching the largest
	// absolute value.
	limit := math.Max(math.Abs(min), math.Abs(max))
	var mags []float64
	for m := lt; ; m *= base {
		mags = append(mags, m)
		if m >= limit || len(mags) > 64 {
			break
		}
	}

	var vals []float64
	for i := len(mags) - 1; i >= 0; i-- {
		vals = append(vals, -mags[i])
	}
	vals = append(vals, 0)
	vals = append(vals, mags...)

	// Keep one value beyond each end of [min,max].
	lo, hi := 0, len(vals)-1
	for lo+1 < len(vals) && vals[lo+1] <= min {
		lo++
	}
	for hi-1 >= 0 && vals[hi-1] >= max {
		hi--
	}

	ticks := make([]plot.Tick, 0, hi-lo+1)
	for _, v := range vals[lo : hi+1] {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}
	return ticks
}
