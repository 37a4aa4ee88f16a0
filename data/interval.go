package data

import (
	"fmt"
	"math"
)

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

// Unset returns the interval [NaN,NaN].
func Unset() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(i.Min) {
			i.Min, i.Max = v, v
			continue
		}
		i.Min = math.Min(i.Min, v)
		i.Max = math.Max(i.Max, v)
	}
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return Have(i.Min) && Have(i.Max)
}

// Contains reports whether x lies in i, irrespective of the order of
// i's edges.
func (i Interval) Contains(x float64) bool {
	lo, hi := math.Min(i.Min, i.Max), math.Max(i.Min, i.Max)
	return x >= lo && x <= hi
}

// Equal reports whether i and j have the same edges, treating NaN as
// equal to NaN.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

// Have reports whether x is set, i.e. not NaN.
func Have(x float64) bool {
	return !math.IsNaN(x)
}
