package dist

import (
	"math"

	"github.com/vdobler/colorscale/data"
	"gonum.org/v1/gonum/stat"
)

// Reduced is the result of Reduce.
type Reduced struct {
	// Center holds the mean or median of each column, NaN for columns
	// without valid values.
	Center []float64

	// Distribution is a copy of the reduced array, nil if nothing was
	// reduced.
	Distribution *data.Array

	Warnings []string
}

// Reduce computes the column means or medians of the 2D array a. If
// neither is requested nothing is reduced and the zero Reduced is
// returned. Requesting both logs a warning and uses the means.
func Reduce(a *data.Array, means, medians bool, env Env) (Reduced, error) {
	e := newEnv(env)
	red, err := reduce(e, a, means, medians)
	red.Warnings = e.warnings
	return red, err
}

func reduce(e *env, a *data.Array, means, medians bool) (Reduced, error) {
	if !means && !medians {
		return Reduced{}, nil
	}
	if means && medians {
		e.warnf("Cannot have both means=true and medians=true. Using former.")
		medians = false
	}
	if a.Rank() != 2 {
		return Reduced{}, invalidf("means or medians require a 2D array, got shape %v", shapeOf(a))
	}
	dist := a.Clone()
	center := make([]float64, dist.Cols())
	for j := range center {
		xs := columnValues(dist, j)
		switch {
		case len(xs) == 0:
			center[j] = math.NaN()
		case medians:
			center[j] = data.Percentile(data.Sorted(xs), 50)
		default:
			center[j] = stat.Mean(xs, nil)
		}
	}
	return Reduced{Center: center, Distribution: dist}, nil
}

// columnValues returns the valid values of column j.
func columnValues(a *data.Array, j int) []float64 {
	col := a.Column(j)
	xs := col[:0]
	for _, x := range col {
		if !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	return xs
}

func shapeOf(a *data.Array) []int {
	if a == nil {
		return nil
	}
	return a.Shape
}
