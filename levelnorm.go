package colorscale

import (
	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/norm"
)

// BuildDiscreteNorm wraps the continuous normalizer n into a discrete
// one for the levels and returns it together with the colormap to use
// with it. Cyclic and qualitative colormaps get unique end colors;
// qualitative colormaps are resized to the number of bins. A single
// level or a boundary normalizer n is returned unchanged.
// The input colormap is never modified.
func BuildDiscreteNorm(levels []float64, n norm.Normalizer, cm *cmap.Colormap, extend cmap.Extend, minLevels int) (norm.Normalizer, *cmap.Colormap, error) {
	if minLevels <= 0 {
		minLevels = 2
	}
	if len(levels) < minLevels {
		return nil, nil, invalidf("levels=%v must have at least %d element(s)", levels, minLevels)
	}

	unique := uniqueOf(extend)
	var step float64
	switch {
	case cm.IsCyclic():
		step, unique = 0.5, norm.UniqueBoth

	case cm.IsQualitative():
		step, unique = 0.5, norm.UniqueBoth
		autoUnder := cm.Under == nil && extend.HasMin()
		autoOver := cm.Over == nil && extend.HasMax()
		ncolors := len(levels) - minLevels + 1
		if autoUnder {
			ncolors++
		}
		if autoOver {
			ncolors++
		}
		colors := cm.Cycle(ncolors)
		under, over := cm.Under, cm.Over
		if autoUnder && len(colors) > 1 {
			under, colors = colors[0], colors[1:]
		}
		if autoOver && len(colors) > 1 {
			over, colors = colors[len(colors)-1], colors[:len(colors)-1]
		}
		cm = cm.WithColors(colors)
		cm.Under, cm.Over = under, over

	default:
		step = 1
		switch {
		case cm.Under != nil && cm.Over != nil:
			unique = norm.UniqueNeither
		case cm.Over != nil:
			// The over bin needs no room on the colormap.
			switch extend {
			case cmap.ExtendBoth:
				unique = norm.UniqueMin
			case cmap.ExtendMax:
				unique = norm.UniqueNeither
			}
		case cm.Under != nil:
			switch extend {
			case cmap.ExtendBoth:
				unique = norm.UniqueMax
			case cmap.ExtendMin:
				unique = norm.UniqueNeither
			}
		}
	}

	if _, ok := n.(*norm.Discrete); ok || len(levels) == 1 {
		return n, cm, nil
	}
	d, err := norm.NewDiscrete(levels, continuousOf(n), unique, step)
	if err != nil {
		return nil, nil, invalidf("%v", err)
	}
	return d, cm, nil
}

func uniqueOf(e cmap.Extend) norm.Unique {
	switch e {
	case cmap.ExtendMin:
		return norm.UniqueMin
	case cmap.ExtendMax:
		return norm.UniqueMax
	case cmap.ExtendBoth:
		return norm.UniqueBoth
	}
	return norm.UniqueNeither
}
