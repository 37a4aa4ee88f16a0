package geom

import (
	"image/color"

	"github.com/pkg/errors"
)

// segments returns the half-open index ranges [i,j) of the maximal runs
// of positions in [0,n) for which valid holds.
func segments(n int, valid func(i int) bool) [][2]int {
	var out [][2]int
	start := -1
	for i := 0; i < n; i++ {
		switch {
		case valid(i) && start < 0:
			start = i
		case !valid(i) && start >= 0:
			out = append(out, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, [2]int{start, n})
	}
	return out
}

// withAlpha scales the opacity of col by alpha.
func withAlpha(col color.Color, alpha float64) color.Color {
	if col == nil || alpha == 1 {
		return col
	}
	r, g, b, a := col.RGBA()
	return color.NRGBA64{
		uint16(r),
		uint16(g),
		uint16(b),
		uint16(float64(a) * alpha),
	}
}

func errLength(positions, bounds int) error {
	return errors.Errorf("geom: %d positions for %d bounds", positions, bounds)
}
