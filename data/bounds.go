package data

// Coords holds the coordinates paired with a sample array. For a vector
// X and Y hold one coordinate per element. For a matrix X belongs to the
// columns and Y to the rows; both may hold cell edges (one value more
// than cells) instead of centers.
type Coords struct {
	X, Y []float64
}

// IsZero reports whether no coordinates are present.
func (c Coords) IsZero() bool {
	return len(c.X) == 0 && len(c.Y) == 0
}

// A View captures the visible region of an axes. An axis limit takes
// part in in-bounds filtering only if it is locked, i.e. not subject to
// autoscaling.
type View struct {
	X, Y         Interval
	LockX, LockY bool
}

// Locked reports whether any axis limit of v is locked.
func (v View) Locked() bool {
	return (v.LockX && v.X.IsSet()) || (v.LockY && v.Y.IsSet())
}

// InRangeX reports whether x is visible in v.
func (v View) InRangeX(x float64) bool {
	return !v.LockX || !v.X.IsSet() || v.X.Contains(x)
}

// InRangeY reports whether y is visible in v.
func (v View) InRangeY(y float64) bool {
	return !v.LockY || !v.Y.IsSet() || v.Y.Contains(y)
}

// InRangeXY reports whether the point (x,y) is visible in v.
func (v View) InRangeXY(x, y float64) bool {
	return v.InRangeX(x) && v.InRangeY(y)
}

// InBounds returns a copy of a where every element whose coordinates
// fall outside the locked limits of v is masked. Coordinates whose
// length does not match a are ignored. If toCenters is set, edge
// coordinates of a matrix are converted to centers first.
func (v View) InBounds(a *Array, c Coords, toCenters bool) *Array {
	b := a.Clone()
	if !v.Locked() || c.IsZero() {
		return b
	}
	if b.Mask == nil {
		b.Mask = make([]bool, len(b.Data))
	}

	switch b.Rank() {
	case 1:
		n := b.Len()
		for i := 0; i < n; i++ {
			if len(c.X) == n && !v.InRangeX(c.X[i]) {
				b.Mask[i] = true
			}
			if len(c.Y) == n && !v.InRangeY(c.Y[i]) {
				b.Mask[i] = true
			}
		}
	case 2:
		rows, cols := b.Rows(), b.Cols()
		x, y := c.X, c.Y
		if toCenters {
			x, y = Centers(x, cols), Centers(y, rows)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if len(x) == cols && !v.InRangeX(x[j]) {
					b.Mask[i*cols+j] = true
				}
				if len(y) == rows && !v.InRangeY(y[i]) {
					b.Mask[i*cols+j] = true
				}
			}
		}
	}
	return b
}

// Centers converts n+1 edges to n midpoints. Any other input is
// returned unchanged.
func Centers(edges []float64, n int) []float64 {
	if len(edges) != n+1 {
		return edges
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * (edges[i] + edges[i+1])
	}
	return out
}
