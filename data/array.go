// Package data contains the sample arrays fed to the color scale and
// error range resolvers together with the numeric range utilities they
// are built on.
package data

import (
	"fmt"
	"math"
)

// Array is a row-major array of rank 1 or 2 (rank 3 arrays such as RGB
// image data may be constructed but are ignored by most consumers).
// NaN values and elements whose Mask entry is true are invalid and
// excluded from every statistic.
type Array struct {
	Shape []int
	Data  []float64
	Mask  []bool // optional, nil means unmasked
}

// Vector returns a rank 1 array holding a copy of x.
func Vector(x ...float64) *Array {
	return &Array{
		Shape: []int{len(x)},
		Data:  append([]float64(nil), x...),
	}
}

// Matrix returns a rank 2 array from rows. Short rows are padded with NaN.
func Matrix(rows [][]float64) *Array {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	a := &Array{
		Shape: []int{len(rows), cols},
		Data:  make([]float64, len(rows)*cols),
	}
	for i, r := range rows {
		for j := 0; j < cols; j++ {
			if j < len(r) {
				a.Data[i*cols+j] = r[j]
			} else {
				a.Data[i*cols+j] = math.NaN()
			}
		}
	}
	return a
}

// Rank returns the number of dimensions of a. A nil array has rank 0.
func (a *Array) Rank() int {
	if a == nil {
		return 0
	}
	return len(a.Shape)
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

// Rows returns the extent of the first dimension.
func (a *Array) Rows() int {
	if a.Rank() == 0 {
		return 0
	}
	return a.Shape[0]
}

// Cols returns the extent of the second dimension; vectors have one column.
func (a *Array) Cols() int {
	switch a.Rank() {
	case 0:
		return 0
	case 1:
		return 1
	}
	return a.Shape[1]
}

// Valid reports whether the flat element i is neither masked nor NaN.
func (a *Array) Valid(i int) bool {
	if a.Mask != nil && i < len(a.Mask) && a.Mask[i] {
		return false
	}
	return !math.IsNaN(a.Data[i])
}

// Compressed returns a fresh slice with all valid elements of a.
func (a *Array) Compressed() []float64 {
	if a == nil {
		return nil
	}
	out := make([]float64, 0, len(a.Data))
	for i, v := range a.Data {
		if a.Valid(i) {
			out = append(out, v)
		}
	}
	return out
}

// Column returns a copy of column j of a rank 2 array; invalid elements
// are reported as NaN. For vectors column 0 is the vector itself.
func (a *Array) Column(j int) []float64 {
	rows, cols := a.Rows(), a.Cols()
	if j < 0 || j >= cols {
		panic(fmt.Sprintf("data: column %d out of range [0,%d)", j, cols))
	}
	out := make([]float64, rows)
	for i := range out {
		k := i*cols + j
		if a.Rank() == 1 {
			k = i
		}
		if a.Valid(k) {
			out[i] = a.Data[k]
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	b := &Array{
		Shape: append([]int(nil), a.Shape...),
		Data:  append([]float64(nil), a.Data...),
	}
	if a.Mask != nil {
		b.Mask = append([]bool(nil), a.Mask...)
	}
	return b
}

func (a *Array) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Array%v", a.Shape)
}
