// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Empty returns a fresh 0×0 matrix.
func Empty() *mat.Dense {
	return &mat.Dense{}
}

// NewSquare allocates an n×n zero matrix, or Empty() for n == 0.
func NewSquare(n int) *mat.Dense {
	if n <= 0 {
		return Empty()
	}

	return mat.NewDense(n, n, nil)
}

// Order returns the row count of a square matrix, 0 for nil or empty.
func Order(m mat.Matrix) int {
	if ValidateNotNil(m) != nil {
		return 0
	}
	r, _ := m.Dims()

	return r
}

// Clone deep-copies m, preserving the empty form.
func Clone(m *mat.Dense) *mat.Dense {
	if m == nil || m.IsEmpty() {
		return Empty()
	}

	return mat.DenseCopyOf(m)
}

// RowSums returns the sum of every row.
// Complexity: O(r*c).
func RowSums(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out[i] += m.At(i, j)
		}
	}

	return out
}

// ColSums returns the sum of every column.
// Complexity: O(r*c).
func ColSums(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out[j] += m.At(i, j)
		}
	}

	return out
}

// RowNormalize returns a copy of m with each row divided by its sum.
// A row summing to zero becomes NaN, mirroring 0/0.
// Complexity: O(n²).
func RowNormalize(m *mat.Dense) *mat.Dense {
	out := Clone(m)
	if out.IsEmpty() {
		return out
	}
	r, _ := out.Dims()
	var i int
	for i = 0; i < r; i++ {
		row := out.RawRowView(i)
		floats.Scale(1/floats.Sum(row), row)
	}

	return out
}

// Submatrix returns the square matrix formed by rows and columns idx of m,
// in the given order. Entries are copied unchanged.
// Complexity: O(k²), k = len(idx).
func Submatrix(m mat.Matrix, idx []int) (*mat.Dense, error) {
	n := Order(m)
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("Submatrix: index %d of %d: %w", i, n, ErrOutOfRange)
		}
	}
	out := NewSquare(len(idx))
	var a, b int
	for a = range idx {
		for b = range idx {
			out.Set(a, b, m.At(idx[a], idx[b]))
		}
	}

	return out, nil
}

// NonZero returns the nonzero entries of m in row-major order.
func NonZero(m mat.Matrix) []float64 {
	if ValidateNotNil(m) != nil {
		return nil
	}
	r, c := m.Dims()
	var out []float64
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				out = append(out, v)
			}
		}
	}

	return out
}

// AddConst returns a copy of m with v added to every entry.
func AddConst(m *mat.Dense, v float64) *mat.Dense {
	out := Clone(m)
	if out.IsEmpty() || v == 0 {
		return out
	}
	r, _ := out.Dims()
	var i int
	for i = 0; i < r; i++ {
		floats.AddConst(v, out.RawRowView(i))
	}

	return out
}
