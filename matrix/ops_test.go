package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/matrix"
)

func TestNewSquare_Zero(t *testing.T) {
	m := matrix.NewSquare(0)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, matrix.Order(m))
	assert.Equal(t, 3, matrix.Order(matrix.NewSquare(3)))
	assert.Equal(t, 0, matrix.Order(nil))
}

func TestSums(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, []float64{3, 7}, matrix.RowSums(m))
	assert.Equal(t, []float64{4, 6}, matrix.ColSums(m))
	assert.Empty(t, matrix.RowSums(matrix.Empty()))
}

func TestRowNormalize(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 3, 0, 0})
	got := matrix.RowNormalize(m)
	assert.InDelta(t, 0.25, got.At(0, 0), 1e-15)
	assert.InDelta(t, 0.75, got.At(0, 1), 1e-15)
	assert.True(t, math.IsNaN(got.At(1, 0)), "zero row becomes NaN")
	assert.Equal(t, 1.0, m.At(0, 0), "input untouched")
	assert.True(t, matrix.RowNormalize(matrix.Empty()).IsEmpty())
}

func TestSubmatrix(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	got, err := matrix.Submatrix(m, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 7, 9}, got.RawMatrix().Data)

	empty, err := matrix.Submatrix(m, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = matrix.Submatrix(m, []int{3})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNonZeroAndAddConst(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0, 2, 0, 5})
	assert.Equal(t, []float64{2, 5}, matrix.NonZero(m))

	p := matrix.AddConst(m, 0.5)
	assert.Equal(t, []float64{0.5, 2.5, 0.5, 5.5}, p.RawMatrix().Data)
	assert.Equal(t, 0.0, m.At(0, 0))
}
