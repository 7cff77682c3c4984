package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/matrix"
	"github.com/katalvlaran/lvmsm/spectral"
)

const tol = 1e-9

// reversible builds T = X / rowsum(X) from a symmetric flux matrix, whose
// stationary distribution is rowsum(X)/sum(X).
func reversible() (*mat.Dense, []float64) {
	x := mat.NewDense(3, 3, []float64{
		4, 2, 1,
		2, 6, 3,
		1, 3, 8,
	})
	pi := matrix.RowSums(x)
	floats.Scale(1/floats.Sum(pi), pi)

	return matrix.RowNormalize(x), pi
}

func TestDecompose_Normalization(t *testing.T) {
	tm, pi := reversible()
	es, err := spectral.Decompose(tm, 0)
	require.NoError(t, err)
	require.Equal(t, 3, es.K())
	assert.False(t, es.Complex)
	assert.InDelta(t, 1.0, es.Values[0], tol)
	assert.True(t, es.Values[0] >= es.Values[1] && es.Values[1] >= es.Values[2])

	l0 := mat.Col(nil, 0, es.Left)
	assert.InDelta(t, 1.0, floats.Sum(l0), tol)
	for i := range pi {
		assert.InDelta(t, pi[i], l0[i], tol)
	}

	for i := 1; i < es.K(); i++ {
		li := mat.Col(nil, i, es.Left)
		var s float64
		for j := range li {
			s += li[j] * li[j] / l0[j]
		}
		assert.InDelta(t, 1.0, s, tol, "left %d", i)
	}

	for i := 0; i < es.K(); i++ {
		for j := 0; j < es.K(); j++ {
			d := floats.Dot(mat.Col(nil, i, es.Left), mat.Col(nil, j, es.Right))
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, d, 1e-8, "<phi_%d, psi_%d>", i, j)
		}
	}

	// first right eigenvector is the constant 1
	for _, v := range mat.Col(nil, 0, es.Right) {
		assert.InDelta(t, 1.0, v, tol)
	}
}

func TestDecompose_EigenEquation(t *testing.T) {
	tm, _ := reversible()
	es, err := spectral.Decompose(tm, 0)
	require.NoError(t, err)
	for i, lambda := range es.Values {
		r := es.Right.ColView(i)
		var tr mat.VecDense
		tr.MulVec(tm, r)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, lambda*r.AtVec(j), tr.AtVec(j), 1e-9)
		}
		l := es.Left.ColView(i)
		var lt mat.VecDense
		lt.MulVec(tm.T(), l)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, lambda*l.AtVec(j), lt.AtVec(j), 1e-9)
		}
	}
}

func TestDecompose_Truncates(t *testing.T) {
	tm, _ := reversible()
	es, err := spectral.Decompose(tm, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, es.K())
	r, c := es.Left.Dims()
	assert.Equal(t, [2]int{3, 2}, [2]int{r, c})

	es, err = spectral.Decompose(tm, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, es.K())
}

func TestDecompose_Errors(t *testing.T) {
	_, err := spectral.Decompose(matrix.Empty(), 0)
	assert.ErrorIs(t, err, spectral.ErrEmpty)
	_, err = spectral.Decompose(mat.NewDense(2, 3, nil), 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDecompose_ComplexFlag(t *testing.T) {
	// cyclic, doubly stochastic: eigenvalues 1 and a complex pair
	tm := mat.NewDense(3, 3, []float64{
		0.5, 0.5, 0,
		0, 0.5, 0.5,
		0.5, 0, 0.5,
	})
	es, err := spectral.Decompose(tm, 0)
	require.NoError(t, err)
	assert.True(t, es.Complex)
	assert.InDelta(t, 1.0, es.Values[0], tol)
}

func TestStationary(t *testing.T) {
	tm := mat.NewDense(3, 3, []float64{
		0.5, 0.5, 0,
		0, 0.5, 0.5,
		0.5, 0, 0.5,
	})
	pi, err := spectral.Stationary(tm)
	require.NoError(t, err)
	for _, p := range pi {
		assert.InDelta(t, 1.0/3, p, tol)
	}

	rev, want := reversible()
	pi, err = spectral.Stationary(rev)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, pi, tol)

	pi, err = spectral.Stationary(matrix.Empty())
	require.NoError(t, err)
	assert.Empty(t, pi)
}

func TestTimescales(t *testing.T) {
	got := spectral.Timescales([]float64{1, 0.5, math.Exp(-1)}, 2)
	require.Len(t, got, 2)
	assert.InDelta(t, 2/math.Ln2, got[0], 1e-12)
	assert.InDelta(t, 2.0, got[1], 1e-12)
	assert.Empty(t, spectral.Timescales([]float64{1}, 1))
}
