package spectral

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/matrix"
)

var (
	// ErrEmpty indicates a decomposition of a 0×0 matrix was requested.
	ErrEmpty = errors.New("spectral: matrix has no states")

	// ErrEigenFailed indicates the eigensolver did not converge.
	ErrEigenFailed = errors.New("spectral: eigen decomposition failed")
)

// imagTol is the magnitude below which an imaginary part counts as noise.
const imagTol = 1e-12

// Eigensystem holds the leading eigenpairs of a transition matrix.
type Eigensystem struct {
	// Values are the eigenvalues in descending order of real part.
	Values []float64

	// Left holds left eigenvectors as columns, n×k.
	Left *mat.Dense

	// Right holds right eigenvectors as columns, n×k.
	Right *mat.Dense

	// Complex is set when an imaginary part above tolerance was discarded.
	Complex bool
}

// K returns the number of eigenpairs held.
func (e *Eigensystem) K() int { return len(e.Values) }

// Decompose computes the leading nTimescales+1 eigenpairs of t and applies
// the normalization described in the package documentation. nTimescales <= 0
// selects all n-1 timescales; larger requests are capped at n-1.
//
// Errors: matrix validation errors, ErrEmpty, ErrEigenFailed.
func Decompose(t *mat.Dense, nTimescales int) (*Eigensystem, error) {
	// Stage 1: validate and size
	if err := matrix.ValidateSquare(t); err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	n := matrix.Order(t)
	if n == 0 {
		return nil, ErrEmpty
	}
	k := nTimescales + 1
	if nTimescales <= 0 || k > n {
		k = n
	}

	// Stage 2: full decomposition, both sides
	var eig mat.Eigen
	if ok := eig.Factorize(t, mat.EigenBoth); !ok {
		return nil, fmt.Errorf("Decompose: %w", ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var vl, vr mat.CDense
	eig.LeftVectorsTo(&vl)
	eig.VectorsTo(&vr)

	// Stage 3: sort by descending real part and keep k
	order := descending(vals)[:k]
	es := &Eigensystem{
		Values: make([]float64, k),
		Left:   mat.NewDense(n, k, nil),
		Right:  mat.NewDense(n, k, nil),
	}
	var i, col int
	for col = 0; col < k; col++ {
		src := order[col]
		if math.Abs(imag(vals[src])) > imagTol {
			es.Complex = true
		}
		es.Values[col] = real(vals[src])
		for i = 0; i < n; i++ {
			es.Left.Set(i, col, real(vl.At(i, src)))
			es.Right.Set(i, col, real(vr.At(i, src)))
		}
	}

	// Stage 4: normalize
	normalize(es.Left, es.Right)

	return es, nil
}

// normalize applies the stationary, μ⁻¹-norm and biorthonormality scalings
// in place. Columns are extracted, scaled and written back.
func normalize(left, right *mat.Dense) {
	n, k := left.Dims()
	l0 := mat.Col(nil, 0, left)
	floats.Scale(1/floats.Sum(l0), l0)
	left.SetCol(0, l0)

	li := make([]float64, n)
	sq := make([]float64, n)
	var col int
	for col = 1; col < k; col++ {
		mat.Col(li, col, left)
		floats.MulTo(sq, li, li)
		floats.Div(sq, l0)
		floats.Scale(1/math.Sqrt(floats.Sum(sq)), li)
		left.SetCol(col, li)
	}

	ri := make([]float64, n)
	for col = 0; col < k; col++ {
		mat.Col(li, col, left)
		mat.Col(ri, col, right)
		floats.Scale(1/floats.Dot(li, ri), ri)
		right.SetCol(col, ri)
	}
}

// descending returns indices of vals sorted by real part, largest first.
// Ties keep solver order.
func descending(vals []complex128) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		ra, rb := real(vals[a]), real(vals[b])
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		}

		return 0
	})

	return idx
}

// Stationary returns the dominant left eigenvector of t (largest real part)
// scaled to sum to one.
//
// Errors: matrix validation errors, ErrEigenFailed. An empty matrix yields an
// empty distribution.
func Stationary(t *mat.Dense) ([]float64, error) {
	if err := matrix.ValidateSquare(t); err != nil {
		return nil, fmt.Errorf("Stationary: %w", err)
	}
	n := matrix.Order(t)
	if n == 0 {
		return []float64{}, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(t, mat.EigenLeft); !ok {
		return nil, fmt.Errorf("Stationary: %w", ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var vl mat.CDense
	eig.LeftVectorsTo(&vl)

	lead := descending(vals)[0]
	pi := make([]float64, n)
	for i := range pi {
		pi[i] = real(vl.At(i, lead))
	}
	floats.Scale(1/floats.Sum(pi), pi)

	return pi, nil
}

// Timescales returns −lag/ln(λᵢ) for every eigenvalue after the first.
// As with the plain formula, λ = 1 yields −Inf and λ < 0 yields NaN.
func Timescales(values []float64, lag int) []float64 {
	if len(values) <= 1 {
		return []float64{}
	}
	out := make([]float64, len(values)-1)
	for i, v := range values[1:] {
		out[i] = -float64(lag) / math.Log(v)
	}

	return out
}
