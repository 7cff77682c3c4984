package estimate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/matrix"
	"github.com/katalvlaran/lvmsm/spectral"
)

// Estimate computes the transition matrix and stationary distribution of
// counts using method m.
//
// An empty count matrix yields an empty transition matrix and distribution.
//
// Errors: matrix validation errors, ErrUnknownMethod, ErrBadPrior,
// ErrNotConverged, spectral.ErrEigenFailed.
func Estimate(counts *mat.Dense, m Method, opts ...Option) (*mat.Dense, []float64, error) {
	// Stage 1: validate
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !m.Valid() {
		return nil, nil, fmt.Errorf("Estimate: %v: %w", m, ErrUnknownMethod)
	}
	if o.Prior < 0 || math.IsNaN(o.Prior) || math.IsInf(o.Prior, 0) {
		return nil, nil, fmt.Errorf("Estimate: prior=%g: %w", o.Prior, ErrBadPrior)
	}
	if err := matrix.ValidateCounts(counts); err != nil {
		return nil, nil, fmt.Errorf("Estimate: %w", err)
	}
	if matrix.Order(counts) == 0 {
		return matrix.Empty(), []float64{}, nil
	}

	// Stage 2: dispatch
	var (
		t   *mat.Dense
		pi  []float64
		err error
	)
	switch m {
	case MLE:
		t, pi, err = reversibleMLE(matrix.AddConst(counts, o.Prior), o.Tolerance, o.MaxIterations)
	case Transpose:
		t, pi = transpose(counts, o.Prior)
	case None:
		t, pi, err = asymmetric(counts, o.Prior)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("Estimate(%v): %w", m, err)
	}

	return t, pi, nil
}

// transpose: ½(C+Cᵀ)+prior, row-normalized; π from column sums.
func transpose(counts *mat.Dense, prior float64) (*mat.Dense, []float64) {
	var rev mat.Dense
	rev.Add(counts, counts.T())
	rev.Scale(0.5, &rev)
	sym := matrix.AddConst(&rev, prior)

	pi := matrix.ColSums(sym)
	floats.Scale(1/floats.Sum(pi), pi)

	return matrix.RowNormalize(sym), pi
}

// asymmetric: C+prior row-normalized; π from the dominant left eigenvector.
func asymmetric(counts *mat.Dense, prior float64) (*mat.Dense, []float64, error) {
	t := matrix.RowNormalize(matrix.AddConst(counts, prior))
	pi, err := spectral.Stationary(t)
	if err != nil {
		return nil, nil, err
	}

	return t, pi, nil
}
