// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guards used before estimation
//    and decomposition (nil, square, finite, nonnegative, row-stochastic).
//  - Return sentinel errors tagged with the validator name.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultEpsilon is the tolerance used by ValidateRowStochastic callers that
// have no better policy.
const DefaultEpsilon = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square. The empty matrix is square.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Dims()
	if r != c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", r, c), ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Assumes m is non-nil.
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects any entry < 0. NaN is reported as ErrNaNInf.
// Assumes m is non-nil.
func ValidateNonNegative(m mat.Matrix) error {
	if err := ValidateFinite(m); err != nil {
		return err
	}
	r, c := m.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.At(i, j) < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative: (%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return nil
}

// ValidateCounts is the composite check applied to count matrices:
// NotNil → Square → NonNegative.
func ValidateCounts(m mat.Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateNonNegative(m)
}

// ValidateRowStochastic checks that every row of a square matrix has
// nonnegative entries summing to 1 within eps.
func ValidateRowStochastic(m mat.Matrix, eps float64) error {
	if err := ValidateCounts(m); err != nil {
		return err
	}
	for i, s := range RowSums(m) {
		if math.Abs(s-1) > eps {
			return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: row %d sums to %g", i, s), ErrNotStochastic)
		}
	}

	return nil
}
