// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers match via errors.Is.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry in a matrix that must be nonnegative
	// (counts, probabilities).
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNotStochastic signals a row that does not sum to one within eps.
	ErrNotStochastic = errors.New("matrix: row does not sum to 1")

	// ErrOutOfRange indicates an index outside the matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
