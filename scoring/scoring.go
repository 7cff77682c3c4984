package scoring

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/matrix"
)

// ErrStateOutOfRange indicates a sequence entry outside [0, n-1].
var ErrStateOutOfRange = errors.New("scoring: state index out of range")

// LogLikelihood returns Σ over seqs of
//
//	Σ_t log T[a_t, a_t+1] − Σ_i n_i log n_i + log n_{a_0}
//
// with n the visit counts over all of seqs, shared by every sequence.
// Empty sequences contribute nothing.
//
// Errors: matrix validation errors, ErrStateOutOfRange.
//
// Complexity: O(Σ len(seq) + n).
func LogLikelihood(seqs [][]int, t *mat.Dense) (float64, error) {
	if err := matrix.ValidateSquare(t); err != nil {
		return 0, fmt.Errorf("LogLikelihood: %w", err)
	}
	n := matrix.Order(t)

	// Stage 1: occupancy over every sequence
	occ := make([]float64, n)
	for s, seq := range seqs {
		for i, a := range seq {
			if a < 0 || a >= n {
				return 0, fmt.Errorf("LogLikelihood: sequence %d frame %d state %d: %w", s, i, a, ErrStateOutOfRange)
			}
			occ[a]++
		}
	}
	var entropy float64
	for _, c := range occ {
		if c > 0 {
			entropy += c * math.Log(c)
		}
	}

	// Stage 2: per-sequence transitions and occupancy correction
	var total float64
	for _, seq := range seqs {
		if len(seq) == 0 {
			continue
		}
		for i := 1; i < len(seq); i++ {
			total += math.Log(t.At(seq[i-1], seq[i]))
		}
		total += math.Log(occ[seq[0]]) - entropy
	}

	return total, nil
}
