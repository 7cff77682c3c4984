package msm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmsm/counts"
)

// ScoreLL returns the log-likelihood of seqs under the fitted transition
// matrix: Σ C_ij log T_ij over the lag-1 counts of seqs, skipping the NaN
// terms produced by 0·log 0.
//
// A label that the model does not map makes the data impossible, so the
// score is −Inf with a nil error.
//
// Errors: ErrNotFitted.
func (m *Model[L]) ScoreLL(seqs [][]L) (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	c, mp, err := counts.Transitions(seqs, 1, m.countOptions()...)
	if err != nil {
		return 0, fmt.Errorf("ScoreLL: %w", err)
	}

	// Stage 1: translate observed labels into model states
	idx := make([]int, mp.Len())
	for i, l := range mp.Labels() {
		s, ok := m.mapping.Index(l)
		if !ok {
			return math.Inf(-1), nil
		}
		idx[i] = s
	}

	// Stage 2: Σ C_ij log T_ij
	var (
		ll   float64
		i, j int
	)
	for i = range idx {
		for j = range idx {
			cij := c.At(i, j)
			if cij == 0 {
				continue
			}
			term := cij * math.Log(m.transmat.At(idx[i], idx[j]))
			if math.IsNaN(term) {
				continue
			}
			ll += term
		}
	}

	return ll, nil
}
