package msm

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvmsm/matrix"
)

type startKind int

const (
	startStationary startKind = iota
	startDistribution
	startLabel
)

// Start selects the initial state of a sampled trajectory. The zero value
// draws from the stationary populations.
type Start[L cmp.Ordered] struct {
	kind  startKind
	dist  []float64
	label L
}

// FromDistribution draws the initial state from p, one weight per state.
func FromDistribution[L cmp.Ordered](p []float64) Start[L] {
	return Start[L]{kind: startDistribution, dist: slices.Clone(p)}
}

// FromLabel starts every trajectory at the state of label l.
func FromLabel[L cmp.Ordered](l L) Start[L] {
	return Start[L]{kind: startLabel, label: l}
}

// Sample generates a trajectory of nSteps labels from the fitted chain.
// The result is deterministic for a given seed; seed 0 selects a fixed
// default.
//
// Errors: ErrNotFitted, ErrEmptyModel, ErrBadConfig for nSteps < 0 or a
// distribution of the wrong length, ErrUnknownLabel.
func (m *Model[L]) Sample(start Start[L], nSteps int, seed int64) ([]L, error) {
	// Stage 1: validate
	if !m.fitted {
		return nil, ErrNotFitted
	}
	n := m.mapping.Len()
	if n == 0 {
		return nil, ErrEmptyModel
	}
	if nSteps < 0 {
		return nil, fmt.Errorf("Sample: %w: n_steps=%d must be >= 0", ErrBadConfig, nSteps)
	}
	if nSteps == 0 {
		return []L{}, nil
	}

	// Stage 2: initial state
	rng := rngFromSeed(seed)
	var cur int
	switch start.kind {
	case startLabel:
		i, ok := m.mapping.Index(start.label)
		if !ok {
			return nil, fmt.Errorf("Sample: %v: %w", start.label, ErrUnknownLabel)
		}
		cur = i
		rng.Float64() // keep the stream aligned with the drawn starts
	case startDistribution:
		if len(start.dist) != n {
			return nil, fmt.Errorf("Sample: %w: start distribution has %d entries, want %d",
				ErrBadConfig, len(start.dist), n)
		}
		cur = drawIndex(cumulative(start.dist), rng.Float64())
	default:
		cur = drawIndex(cumulative(m.populations), rng.Float64())
	}

	// Stage 3: walk the chain with one cumulative row per state
	cdf := make([][]float64, n)
	for i := range cdf {
		cdf[i] = cumulative(m.transmat.RawRowView(i))
	}
	states := make([]int, nSteps)
	states[0] = cur
	for t := 1; t < nSteps; t++ {
		row := cdf[states[t-1]]
		if math.IsNaN(row[n-1]) {
			return nil, fmt.Errorf("Sample: state %d has no outgoing transitions: %w",
				states[t-1], matrix.ErrNaNInf)
		}
		states[t] = drawIndex(row, rng.Float64())
	}

	return m.mapping.Inverse(states)
}

// DrawSamples picks, for every state, nSamples (sequence, frame) positions
// at which that state was observed, uniformly with replacement. The result
// is indexed [state][sample] and each entry holds {sequence, frame}.
//
// States must be dense: non-empty, zero-indexed and consecutive. The
// receiver's fit is not used.
//
// Errors: ErrNotDense, ErrBadConfig for nSamples < 0.
func (m *Model[L]) DrawSamples(seqs [][]int, nSamples int, seed int64) ([][][2]int, error) {
	if nSamples < 0 {
		return nil, fmt.Errorf("DrawSamples: %w: n_samples=%d must be >= 0", ErrBadConfig, nSamples)
	}

	// Stage 1: density check
	var all []int
	for _, seq := range seqs {
		all = append(all, seq...)
	}
	if len(all) == 0 {
		return nil, ErrNotDense
	}
	slices.Sort(all)
	uniq := slices.Compact(all)
	if uniq[0] != 0 || uniq[len(uniq)-1] != len(uniq)-1 {
		return nil, fmt.Errorf("DrawSamples: states %d..%d with %d distinct: %w",
			uniq[0], uniq[len(uniq)-1], len(uniq), ErrNotDense)
	}
	n := len(uniq)

	// Stage 2: positions per state
	where := make([][][2]int, n)
	for i, seq := range seqs {
		for t, s := range seq {
			where[s] = append(where[s], [2]int{i, t})
		}
	}

	// Stage 3: uniform draws
	rng := rngFromSeed(seed)
	out := make([][][2]int, n)
	for s := range out {
		out[s] = make([][2]int, nSamples)
		for k := range out[s] {
			out[s][k] = where[s][rng.Intn(len(where[s]))]
		}
	}

	return out, nil
}
