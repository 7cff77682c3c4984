package counts

import (
	"cmp"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/labels"
	"github.com/katalvlaran/lvmsm/matrix"
)

// Transitions counts lagged transitions over all sequences.
//
// Returns the n×n count matrix (empty when no label was observed) and the
// mapping from labels to its indices, in ascending label order.
//
// Errors: ErrBadLag if lag <= 0.
func Transitions[L cmp.Ordered](seqs [][]L, lag int, opts ...Option[L]) (*mat.Dense, *labels.Mapping[L], error) {
	// Stage 1: validate input
	if lag <= 0 {
		return nil, nil, fmt.Errorf("Transitions: lag=%d: %w", lag, ErrBadLag)
	}
	var o options[L]
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 2: collect the distinct non-missing labels
	var all []L
	for _, seq := range seqs {
		for _, l := range seq {
			if !o.isMissing(l) {
				all = append(all, l)
			}
		}
	}
	mapping := labels.FromLabels(all)
	n := mapping.Len()
	counts := matrix.NewSquare(n)
	if n == 0 {
		return counts, mapping, nil
	}
	identity := isIdentity(mapping)

	// Stage 3: accumulate (from, to) pairs sequence by sequence
	var (
		t        int
		from, to int
	)
	for _, seq := range seqs {
		for t = 0; t+lag < len(seq); t++ {
			a, b := seq[t], seq[t+lag]
			if o.isMissing(a) || o.isMissing(b) {
				continue
			}
			if identity {
				from, to = denseIndex(a), denseIndex(b)
			} else {
				from, _ = mapping.Index(a)
				to, _ = mapping.Index(b)
			}
			counts.Set(from, to, counts.At(from, to)+1)
		}
	}

	return counts, mapping, nil
}

// isIdentity reports whether the mapping's labels are exactly the integers
// 0..n-1, in which case a label is its own index.
func isIdentity[L cmp.Ordered](m *labels.Mapping[L]) bool {
	for i, l := range m.Labels() {
		if denseIndex(l) != i {
			return false
		}
	}

	return true
}

// denseIndex returns l as an int when L is an integer kind, else -1.
func denseIndex[L cmp.Ordered](l L) int {
	switch v := any(l).(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	}

	return -1
}
