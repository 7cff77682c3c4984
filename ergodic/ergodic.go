package ergodic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/dfs"
	"github.com/katalvlaran/lvmsm/graph"
	"github.com/katalvlaran/lvmsm/labels"
	"github.com/katalvlaran/lvmsm/matrix"
)

// ErrBadCutoff indicates a negative or non-finite cutoff.
var ErrBadCutoff = errors.New("ergodic: cutoff must be finite and >= 0")

// Report summarizes a trimming pass for diagnostics.
type Report struct {
	// Components is the number of strongly connected components found.
	Components int

	// Selected is the index of the retained component (ordered by smallest
	// member state), -1 when the input was empty.
	Selected int

	// Percent is the retained component's share of total population, NaN
	// when the matrix holds no counts.
	Percent float64

	// Kept is the number of retained states.
	Kept int
}

// Trim restricts counts to its maximal strongly ergodic subgraph.
//
// Returns the trimmed matrix, the mapping from input indices to trimmed
// indices (labels are input indices, indices are new positions), and a Report.
//
// Errors: matrix validation errors for non-square or negative input,
// ErrBadCutoff for a negative cutoff.
func Trim(counts *mat.Dense, cutoff float64) (*mat.Dense, *labels.Mapping[int], Report, error) {
	// Stage 1: validate
	rep := Report{Selected: -1, Percent: math.NaN()}
	if err := matrix.ValidateCounts(counts); err != nil {
		return nil, nil, rep, fmt.Errorf("Trim: %w", err)
	}
	if cutoff < 0 || math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return nil, nil, rep, fmt.Errorf("Trim: cutoff=%g: %w", cutoff, ErrBadCutoff)
	}
	n := matrix.Order(counts)
	if n == 0 {
		return matrix.Empty(), labels.FromLabels[int](nil), rep, nil
	}

	// Stage 2: components of the thresholded graph
	comps, err := dfs.StronglyConnected(graph.FromCounts(counts, cutoff))
	if err != nil {
		return nil, nil, rep, fmt.Errorf("Trim: %w", err)
	}

	// Stage 3: pick the most populated component; ties go to the lower index
	populations := matrix.ColSums(counts)
	compPops := make([]float64, comps.Count())
	for v, c := range comps.Of {
		compPops[c] += populations[v]
	}
	which := floats.MaxIdx(compPops)
	keys := comps.Members[which]

	rep.Components = comps.Count()
	rep.Selected = which
	if total := floats.Sum(compPops); total != 0 {
		rep.Percent = 100 * compPops[which] / total
	}

	// Stage 4: fully disconnected graph whose winner has no self-transition
	if comps.Count() == n && counts.At(keys[0], keys[0]) == 0 {
		return matrix.Empty(), labels.FromLabels[int](nil), rep, nil
	}

	// Stage 5: copy the retained block and build the sub-mapping
	trimmed, err := matrix.Submatrix(counts, keys)
	if err != nil {
		return nil, nil, rep, fmt.Errorf("Trim: %w", err)
	}
	sub, err := labels.FromOrdered(keys)
	if err != nil {
		return nil, nil, rep, fmt.Errorf("Trim: %w", err)
	}
	rep.Kept = len(keys)

	return trimmed, sub, rep, nil
}
