package msm

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmsm/matrix"
)

// Summary writes a human-readable report of the configuration and the fit.
//
// Errors: ErrNotFitted, write errors from w.
func (m *Model[L]) Summary(w io.Writer) error {
	if !m.fitted {
		return ErrNotFitted
	}

	n := m.mapping.Len()
	nz := matrix.NonZero(m.counts)
	slices.Sort(nz)
	total := 0.0
	if n > 0 {
		total = floats.Sum(matrix.RowSums(m.counts))
	}
	pct := math.NaN()
	if n > 0 {
		pct = 100 * float64(len(nz)) / float64(n*n)
	}

	var b strings.Builder
	fmt.Fprintln(&b, "Markov state model")
	fmt.Fprintln(&b, "------------------")
	fmt.Fprintf(&b, "Lag time         : %d\n", m.cfg.LagTime)
	fmt.Fprintf(&b, "Estimator        : %s\n", m.cfg.Method)
	fmt.Fprintf(&b, "Ergodic cutoff   : %g\n", m.cfg.ErgodicCutoff)
	fmt.Fprintf(&b, "Prior counts     : %g\n", m.cfg.PriorCounts)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Number of states : %d\n", n)
	fmt.Fprintf(&b, "Number of nonzero entries in counts matrix : %d (%.2f%%)\n", len(nz), pct)

	if len(nz) > 0 {
		fmt.Fprintln(&b, "Nonzero counts matrix entries:")
		fmt.Fprintf(&b, "    Min.   : %.1f\n", nz[0])
		fmt.Fprintf(&b, "    1st Qu.: %.1f\n", stat.Quantile(0.25, stat.LinInterp, nz, nil))
		fmt.Fprintf(&b, "    Median : %.1f\n", stat.Quantile(0.50, stat.LinInterp, nz, nil))
		fmt.Fprintf(&b, "    Mean   : %.1f\n", stat.Mean(nz, nil))
		fmt.Fprintf(&b, "    3rd Qu.: %.1f\n", stat.Quantile(0.75, stat.LinInterp, nz, nil))
		fmt.Fprintf(&b, "    Max.   : %.1f\n", nz[len(nz)-1])
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total transition counts : %g\n", total)
	fmt.Fprintf(&b, "Total transition counts / lag time : %g\n", total/float64(m.cfg.LagTime))

	ts, err := m.Timescales()
	switch {
	case errors.Is(err, ErrEmptyModel):
		fmt.Fprintln(&b, "Timescales: none (empty model)")
	case err != nil:
		return fmt.Errorf("Summary: %w", err)
	default:
		fmt.Fprint(&b, "Timescales:")
		for _, t := range ts {
			fmt.Fprintf(&b, " %.4g", t)
		}
		fmt.Fprintln(&b)
	}

	if _, err = io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("Summary: %w", err)
	}

	return nil
}
