package msm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/labels"
	"github.com/katalvlaran/lvmsm/matrix"
)

// Transformed holds label sequences mapped to state indices.
// Exactly one of Ints and Floats is non-nil.
type Transformed struct {
	// Ints is set in clip mode, and in fill mode when no frame was unmapped.
	Ints [][]int

	// Floats is set in fill mode when some frame was unmapped (NaN).
	Floats [][]float64
}

// Integral reports whether the result is held in Ints.
func (t Transformed) Integral() bool { return t.Floats == nil }

// Transform maps every label to its state index.
//
// Fill keeps one output per input with NaN at unmapped frames; Clip drops
// unmapped frames and splits sequences at them.
//
// In fill mode the shape is chosen for the whole batch: one unmapped frame in
// any sequence makes every sequence come back in Floats, including those that
// were fully mapped.
//
// Errors: ErrNotFitted, labels.ErrUnknownMode.
func (m *Model[L]) Transform(seqs [][]L, mode labels.Mode) (Transformed, error) {
	if !m.fitted {
		return Transformed{}, ErrNotFitted
	}

	switch mode {
	case labels.Clip:
		out := make([][]int, 0, len(seqs))
		for _, seq := range seqs {
			out = append(out, m.mapping.Clip(seq)...)
		}
		return Transformed{Ints: out}, nil

	case labels.Fill:
		fl := make([][]float64, len(seqs))
		for i, seq := range seqs {
			fl[i] = m.mapping.Fill(seq)
		}
		ints := make([][]int, len(fl))
		for i, f := range fl {
			v, ok := labels.Integral(f)
			if !ok {
				return Transformed{Floats: fl}, nil
			}
			ints[i] = v
		}
		return Transformed{Ints: ints}, nil
	}

	return Transformed{}, fmt.Errorf("Transform: %w: %v", labels.ErrUnknownMode, mode)
}

// InverseTransform maps state indices back to labels.
//
// Errors: ErrNotFitted, labels.ErrIndexOutOfRange.
func (m *Model[L]) InverseTransform(seqs [][]int) ([][]L, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	out := make([][]L, len(seqs))
	var err error
	for i, seq := range seqs {
		if out[i], err = m.mapping.Inverse(seq); err != nil {
			return nil, fmt.Errorf("InverseTransform: sequence %d: %w", i, err)
		}
	}

	return out, nil
}

// EigTransform projects every frame onto the non-stationary eigenvectors.
// Row t of the i-th result is the coordinate vector of frame t, with one
// column per eigenvector after the first. right selects the right
// eigenvectors, otherwise the left ones are used. In fill mode an unmapped
// frame yields a NaN row.
//
// Errors: ErrNotFitted, ErrEmptyModel, labels.ErrUnknownMode.
func (m *Model[L]) EigTransform(seqs [][]L, right bool, mode labels.Mode) ([]*mat.Dense, error) {
	es, err := m.eigensystem()
	if err != nil {
		return nil, err
	}
	vecs := es.Left
	if right {
		vecs = es.Right
	}

	tr, err := m.Transform(seqs, mode)
	if err != nil {
		return nil, fmt.Errorf("EigTransform: %w", err)
	}
	rows := tr.Floats
	if tr.Integral() {
		rows = make([][]float64, len(tr.Ints))
		for i, seq := range tr.Ints {
			rows[i] = make([]float64, len(seq))
			for t, s := range seq {
				rows[i][t] = float64(s)
			}
		}
	}

	out := make([]*mat.Dense, len(rows))
	for i, seq := range rows {
		out[i] = project(vecs, seq)
	}

	return out, nil
}

// project builds the len(seq)×(k-1) coordinate matrix for one sequence.
func project(vecs *mat.Dense, seq []float64) *mat.Dense {
	_, k := vecs.Dims()
	if len(seq) == 0 || k <= 1 {
		return matrix.Empty()
	}

	out := mat.NewDense(len(seq), k-1, nil)
	var j int
	for t, s := range seq {
		if math.IsNaN(s) {
			for j = 1; j < k; j++ {
				out.Set(t, j-1, math.NaN())
			}
			continue
		}
		for j = 1; j < k; j++ {
			out.Set(t, j-1, vecs.At(int(s), j))
		}
	}

	return out
}
