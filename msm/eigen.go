package msm

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/matrix"
	"github.com/katalvlaran/lvmsm/spectral"
)

// eigensystem returns the cached decomposition, refreshing it after a fit.
func (m *Model[L]) eigensystem() (*spectral.Eigensystem, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if !m.dirty && m.eig != nil {
		return m.eig, nil
	}

	es, err := spectral.Decompose(m.transmat, m.cfg.NTimescales)
	if errors.Is(err, spectral.ErrEmpty) {
		return nil, ErrEmptyModel
	}
	if err != nil {
		return nil, fmt.Errorf("eigensystem: %w", err)
	}
	if es.Complex {
		m.logger.Warn("discarded non-negligible imaginary eigenvalue parts",
			zap.Int("states", m.mapping.Len()))
	}
	m.eig = es
	m.dirty = false

	return es, nil
}

// Eigenvalues returns the leading eigenvalues in descending order.
//
// Errors: ErrNotFitted, ErrEmptyModel.
func (m *Model[L]) Eigenvalues() ([]float64, error) {
	es, err := m.eigensystem()
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), es.Values...), nil
}

// LeftEigenvectors returns the n×k left eigenvectors as columns. Column 0
// is the stationary distribution.
func (m *Model[L]) LeftEigenvectors() (*mat.Dense, error) {
	es, err := m.eigensystem()
	if err != nil {
		return nil, err
	}

	return matrix.Clone(es.Left), nil
}

// RightEigenvectors returns the n×k right eigenvectors as columns.
func (m *Model[L]) RightEigenvectors() (*mat.Dense, error) {
	es, err := m.eigensystem()
	if err != nil {
		return nil, err
	}

	return matrix.Clone(es.Right), nil
}

// Timescales returns the implied relaxation timescales −lag/ln(λᵢ), i ≥ 1,
// in units of frames.
func (m *Model[L]) Timescales() ([]float64, error) {
	es, err := m.eigensystem()
	if err != nil {
		return nil, err
	}

	return spectral.Timescales(es.Values, m.cfg.LagTime), nil
}
