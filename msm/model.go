package msm

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/counts"
	"github.com/katalvlaran/lvmsm/ergodic"
	"github.com/katalvlaran/lvmsm/estimate"
	"github.com/katalvlaran/lvmsm/labels"
	"github.com/katalvlaran/lvmsm/matrix"
	"github.com/katalvlaran/lvmsm/spectral"
)

// Model is a Markov state model over labels of type L.
type Model[L cmp.Ordered] struct {
	cfg     Config
	none    *L
	logger  *zap.Logger
	estOpts []estimate.Option

	fitted      bool
	mapping     *labels.Mapping[L]
	counts      *mat.Dense
	transmat    *mat.Dense
	populations []float64

	// eig is valid only while dirty is false.
	dirty bool
	eig   *spectral.Eigensystem
}

// New validates opts and returns an unfit Model.
//
// Errors: ErrBadConfig (wrapping estimate.ErrUnknownMethod for bad method
// names), or when the none label does not have type L.
func New[L cmp.Ordered](opts ...Option) (*Model[L], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.errs) > 0 {
		return nil, fmt.Errorf("New: %w: %w", ErrBadConfig, o.errs[0])
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	m := &Model[L]{cfg: o.cfg, logger: o.logger, estOpts: o.estOpts}
	if o.none != nil {
		v, ok := o.none.(L)
		if !ok {
			var zero L
			return nil, fmt.Errorf("New: %w: none label %v (%T) is not of label type %T",
				ErrBadConfig, o.none, o.none, zero)
		}
		m.none = &v
	}

	return m, nil
}

// Fit estimates the model from seqs and returns the receiver for chaining.
// On error the previous fit, if any, is left untouched.
//
// Errors: counts.ErrBadLag, estimate errors (ErrNotConverged), matrix
// validation errors.
func (m *Model[L]) Fit(seqs [][]L) (*Model[L], error) {
	// Stage 1: raw counts over every observed label
	raw, mapping, err := counts.Transitions(seqs, m.cfg.LagTime, m.countOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	// Stage 2: ergodic trimming
	c := raw
	if m.cfg.ErgodicCutoff >= 1 {
		trimmed, sub, rep, err := ergodic.Trim(raw, m.cfg.ErgodicCutoff)
		if err != nil {
			return nil, fmt.Errorf("Fit: %w", err)
		}
		m.logger.Info("ergodic trim",
			zap.Int("components", rep.Components),
			zap.Float64("cutoff", m.cfg.ErgodicCutoff),
			zap.Int("selected", rep.Selected),
			zap.Float64("population_percent", rep.Percent),
			zap.Int("states_kept", rep.Kept),
			zap.Int("states_observed", mapping.Len()),
		)
		c = trimmed
		mapping = labels.Compose(mapping, sub)
	}

	// Stage 3: transition matrix and populations
	if m.cfg.Method == estimate.MLE && m.cfg.ErgodicCutoff < 1 {
		m.logger.Warn("reversible MLE without ergodic trimming may not converge to a meaningful estimate",
			zap.Float64("cutoff", m.cfg.ErgodicCutoff))
	}
	estOpts := append([]estimate.Option{estimate.WithPrior(m.cfg.PriorCounts)}, m.estOpts...)
	t, pi, err := estimate.Estimate(c, m.cfg.Method, estOpts...)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	// Stage 4: commit as a unit
	m.mapping = mapping
	m.counts = c
	m.transmat = t
	m.populations = pi
	m.fitted = true
	m.dirty = true
	m.eig = nil

	return m, nil
}

func (m *Model[L]) countOptions() []counts.Option[L] {
	if m.none == nil {
		return nil
	}

	return []counts.Option[L]{counts.WithNone(*m.none)}
}

// Config returns the validated configuration.
func (m *Model[L]) Config() Config { return m.cfg }

// Fitted reports whether Fit has succeeded at least once.
func (m *Model[L]) Fitted() bool { return m.fitted }

// NStates returns the number of states retained by the last fit, 0 when unfit.
func (m *Model[L]) NStates() int {
	if !m.fitted {
		return 0
	}

	return m.mapping.Len()
}

// Mapping returns the label→state mapping. Mappings are immutable.
func (m *Model[L]) Mapping() (*labels.Mapping[L], error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return m.mapping, nil
}

// StateLabels returns the label of every state, in state order.
func (m *Model[L]) StateLabels() ([]L, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return m.mapping.Labels(), nil
}

// Counts returns a copy of the (trimmed) count matrix.
func (m *Model[L]) Counts() (*mat.Dense, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return matrix.Clone(m.counts), nil
}

// TransitionMatrix returns a copy of the estimated transition matrix.
func (m *Model[L]) TransitionMatrix() (*mat.Dense, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return matrix.Clone(m.transmat), nil
}

// Populations returns a copy of the stationary distribution.
func (m *Model[L]) Populations() ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), m.populations...), nil
}
