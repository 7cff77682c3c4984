package msm

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmsm/estimate"
)

// Defaults for a new Model.
const (
	DefaultLagTime       = 1
	DefaultTimescales    = 10
	DefaultErgodicCutoff = 1.0
	DefaultPriorCounts   = 0.0
)

// Config is the validated configuration surface of a Model.
type Config struct {
	// LagTime is the frame offset between counted pairs. Must be > 0.
	LagTime int

	// NTimescales is the number of timescales to compute; 0 means n_states-1.
	NTimescales int

	// Method selects the transition matrix estimator.
	Method estimate.Method

	// ErgodicCutoff is the minimum count for an arc to join the ergodic
	// graph. Values below 1 disable trimming.
	ErgodicCutoff float64

	// PriorCounts is added to every count before estimation.
	PriorCounts float64
}

// Option configures a Model.
type Option func(*options)

type options struct {
	cfg     Config
	none    any
	logger  *zap.Logger
	estOpts []estimate.Option
	errs    []error // deferred parse errors, reported by New
}

func defaultOptions() options {
	return options{
		cfg: Config{
			LagTime:       DefaultLagTime,
			NTimescales:   DefaultTimescales,
			Method:        estimate.MLE,
			ErgodicCutoff: DefaultErgodicCutoff,
			PriorCounts:   DefaultPriorCounts,
		},
		logger: zap.NewNop(),
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLagTime sets the lag time.
func WithLagTime(lag int) Option {
	return func(o *options) { o.cfg.LagTime = lag }
}

// WithTimescales sets the number of timescales; 0 means all.
func WithTimescales(n int) Option {
	return func(o *options) { o.cfg.NTimescales = n }
}

// WithMethod selects the estimator.
func WithMethod(m estimate.Method) Option {
	return func(o *options) { o.cfg.Method = m }
}

// WithMethodName selects the estimator by its configuration name
// ("mle", "transpose" or "none"). An unknown name makes New fail.
func WithMethodName(name string) Option {
	return func(o *options) {
		m, err := estimate.ParseMethod(name)
		if err != nil {
			o.errs = append(o.errs, err)
			return
		}
		o.cfg.Method = m
	}
}

// WithErgodicCutoff sets the trimming threshold. Any value below 1
// disables trimming, since every observed arc has at least one count.
func WithErgodicCutoff(c float64) Option {
	return func(o *options) { o.cfg.ErgodicCutoff = c }
}

// WithPriorCounts sets the pseudo-count added to every entry.
func WithPriorCounts(p float64) Option {
	return func(o *options) { o.cfg.PriorCounts = p }
}

// WithNoneLabel marks v as a missing-data sentinel. v must have the Model's
// label type.
func WithNoneLabel(v any) Option {
	return func(o *options) { o.none = v }
}

// WithLogger routes diagnostics (trimming report, numerical warnings) to l.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEstimateOptions forwards extra options (tolerance, iteration cap) to
// estimate.Estimate. The prior is always taken from Config.PriorCounts.
func WithEstimateOptions(opts ...estimate.Option) Option {
	return func(o *options) { o.estOpts = append(o.estOpts, opts...) }
}

// Validate checks every field of c.
func (c Config) Validate() error {
	switch {
	case c.LagTime <= 0:
		return fmt.Errorf("%w: lag_time=%d must be > 0", ErrBadConfig, c.LagTime)
	case c.NTimescales < 0:
		return fmt.Errorf("%w: n_timescales=%d must be >= 0", ErrBadConfig, c.NTimescales)
	case !c.Method.Valid():
		return fmt.Errorf("%w: %w: %v", ErrBadConfig, estimate.ErrUnknownMethod, c.Method)
	case c.ErgodicCutoff < 0 || math.IsNaN(c.ErgodicCutoff) || math.IsInf(c.ErgodicCutoff, 0):
		return fmt.Errorf("%w: ergodic_cutoff=%g must be finite and >= 0", ErrBadConfig, c.ErgodicCutoff)
	case c.PriorCounts < 0 || math.IsNaN(c.PriorCounts) || math.IsInf(c.PriorCounts, 0):
		return fmt.Errorf("%w: prior_counts=%g must be finite and >= 0", ErrBadConfig, c.PriorCounts)
	}

	return nil
}
