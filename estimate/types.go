package estimate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMethod indicates an unrecognised estimation method.
	ErrUnknownMethod = errors.New("estimate: reversible_type must be one of mle, transpose, none")

	// ErrBadPrior indicates a negative or non-finite prior count.
	ErrBadPrior = errors.New("estimate: prior counts must be finite and >= 0")

	// ErrNotConverged indicates the MLE iteration did not reach tolerance.
	ErrNotConverged = errors.New("estimate: reversible MLE did not converge")
)

// Method selects the transition matrix estimator.
type Method int

const (
	// MLE is the reversible maximum-likelihood estimator.
	MLE Method = iota

	// Transpose symmetrizes the counts before row normalization.
	Transpose

	// None row-normalizes the counts with no reversibility constraint.
	None
)

// Methods lists every valid Method in declaration order.
var Methods = []Method{MLE, Transpose, None}

// String returns the configuration name of m.
func (m Method) String() string {
	switch m {
	case MLE:
		return "mle"
	case Transpose:
		return "transpose"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Valid reports whether m is one of Methods.
func (m Method) Valid() bool {
	return m >= MLE && m <= None
}

// ParseMethod converts a case-insensitive configuration name into a Method.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Defaults for the MLE iteration.
const (
	// DefaultTolerance bounds the largest change in π between sweeps.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations caps the number of sweeps.
	DefaultMaxIterations = 100000
)

// Option configures Estimate.
type Option func(*Options)

// Options holds estimator parameters.
type Options struct {
	// Prior is added to every count before estimation.
	Prior float64

	// Tolerance is the MLE convergence threshold on max |Δπ|.
	Tolerance float64

	// MaxIterations caps MLE sweeps.
	MaxIterations int
}

// DefaultOptions returns zero prior and the default MLE iteration policy.
func DefaultOptions() Options {
	return Options{
		Prior:         0,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithPrior sets the pseudo-count added to each entry.
func WithPrior(p float64) Option {
	return func(o *Options) {
		o.Prior = p
	}
}

// WithTolerance sets the MLE convergence threshold. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithMaxIterations sets the MLE sweep cap. Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}
