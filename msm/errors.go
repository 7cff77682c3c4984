package msm

import "errors"

var (
	// ErrNotFitted is returned by accessors called before a successful Fit.
	ErrNotFitted = errors.New("msm: model is not fitted")

	// ErrEmptyModel is returned when an operation needs at least one state
	// but trimming left none.
	ErrEmptyModel = errors.New("msm: model has no states")

	// ErrBadConfig indicates an invalid configuration value.
	ErrBadConfig = errors.New("msm: invalid configuration")

	// ErrNotDense indicates state labels that are not 0..n-1 without gaps.
	ErrNotDense = errors.New("msm: must have non-empty, zero-indexed, consecutive states")

	// ErrUnknownLabel indicates a start label that the model does not map.
	ErrUnknownLabel = errors.New("msm: label not in mapping")
)
