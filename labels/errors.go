package labels

import "errors"

var (
	// ErrUnknownMode indicates an unrecognised transform mode name.
	ErrUnknownMode = errors.New(`labels: mode must be one of ["clip", "fill"]`)

	// ErrIndexOutOfRange indicates an internal index outside [0, n_states-1].
	ErrIndexOutOfRange = errors.New("labels: sequence must be between 0 and n_states-1")

	// ErrDuplicateLabel indicates a label listed more than once.
	ErrDuplicateLabel = errors.New("labels: duplicate label")
)
