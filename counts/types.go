package counts

import (
	"cmp"
	"errors"
)

// ErrBadLag is returned when the lag is not a positive integer.
var ErrBadLag = errors.New("counts: lag time must be > 0")

// Option configures Transitions.
type Option[L cmp.Ordered] func(*options[L])

type options[L cmp.Ordered] struct {
	missing func(L) bool // extra missing-data predicate; nil = NaN only
}

// WithMissing marks every label for which fn returns true as missing data.
// NaN is missing regardless. A nil fn has no effect.
func WithMissing[L cmp.Ordered](fn func(L) bool) Option[L] {
	return func(o *options[L]) {
		if fn != nil {
			o.missing = fn
		}
	}
}

// WithNone marks the single label none as missing data.
func WithNone[L cmp.Ordered](none L) Option[L] {
	return WithMissing(func(l L) bool { return l == none })
}

// isMissing reports whether l is NaN or matches the configured predicate.
func (o *options[L]) isMissing(l L) bool {
	if l != l {
		return true
	}

	return o.missing != nil && o.missing(l)
}
