package labels

import (
	"cmp"
	"fmt"
	"slices"
)

// Mapping is a bijection between labels of type L and the dense indices
// 0..Len()-1. The zero value is an empty mapping.
//
// A Mapping is immutable once built; it is safe for concurrent readers.
type Mapping[L cmp.Ordered] struct {
	index  map[L]int // label → index
	labels []L       // index → label
}

// FromLabels builds a Mapping that assigns indices in ascending label order.
// Duplicates are collapsed. NaN values are dropped.
//
// Complexity: O(n log n).
func FromLabels[L cmp.Ordered](ls []L) *Mapping[L] {
	sorted := make([]L, 0, len(ls))
	for _, l := range ls {
		if l != l { // NaN
			continue
		}
		sorted = append(sorted, l)
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return fromOrdered(sorted)
}

// FromOrdered builds a Mapping where ls[i] receives index i.
// It returns ErrDuplicateLabel if a label repeats.
//
// Complexity: O(n).
func FromOrdered[L cmp.Ordered](ls []L) (*Mapping[L], error) {
	seen := make(map[L]struct{}, len(ls))
	for _, l := range ls {
		if _, dup := seen[l]; dup || l != l {
			return nil, fmt.Errorf("FromOrdered: %v: %w", l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return fromOrdered(slices.Clone(ls)), nil
}

// fromOrdered assumes ls is duplicate-free and takes ownership of it.
func fromOrdered[L cmp.Ordered](ls []L) *Mapping[L] {
	idx := make(map[L]int, len(ls))
	for i, l := range ls {
		idx[l] = i
	}

	return &Mapping[L]{index: idx, labels: ls}
}

// Len returns the number of mapped labels (n_states).
func (m *Mapping[L]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.labels)
}

// Index returns the internal index for label l.
func (m *Mapping[L]) Index(l L) (int, bool) {
	if m == nil {
		return 0, false
	}
	i, ok := m.index[l]

	return i, ok
}

// Label returns the label stored at internal index i.
func (m *Mapping[L]) Label(i int) (L, bool) {
	var zero L
	if m == nil || i < 0 || i >= len(m.labels) {
		return zero, false
	}

	return m.labels[i], true
}

// Contains reports whether l is mapped.
func (m *Mapping[L]) Contains(l L) bool {
	_, ok := m.Index(l)

	return ok
}

// Labels returns the labels in index order. The slice is a copy.
func (m *Mapping[L]) Labels() []L {
	if m == nil {
		return nil
	}

	return slices.Clone(m.labels)
}

// Map returns the label→index table as a fresh map.
func (m *Mapping[L]) Map() map[L]int {
	out := make(map[L]int, m.Len())
	if m == nil {
		return out
	}
	for l, i := range m.index {
		out[l] = i
	}

	return out
}

// Compose returns the mapping l → sub(m(l)) for every label l whose index is
// in the domain of sub. Labels whose index sub does not map are dropped.
//
// sub is an index→index mapping whose labels are indices of m, and whose own
// indices are the new dense positions.
//
// Complexity: O(sub.Len()).
func Compose[L cmp.Ordered](m *Mapping[L], sub *Mapping[int]) *Mapping[L] {
	out := make([]L, 0, sub.Len())
	for _, i := range sub.Labels() {
		if l, ok := m.Label(i); ok {
			out = append(out, l)
		}
	}

	return fromOrdered(out)
}
