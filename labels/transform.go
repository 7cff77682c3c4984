package labels

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how unmapped labels are treated by a transform.
type Mode int

const (
	// Clip removes unmapped labels, splitting the sequence around them.
	Clip Mode = iota

	// Fill replaces unmapped labels with NaN.
	Fill
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case Clip:
		return "clip"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "clip" or "fill" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clip":
		return Clip, nil
	case "fill":
		return Fill, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Fill maps seq to internal indices as float64, with NaN for every label
// that has no index. The output has the same length as seq.
//
// Complexity: O(len(seq)).
func (m *Mapping[L]) Fill(seq []L) []float64 {
	out := make([]float64, len(seq))
	for t, l := range seq {
		if i, ok := m.Index(l); ok {
			out[t] = float64(i)
		} else {
			out[t] = math.NaN()
		}
	}

	return out
}

// Clip maps seq to internal indices and removes unmapped labels. Every run
// of mapped labels becomes its own output sequence, so a gap in the middle
// splits seq in two. Empty runs are not emitted.
//
// Complexity: O(len(seq)).
func (m *Mapping[L]) Clip(seq []L) [][]int {
	var (
		out [][]int
		run []int
	)
	for _, l := range seq {
		i, ok := m.Index(l)
		if !ok {
			if len(run) > 0 {
				out = append(out, run)
				run = nil
			}
			continue
		}
		run = append(run, i)
	}
	if len(run) > 0 {
		out = append(out, run)
	}

	return out
}

// Inverse maps internal indices back to labels. Any index outside
// [0, Len()-1] fails the whole call with ErrIndexOutOfRange.
//
// Complexity: O(len(seq)).
func (m *Mapping[L]) Inverse(seq []int) ([]L, error) {
	out := make([]L, len(seq))
	var ok bool
	for t, i := range seq {
		if out[t], ok = m.Label(i); !ok {
			return nil, fmt.Errorf("Inverse: index %d at frame %d: %w", i, t, ErrIndexOutOfRange)
		}
	}

	return out, nil
}

// Integral reports whether every value of v is a whole number (no NaN), and
// if so returns v converted to ints.
func Integral(v []float64) ([]int, bool) {
	out := make([]int, len(v))
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return nil, false
		}
		out[i] = int(x)
	}

	return out, true
}
