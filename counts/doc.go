// Package counts builds transition count matrices from discrete label
// sequences.
//
// Given one or more sequences of labels and a lag τ, Transitions returns the
// dense matrix C where C[i][j] is the number of times any sequence was in
// state i at time t and in state j at time t+τ, together with the
// labels.Mapping that assigns every observed label its row/column index.
//
// Missing frames:
//
//   - A floating point NaN is always missing.
//   - WithMissing installs an extra predicate, typically matching a "none"
//     sentinel such as "" or -1.
//
// Missing labels never enter the mapping, and any pair with a missing side is
// dropped before counting. Sequences are independent: no pair spans two
// sequences, and a sequence shorter than τ+1 contributes nothing.
//
// Complexity: O(N log N + n²) time for N frames and n distinct labels,
// O(n²) memory.
package counts
