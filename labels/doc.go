// Package labels implements the bijection between external state labels and
// the dense internal indices used by count and transition matrices.
//
// What:
//
//   - Mapping[L]: two ordered tables, label→index and index→label, with O(1)
//     lookup in both directions. Indices are always dense: 0..Len()-1.
//   - Compose: chain a label mapping with an index→index sub-mapping (for
//     example the one produced by ergodic trimming), dropping labels whose
//     index has no image.
//   - Fill / Clip: translate label sequences into internal indices under the
//     two policies for unmapped labels.
//   - Inverse: translate internal indices back to labels.
//
// Labels may be any cmp.Ordered type. A floating point NaN is never mapped:
// it does not compare equal to itself, so it can never be found in the table.
//
// Errors:
//
//   - ErrUnknownMode       transform mode is neither "clip" nor "fill"
//   - ErrIndexOutOfRange   an index passed to Inverse is outside [0, Len()-1]
//   - ErrDuplicateLabel    a label appears twice in an explicit label list
//
// Complexity:
//
//   - FromLabels:  O(n log n)
//   - Index/Label: O(1)
//   - Fill/Clip/Inverse: O(len(seq))
package labels
