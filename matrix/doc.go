// SPDX-License-Identifier: MIT

// Package matrix collects the validation checks and small dense kernels shared
// by the estimation pipeline: count accumulation, ergodic trimming, transition
// matrix estimation and spectral decomposition.
//
// All matrices are gonum *mat.Dense values. An empty (0×0) matrix is the zero
// value mat.Dense{}; gonum refuses to allocate zero-sized matrices, so every
// helper here accepts and returns that form for "no states".
//
// Validators return plain sentinels wrapped with a short tag, so callers can
// match with errors.Is and still see which check failed.
//
// Complexity: validators and kernels are O(n²) over an n×n matrix unless noted.
package matrix
