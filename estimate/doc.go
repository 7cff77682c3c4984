// Package estimate turns a transition count matrix into a row-stochastic
// transition matrix and its stationary distribution.
//
// Methods (closed set, see Method):
//
//   - MLE: maximum-likelihood reversible estimate. Solved with the
//     fixed-point iteration of Prinz et al. (J. Chem. Phys. 134, 174105) on
//     the symmetric flux matrix X, T = X/rowsum(X), π ∝ rowsum(X). Detailed
//     balance πᵢTᵢⱼ = πⱼTⱼᵢ holds at every iterate.
//   - Transpose: T from the symmetrized counts ½(C+Cᵀ) plus prior; π from
//     their column sums. Cheap, approximately reversible.
//   - None: T from C plus prior, no reversibility; π is the dominant left
//     eigenvector of T.
//
// Every method first adds the prior count to each entry of C.
//
// A state with no outgoing counts and a zero prior produces a NaN row, as
// 0/0 does; trim the counts or use a prior to avoid it.
//
// Errors:
//
//   - ErrUnknownMethod  unrecognised method name or value
//   - ErrBadPrior       prior is negative or not finite
//   - ErrNotConverged   MLE iteration hit the iteration cap
package estimate
