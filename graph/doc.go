// Package graph provides Digraph, a compact directed graph over the integer
// vertices 0..n-1, used to reason about connectivity of Markov states.
//
// The typical source is a transition count matrix: FromCounts adds an arc
// i→j for every entry counts[i][j] >= threshold. Self-loops are kept, and
// parallel arcs are never created.
//
// Determinism:
//
//   - Successors(v) is always sorted ascending.
//   - Transpose preserves that order.
//
// Errors:
//
//   - ErrVertexOutOfRange  an arc endpoint is outside [0, Order()-1]
//   - ErrBadOrder          a negative vertex count was requested
//
// Complexity:
//
//   - FromCounts: O(n²)
//   - AddArc:     O(d) for out-degree d (duplicate check, ordered insert)
//   - Transpose:  O(V + E)
package graph
