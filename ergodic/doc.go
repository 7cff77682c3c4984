// Package ergodic trims a transition count matrix down to its maximal
// strongly ergodic subgraph.
//
// An arc i→j exists when counts[i][j] >= cutoff. The strongly connected
// components of that graph are scored by population, the column sum of
// the original counts over their states, and the most populated component
// is kept. Rows and columns of retained states are copied unchanged (no
// renormalization) and renumbered densely in ascending original order.
//
// Degenerate input: when every state is its own component and the winner has
// no self-transition, Trim returns an empty matrix and an empty mapping
// instead of a one-state model with no data.
//
// Complexity: O(n²) to build the graph and copy the block, O(V+E) for SCC.
package ergodic
