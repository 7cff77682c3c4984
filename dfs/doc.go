// Package dfs implements depth-first search and strongly connected
// components over integer-vertex directed graphs such as graph.Digraph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order, post-order and per-tree hooks and
//     full-graph (forest) traversal with an explicit root order.
//   - StronglyConnected: partitions the vertices into strongly connected
//     components using Kosaraju's two-pass algorithm built on DFS.
//
// Why:
//
//   - A Markov state model is only well defined on an ergodic set of states:
//     every state must be reachable from every other. The maximal strongly
//     connected component of the thresholded count graph is that set.
//
// Key Types:
//
//   - Graph: the read-only view DFS needs (Order, Successors)
//   - Option / Options: functional options for DFS
//   - Result: post-order, depth, parent and visited flags
//   - Components: SCC membership, both directions
//
// Complexity:
//
//   - DFS:               Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V+E) (transposed adjacency)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start vertex outside [0, Order()-1]
//   - hook errors             propagated from OnRoot, OnVisit or OnExit
package dfs
