// Package dfs defines types and options for depth-first search traversal,
// including pre-/post-order hooks and full-graph (forest) traversal.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil Graph is passed to DFS or
	// StronglyConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Graph is the minimal read-only view of a directed graph on the vertices
// 0..Order()-1. graph.Digraph satisfies it.
type Graph interface {
	// Order returns the number of vertices.
	Order() int

	// Successors returns the out-neighbors of v in a stable order.
	Successors(v int) []int
}

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnRoot, if non-nil, is invoked when a new DFS tree starts, before
	// OnVisit for that root. Returning an error aborts traversal.
	OnRoot func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(v int) error

	// FullTraversal, if true, restarts DFS from every unvisited vertex.
	FullTraversal bool

	// Roots, when FullTraversal is set, fixes the order in which unvisited
	// vertices are tried as new roots. Nil means 0..Order()-1.
	Roots []int
}

// DefaultOptions returns Options with no hooks and single-source traversal.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnRoot installs fn as a hook called once per DFS tree, with its root.
func WithOnRoot(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnRoot = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithFullTraversal enables forest traversal over every vertex.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// WithRoots enables forest traversal and fixes the root order.
func WithRoots(order []int) Option {
	return func(o *Options) {
		o.FullTraversal = true
		o.Roots = order
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth[v] is the tree depth of v; -1 if unvisited.
	Depth []int

	// Parent[v] is the vertex from which v was discovered; -1 for roots and
	// unvisited vertices.
	Parent []int

	// Visited flags which vertices were reached.
	Visited []bool
}
