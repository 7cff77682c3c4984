// Package dfs: strongly connected components via Kosaraju's algorithm.
//
// Pass 1 runs a forest DFS over g and records the post-order.
// Pass 2 runs a forest DFS over the transpose of g, trying roots in reverse
// post-order; every tree of pass 2 is exactly one component.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the transposed adjacency
package dfs

import (
	"slices"

	"github.com/katalvlaran/lvmsm/graph"
)

// Components is a partition of the vertex set into strongly connected
// components.
//
// Members are sorted ascending within each component, and components are
// ordered by their smallest member, so the result depends only on the graph.
type Components struct {
	// Members[c] lists the vertices of component c.
	Members [][]int

	// Of[v] is the component index of vertex v.
	Of []int
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.Members) }

// StronglyConnected computes the strongly connected components of g.
// Every vertex belongs to exactly one component; an isolated vertex is a
// component of its own, with or without a self-loop.
func StronglyConnected(g Graph) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()

	// Pass 1: finishing order on g.
	roots := make([]int, 0, n)
	if _, err := DFS(g, 0, WithFullTraversal(), WithOnExit(func(v int) error {
		roots = append(roots, v)

		return nil
	})); err != nil {
		return nil, err
	}
	slices.Reverse(roots)

	// Pass 2: trees of the transpose, rooted in reverse finishing order.
	rev, err := transposeOf(g)
	if err != nil {
		return nil, err
	}
	of := make([]int, n)
	comp := -1
	if _, err = DFS(rev, 0,
		WithRoots(roots),
		WithOnRoot(func(int) error {
			comp++

			return nil
		}),
		WithOnVisit(func(v int) error {
			of[v] = comp

			return nil
		}),
	); err != nil {
		return nil, err
	}

	return canonical(of, comp+1), nil
}

// canonical renumbers components by their smallest member.
func canonical(of []int, count int) *Components {
	members := make([][]int, count)
	for v, c := range of {
		members[c] = append(members[c], v) // v ascending ⇒ members sorted
	}
	slices.SortFunc(members, func(a, b []int) int { return a[0] - b[0] })

	out := &Components{Members: members, Of: make([]int, len(of))}
	for c, ms := range members {
		for _, v := range ms {
			out.Of[v] = c
		}
	}

	return out
}

// transposer is implemented by graphs that can reverse themselves.
type transposer interface {
	Transpose() *graph.Digraph
}

// transposeOf returns g with every arc reversed.
func transposeOf(g Graph) (*graph.Digraph, error) {
	if t, ok := g.(transposer); ok {
		return t.Transpose(), nil
	}
	n := g.Order()
	rev, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		for _, v := range g.Successors(u) {
			if err = rev.AddArc(v, u); err != nil {
				return nil, err
			}
		}
	}

	return rev, nil
}
