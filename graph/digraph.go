package graph

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrVertexOutOfRange indicates an arc endpoint outside the vertex set.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrBadOrder indicates a negative vertex count.
	ErrBadOrder = errors.New("graph: order must be >= 0")
)

// Digraph is a directed graph on vertices 0..Order()-1.
//
// Not safe for concurrent mutation; concurrent readers are fine once built.
type Digraph struct {
	adj  [][]int // adj[u] = sorted successors of u
	arcs int     // number of arcs
}

// New returns a Digraph with n isolated vertices.
func New(n int) (*Digraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadOrder)
	}

	return &Digraph{adj: make([][]int, n)}, nil
}

// FromCounts builds the graph with an arc i→j for every counts[i][j] >= threshold.
// counts must be square; callers validate it upstream.
//
// Complexity: O(n²).
func FromCounts(counts mat.Matrix, threshold float64) *Digraph {
	r, _ := counts.Dims()
	g := &Digraph{adj: make([][]int, r)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			if counts.At(i, j) >= threshold {
				// j increases monotonically, so appending keeps rows sorted.
				g.adj[i] = append(g.adj[i], j)
				g.arcs++
			}
		}
	}

	return g
}

// Order returns the number of vertices.
func (g *Digraph) Order() int { return len(g.adj) }

// Size returns the number of arcs.
func (g *Digraph) Size() int { return g.arcs }

// AddArc inserts u→v. Adding an existing arc is a no-op.
func (g *Digraph) AddArc(u, v int) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("AddArc(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	pos, found := slices.BinarySearch(g.adj[u], v)
	if found {
		return nil
	}
	g.adj[u] = slices.Insert(g.adj[u], pos, v)
	g.arcs++

	return nil
}

// Successors returns the sorted successors of u, or nil when u is out of
// range. The returned slice must not be modified.
func (g *Digraph) Successors(u int) []int {
	if !g.valid(u) {
		return nil
	}

	return g.adj[u]
}

// Transpose returns a new graph with every arc reversed.
//
// Complexity: O(V + E).
func (g *Digraph) Transpose() *Digraph {
	t := &Digraph{adj: make([][]int, len(g.adj)), arcs: g.arcs}
	for u, succ := range g.adj {
		for _, v := range succ {
			// u visited in ascending order ⇒ t.adj[v] stays sorted.
			t.adj[v] = append(t.adj[v], u)
		}
	}

	return t
}

func (g *Digraph) valid(v int) bool { return v >= 0 && v < len(g.adj) }
