// Package dfs implements depth-first search (single-source and forest) on
// integer-vertex directed graphs.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks.
//   - Memory: O(V) for the recursion stack and result slices.
package dfs

import "fmt"

// walker encapsulates state during DFS.
type walker struct {
	graph Graph    // underlying graph
	opts  *Options // traversal options
	res   *Result  // result collector
}

// DFS performs depth-first search on g. With WithFullTraversal or WithRoots
// it covers all components; otherwise it starts only from start.
// On a hook error the partial Result is returned with an empty Order.
func DFS(g Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	n := g.Order()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: start %d of %d: %w", start, n, ErrStartVertexNotFound)
	}

	// 4. Initialize result
	res := newResult(n)
	w := &walker{graph: g, opts: &dopts, res: res}

	// 5. Traverse: forest or single tree
	var err error
	if dopts.FullTraversal {
		roots := dopts.Roots
		if roots == nil {
			roots = make([]int, n)
			for v := range roots {
				roots[v] = v
			}
		}
		for _, v := range roots {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("dfs: root %d of %d: %w", v, n, ErrStartVertexNotFound)
			}
			if !res.Visited[v] {
				if err = w.tree(v); err != nil {
					return res, err
				}
			}
		}
	} else if err = w.tree(start); err != nil {
		return res, err
	}

	return res, nil
}

func newResult(n int) *Result {
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}

	return res
}

// tree runs the OnRoot hook and explores one DFS tree from root.
func (w *walker) tree(root int) error {
	if w.opts.OnRoot != nil {
		if err := w.opts.OnRoot(root); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnRoot hook for %d: %w", root, err)
		}
	}

	return w.traverse(root, 0)
}

// traverse visits v at the given depth, recursing into successors.
func (w *walker) traverse(v int, depth int) error {
	// 1. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 3. Explore each successor
	for _, u := range w.graph.Successors(v) {
		if !w.res.Visited[u] {
			w.res.Parent[u] = v
			if err := w.traverse(u, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
