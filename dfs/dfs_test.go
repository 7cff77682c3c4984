package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmsm/dfs"
	"github.com/katalvlaran/lvmsm/graph"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *graph.Digraph {
	g, _ := graph.New(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddArc(i, i+1)
	}

	return g
}

// build creates a graph of order n from an arc list.
func build(t *testing.T, n int, arcs [][2]int) *graph.Digraph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, g.AddArc(a[0], a[1]))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(buildChain(2), 5)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SelfLoop(t *testing.T) {
	g := build(t, 1, [][2]int{{0, 0}})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, res.Order)
	assert.Equal(t, 1, res.Parent[2])
	assert.Equal(t, -1, res.Parent[0])
	assert.Equal(t, 2, res.Depth[2])
}

func TestDFS_Disconnected(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2])
	assert.Equal(t, -1, res.Depth[2])
}

func TestDFS_OnExitOrder(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}, {0, 2}})
	var exits []int
	res, err := dfs.DFS(g, 0, dfs.WithOnExit(func(v int) error {
		exits = append(exits, v)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, exits)
	assert.Equal(t, res.Order, exits)
}

func TestDFS_OnExitError(t *testing.T) {
	halt := errors.New("halt")
	res, err := dfs.DFS(buildChain(2), 0, dfs.WithOnExit(func(v int) error {
		if v == 1 {
			return halt
		}

		return nil
	}))
	assert.ErrorIs(t, err, halt)
	assert.Empty(t, res.Order)
}

func TestDFS_FullTraversalWithRoots(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {2, 3}})
	var roots []int
	res, err := dfs.DFS(g, 0,
		dfs.WithRoots([]int{3, 2, 1, 0}),
		dfs.WithOnRoot(func(v int) error {
			roots = append(roots, v)

			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, roots)
	assert.Equal(t, []int{3, 2, 1, 0}, res.Order)

	_, err = dfs.DFS(g, 0, dfs.WithRoots([]int{9}))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}
