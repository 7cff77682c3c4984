package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvmsm/dfs"
	"github.com/katalvlaran/lvmsm/graph"
)

// ExampleStronglyConnected splits a small state graph into its ergodic parts.
//
//	0 ⇄ 1 → 2 ⇄ 3
func ExampleStronglyConnected() {
	g, _ := graph.New(4)
	for _, a := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 3}, {3, 2}} {
		_ = g.AddArc(a[0], a[1])
	}

	c, err := dfs.StronglyConnected(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Members)
	// Output:
	// [[0 1] [2 3]]
}

// ExampleDFS prints the post-order of a diamond.
func ExampleDFS() {
	g, _ := graph.New(4)
	for _, a := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_ = g.AddArc(a[0], a[1])
	}
	res, _ := dfs.DFS(g, 0)
	fmt.Println(res.Order)
	// Output:
	// [3 1 2 0]
}
