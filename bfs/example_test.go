package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
)

// ExampleBFS walks a small square A—B—D—C—A.
func ExampleBFS() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		g.AddNode(id, 0)
	}
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Depth["D"])
	fmt.Println(bfs.Connected(g))
	// Output:
	// [A B C D] 2
	// true
}
