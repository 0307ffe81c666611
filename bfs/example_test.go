package bfs_test

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/bfs"
	"github.com/Excalibur888/PotooMaps/core"
)

// ExampleBFS prints the layers reached from node 0 in a small road network.
func ExampleBFS() {
	g, _ := core.NewGraph(5)
	_ = g.SetEdge(0, 1, 3)
	_ = g.SetEdge(0, 2, 1)
	_ = g.SetEdge(2, 3, 1)
	_ = g.SetEdge(3, 4, 1)
	_ = g.SetEdge(1, 4, 9)

	res, err := bfs.BFS(g, 0, make([]bool, g.Size()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		fmt.Printf("%d@%d ", id, res.Depth[id])
	}
	fmt.Println()
	// Output:
	// 0@0 1@1 2@1 4@2 3@2
}
