package dijkstra_test

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
	"github.com/Excalibur888/PotooMaps/dijkstra"
)

// ExampleShortestPath finds the cheapest route in a small directed network
// where the direct edge is not the shortest option.
func ExampleShortestPath() {
	g, _ := core.NewGraph(4)
	_ = g.SetEdge(0, 3, 10)
	_ = g.SetEdge(0, 1, 2)
	_ = g.SetEdge(1, 2, 3)
	_ = g.SetEdge(2, 3, 1)

	p, err := dijkstra.ShortestPath(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	// Output:
	// 0 -> 1 -> 2 -> 3 (6)
}

// ExampleDijkstra shows the full predecessor trace of a run without target.
func ExampleDijkstra() {
	g, _ := core.NewGraph(4, core.WithBacking(core.BackingMatrix))
	_ = g.SetEdge(0, 1, 1.5)
	_ = g.SetEdge(1, 2, 1)
	_ = g.SetEdge(0, 2, 4)

	res, _ := dijkstra.Dijkstra(g, 0)
	fmt.Println(res.Predecessors)
	fmt.Println(res.Distances)
	// Output:
	// [-1 0 1 -1]
	// [0 1.5 2.5 +Inf]
}
