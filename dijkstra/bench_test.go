package dijkstra_test

import (
	"testing"

	"github.com/Excalibur888/PotooMaps/builder"
	"github.com/Excalibur888/PotooMaps/core"
	"github.com/Excalibur888/PotooMaps/dijkstra"
)

// grid builds a 50×100 two-way grid with weights in [1,21), a planar
// stand-in for the municipality graph.
func grid(b *testing.B) core.Graph {
	g, err := builder.BuildGraph(5000, nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 21)},
		builder.Grid(50, 100))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkQueue(b *testing.B, q dijkstra.Queue) {
	g := grid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, i%5000, dijkstra.WithQueue(q))
	}
}

// BenchmarkDijkstra_Linear measures the O(V²) scan on a sparse graph.
func BenchmarkDijkstra_Linear(b *testing.B) { benchmarkQueue(b, dijkstra.QueueLinear) }

// BenchmarkDijkstra_Heap measures the heap variant on the same graph.
func BenchmarkDijkstra_Heap(b *testing.B) { benchmarkQueue(b, dijkstra.QueueHeap) }
