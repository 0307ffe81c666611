package core_test

import (
	"testing"

	"github.com/Excalibur888/PotooMaps/builder"
	"github.com/Excalibur888/PotooMaps/core"
)

// buildRing returns an n-node graph where every node links to its next 8 ids,
// roughly the degree of a municipality in the adjacency table.
func buildRing(b *testing.B, n int, backing core.Backing) core.Graph {
	g, err := builder.BuildGraph(n,
		[]core.GraphOption{core.WithBacking(backing)},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithIntWeight(1, 8)},
		builder.Ring(n, 8))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkSuccessors(b *testing.B, backing core.Backing) {
	const n = 2000
	g := buildRing(b, n, backing)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Successors(i % n)
	}
}

// BenchmarkSuccessors_List measures O(out-degree) successor snapshots.
func BenchmarkSuccessors_List(b *testing.B) { benchmarkSuccessors(b, core.BackingList) }

// BenchmarkSuccessors_Matrix measures O(V) row scans.
func BenchmarkSuccessors_Matrix(b *testing.B) { benchmarkSuccessors(b, core.BackingMatrix) }

// BenchmarkSetEdge_List measures insert-then-delete churn on the list backing.
func BenchmarkSetEdge_List(b *testing.B) {
	const n = 2000
	g := buildRing(b, n, core.BackingList)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := i % n
		_ = g.SetEdge(u, (u+n/2)%n, 1)
		_ = g.SetEdge(u, (u+n/2)%n, -1)
	}
}
