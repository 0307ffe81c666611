package bfs

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
)

// Components returns the weakly connected components of g: edges are
// followed in both directions. Components are ordered by their smallest
// id, and each lists its nodes in breadth-first discovery order starting
// from that id. A node's successors are queued before its predecessors.
//
// In-edges are collected in one pass over Successors.
//
// Time: O(V + E) with BackingList, O(V²) with BackingMatrix. Memory: O(V + E).
func Components(g core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Size()
	out := make([][]int, n)
	in := make([][]int, n)
	for u := 0; u < n; u++ {
		succ, err := g.Successors(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: successors of %d: %w", u, err)
		}
		out[u] = make([]int, len(succ))
		for i, e := range succ {
			out[u][i] = e.Target
			in[e.Target] = append(in[e.Target], u)
		}
	}

	seen := make([]bool, n)
	var comps [][]int
	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		queue := []int{root}
		seen[root] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, nbrs := range [2][]int{out[u], in[u]} {
				for _, v := range nbrs {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
