package core

import (
	"cmp"
	"slices"
)

// listGraph keeps, for every node, its out-edges sorted by target id.
type listGraph struct {
	out   [][]Edge
	inDeg []int
	edges int
}

func newListGraph(size int) *listGraph {
	return &listGraph{
		out:   make([][]Edge, size),
		inDeg: make([]int, size),
	}
}

func (g *listGraph) Size() int        { return len(g.out) }
func (g *listGraph) Backing() Backing { return BackingList }
func (g *listGraph) EdgeCount() int   { return g.edges }

// search locates target in u's sorted out-edges.
func (g *listGraph) search(u, target int) (int, bool) {
	return slices.BinarySearchFunc(g.out[u], target, func(e Edge, t int) int {
		return cmp.Compare(e.Target, t)
	})
}

// SetEdge inserts, updates or deletes u→v.
//
// Complexity: O(log d) to locate plus O(d) to shift on insert or delete,
// where d is the out-degree of u.
func (g *listGraph) SetEdge(u, v int, weight float64) error {
	if err := checkPair(len(g.out), u, v); err != nil {
		return err
	}
	if err := checkWeight(weight); err != nil {
		return err
	}

	i, found := g.search(u, v)
	switch {
	case weight < 0:
		if found {
			g.out[u] = slices.Delete(g.out[u], i, i+1)
			g.inDeg[v]--
			g.edges--
		}
	case found:
		g.out[u][i].Weight = weight
	default:
		g.out[u] = slices.Insert(g.out[u], i, Edge{Source: u, Target: v, Weight: weight})
		g.inDeg[v]++
		g.edges++
	}

	return nil
}

func (g *listGraph) Weight(u, v int) (float64, error) {
	if err := checkPair(len(g.out), u, v); err != nil {
		return NoEdge, err
	}
	if i, found := g.search(u, v); found {
		return g.out[u][i].Weight, nil
	}

	return NoEdge, nil
}

func (g *listGraph) HasEdge(u, v int) (bool, error) {
	if err := checkPair(len(g.out), u, v); err != nil {
		return false, err
	}
	_, found := g.search(u, v)

	return found, nil
}

func (g *listGraph) OutDegree(u int) (int, error) {
	if err := checkNode(len(g.out), u); err != nil {
		return 0, err
	}

	return len(g.out[u]), nil
}

func (g *listGraph) InDegree(u int) (int, error) {
	if err := checkNode(len(g.out), u); err != nil {
		return 0, err
	}

	return g.inDeg[u], nil
}

// Successors copies u's out-edge slice. Complexity: O(d).
func (g *listGraph) Successors(u int) ([]Edge, error) {
	if err := checkNode(len(g.out), u); err != nil {
		return nil, err
	}
	succ := make([]Edge, len(g.out[u]))
	copy(succ, g.out[u])

	return succ, nil
}

// Predecessors probes every node's out-edges for v.
// Complexity: O(V log d); the in-degree counter sizes the result exactly.
func (g *listGraph) Predecessors(v int) ([]Edge, error) {
	if err := checkNode(len(g.out), v); err != nil {
		return nil, err
	}
	pred := make([]Edge, 0, g.inDeg[v])
	for u := range g.out {
		if len(pred) == g.inDeg[v] {
			break
		}
		if i, found := g.search(u, v); found {
			pred = append(pred, g.out[u][i])
		}
	}

	return pred, nil
}
