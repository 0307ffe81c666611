package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Excalibur888/PotooMaps/bfs"
	"github.com/Excalibur888/PotooMaps/core"
)

// diamond builds 0→{1,2}, 1→3, 2→3, 3→4 plus an isolated node 5.
func diamond(t *testing.T, b core.Backing) core.Graph {
	t.Helper()
	g, err := core.NewGraph(6, core.WithBacking(b))
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 2}, {0, 1}, {1, 3}, {2, 3}, {3, 4}} {
		require.NoError(t, g.SetEdge(e[0], e[1], 1))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	g := diamond(t, core.BackingList)
	_, err := bfs.BFS(nil, 0, nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(g, 6, make([]bool, 6))
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BFS(g, 0, make([]bool, 3))
	require.ErrorIs(t, err, bfs.ErrVisitedSize)
	_, err = bfs.BFS(g, 0, make([]bool, 6), bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	for _, b := range []core.Backing{core.BackingList, core.BackingMatrix} {
		g := diamond(t, b)
		visited := make([]bool, 6)
		res, err := bfs.BFS(g, 0, visited)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2, 3, 4}, res.Order, b.String())
		require.Equal(t, []int{0, 1, 1, 2, 3, bfs.Unreached}, res.Depth)
		require.Equal(t, []bool{true, true, true, true, true, false}, visited)

		path, err := res.PathTo(4)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 3, 4}, path)
		_, err = res.PathTo(5)
		require.Error(t, err)
	}
}

func TestBFS_SharedVisitedBuffer(t *testing.T) {
	g := diamond(t, core.BackingList)
	visited := make([]bool, 6)
	visited[3] = true

	order, err := bfs.Walk(g, 0, visited)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, order, "pre-marked nodes block expansion")

	order, err = bfs.Walk(g, 1, visited)
	require.NoError(t, err)
	require.Empty(t, order, "already visited start yields an empty walk")
}

func TestBFS_HooksAndLimits(t *testing.T) {
	g := diamond(t, core.BackingList)

	var enq, deq []int
	res, err := bfs.BFS(g, 0, make([]bool, 6),
		bfs.WithMaxDepth(1),
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
	require.Equal(t, enq, deq)

	res, err = bfs.BFS(g, 0, make([]bool, 6), bfs.WithFilterEdge(func(e core.Edge) bool {
		return e.Target != 1
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 4}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, make([]bool, 6), bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestComponents(t *testing.T) {
	for _, b := range []core.Backing{core.BackingList, core.BackingMatrix} {
		// 0→1, 2→1 joined through 1's in-edge; 3 alone; 4→5.
		g, err := core.NewGraph(6, core.WithBacking(b))
		require.NoError(t, err)
		require.NoError(t, g.SetEdge(0, 1, 1))
		require.NoError(t, g.SetEdge(2, 1, 1))
		require.NoError(t, g.SetEdge(4, 5, 1))

		comps, err := bfs.Components(g)
		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1, 2}, {3}, {4, 5}}, comps, b.String())
	}

	// 3 reaches 0 only backwards: successors of 0 are queued before its predecessors.
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(3, 0, 1))
	require.NoError(t, g.SetEdge(0, 2, 1))
	require.NoError(t, g.SetEdge(1, 2, 1))
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2, 3, 1}}, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
