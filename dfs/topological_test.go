package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Excalibur888/PotooMaps/core"
	"github.com/Excalibur888/PotooMaps/dfs"
)

func TestTopologicalSort(t *testing.T) {
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	edges := [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}}
	for _, e := range edges {
		require.NoError(t, g.SetEdge(e[0], e[1], 0))
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)
	pos := make(map[int]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range edges {
		require.Less(t, pos[e[0]], pos[e[1]], "%d must precede %d", e[0], e[1])
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := sample(t, core.BackingList)
	_, err := dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	loop, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, loop.SetEdge(1, 1, 0))
	_, err = dfs.TopologicalSort(loop)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}
