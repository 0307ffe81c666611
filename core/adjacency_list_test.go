package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Excalibur888/PotooMaps/core"
)

// GraphSuite runs the same contract checks against one backing.
type GraphSuite struct {
	suite.Suite
	backing core.Backing
	g       core.Graph
}

func (s *GraphSuite) SetupTest() {
	g, err := core.NewGraph(5, core.WithBacking(s.backing))
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestNewGraph() {
	require := require.New(s.T())
	require.Equal(5, s.g.Size())
	require.Equal(s.backing, s.g.Backing())
	require.Equal(0, s.g.EdgeCount())
	for u := 0; u < 5; u++ {
		out, err := s.g.OutDegree(u)
		require.NoError(err)
		require.Zero(out)
		succ, err := s.g.Successors(u)
		require.NoError(err)
		require.Empty(succ)
	}
}

func (s *GraphSuite) TestSetEdgeInsertUpdateDelete() {
	require := require.New(s.T())

	require.NoError(s.g.SetEdge(0, 1, 2.5))
	w, err := s.g.Weight(0, 1)
	require.NoError(err)
	require.Equal(2.5, w)
	s.requireDegrees(0, 1, 0)
	s.requireDegrees(1, 0, 1)

	// update in place keeps the counters
	require.NoError(s.g.SetEdge(0, 1, 7))
	w, _ = s.g.Weight(0, 1)
	require.Equal(7.0, w)
	s.requireDegrees(0, 1, 0)
	require.Equal(1, s.g.EdgeCount())

	// zero is a valid weight
	require.NoError(s.g.SetEdge(1, 0, 0))
	ok, err := s.g.HasEdge(1, 0)
	require.NoError(err)
	require.True(ok)

	// negative deletes
	require.NoError(s.g.SetEdge(0, 1, -1))
	w, _ = s.g.Weight(0, 1)
	require.Equal(core.NoEdge, w)
	s.requireDegrees(0, 0, 1)
	s.requireDegrees(1, 1, 0)

	// deleting an absent edge is a no-op
	require.NoError(s.g.SetEdge(3, 4, -5))
	require.Equal(1, s.g.EdgeCount())
	s.requireDegrees(3, 0, 0)
	s.requireDegrees(4, 0, 0)
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())
	require.NoError(s.g.SetEdge(2, 2, 1))
	s.requireDegrees(2, 1, 1)
	succ, _ := s.g.Successors(2)
	pred, _ := s.g.Predecessors(2)
	require.Equal([]core.Edge{{Source: 2, Target: 2, Weight: 1}}, succ)
	require.Equal(succ, pred)
}

func (s *GraphSuite) TestSuccessorsAndPredecessorsAreSorted() {
	require := require.New(s.T())
	for _, v := range []int{4, 1, 3, 0} {
		require.NoError(s.g.SetEdge(2, v, float64(v)))
	}
	for _, u := range []int{3, 0, 4} {
		require.NoError(s.g.SetEdge(u, 1, 10))
	}

	succ, err := s.g.Successors(2)
	require.NoError(err)
	require.Equal([]core.Edge{
		{Source: 2, Target: 0, Weight: 0},
		{Source: 2, Target: 1, Weight: 1},
		{Source: 2, Target: 3, Weight: 3},
		{Source: 2, Target: 4, Weight: 4},
	}, succ)

	pred, err := s.g.Predecessors(1)
	require.NoError(err)
	require.Equal([]core.Edge{
		{Source: 0, Target: 1, Weight: 10},
		{Source: 2, Target: 1, Weight: 1},
		{Source: 3, Target: 1, Weight: 10},
		{Source: 4, Target: 1, Weight: 10},
	}, pred)
}

func (s *GraphSuite) TestSnapshotsAreIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.SetEdge(0, 1, 1))
	succ, _ := s.g.Successors(0)
	succ[0].Weight = 99
	require.NoError(s.g.SetEdge(0, 2, 1))

	w, _ := s.g.Weight(0, 1)
	require.Equal(1.0, w)
	require.Len(succ, 1)
}

func (s *GraphSuite) TestOutOfRange() {
	require := require.New(s.T())
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		err := s.g.SetEdge(pair[0], pair[1], 1)
		require.ErrorIs(err, core.ErrNodeOutOfRange)
		_, err = s.g.Weight(pair[0], pair[1])
		require.ErrorIs(err, core.ErrNodeOutOfRange)
		_, err = s.g.HasEdge(pair[0], pair[1])
		require.ErrorIs(err, core.ErrNodeOutOfRange)
	}
	_, err := s.g.Successors(5)
	require.ErrorIs(err, core.ErrNodeOutOfRange)
	_, err = s.g.Predecessors(-1)
	require.ErrorIs(err, core.ErrNodeOutOfRange)
	_, err = s.g.OutDegree(7)
	require.ErrorIs(err, core.ErrNodeOutOfRange)
	_, err = s.g.InDegree(7)
	require.ErrorIs(err, core.ErrNodeOutOfRange)
	require.Equal(0, s.g.EdgeCount(), "rejected calls must not mutate")
}

func (s *GraphSuite) TestBadWeight() {
	require := require.New(s.T())
	require.ErrorIs(s.g.SetEdge(0, 1, math.NaN()), core.ErrBadWeight)
	require.ErrorIs(s.g.SetEdge(0, 1, math.Inf(1)), core.ErrBadWeight)
	require.Equal(0, s.g.EdgeCount())
}

func (s *GraphSuite) TestNegativeInfinityDeletes() {
	require := require.New(s.T())
	require.NoError(s.g.SetEdge(0, 1, 3))
	require.NoError(s.g.SetEdge(0, 1, math.Inf(-1)))
	w, err := s.g.Weight(0, 1)
	require.NoError(err)
	require.Equal(core.NoEdge, w)
	require.Equal(0, s.g.EdgeCount())
	s.requireDegrees(0, 0, 0)
	s.requireDegrees(1, 0, 0)
}

func (s *GraphSuite) requireDegrees(u, out, in int) {
	s.T().Helper()
	gotOut, err := s.g.OutDegree(u)
	s.Require().NoError(err)
	gotIn, err := s.g.InDegree(u)
	s.Require().NoError(err)
	s.Require().Equal(out, gotOut, "out-degree of %d", u)
	s.Require().Equal(in, gotIn, "in-degree of %d", u)
}

func TestListBacking(t *testing.T) {
	suite.Run(t, &GraphSuite{backing: core.BackingList})
}

func TestMatrixBacking(t *testing.T) {
	suite.Run(t, &GraphSuite{backing: core.BackingMatrix})
}

func TestNewGraph_Errors(t *testing.T) {
	_, err := core.NewGraph(0)
	require.ErrorIs(t, err, core.ErrBadSize)
	_, err = core.NewGraph(-3, core.WithBacking(core.BackingMatrix))
	require.ErrorIs(t, err, core.ErrBadSize)
	_, err = core.NewGraph(math.MaxInt/2, core.WithBacking(core.BackingMatrix))
	require.ErrorIs(t, err, core.ErrBadSize, "size*size must not wrap")
	_, err = core.NewGraph(3, core.WithBacking(core.Backing(9)))
	require.ErrorIs(t, err, core.ErrBadBacking)
}

func TestParseBacking(t *testing.T) {
	for in, want := range map[string]core.Backing{
		"list": core.BackingList, "Adjacency-List": core.BackingList, "": core.BackingList,
		"matrix": core.BackingMatrix, "DENSE": core.BackingMatrix,
	} {
		got, err := core.ParseBacking(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := core.ParseBacking("hash")
	require.ErrorIs(t, err, core.ErrBadBacking)
	require.Equal(t, "matrix", core.BackingMatrix.String())
}

// TestBackingsAgree applies the same random edit script to both backings
// and compares every observable query afterwards.
func TestBackingsAgree(t *testing.T) {
	const n = 12
	r := rand.New(rand.NewSource(42))
	list, err := core.NewGraph(n)
	require.NoError(t, err)
	mat, err := core.NewGraph(n, core.WithBacking(core.BackingMatrix))
	require.NoError(t, err)

	for i := 0; i < 600; i++ {
		u, v := r.Intn(n), r.Intn(n)
		w := float64(r.Intn(20)) - 5 // roughly a quarter are deletions
		require.NoError(t, list.SetEdge(u, v, w))
		require.NoError(t, mat.SetEdge(u, v, w))
	}

	require.Equal(t, list.EdgeCount(), mat.EdgeCount())
	for u := 0; u < n; u++ {
		ls, _ := list.Successors(u)
		ms, _ := mat.Successors(u)
		require.Equal(t, ls, ms, "successors of %d", u)
		lp, _ := list.Predecessors(u)
		mp, _ := mat.Predecessors(u)
		require.Equal(t, lp, mp, "predecessors of %d", u)

		lo, _ := list.OutDegree(u)
		li, _ := list.InDegree(u)
		require.Len(t, ls, lo)
		require.Len(t, lp, li)
		for v := 0; v < n; v++ {
			lw, _ := list.Weight(u, v)
			mw, _ := mat.Weight(u, v)
			require.Equal(t, lw, mw)
		}
	}
}
