package dfs

import (
	"errors"
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
)

// Node colours used by TopologicalSort.
const (
	White = iota // not yet discovered
	Gray         // on the current DFS path
	Black        // fully explored
)

// None marks Parent and Depth entries of nodes the walk never reached.
const None = -1

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates a start id outside [0, Size()).
	ErrStartOutOfRange = errors.New("dfs: start node out of range")

	// ErrVisitedSize indicates a visited buffer whose length is not Size().
	ErrVisitedSize = errors.New("dfs: visited buffer does not match graph size")

	// ErrCycleDetected indicates TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds hooks, limits and filters for a traversal.
type DFSOptions struct {
	// OnVisit is invoked when a node is discovered (pre-order).
	OnVisit func(id int) error

	// OnExit is invoked once all descendants of a node are explored (post-order).
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits descent; 0 visits only the start.
	MaxDepth int

	// FilterEdge, if non-nil, must return true for an edge to be followed.
	FilterEdge func(e core.Edge) bool
}

// DefaultOptions returns DFSOptions with no hooks, no filter and MaxDepth -1.
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits descent to depth d. Negative means unlimited.
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) { o.MaxDepth = d }
}

// WithFilterEdge skips edges rejected by fn.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *DFSOptions) { o.FilterEdge = fn }
}

// DFSResult holds the outcome of a traversal.
//
//   - PreOrder:  nodes in discovery order.
//   - PostOrder: nodes in finish order.
//   - Depth:     depth in the DFS tree per node id, None if unreached.
//   - Parent:    DFS tree parent per node id, None for the start and unreached nodes.
type DFSResult struct {
	Start     int
	PreOrder  []int
	PostOrder []int
	Depth     []int
	Parent    []int
}

func validate(g core.Graph, start int, visited []bool) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.Size()
	if start < 0 || start >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if len(visited) != n {
		return fmt.Errorf("%w: len %d, size %d", ErrVisitedSize, len(visited), n)
	}

	return nil
}

func fill(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
