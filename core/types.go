package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadSize indicates a graph was requested with fewer than one node.
	ErrBadSize = errors.New("core: graph size must be at least 1")

	// ErrNodeOutOfRange indicates a node id outside [0, Size()).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrBadWeight indicates a NaN or +Inf edge weight. -Inf is negative
	// and deletes like any other negative weight.
	ErrBadWeight = errors.New("core: weight must be a number below +Inf")

	// ErrBadBacking indicates an unknown backing name or value.
	ErrBadBacking = errors.New("core: unknown backing")

	// ErrBadFormat indicates malformed input to Load.
	ErrBadFormat = errors.New("core: malformed graph data")
)

// NoEdge is the weight Weight reports for an absent edge.
const NoEdge = -1.0

// Backing selects the storage strategy of a Graph.
//
// BackingList favours sparse graphs such as road or municipality
// adjacency; BackingMatrix favours small dense graphs where O(1) edge
// access matters more than O(V²) memory.
type Backing int

const (
	// BackingList stores sorted per-node out-edge slices.
	BackingList Backing = iota

	// BackingMatrix stores a dense V×V weight table.
	BackingMatrix
)

// String returns the canonical name of b.
func (b Backing) String() string {
	switch b {
	case BackingList:
		return "list"
	case BackingMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Backing(%d)", int(b))
	}
}

// ParseBacking maps a configuration string to a Backing.
// Accepted (case-insensitive): "list", "adjacency-list", "matrix", "dense".
func ParseBacking(s string) (Backing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list", "adjacency-list", "adjacency_list", "":
		return BackingList, nil
	case "matrix", "dense":
		return BackingMatrix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadBacking, s)
	}
}

// Edge is a weighted directed edge Source→Target.
type Edge struct {
	Source int
	Target int
	Weight float64
}

// Graph is the contract shared by both backings.
//
// Every method taking node ids returns an error wrapping ErrNodeOutOfRange
// when an id is outside [0, Size()).
type Graph interface {
	// Size returns the fixed number of nodes.
	Size() int

	// Backing reports which storage strategy is in use.
	Backing() Backing

	// EdgeCount returns the number of edges currently stored.
	EdgeCount() int

	// SetEdge inserts, updates or (for weight < 0) deletes the edge u→v.
	SetEdge(u, v int, weight float64) error

	// Weight returns the weight of u→v, or NoEdge when absent.
	Weight(u, v int) (float64, error)

	// HasEdge reports whether u→v exists.
	HasEdge(u, v int) (bool, error)

	// OutDegree returns the number of edges leaving u.
	OutDegree(u int) (int, error)

	// InDegree returns the number of edges entering u.
	InDegree(u int) (int, error)

	// Successors returns a snapshot of u's out-edges sorted by Target.
	Successors(u int) ([]Edge, error)

	// Predecessors returns a snapshot of u's in-edges sorted by Source.
	Predecessors(u int) ([]Edge, error)
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	backing Backing
}

// WithBacking selects the storage strategy. The default is BackingList.
func WithBacking(b Backing) GraphOption {
	return func(cfg *graphConfig) { cfg.backing = b }
}

// NewGraph returns an edgeless Graph of size nodes.
//
// Errors:
//   - ErrBadSize if size < 1, or if size*size overflows int for BackingMatrix.
//   - ErrBadBacking if an unknown Backing was supplied.
//
// Complexity: O(V) for BackingList, O(V²) for BackingMatrix.
func NewGraph(size int, opts ...GraphOption) (Graph, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	cfg := graphConfig{backing: BackingList}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.backing {
	case BackingList:
		return newListGraph(size), nil
	case BackingMatrix:
		if size > math.MaxInt/size {
			return nil, fmt.Errorf("%w: %d×%d matrix overflows int", ErrBadSize, size, size)
		}
		return newMatrixGraph(size), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadBacking, int(cfg.backing))
	}
}

func checkNode(size, id int) error {
	if id < 0 || id >= size {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, id, size)
	}

	return nil
}

func checkPair(size, u, v int) error {
	if err := checkNode(size, u); err != nil {
		return err
	}

	return checkNode(size, v)
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 1) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}

	return nil
}
