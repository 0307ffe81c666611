package dijkstra

import (
	"errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeOutOfRange indicates a start or end id outside [0, Size()).
	ErrNodeOutOfRange = errors.New("dijkstra: node out of range")

	// ErrNoPath indicates the end node is unreachable from the start.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrNotSettled indicates a path was requested to a node whose distance
	// was not final when an early-exit run stopped.
	ErrNotSettled = errors.New("dijkstra: node not settled")

	// ErrCorruptTrace indicates predecessor data that does not lead back
	// to the start node.
	ErrCorruptTrace = errors.New("dijkstra: corrupt predecessor trace")

	// ErrInvalidPath indicates a Path that does not match the graph.
	ErrInvalidPath = errors.New("dijkstra: path does not match graph")
)

const (
	// NoPredecessor marks nodes with no predecessor: the start and unreached nodes.
	NoPredecessor = -1

	// AllTargets disables early exit so that every reachable node is settled.
	AllTargets = -1
)

// Queue selects how the next node to settle is chosen.
type Queue int

const (
	// QueueLinear scans every unsettled node: O(V²).
	QueueLinear Queue = iota

	// QueueHeap keeps a binary min-heap: O((V+E) log V).
	QueueHeap
)

// Options configures a Dijkstra run.
//
// Target – node whose settlement ends the run early, or AllTargets.
// Queue  – node selection strategy.
type Options struct {
	Target int
	Queue  Queue
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the run once end has been settled. Pass AllTargets
// (or any negative id) to compute every reachable node.
func WithTarget(end int) Option {
	return func(o *Options) {
		if end < 0 {
			end = AllTargets
		}
		o.Target = end
	}
}

// WithQueue selects the node selection strategy.
func WithQueue(q Queue) Option {
	return func(o *Options) {
		o.Queue = q
	}
}

// DefaultOptions returns Options with AllTargets and QueueLinear.
func DefaultOptions() Options {
	return Options{
		Target: AllTargets,
		Queue:  QueueLinear,
	}
}
