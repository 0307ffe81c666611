package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/Excalibur888/PotooMaps/core"
)

// Result is the predecessor trace of one Dijkstra run.
//
//   - Predecessors[v] is the node before v on a shortest path from Start,
//     or NoPredecessor.
//   - Distances[v] is the shortest distance from Start, +Inf if unreached.
//
// After an early-exit run (Target ≥ 0) only settled nodes carry final
// values; PathTo reports ErrNotSettled for the others.
type Result struct {
	Start        int
	Target       int
	Predecessors []int
	Distances    []float64
	settled      []bool
}

// Settled reports whether v's distance is final.
func (r *Result) Settled(v int) bool {
	return v >= 0 && v < len(r.settled) && r.settled[v]
}

// Dijkstra computes shortest distances from start over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must be a node of g (ErrNodeOutOfRange).
//  3. WithTarget, if set to a node id, must be a node of g (ErrNodeOutOfRange).
//
// Complexity:
//
//   - QueueLinear: O(V²) plus successor queries.
//   - QueueHeap:   O((V + E) log V) plus successor queries.
//   - Space: O(V), plus O(E) heap entries for QueueHeap.
func Dijkstra(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrNodeOutOfRange, start, n)
	}
	if cfg.Target >= n {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrNodeOutOfRange, cfg.Target, n)
	}

	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Start:        start,
			Target:       cfg.Target,
			Predecessors: make([]int, n),
			Distances:    make([]float64, n),
			settled:      make([]bool, n),
		},
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Graph
	options Options
	res     *Result
	pq      nodePQ // QueueHeap only
}

func (r *runner) init() {
	for v := range r.res.Distances {
		r.res.Distances[v] = math.Inf(1)
		r.res.Predecessors[v] = NoPredecessor
	}
	r.res.Distances[r.res.Start] = 0

	if r.options.Queue == QueueHeap {
		r.pq = make(nodePQ, 0, len(r.res.Distances))
		heap.Push(&r.pq, &nodeItem{id: r.res.Start, dist: 0})
	}
}

// process settles nodes in increasing distance until none is reachable or
// the target has been settled.
func (r *runner) process() error {
	for {
		u, ok := r.next()
		if !ok {
			return nil
		}
		r.res.settled[u] = true
		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// next picks the unsettled node with the smallest finite distance.
func (r *runner) next() (int, bool) {
	if r.options.Queue == QueueHeap {
		for r.pq.Len() > 0 {
			item := heap.Pop(&r.pq).(*nodeItem)
			if !r.res.settled[item.id] {
				return item.id, true
			}
		}

		return 0, false
	}

	best, bestDist := -1, math.Inf(1)
	for v, d := range r.res.Distances {
		if !r.res.settled[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best, best >= 0
}

// relax tries to shorten the distance of every unsettled successor of u.
func (r *runner) relax(u int) error {
	succ, err := r.g.Successors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: successors of %d: %w", u, err)
	}
	du := r.res.Distances[u]
	for _, e := range succ {
		v := e.Target
		if r.res.settled[v] {
			continue
		}
		nd := du + e.Weight
		if nd >= r.res.Distances[v] {
			continue
		}
		r.res.Distances[v] = nd
		r.res.Predecessors[v] = u
		if r.options.Queue == QueueHeap {
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}

	return nil
}

// ShortestPath runs Dijkstra from start with early exit at end and returns
// the resulting Path. Unreachable end yields ErrNoPath.
func ShortestPath(g core.Graph, start, end int, opts ...Option) (*Path, error) {
	if g != nil && (end < 0 || end >= g.Size()) {
		return nil, fmt.Errorf("%w: end %d not in [0,%d)", ErrNodeOutOfRange, end, g.Size())
	}
	res, err := Dijkstra(g, start, append(opts, WithTarget(end))...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(end)
}

// nodeItem is a heap entry: a node and the distance it was queued with.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Stale entries stay in
// the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
