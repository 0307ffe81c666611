package bfs

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
)

type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from start, marking reached nodes in
// visited (len(visited) must equal g.Size()). If start is already marked
// the walk is empty.
//
// Returns ErrGraphNil, ErrStartOutOfRange, ErrVisitedSize or
// ErrOptionViolation for invalid input, or any hook error.
func BFS(g core.Graph, start int, visited []bool, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if len(visited) != n {
		return nil, fmt.Errorf("%w: len %d, size %d", ErrVisitedSize, len(visited), n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: visited,
		res: &BFSResult{
			Start:  start,
			Depth:  fill(n, Unreached),
			Parent: fill(n, Unreached),
		},
	}
	if visited[start] {
		return w.res, nil
	}
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// Walk is BFS reduced to its visit order.
func Walk(g core.Graph, start int, visited []bool, opts ...Option) ([]int, error) {
	res, err := BFS(g, start, visited, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

func (w *walker) enqueue(id, depth, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, depth)
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueSuccessors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	succ, err := w.graph.Successors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: successors of %d: %w", item.id, err)
	}
	for _, e := range succ {
		if w.visited[e.Target] || !w.opts.FilterEdge(e) {
			continue
		}
		w.enqueue(e.Target, next, item.id)
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
