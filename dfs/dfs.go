package dfs

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	id    int
	depth int
	succ  []core.Edge
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   core.Graph
	opts    DFSOptions
	visited []bool
	stack   []frame
	res     *DFSResult
}

// DFS performs a depth-first search of g from start, marking reached nodes
// in visited. A start that is already marked yields an empty result.
//
// Errors: ErrGraphNil, ErrStartOutOfRange, ErrVisitedSize, or a wrapped
// hook error. On a hook error the partial result is returned with it.
func DFS(g core.Graph, start int, visited []bool, opts ...Option) (*DFSResult, error) {
	if err := validate(g, start, visited); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Size()
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		visited: visited,
		res: &DFSResult{
			Start:  start,
			Depth:  fill(n, None),
			Parent: fill(n, None),
		},
	}
	if visited[start] {
		return w.res, nil
	}

	return w.res, w.run(start)
}

// Walk is DFS reduced to its discovery order.
func Walk(g core.Graph, start int, visited []bool, opts ...Option) ([]int, error) {
	res, err := DFS(g, start, visited, opts...)
	if err != nil {
		return nil, err
	}

	return res.PreOrder, nil
}

func (w *dfsWalker) run(start int) error {
	if err := w.discover(start, None, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.succ) {
			if err := w.finish(); err != nil {
				return err
			}
			continue
		}

		e := top.succ[top.next]
		top.next++
		if w.visited[e.Target] {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			continue
		}
		if err := w.discover(e.Target, top.id, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id, runs the pre-order hook and pushes its frame. Nodes
// beyond MaxDepth get an empty successor list so they finish immediately.
func (w *dfsWalker) discover(id, parent, depth int) error {
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	var succ []core.Edge
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		var err error
		if succ, err = w.graph.Successors(id); err != nil {
			return fmt.Errorf("dfs: successors of %d: %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, succ: succ})

	return nil
}

func (w *dfsWalker) finish() error {
	id := w.stack[len(w.stack)-1].id
	w.stack = w.stack[:len(w.stack)-1]
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
