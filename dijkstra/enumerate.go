package dijkstra

import (
	"fmt"
	"math"

	"github.com/Excalibur888/PotooMaps/core"
)

// Enumerate finds a shortest start→end path by depth-first enumeration of
// every simple path, keeping the first one of minimum total weight. Branches
// whose running weight already reaches the best known total are cut, which
// is exact for non-negative weights.
//
// It serves as a reference for Dijkstra on small graphs: worst-case time is
// O(V!) and recursion depth is O(V).
func Enumerate(g core.Graph, start, end int) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Size()
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%w: %d → %d with %d nodes", ErrNodeOutOfRange, start, end, n)
	}
	if start == end {
		return &Path{Nodes: []int{start}, Distance: 0}, nil
	}

	e := &enumerator{
		g:      g,
		end:    end,
		onPath: make([]bool, n),
		best:   math.Inf(1),
	}
	if err := e.visit(start, 0); err != nil {
		return nil, err
	}
	if e.bestPath == nil {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, start, end)
	}

	return &Path{Nodes: e.bestPath, Distance: e.best}, nil
}

type enumerator struct {
	g        core.Graph
	end      int
	onPath   []bool
	path     []int
	best     float64
	bestPath []int
}

func (e *enumerator) visit(u int, dist float64) error {
	e.onPath[u] = true
	e.path = append(e.path, u)
	defer func() {
		e.onPath[u] = false
		e.path = e.path[:len(e.path)-1]
	}()

	if u == e.end {
		if dist < e.best {
			e.best = dist
			e.bestPath = append(e.bestPath[:0], e.path...)
		}

		return nil
	}

	succ, err := e.g.Successors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: successors of %d: %w", u, err)
	}
	for _, s := range succ {
		if e.onPath[s.Target] || dist+s.Weight >= e.best {
			continue
		}
		if err = e.visit(s.Target, dist+s.Weight); err != nil {
			return err
		}
	}

	return nil
}
