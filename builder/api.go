package builder

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
)

// Constructor adds edges to g using the resolved configuration. It must
// validate its parameters before touching g and keep a stable edge order
// so a fixed seed always yields the same graph.
type Constructor func(g core.Graph, cfg builderConfig) error

// BuildGraph creates a graph of size nodes with gopts, resolves bopts, and
// applies cons in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
func BuildGraph(size int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (core.Graph, error) {
	g, err := core.NewGraph(size, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// checkSize validates that n is at least min and fits in g.
func checkSize(method string, g core.Graph, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if n > g.Size() {
		return fmt.Errorf("%s: n=%d > size=%d: %w", method, n, g.Size(), ErrGraphTooSmall)
	}

	return nil
}

// link sets u→v, and v→u too when both is set.
func link(method string, g core.Graph, cfg builderConfig, u, v int, both bool) error {
	if err := g.SetEdge(u, v, cfg.weight()); err != nil {
		return fmt.Errorf("%s: SetEdge(%d→%d): %w", method, u, v, err)
	}
	if !both {
		return nil
	}
	if err := g.SetEdge(v, u, cfg.weight()); err != nil {
		return fmt.Errorf("%s: SetEdge(%d→%d): %w", method, v, u, err)
	}

	return nil
}
