package builder

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
)

// Path links 0→1→…→n-1.
//
// Complexity: O(n) edges.
func Path(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if err := checkSize("Path", g, n, 2); err != nil {
			return err
		}
		for u := 0; u+1 < n; u++ {
			if err := link("Path", g, cfg, u, u+1, false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path(n) closed by n-1→0.
func Cycle(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if err := checkSize("Cycle", g, n, 3); err != nil {
			return err
		}
		for u := 0; u < n; u++ {
			if err := link("Cycle", g, cfg, u, (u+1)%n, false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Ring links every node u < n to its next k nodes modulo n, roughly the
// shape of a municipality adjacency table when k is 6 to 8.
func Ring(n, k int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if err := checkSize("Ring", g, n, 2); err != nil {
			return err
		}
		if k < 1 || k >= n {
			return fmt.Errorf("Ring: k=%d not in [1,%d): %w", k, n, ErrTooFewVertices)
		}
		for u := 0; u < n; u++ {
			for d := 1; d <= k; d++ {
				if err := link("Ring", g, cfg, u, (u+d)%n, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Complete links every ordered pair of distinct nodes below n.
//
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if err := checkSize("Complete", g, n, 1); err != nil {
			return err
		}
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := link("Complete", g, cfg, u, v, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid lays rows×cols nodes out in row-major order (node r*cols+c) and
// links each cell to its right and bottom neighbours in both directions,
// like adjoining municipalities.
func Grid(rows, cols int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewVertices)
		}
		if err := checkSize("Grid", g, rows*cols, 1); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link("Grid", g, cfg, u, u+1, true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link("Grid", g, cfg, u, u+cols, true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each ordered pair (u, v), u ≠ v, u, v < n, with
// independent probability p. Trials run u ascending, then v ascending.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if err := checkSize("RandomSparse", g, n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := link("RandomSparse", g, cfg, u, v, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
