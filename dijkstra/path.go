package dijkstra

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Excalibur888/PotooMaps/core"
)

// Path is an explicit route: node ids from start to end inclusive, and the
// sum of the edge weights along it.
type Path struct {
	Nodes    []int
	Distance float64
}

// Len returns the number of nodes on the path.
func (p *Path) Len() int { return len(p.Nodes) }

// Start returns the first node.
func (p *Path) Start() int { return p.Nodes[0] }

// End returns the last node.
func (p *Path) End() int { return p.Nodes[len(p.Nodes)-1] }

// String renders the path as "0 -> 3 -> 7 (12.5)".
func (p *Path) String() string {
	var sb strings.Builder
	for i, id := range p.Nodes {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(strconv.Itoa(id))
	}
	fmt.Fprintf(&sb, " (%s)", strconv.FormatFloat(p.Distance, 'g', -1, 64))

	return sb.String()
}

// Verify checks that every consecutive pair of p is an edge of g and that
// the weights sum to p.Distance (within a relative tolerance of 1e-9).
func (p *Path) Verify(g core.Graph) error {
	if len(p.Nodes) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	sum := 0.0
	for i := 1; i < len(p.Nodes); i++ {
		w, err := g.Weight(p.Nodes[i-1], p.Nodes[i])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		if w == core.NoEdge {
			return fmt.Errorf("%w: no edge %d→%d", ErrInvalidPath, p.Nodes[i-1], p.Nodes[i])
		}
		sum += w
	}
	if math.Abs(sum-p.Distance) > 1e-9*math.Max(1, math.Abs(sum)) {
		return fmt.Errorf("%w: weights sum to %g, path says %g", ErrInvalidPath, sum, p.Distance)
	}

	return nil
}

// PathTo rebuilds the shortest path from r.Start to end.
//
// Errors:
//   - ErrNodeOutOfRange if end is not a node.
//   - ErrNoPath if end was never reached.
//   - ErrNotSettled if the run stopped early before end was final.
func (r *Result) PathTo(end int) (*Path, error) {
	if end < 0 || end >= len(r.Distances) {
		return nil, fmt.Errorf("%w: end %d not in [0,%d)", ErrNodeOutOfRange, end, len(r.Distances))
	}
	if end != r.Start && !r.settled[end] {
		if math.IsInf(r.Distances[end], 1) {
			return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, r.Start, end)
		}

		return nil, fmt.Errorf("%w: %d (run stopped at %d)", ErrNotSettled, end, r.Target)
	}

	return Reconstruct(r.Predecessors, r.Distances, r.Start, end)
}

// Reconstruct walks a predecessor trace back from end to start and returns
// the path in forward order with Distance = dist[end].
//
// start == end yields the single-node path with distance 0. An end with no
// predecessor (other than start) yields ErrNoPath. A trace that cycles or
// dead-ends before reaching start yields ErrCorruptTrace.
func Reconstruct(pred []int, dist []float64, start, end int) (*Path, error) {
	n := len(pred)
	if len(dist) != n {
		return nil, fmt.Errorf("%w: %d predecessors, %d distances", ErrCorruptTrace, n, len(dist))
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%w: %d → %d with %d nodes", ErrNodeOutOfRange, start, end, n)
	}
	if start == end {
		return &Path{Nodes: []int{start}, Distance: 0}, nil
	}
	if pred[end] == NoPredecessor {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, start, end)
	}

	nodes := []int{end}
	for cur := end; cur != start; {
		cur = pred[cur]
		if cur < 0 || cur >= n || len(nodes) > n {
			return nil, fmt.Errorf("%w: stopped at %d after %d hops", ErrCorruptTrace, cur, len(nodes))
		}
		nodes = append(nodes, cur)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return &Path{Nodes: nodes, Distance: dist[end]}, nil
}
