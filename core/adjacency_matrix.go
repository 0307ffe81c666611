package core

// matrixGraph stores weights in a row-major n×n table; NoEdge marks absence.
type matrixGraph struct {
	n      int
	w      []float64
	outDeg []int
	inDeg  []int
	edges  int
}

func newMatrixGraph(size int) *matrixGraph {
	w := make([]float64, size*size)
	for i := range w {
		w[i] = NoEdge
	}

	return &matrixGraph{
		n:      size,
		w:      w,
		outDeg: make([]int, size),
		inDeg:  make([]int, size),
	}
}

func (g *matrixGraph) Size() int        { return g.n }
func (g *matrixGraph) Backing() Backing { return BackingMatrix }
func (g *matrixGraph) EdgeCount() int   { return g.edges }

func (g *matrixGraph) at(u, v int) *float64 { return &g.w[u*g.n+v] }

// SetEdge inserts, updates or deletes u→v. Complexity: O(1).
func (g *matrixGraph) SetEdge(u, v int, weight float64) error {
	if err := checkPair(g.n, u, v); err != nil {
		return err
	}
	if err := checkWeight(weight); err != nil {
		return err
	}

	cell := g.at(u, v)
	exists := *cell >= 0
	switch {
	case weight < 0:
		if exists {
			*cell = NoEdge
			g.outDeg[u]--
			g.inDeg[v]--
			g.edges--
		}
	case exists:
		*cell = weight
	default:
		*cell = weight
		g.outDeg[u]++
		g.inDeg[v]++
		g.edges++
	}

	return nil
}

func (g *matrixGraph) Weight(u, v int) (float64, error) {
	if err := checkPair(g.n, u, v); err != nil {
		return NoEdge, err
	}

	return *g.at(u, v), nil
}

func (g *matrixGraph) HasEdge(u, v int) (bool, error) {
	if err := checkPair(g.n, u, v); err != nil {
		return false, err
	}

	return *g.at(u, v) >= 0, nil
}

func (g *matrixGraph) OutDegree(u int) (int, error) {
	if err := checkNode(g.n, u); err != nil {
		return 0, err
	}

	return g.outDeg[u], nil
}

func (g *matrixGraph) InDegree(u int) (int, error) {
	if err := checkNode(g.n, u); err != nil {
		return 0, err
	}

	return g.inDeg[u], nil
}

// Successors scans row u. Complexity: O(V).
func (g *matrixGraph) Successors(u int) ([]Edge, error) {
	if err := checkNode(g.n, u); err != nil {
		return nil, err
	}
	succ := make([]Edge, 0, g.outDeg[u])
	row := g.w[u*g.n : (u+1)*g.n]
	for v, w := range row {
		if w >= 0 {
			succ = append(succ, Edge{Source: u, Target: v, Weight: w})
		}
	}

	return succ, nil
}

// Predecessors scans column v. Complexity: O(V).
func (g *matrixGraph) Predecessors(v int) ([]Edge, error) {
	if err := checkNode(g.n, v); err != nil {
		return nil, err
	}
	pred := make([]Edge, 0, g.inDeg[v])
	for u := 0; u < g.n; u++ {
		if w := *g.at(u, v); w >= 0 {
			pred = append(pred, Edge{Source: u, Target: v, Weight: w})
		}
	}

	return pred, nil
}
