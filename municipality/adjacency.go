package municipality

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Excalibur888/PotooMaps/core"
)

// Column layout of the adjacency table.
const (
	colAdjSource     = 0
	colAdjNeighbours = 3
)

// AdjacencyStats summarises the adjacency table.
type AdjacencyStats struct {
	Rows             int // data rows read
	UnknownSources   int // rows whose source INSEE code is not in the atlas
	UnknownNeighbour int // neighbour codes not in the atlas
	Edges            int // edges in the graph after loading
}

// LoadAdjacency builds the graph from the comma-separated adjacency table:
// a header row, then rows whose first column is a municipality INSEE code
// and whose fourth column lists its neighbours' codes separated by "|".
// Every known (source, neighbour) pair becomes an edge of weight 0. Codes
// absent from the atlas are counted and ignored. Loading again replaces
// the previous graph.
func (a *Atlas) LoadAdjacency(r io.Reader) (AdjacencyStats, error) {
	var st AdjacencyStats
	g, err := core.NewGraph(len(a.list), core.WithBacking(a.backing))
	if err != nil {
		return st, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, fmt.Errorf("municipality: read adjacency row %d: %w", st.Rows+1, err)
		}
		if header {
			header = false
			continue
		}
		st.Rows++

		src, ok := a.byINSEE.Get(NormalizeINSEE(rec[colAdjSource]))
		if !ok {
			st.UnknownSources++
			continue
		}
		if len(rec) <= colAdjNeighbours {
			continue
		}
		for _, code := range strings.Split(rec[colAdjNeighbours], "|") {
			if strings.TrimSpace(code) == "" {
				continue
			}
			dst, ok := a.byINSEE.Get(NormalizeINSEE(code))
			if !ok {
				st.UnknownNeighbour++
				continue
			}
			if err = g.SetEdge(src.ID, dst.ID, 0); err != nil {
				return st, err
			}
		}
	}
	if st.Rows == 0 {
		return st, ErrNoData
	}

	a.graph = g
	st.Edges = g.EdgeCount()
	a.logger.Info("adjacency loaded",
		slog.Int("rows", st.Rows),
		slog.Int("edges", st.Edges),
		slog.String("backing", g.Backing().String()),
		slog.Int("unknown_sources", st.UnknownSources),
		slog.Int("unknown_neighbours", st.UnknownNeighbour))

	return st, nil
}
