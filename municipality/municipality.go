package municipality

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Excalibur888/PotooMaps/core"
	"github.com/Excalibur888/PotooMaps/dict"
)

// Sentinel errors for atlas construction and queries.
var (
	// ErrNoData indicates a table without any data row.
	ErrNoData = errors.New("municipality: no data")

	// ErrNotFound indicates a lookup that matched no municipality.
	ErrNotFound = errors.New("municipality: not found")

	// ErrNoGraph indicates a graph operation before LoadAdjacency.
	ErrNoGraph = errors.New("municipality: adjacency not loaded")
)

// Column layout of the municipality table.
const (
	colINSEE = 0
	colName  = 1
	colLat   = 5
	colLon   = 6
)

// Municipality is one node of the routing graph.
type Municipality struct {
	ID    int
	INSEE string
	Name  string
	Lat   float64
	Lon   float64
}

// String returns "NAME (INSEE)".
func (m *Municipality) String() string { return fmt.Sprintf("%s (%s)", m.Name, m.INSEE) }

// Atlas holds the municipalities, their lookup indexes and the graph.
type Atlas struct {
	byINSEE *dict.Dict[*Municipality]
	byName  *dict.Dict[*Municipality]
	list    []*Municipality
	graph   core.Graph
	backing core.Backing
	logger  *slog.Logger
}

// Option configures an Atlas.
type Option func(*Atlas)

// WithLogger sets the logger used for load summaries.
func WithLogger(l *slog.Logger) Option {
	return func(a *Atlas) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithBacking selects the graph backing built by LoadAdjacency.
func WithBacking(b core.Backing) Option {
	return func(a *Atlas) { a.backing = b }
}

// LoadStats summarises the municipality table.
type LoadStats struct {
	Rows       int // data rows read
	Duplicates int // rows whose INSEE code was already present
	NoCoords   int // kept rows whose latitude or longitude did not parse
}

// LoadMunicipalities reads the comma-separated municipality table from r.
// The first row is a header. INSEE codes of four digits are left-padded
// with "0". The first row for a given INSEE code wins; later duplicates
// are counted and dropped. Coordinates that do not parse are stored as 0,
// which marks them unusable for geographic weighting.
func LoadMunicipalities(r io.Reader, opts ...Option) (*Atlas, LoadStats, error) {
	a := &Atlas{
		byINSEE: dict.New[*Municipality](),
		byName:  dict.New[*Municipality](),
		backing: core.BackingList,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var st LoadStats
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, st, fmt.Errorf("municipality: read row %d: %w", st.Rows+1, err)
		}
		if header {
			header = false
			continue
		}
		st.Rows++
		if len(rec) <= colLon {
			return nil, st, fmt.Errorf("municipality: row %d has %d columns, want at least %d", st.Rows, len(rec), colLon+1)
		}

		code := NormalizeINSEE(rec[colINSEE])
		if a.byINSEE.Contains(code) {
			st.Duplicates++
			continue
		}
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(rec[colLat]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(rec[colLon]), 64)
		if errLat != nil || errLon != nil {
			lat, lon = 0, 0
			st.NoCoords++
		}

		m := &Municipality{
			ID:    len(a.list),
			INSEE: code,
			Name:  strings.TrimSpace(rec[colName]),
			Lat:   lat,
			Lon:   lon,
		}
		a.list = append(a.list, m)
		a.byINSEE.Insert(code, m)
		if key := NormalizeName(m.Name); !a.byName.Contains(key) {
			a.byName.Insert(key, m)
		}
	}
	if len(a.list) == 0 {
		return nil, st, ErrNoData
	}

	a.logger.Info("municipalities loaded",
		slog.Int("rows", st.Rows),
		slog.Int("municipalities", len(a.list)),
		slog.Int("duplicates", st.Duplicates),
		slog.Int("no_coords", st.NoCoords))

	return a, st, nil
}

// NormalizeINSEE trims code and restores the leading zero that spreadsheet
// exports strip from département codes 01 to 09.
func NormalizeINSEE(code string) string {
	code = strings.TrimSpace(code)
	if len(code) == 4 {
		return "0" + code
	}

	return code
}

// Len returns the number of municipalities (the graph size).
func (a *Atlas) Len() int { return len(a.list) }

// Graph returns the routing graph, or nil before LoadAdjacency.
func (a *Atlas) Graph() core.Graph { return a.graph }

// ByID returns the municipality of node id.
func (a *Atlas) ByID(id int) (*Municipality, bool) {
	if id < 0 || id >= len(a.list) {
		return nil, false
	}

	return a.list[id], true
}

// ByINSEE returns the municipality with the given INSEE code.
func (a *Atlas) ByINSEE(code string) (*Municipality, bool) {
	return a.byINSEE.Get(NormalizeINSEE(code))
}

// Municipalities yields every municipality in INSEE code order.
func (a *Atlas) Municipalities() iter.Seq2[string, *Municipality] {
	return a.byINSEE.All()
}

// Neighbours returns the municipalities m has an edge to, in id order.
func (a *Atlas) Neighbours(m *Municipality) ([]*Municipality, error) {
	if a.graph == nil {
		return nil, ErrNoGraph
	}
	succ, err := a.graph.Successors(m.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*Municipality, len(succ))
	for i, e := range succ {
		out[i] = a.list[e.Target]
	}

	return out, nil
}
