package municipality_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Excalibur888/PotooMaps/core"
	"github.com/Excalibur888/PotooMaps/dict"
	"github.com/Excalibur888/PotooMaps/dijkstra"
	"github.com/Excalibur888/PotooMaps/municipality"
	"github.com/Excalibur888/PotooMaps/poi"
)

// Four towns on a small diamond: A(0) west, D(3) east, B(1) on the direct
// southern road, C(2) on a longer northern detour. E has no coordinates
// and no neighbours.
const municipalitiesCSV = `code_commune_INSEE,nom_commune_postal,code_postal,libelle_acheminement,ligne_5,latitude,longitude
1001,AAA,01400,AAA,,46.00,4.00
01002,BBB,01400,BBB,,46.00,4.10
01003,SAINT ETIENNE,01400,SAINT ETIENNE,,46.05,4.10
01004,DDD,01400,DDD,,46.00,4.20
01004,DUPLICATE,01400,DUPLICATE,,47.00,5.00
01005,EEE,01400,EEE,,,
`

const adjacencyCSV = `insee,nom,nb_voisins,insee_voisins
01001,AAA,2,01002|01003
01002,BBB,2,01001|01004
01003,SAINT ETIENNE,3,01001|01004|99999
01004,DDD,2,01002|01003
99999,ZZZ,1,01001
`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type AtlasSuite struct {
	suite.Suite
	backing core.Backing
	atlas   *municipality.Atlas
}

func (s *AtlasSuite) SetupTest() {
	require := s.Require()
	a, st, err := municipality.LoadMunicipalities(strings.NewReader(municipalitiesCSV),
		municipality.WithLogger(quietLogger()), municipality.WithBacking(s.backing))
	require.NoError(err)
	require.Equal(municipality.LoadStats{Rows: 6, Duplicates: 1, NoCoords: 1}, st)

	adj, err := a.LoadAdjacency(strings.NewReader(adjacencyCSV))
	require.NoError(err)
	require.Equal(municipality.AdjacencyStats{Rows: 5, UnknownSources: 1, UnknownNeighbour: 1, Edges: 8}, adj)
	require.NoError(a.ApplyDistances())
	s.atlas = a
}

func (s *AtlasSuite) TestIDsAndIndexes() {
	require := s.Require()
	require.Equal(5, s.atlas.Len())
	require.Equal(s.backing, s.atlas.Graph().Backing())

	m, ok := s.atlas.ByID(3)
	require.True(ok)
	require.Equal("DDD", m.Name, "first row wins over the duplicate")
	_, ok = s.atlas.ByID(5)
	require.False(ok)

	var codes []string
	for code := range s.atlas.Municipalities() {
		codes = append(codes, code)
	}
	require.Equal([]string{"01001", "01002", "01003", "01004", "01005"}, codes)
}

func (s *AtlasSuite) TestLookup() {
	require := s.Require()
	for input, want := range map[string]string{
		"1001":          "AAA",
		"01004":         "DDD",
		"saint-étienne": "SAINT ETIENNE",
		"Saint Etienne": "SAINT ETIENNE",
		" bbb ":         "BBB",
	} {
		m, err := s.atlas.Lookup(input)
		require.NoError(err, input)
		require.Equal(want, m.Name, input)
	}
	for _, input := range []string{"", "99999", "Nowhere"} {
		_, err := s.atlas.Lookup(input)
		require.ErrorIs(err, municipality.ErrNotFound, input)
	}
}

func (s *AtlasSuite) TestNeighbours() {
	a, _ := s.atlas.ByINSEE("01001")
	nb, err := s.atlas.Neighbours(a)
	s.Require().NoError(err)
	s.Require().Len(nb, 2)
	s.Require().Equal("BBB", nb[0].Name)
	s.Require().Equal("SAINT ETIENNE", nb[1].Name)
}

func (s *AtlasSuite) TestRouteByDistance() {
	require := s.Require()
	from, _ := s.atlas.Lookup("AAA")
	to, _ := s.atlas.Lookup("DDD")

	r, err := s.atlas.Route(from, to)
	require.NoError(err)
	require.Equal([]int{0, 1, 3}, r.Path.Nodes)
	require.Equal("AAA", r.From().Name)
	require.Equal("DDD", r.To().Name)
	require.InDelta(15.45, r.Length(), 0.1)
	require.InDelta(r.Length(), r.Path.Distance, 1e-9)
	require.NoError(r.Path.Verify(s.atlas.Graph()))
}

func (s *AtlasSuite) TestRouteUnreachable() {
	from, _ := s.atlas.Lookup("AAA")
	to, _ := s.atlas.Lookup("EEE")
	_, err := s.atlas.Route(from, to)
	s.Require().ErrorIs(err, dijkstra.ErrNoPath)
}

func (s *AtlasSuite) TestPOIWeightingPullsRouteThroughBars() {
	require := s.Require()
	d := dict.New[*poi.POI]()
	for i, name := range []string{"p1", "p2", "p3", "p4", "p5"} {
		d.Insert(name, &poi.POI{Name: name, Lat: 46.05 + float64(i-2)*0.004, Lon: 4.10, Amenity: "bar"})
	}
	idx := poi.NewIndex(d)
	g := s.atlas.Graph()
	inAC, _ := g.Weight(0, 2)
	inDC, _ := g.Weight(3, 2)
	outCA, _ := g.Weight(2, 0)

	n, err := s.atlas.ApplyPOIWeighting(idx, 0.03)
	require.NoError(err)
	require.Equal(1, n, "only SAINT ETIENNE has bars nearby")

	// every edge entering SAINT ETIENNE is divided by 5+1, edges leaving it are not
	w, _ := g.Weight(0, 2)
	require.InDelta(inAC/6, w, 1e-9)
	w, _ = g.Weight(3, 2)
	require.InDelta(inDC/6, w, 1e-9)
	w, _ = g.Weight(2, 0)
	require.Equal(outCA, w)

	from, _ := s.atlas.Lookup("AAA")
	to, _ := s.atlas.Lookup("DDD")
	r, err := s.atlas.Route(from, to)
	require.NoError(err)
	require.Equal([]int{0, 2, 3}, r.Path.Nodes)
	require.Less(r.Path.Distance, r.Length())

	st := municipality.Stats(r, idx, 0.03)
	require.Equal(municipality.RouteStats{Stops: 3, TotalPOIs: 5, StopsWithPOIs: 1, StopsWithoutPOIs: 2}, st)
}

func TestAtlasList(t *testing.T) {
	suite.Run(t, &AtlasSuite{backing: core.BackingList})
}

func TestAtlasMatrix(t *testing.T) {
	suite.Run(t, &AtlasSuite{backing: core.BackingMatrix})
}

func TestLoadErrors(t *testing.T) {
	_, _, err := municipality.LoadMunicipalities(strings.NewReader("header only\n"), municipality.WithLogger(quietLogger()))
	require.ErrorIs(t, err, municipality.ErrNoData)

	_, _, err = municipality.LoadMunicipalities(strings.NewReader("h\n01001,AAA,1\n"), municipality.WithLogger(quietLogger()))
	require.Error(t, err)

	a, _, err := municipality.LoadMunicipalities(strings.NewReader(municipalitiesCSV), municipality.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.ErrorIs(t, a.ApplyDistances(), municipality.ErrNoGraph)
	m, _ := a.ByID(0)
	_, err = a.Route(m, m)
	require.ErrorIs(t, err, municipality.ErrNoGraph)
	_, err = a.LoadAdjacency(strings.NewReader("header\n"))
	require.ErrorIs(t, err, municipality.ErrNoData)
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "L ABERGEMENT CLEMENCIAT", municipality.NormalizeName("L'Abergement-Clémenciat"))
	require.Equal(t, "SAINT ETIENNE", municipality.NormalizeName("  saint--étienne "))
	require.Equal(t, "01001", municipality.NormalizeINSEE(" 1001"))
	require.Equal(t, "2A004", municipality.NormalizeINSEE("2A004"))
}
