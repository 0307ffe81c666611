package municipality

import (
	"github.com/Excalibur888/PotooMaps/dijkstra"
	"github.com/Excalibur888/PotooMaps/geo"
	"github.com/Excalibur888/PotooMaps/poi"
)

// Route is a shortest path between two municipalities.
type Route struct {
	Path  *dijkstra.Path
	Stops []*Municipality
}

// From returns the departure municipality.
func (r *Route) From() *Municipality { return r.Stops[0] }

// To returns the arrival municipality.
func (r *Route) To() *Municipality { return r.Stops[len(r.Stops)-1] }

// Length returns the great-circle length of the route in kilometres,
// independent of any POI weighting applied to the graph.
func (r *Route) Length() float64 {
	km := 0.0
	for i := 1; i < len(r.Stops); i++ {
		a, b := r.Stops[i-1], r.Stops[i]
		km += geo.Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
	}

	return km
}

// Route computes the shortest path from one municipality to another.
// Unreachable destinations yield an error wrapping dijkstra.ErrNoPath.
func (a *Atlas) Route(from, to *Municipality, opts ...dijkstra.Option) (*Route, error) {
	if a.graph == nil {
		return nil, ErrNoGraph
	}
	p, err := dijkstra.ShortestPath(a.graph, from.ID, to.ID, opts...)
	if err != nil {
		return nil, err
	}
	stops := make([]*Municipality, len(p.Nodes))
	for i, id := range p.Nodes {
		stops[i] = a.list[id]
	}

	return &Route{Path: p, Stops: stops}, nil
}

// RouteStats summarises the POIs found near the stops of a route.
type RouteStats struct {
	Stops            int // municipalities on the route
	TotalPOIs        int // sum over stops of nearby POIs (overlaps counted twice)
	StopsWithPOIs    int
	StopsWithoutPOIs int // includes stops without usable coordinates
}

// Stats counts POIs within radiusDeg of every stop of r.
func Stats(r *Route, idx *poi.Index, radiusDeg float64) RouteStats {
	st := RouteStats{Stops: len(r.Stops)}
	for _, m := range r.Stops {
		n := 0
		if geo.Usable(m.Lat, m.Lon) {
			n = idx.CountAround(m.Lat, m.Lon, radiusDeg)
		}
		st.TotalPOIs += n
		if n > 0 {
			st.StopsWithPOIs++
		} else {
			st.StopsWithoutPOIs++
		}
	}

	return st
}
