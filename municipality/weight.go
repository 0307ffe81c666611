package municipality

import (
	"log/slog"

	"github.com/Excalibur888/PotooMaps/geo"
	"github.com/Excalibur888/PotooMaps/poi"
)

// ApplyDistances sets every edge weight to the haversine distance in
// kilometres between its endpoints.
func (a *Atlas) ApplyDistances() error {
	if a.graph == nil {
		return ErrNoGraph
	}
	for u, from := range a.list {
		succ, err := a.graph.Successors(u)
		if err != nil {
			return err
		}
		for _, e := range succ {
			to := a.list[e.Target]
			d := geo.Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
			if err = a.graph.SetEdge(u, e.Target, d); err != nil {
				return err
			}
		}
	}

	return nil
}

// ApplyPOIWeighting divides the weight of every edge entering a
// municipality by n+1, where n > 0 is the number of POIs within radiusDeg
// of it. Municipalities without usable coordinates (see geo.Usable) are
// left alone. It returns the number of municipalities whose incoming
// edges were shortened.
//
// Every edge is visited once, through Successors.
//
// Call it once, after ApplyDistances: each call divides again.
func (a *Atlas) ApplyPOIWeighting(idx *poi.Index, radiusDeg float64) (int, error) {
	if a.graph == nil {
		return 0, ErrNoGraph
	}
	// divisor[v] is n+1 for boosted municipalities and 0 otherwise.
	divisor := make([]float64, len(a.list))
	boosted := 0
	for v, m := range a.list {
		if !geo.Usable(m.Lat, m.Lon) {
			continue
		}
		if n := idx.CountAround(m.Lat, m.Lon, radiusDeg); n > 0 {
			divisor[v] = float64(n + 1)
			boosted++
		}
	}
	if boosted > 0 {
		for u := 0; u < a.graph.Size(); u++ {
			succ, err := a.graph.Successors(u)
			if err != nil {
				return 0, err
			}
			for _, e := range succ {
				if d := divisor[e.Target]; d > 0 {
					if err = a.graph.SetEdge(u, e.Target, e.Weight/d); err != nil {
						return 0, err
					}
				}
			}
		}
	}
	a.logger.Info("poi weighting applied",
		slog.Int("municipalities", boosted),
		slog.Float64("radius_deg", radiusDeg),
		slog.Int("pois", idx.Len()))

	return boosted, nil
}
