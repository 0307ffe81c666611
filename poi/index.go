package poi

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	"github.com/Excalibur888/PotooMaps/dict"
	"github.com/Excalibur888/PotooMaps/geo"
)

// Index is a spatial index of POIs.
type Index struct {
	tree rtree.RTreeG[*POI]
}

// NewIndex builds an Index from every POI in d, in name order.
func NewIndex(d *dict.Dict[*POI]) *Index {
	idx := &Index{}
	for _, p := range d.All() {
		idx.Add(p)
	}

	return idx
}

// Add inserts p.
func (idx *Index) Add(p *POI) {
	pt := [2]float64{p.Lon, p.Lat}
	idx.tree.Insert(pt, pt, p)
}

// Len returns the number of indexed POIs.
func (idx *Index) Len() int { return idx.tree.Len() }

// Count returns how many POIs fall inside b (edges included).
func (idx *Index) Count(b orb.Bound) int {
	n := 0
	idx.tree.Search([2]float64(b.Min), [2]float64(b.Max), func(_, _ [2]float64, _ *POI) bool {
		n++
		return true
	})

	return n
}

// CountAround counts POIs in the square of half-side radiusDeg around (lat, lon).
func (idx *Index) CountAround(lat, lon, radiusDeg float64) int {
	return idx.Count(geo.Around(lat, lon, radiusDeg))
}

// Within returns the POIs inside b in R-tree order.
func (idx *Index) Within(b orb.Bound) []*POI {
	var out []*POI
	idx.tree.Search([2]float64(b.Min), [2]float64(b.Max), func(_, _ [2]float64, p *POI) bool {
		out = append(out, p)
		return true
	})

	return out
}
