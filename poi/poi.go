// Package poi loads points of interest and answers proximity counts.
//
// POIs come from a tab-separated export or straight from an OpenStreetMap
// .osm.pbf extract. Either loader keeps only the requested amenity kinds
// and indexes the result by name in a dict.Dict, later rows replacing
// earlier ones of the same name. Index then places every POI in an R-tree
// so that "how many bars near this town" is a box query.
package poi

import (
	"errors"
	"slices"
	"strings"
)

// DefaultAmenities are the OSM amenity values kept when no filter is given.
var DefaultAmenities = []string{"bar", "pub", "cafe"}

// ErrNoData is returned when a source yields no usable row at all.
var ErrNoData = errors.New("poi: no data")

// POI is a named point with its OSM amenity kind.
type POI struct {
	Name    string
	Lat     float64
	Lon     float64
	Amenity string
}

// amenityFilter matches amenity values case-insensitively.
type amenityFilter []string

func newAmenityFilter(amenities []string) amenityFilter {
	if len(amenities) == 0 {
		amenities = DefaultAmenities
	}
	f := make(amenityFilter, 0, len(amenities))
	for _, a := range amenities {
		f = append(f, strings.ToLower(strings.TrimSpace(a)))
	}

	return f
}

func (f amenityFilter) match(amenity string) bool {
	return slices.Contains(f, strings.ToLower(strings.TrimSpace(amenity)))
}
