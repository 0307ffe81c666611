// Package export renders routes for map viewers.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Excalibur888/PotooMaps/geo"
	"github.com/Excalibur888/PotooMaps/municipality"
)

// ErrEmptyRoute is returned for a nil route or one without stops.
var ErrEmptyRoute = errors.New("export: empty route")

// Options tunes the GeoJSON output.
type Options struct {
	// Points adds one Point feature per stop after the LineString.
	Points bool
}

// FeatureCollection builds the GeoJSON view of r: a LineString through
// every stop in travel order, with the endpoints' names, the great-circle
// length and the stop count as properties.
func FeatureCollection(r *municipality.Route, opts Options) (*geojson.FeatureCollection, error) {
	if r == nil || len(r.Stops) == 0 {
		return nil, ErrEmptyRoute
	}

	line := make(orb.LineString, len(r.Stops))
	for i, m := range r.Stops {
		line[i] = geo.Point(m.Lat, m.Lon)
	}
	f := geojson.NewFeature(line)
	f.Properties["from"] = r.From().Name
	f.Properties["to"] = r.To().Name
	f.Properties["distance_km"] = r.Length()
	f.Properties["stops"] = len(r.Stops)

	fc := geojson.NewFeatureCollection()
	fc.Append(f)
	if opts.Points {
		for i, m := range r.Stops {
			p := geojson.NewFeature(geo.Point(m.Lat, m.Lon))
			p.Properties["name"] = m.Name
			p.Properties["insee"] = m.INSEE
			p.Properties["order"] = i
			fc.Append(p)
		}
	}

	return fc, nil
}

// GeoJSON writes the FeatureCollection of r to w.
func GeoJSON(w io.Writer, r *municipality.Route, opts Options) error {
	fc, err := FeatureCollection(r, opts)
	if err != nil {
		return err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("export: marshal: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}

	return nil
}
