// Package geo holds the great-circle and bounding-box helpers used to
// weight the municipality graph and to query points of interest.
//
// Coordinates are WGS84 decimal degrees. Points and boxes use the orb
// convention of [lon, lat] ordering; the helpers take (lat, lon) arguments
// in the order people read coordinates.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for route lengths.
const EarthRadiusKm = 6371.0

// Mainland is the box outside which a municipality is treated as overseas
// or as having unusable coordinates: latitude 40..53, longitude -6..10.
var Mainland = orb.Bound{Min: orb.Point{-6, 40}, Max: orb.Point{10, 53}}

// Haversine returns the great-circle distance in kilometres between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Point returns the orb point for (lat, lon).
func Point(lat, lon float64) orb.Point { return orb.Point{lon, lat} }

// Around returns the square box of half-side radiusDeg centred on (lat, lon).
func Around(lat, lon, radiusDeg float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{lon - radiusDeg, lat - radiusDeg},
		Max: orb.Point{lon + radiusDeg, lat + radiusDeg},
	}
}

// Usable reports whether (lat, lon) is a real coordinate inside Mainland.
// A zero latitude or longitude marks a missing value in the source tables.
func Usable(lat, lon float64) bool {
	if lat == 0 || lon == 0 {
		return false
	}

	return Mainland.Contains(Point(lat, lon))
}
