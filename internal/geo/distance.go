// Package geo computes great-circle distances between latitude/longitude points.
package geo

import (
	"math"

	"hole-map-service/internal/domain"
)

const (
	// EarthRadiusMeters is the mean Earth radius. The model is a sphere, not an ellipsoid.
	EarthRadiusMeters = 6371000.0
	MetersToYards     = 1.0936133
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceMeters returns the haversine distance between two points in meters.
// Inputs are not range checked; non-finite input yields a non-finite result.
func DistanceMeters(from, to domain.Coordinates) float64 {
	lat1 := toRadians(from.Lat)
	lat2 := toRadians(to.Lat)
	dLat := toRadians(to.Lat - from.Lat)
	dLng := toRadians(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceYards returns the haversine distance between two points in yards.
func DistanceYards(from, to domain.Coordinates) float64 {
	return DistanceMeters(from, to) * MetersToYards
}
