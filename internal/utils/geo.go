package utils

import (
	"math"

	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

const (
	earthRadiusKm = 6371.0
	milesPerKm    = 0.621371
)

// CalculateDistanceKm returns the great-circle distance between two points
// in kilometers using the Haversine formula.
func CalculateDistanceKm(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// CalculateDistanceMiles returns the great-circle distance in miles
func CalculateDistanceMiles(a, b models.Coordinate) float64 {
	return CalculateDistanceKm(a, b) * milesPerKm
}

// WithinServiceArea reports whether a point lies within radiusMiles of the
// service-area center.
func WithinServiceArea(point, center models.Coordinate, radiusMiles float64) bool {
	if !point.Valid() {
		return false
	}
	return CalculateDistanceMiles(point, center) <= radiusMiles
}

// Zone returns the map bucketing zone for a coordinate. Precision 5 gives
// cells of roughly 5km, enough to group workers on the board overview.
func Zone(c models.Coordinate) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, 5)
}

// ZoneNeighbors returns the zones adjacent to the given zone
func ZoneNeighbors(zone string) []string {
	return geohash.Neighbors(zone)
}
