package utils

import (
	"testing"

	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

// Laredo, TX service area center
var laredo = models.Coordinate{Latitude: 27.5064, Longitude: -99.5075}

func TestCalculateDistanceKm(t *testing.T) {
	// Same point
	assert.InDelta(t, 0, CalculateDistanceKm(laredo, laredo), 0.001)

	// Laredo to San Antonio is roughly 230 km great-circle
	sanAntonio := models.Coordinate{Latitude: 29.4241, Longitude: -98.4936}
	assert.InDelta(t, 235, CalculateDistanceKm(laredo, sanAntonio), 15)
}

func TestWithinServiceArea(t *testing.T) {
	// A point a couple of miles from the center
	near := models.Coordinate{Latitude: 27.53, Longitude: -99.48}
	assert.True(t, WithinServiceArea(near, laredo, 25))

	// San Antonio is far outside a 25 mile radius
	sanAntonio := models.Coordinate{Latitude: 29.4241, Longitude: -98.4936}
	assert.False(t, WithinServiceArea(sanAntonio, laredo, 25))

	// Malformed points never pass
	assert.False(t, WithinServiceArea(models.Coordinate{Latitude: 127}, laredo, 25))
}

func TestZone(t *testing.T) {
	zone := Zone(laredo)
	assert.Len(t, zone, 5)

	// Nearby points share a zone, distant ones do not
	near := models.Coordinate{Latitude: 27.5065, Longitude: -99.5076}
	assert.Equal(t, zone, Zone(near))

	sanAntonio := models.Coordinate{Latitude: 29.4241, Longitude: -98.4936}
	assert.NotEqual(t, zone, Zone(sanAntonio))
}

func TestZoneNeighbors(t *testing.T) {
	neighbors := ZoneNeighbors(Zone(laredo))
	assert.Len(t, neighbors, 8)
}
