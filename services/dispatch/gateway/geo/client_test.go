package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(models.GeoConfig{
		BaseURL:        server.URL,
		Profile:        "driving",
		TimeoutSeconds: 5,
	})
	return client, server
}

var (
	origin      = models.Coordinate{Latitude: 27.50, Longitude: -99.48}
	destination = models.Coordinate{Latitude: 27.52, Longitude: -99.46}
)

func TestRoute_Success(t *testing.T) {
	var gotPath string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":3200.5,"duration":480.2,"geometry":"abc123"}]}`))
	})
	defer server.Close()

	result, err := client.Route(context.Background(), origin, destination)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 3200.5, result.DistanceMeters)
	assert.Equal(t, 480.2, result.DurationSeconds)
	assert.Equal(t, "abc123", result.Geometry)

	// Coordinates go on the path as lon,lat pairs
	assert.True(t, strings.HasPrefix(gotPath, "/route/v1/driving/"))
	assert.Contains(t, gotPath, "-99.480000,27.500000;-99.460000,27.520000")
}

func TestRoute_NoRouteFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	})
	defer server.Close()

	result, err := client.Route(context.Background(), origin, destination)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRoute_ServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	result, err := client.Route(context.Background(), origin, destination)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRoute_MalformedBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":`))
	})
	defer server.Close()

	result, err := client.Route(context.Background(), origin, destination)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRoute_ProviderUnreachable(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // connection refused from here on

	result, err := client.Route(context.Background(), origin, destination)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRoute_InvalidCoordinates(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for invalid input")
	})
	defer server.Close()

	result, err := client.Route(context.Background(), models.Coordinate{Latitude: 127}, destination)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestOptimizedRoute_Success(t *testing.T) {
	var gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		// Input order: start, A, B. The trip visits B first, then A.
		w.Write([]byte(`{"code":"Ok","trips":[{"distance":8000,"duration":900,"geometry":"trip"}],` +
			`"waypoints":[{"waypoint_index":0},{"waypoint_index":2},{"waypoint_index":1}]}`))
	})
	defer server.Close()

	points := []models.Coordinate{
		origin,
		{Latitude: 27.52, Longitude: -99.46},
		{Latitude: 27.48, Longitude: -99.50},
	}

	result, err := client.OptimizedRoute(context.Background(), points)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 8000.0, result.DistanceMeters)
	assert.Equal(t, 900.0, result.DurationSeconds)
	assert.Equal(t, []int{1, 0}, result.Order)

	assert.Contains(t, gotQuery, "source=first")
	assert.Contains(t, gotQuery, "roundtrip=false")
}

func TestOptimizedRoute_NoTrip(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoTrips","trips":[],"waypoints":[]}`))
	})
	defer server.Close()

	points := []models.Coordinate{origin, destination, {Latitude: 27.48, Longitude: -99.50}}
	result, err := client.OptimizedRoute(context.Background(), points)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestOptimizedRoute_WaypointCountMismatch(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","trips":[{"distance":8000,"duration":900}],` +
			`"waypoints":[{"waypoint_index":0}]}`))
	})
	defer server.Close()

	points := []models.Coordinate{origin, destination, {Latitude: 27.48, Longitude: -99.50}}
	result, err := client.OptimizedRoute(context.Background(), points)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestOptimizedRoute_DuplicateWaypointIndex(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","trips":[{"distance":8000,"duration":900}],` +
			`"waypoints":[{"waypoint_index":0},{"waypoint_index":2},{"waypoint_index":2}]}`))
	})
	defer server.Close()

	points := []models.Coordinate{origin, destination, {Latitude: 27.48, Longitude: -99.50}}
	result, err := client.OptimizedRoute(context.Background(), points)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestOptimizedRoute_TooFewPoints(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for invalid input")
	})
	defer server.Close()

	result, err := client.OptimizedRoute(context.Background(), []models.Coordinate{origin})

	assert.Error(t, err)
	assert.Nil(t, result)
}
