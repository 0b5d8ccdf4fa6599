package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/models"
)

// Client wraps an OSRM-compatible directions/optimization service.
// It keeps no state between calls; a hung request is bounded only by the
// HTTP client timeout. Route-unavailable outcomes (provider errors,
// non-2xx responses, no route found) surface as a nil result, not an
// error, so callers can skip the leg without aborting the whole plan.
type Client struct {
	baseURL    string
	profile    string
	httpClient *http.Client
}

// NewClient creates a geo client from config
func NewClient(cfg models.GeoConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		profile:    cfg.Profile,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type osrmRoute struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Geometry string  `json:"geometry"`
}

type osrmRouteResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmWaypoint struct {
	WaypointIndex int `json:"waypoint_index"`
}

type osrmTripResponse struct {
	Code      string         `json:"code"`
	Trips     []osrmRoute    `json:"trips"`
	Waypoints []osrmWaypoint `json:"waypoints"`
}

// Route requests a single origin-to-destination leg. One request, no retries.
func (c *Client) Route(ctx context.Context, origin, destination models.Coordinate) (*models.RouteResult, error) {
	if !origin.Valid() || !destination.Valid() {
		return nil, errors.New("route: origin and destination must be valid coordinates")
	}

	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=polyline",
		c.baseURL, c.profile, coordPath([]models.Coordinate{origin, destination}))

	body, ok := c.get(ctx, url)
	if !ok {
		return nil, nil
	}

	var resp osrmRouteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Warn("Malformed routing response", logger.Err(err))
		return nil, nil
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		logger.Warn("No route found", logger.String("code", resp.Code))
		return nil, nil
	}

	route := resp.Routes[0]
	return &models.RouteResult{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Geometry:        route.Geometry,
	}, nil
}

// OptimizedRoute requests an optimized visiting order for points[1:],
// with points[0] fixed as the start. The provider returns only aggregate
// distance/duration for the whole trip.
func (c *Client) OptimizedRoute(ctx context.Context, points []models.Coordinate) (*models.OptimizedResult, error) {
	if len(points) < 2 {
		return nil, errors.New("optimized route: need a start and at least one destination")
	}
	for _, p := range points {
		if !p.Valid() {
			return nil, errors.New("optimized route: all points must be valid coordinates")
		}
	}

	url := fmt.Sprintf("%s/trip/v1/%s/%s?source=first&roundtrip=false&overview=full&geometries=polyline",
		c.baseURL, c.profile, coordPath(points))

	body, ok := c.get(ctx, url)
	if !ok {
		return nil, nil
	}

	var resp osrmTripResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Warn("Malformed trip response", logger.Err(err))
		return nil, nil
	}
	if resp.Code != "Ok" || len(resp.Trips) == 0 || len(resp.Waypoints) != len(points) {
		logger.Warn("No optimized trip found", logger.String("code", resp.Code))
		return nil, nil
	}

	// Waypoints come back in input order, each carrying its visit position.
	// Translate to destination indices (excluding the fixed start) sorted by
	// visit position.
	order := make([]int, len(points)-1)
	seen := make([]bool, len(points)-1)
	for inputIdx, wp := range resp.Waypoints {
		if inputIdx == 0 {
			continue // start point
		}
		if wp.WaypointIndex < 1 || wp.WaypointIndex >= len(points) {
			logger.Warn("Trip waypoint index out of range",
				logger.Int("waypoint_index", wp.WaypointIndex))
			return nil, nil
		}
		if seen[wp.WaypointIndex-1] {
			logger.Warn("Duplicate trip waypoint index",
				logger.Int("waypoint_index", wp.WaypointIndex))
			return nil, nil
		}
		seen[wp.WaypointIndex-1] = true
		order[wp.WaypointIndex-1] = inputIdx - 1
	}

	trip := resp.Trips[0]
	return &models.OptimizedResult{
		DistanceMeters:  trip.Distance,
		DurationSeconds: trip.Duration,
		Geometry:        trip.Geometry,
		Order:           order,
	}, nil
}

// get performs one GET request and returns the body, with ok=false for any
// transport failure or non-2xx response.
func (c *Client) get(ctx context.Context, url string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Warn("Failed to build routing request", logger.Err(err))
		return nil, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Routing request failed", logger.Err(err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Routing provider returned non-success status",
			logger.Int("status", resp.StatusCode))
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("Failed to read routing response", logger.Err(err))
		return nil, false
	}

	return body, true
}

// coordPath renders coordinates as the lon,lat;lon,lat path segment OSRM expects
func coordPath(points []models.Coordinate) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("%f,%f", p.Longitude, p.Latitude))
	}
	return strings.Join(parts, ";")
}
