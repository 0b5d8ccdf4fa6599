package models

import "time"

// RouteResult is a single origin-to-destination leg returned by the routing provider
type RouteResult struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Geometry        string  `json:"geometry"`
}

// OptimizedResult is the aggregate of an optimized multi-stop trip.
// Order holds destination indices (0-based, excluding the fixed start)
// in optimized visiting order.
type OptimizedResult struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Geometry        string  `json:"geometry"`
	Order           []int   `json:"order"`
}

// RouteStop wraps one active booking with its computed leg metrics.
// Stops are rebuilt wholesale on every planning run, never mutated in place.
type RouteStop struct {
	Booking         Booking   `json:"booking"`
	DistanceMeters  float64   `json:"distance_meters"`
	DurationSeconds float64   `json:"duration_seconds"`
	ETA             time.Time `json:"eta"`
}

// RouteStateStatus is the lifecycle state of the live route view
type RouteStateStatus string

const (
	RouteStateIdle    RouteStateStatus = "idle"
	RouteStateLoading RouteStateStatus = "loading"
	RouteStateSuccess RouteStateStatus = "success"
	RouteStateError   RouteStateStatus = "error"
)

// RouteState is one snapshot of the live route view. Plan is nil in the
// success state when the worker has no active bookings or no known location.
type RouteState struct {
	Status  RouteStateStatus `json:"status"`
	Plan    *RoutePlan       `json:"plan,omitempty"`
	Message string           `json:"message,omitempty"`
}

// NearbyWorker is one suggestion for assigning a booking
type NearbyWorker struct {
	WorkerID   string     `json:"worker_id"`
	DistanceKm float64    `json:"distance_km"`
	Location   Coordinate `json:"location"`
}

// RoutePlan is the derived route for one worker and one planning run
type RoutePlan struct {
	WorkerID        string      `json:"worker_id"`
	Stops           []RouteStop `json:"stops"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Geometry        string      `json:"geometry"`
	Optimized       bool        `json:"optimized"`
	PlannedAt       time.Time   `json:"planned_at"`
}
