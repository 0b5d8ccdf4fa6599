package models

import "time"

// Coordinate represents a geographic point
type Coordinate struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Valid reports whether the coordinate is a well-formed lat/lng pair
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// LocationUpdate represents a worker location report
type LocationUpdate struct {
	WorkerID   string     `json:"worker_id"`
	Location   Coordinate `json:"location"`
	ReportedAt time.Time  `json:"reported_at"`
}
