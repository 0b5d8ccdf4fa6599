package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkerStatus represents the dispatch status of a worker
type WorkerStatus string

const (
	WorkerStatusAvailable WorkerStatus = "available"
	WorkerStatusEnRoute   WorkerStatus = "en_route"
	WorkerStatusOnJob     WorkerStatus = "on_job"
	WorkerStatusBreak     WorkerStatus = "break"
	WorkerStatusOffline   WorkerStatus = "offline"
)

// Worker represents a field worker visible on the dispatch board
type Worker struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	FullName       string       `json:"full_name" db:"full_name"`
	Status         WorkerStatus `json:"status" db:"status"`
	Location       *Coordinate  `json:"location,omitempty"`
	Zone           string       `json:"zone,omitempty"`
	LocationSeenAt *time.Time   `json:"location_seen_at,omitempty" db:"location_seen_at"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

// WorkerChangeEvent is one record-store change event on the workers table
type WorkerChangeEvent struct {
	Type   ChangeType `json:"type"`
	Worker Worker     `json:"worker"`
}
