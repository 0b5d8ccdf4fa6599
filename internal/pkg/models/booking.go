package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAssigned   BookingStatus = "assigned"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusEnRoute    BookingStatus = "en_route"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// ChangeType identifies the kind of record-store change event
type ChangeType string

const (
	ChangeTypeInsert ChangeType = "insert"
	ChangeTypeUpdate ChangeType = "update"
	ChangeTypeDelete ChangeType = "delete"
)

// Booking represents a customer service booking
type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	CustomerID  uuid.UUID     `json:"customer_id" db:"customer_id"`
	WorkerID    *uuid.UUID    `json:"worker_id,omitempty" db:"worker_id"`
	ServiceType string        `json:"service_type" db:"service_type"`
	ScheduledAt time.Time     `json:"scheduled_at" db:"scheduled_at"`
	Address     string        `json:"address" db:"address"`
	Location    Coordinate    `json:"location"`
	Status      BookingStatus `json:"status" db:"status"`
	Price       float64       `json:"price" db:"price"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// ActiveFor reports whether the booking should be routed for the given worker.
// A booking counts only when it is assigned to that worker and not terminal.
func (b Booking) ActiveFor(workerID uuid.UUID) bool {
	if b.WorkerID == nil || *b.WorkerID != workerID {
		return false
	}
	return b.Status != BookingStatusCompleted && b.Status != BookingStatusCancelled
}

// BookingChangeEvent is one record-store change event on the bookings table
type BookingChangeEvent struct {
	Type    ChangeType `json:"type"`
	Booking Booking    `json:"booking"`
}

// AssignRequest is the operator request to assign a booking to a worker
type AssignRequest struct {
	BookingID string `json:"booking_id"`
	WorkerID  string `json:"worker_id"`
}

// BookingAssigned is published after a successful assignment mutation
type BookingAssigned struct {
	BookingID  string    `json:"booking_id"`
	WorkerID   string    `json:"worker_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// OperatorNotice is a transient operator-facing notification
type OperatorNotice struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
