package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/limpia-app/dispatch/internal/pkg/models"
)

// ErrBookingConflict is returned when an assignment targets a booking that
// is no longer assignable (completed or cancelled in the meantime).
var ErrBookingConflict = errors.New("booking is not assignable")

// BookingRepo provides booking and worker data access over Postgres
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	id, customer_id, worker_id, service_type, scheduled_at,
	address, latitude, longitude, status, price, created_at, updated_at
`

// scanBooking decodes one bookings row into a typed model. Rows are
// validated here at the boundary; nothing downstream re-checks shapes.
func scanBooking(row interface{ Scan(dest ...interface{}) error }) (*models.Booking, error) {
	booking := &models.Booking{}
	var workerID sql.NullString
	var lat, lng sql.NullFloat64

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&workerID,
		&booking.ServiceType,
		&booking.ScheduledAt,
		&booking.Address,
		&lat,
		&lng,
		&booking.Status,
		&booking.Price,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if workerID.Valid {
		id, err := uuid.Parse(workerID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid worker id on booking %s: %w", booking.ID, err)
		}
		booking.WorkerID = &id
	}
	if lat.Valid && lng.Valid {
		booking.Location = models.Coordinate{Latitude: lat.Float64, Longitude: lng.Float64}
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return booking, nil
}

// ListBookingsByWorker retrieves all bookings assigned to a worker,
// ordered by scheduled time
func (r *BookingRepo) ListBookingsByWorker(ctx context.Context, workerID string) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE worker_id = $1
		ORDER BY scheduled_at ASC`

	return r.listBookings(ctx, query, workerID)
}

// ListOpenBookings retrieves all non-terminal bookings, ordered by scheduled time
func (r *BookingRepo) ListOpenBookings(ctx context.Context) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status NOT IN ('completed', 'cancelled')
		ORDER BY scheduled_at ASC`

	return r.listBookings(ctx, query)
}

func (r *BookingRepo) listBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	return bookings, rows.Err()
}

// AssignBooking sets a booking's worker and moves it to assigned. The status
// guard keeps a terminal booking from being resurrected by a stale operator
// action; such an update affects zero rows and reports ErrBookingConflict.
func (r *BookingRepo) AssignBooking(ctx context.Context, bookingID, workerID string, assignedAt time.Time) error {
	query := `
		UPDATE bookings
		SET worker_id = $1, status = $2, updated_at = $3
		WHERE id = $4 AND status NOT IN ('completed', 'cancelled')`

	result, err := r.db.ExecContext(ctx, query, workerID, models.BookingStatusAssigned, assignedAt, bookingID)
	if err != nil {
		return fmt.Errorf("assign booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("assign booking: %w", err)
	}
	if affected == 0 {
		return ErrBookingConflict
	}

	return nil
}

const workerColumns = `id, full_name, status, location_seen_at, created_at, updated_at`

// GetWorker retrieves a worker by ID
func (r *BookingRepo) GetWorker(ctx context.Context, workerID string) (*models.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

	worker := &models.Worker{}
	err := r.db.GetContext(ctx, worker, query, workerID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("worker %s not found", workerID)
	}
	if err != nil {
		return nil, fmt.Errorf("get worker: %w", err)
	}

	return worker, nil
}

// ListWorkers retrieves all workers
func (r *BookingRepo) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY full_name ASC`

	workers := []models.Worker{}
	if err := r.db.SelectContext(ctx, &workers, query); err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}

	return workers, nil
}

// ListWorkersByStatus retrieves workers filtered by dispatch status
func (r *BookingRepo) ListWorkersByStatus(ctx context.Context, status models.WorkerStatus) ([]models.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE status = $1 ORDER BY full_name ASC`

	workers := []models.Worker{}
	if err := r.db.SelectContext(ctx, &workers, query, status); err != nil {
		return nil, fmt.Errorf("list workers by status: %w", err)
	}

	return workers, nil
}

// UpdateWorkerSeenAt stamps the last location report time on the worker row
func (r *BookingRepo) UpdateWorkerSeenAt(ctx context.Context, workerID string, seenAt time.Time) error {
	query := `UPDATE workers SET location_seen_at = $1, updated_at = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, seenAt, workerID); err != nil {
		return fmt.Errorf("update worker seen at: %w", err)
	}

	return nil
}
