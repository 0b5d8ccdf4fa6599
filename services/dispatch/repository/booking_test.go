package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &BookingRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

var bookingRows = []string{
	"id", "customer_id", "worker_id", "service_type", "scheduled_at",
	"address", "latitude", "longitude", "status", "price", "created_at", "updated_at",
}

func TestGetBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	workerID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("FROM bookings WHERE id = \\$1").
		WithArgs(bookingID.String()).
		WillReturnRows(sqlmock.NewRows(bookingRows).AddRow(
			bookingID, uuid.New(), workerID.String(), "deep_clean", now,
			"123 Main St", 27.52, -99.46, "confirmed", 120.0, now, now,
		))

	booking, err := repo.GetBooking(context.Background(), bookingID.String())

	assert.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, bookingID, booking.ID)
	require.NotNil(t, booking.WorkerID)
	assert.Equal(t, workerID, *booking.WorkerID)
	assert.Equal(t, 27.52, booking.Location.Latitude)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestGetBooking_NullWorkerAndLocation(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("FROM bookings WHERE id = \\$1").
		WithArgs(bookingID.String()).
		WillReturnRows(sqlmock.NewRows(bookingRows).AddRow(
			bookingID, uuid.New(), nil, "standard_clean", now,
			"456 Oak Ave", nil, nil, "pending", 80.0, now, now,
		))

	booking, err := repo.GetBooking(context.Background(), bookingID.String())

	assert.NoError(t, err)
	require.NotNil(t, booking)
	assert.Nil(t, booking.WorkerID)
	assert.Equal(t, models.Coordinate{}, booking.Location)
}

func TestGetBooking_NotFound(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.NewString()

	mock.ExpectQuery("FROM bookings WHERE id = \\$1").
		WithArgs(bookingID).
		WillReturnError(sql.ErrNoRows)

	booking, err := repo.GetBooking(context.Background(), bookingID)

	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.Contains(t, err.Error(), "not found")
}

func TestListOpenBookings(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("FROM bookings\\s+WHERE status NOT IN").
		WillReturnRows(sqlmock.NewRows(bookingRows).
			AddRow(uuid.New(), uuid.New(), nil, "deep_clean", now,
				"123 Main St", 27.52, -99.46, "pending", 120.0, now, now).
			AddRow(uuid.New(), uuid.New(), nil, "standard_clean", now.Add(time.Hour),
				"456 Oak Ave", 27.48, -99.50, "confirmed", 80.0, now, now))

	bookings, err := repo.ListOpenBookings(context.Background())

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestAssignBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.NewString()
	workerID := uuid.NewString()
	assignedAt := time.Now()

	mock.ExpectExec("UPDATE bookings\\s+SET worker_id = \\$1, status = \\$2, updated_at = \\$3").
		WithArgs(workerID, models.BookingStatusAssigned, assignedAt, bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AssignBooking(context.Background(), bookingID, workerID, assignedAt)

	assert.NoError(t, err)
}

func TestAssignBooking_Conflict(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.NewString()
	workerID := uuid.NewString()
	assignedAt := time.Now()

	// The booking went terminal before the operator acted
	mock.ExpectExec("UPDATE bookings").
		WithArgs(workerID, models.BookingStatusAssigned, assignedAt, bookingID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AssignBooking(context.Background(), bookingID, workerID, assignedAt)

	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestAssignBooking_DBError(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE bookings").
		WillReturnError(errors.New("connection reset"))

	err := repo.AssignBooking(context.Background(), uuid.NewString(), uuid.NewString(), time.Now())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBookingConflict)
}

func TestListWorkers(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM workers ORDER BY full_name ASC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "status", "location_seen_at", "created_at", "updated_at",
		}).
			AddRow(uuid.New(), "Ana Torres", "available", now, now, now).
			AddRow(uuid.New(), "Zoe Pena", "on_job", nil, now, now))

	workers, err := repo.ListWorkers(context.Background())

	assert.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "Ana Torres", workers[0].FullName)
	assert.Equal(t, models.WorkerStatusAvailable, workers[0].Status)
	assert.Nil(t, workers[1].LocationSeenAt)
}

func TestUpdateWorkerSeenAt(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	workerID := uuid.NewString()
	seenAt := time.Now()

	mock.ExpectExec("UPDATE workers SET location_seen_at = \\$1").
		WithArgs(seenAt, workerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateWorkerSeenAt(context.Background(), workerID, seenAt)

	assert.NoError(t, err)
}
