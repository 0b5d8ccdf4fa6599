package dispatch

import (
	"context"
	"time"

	"github.com/limpia-app/dispatch/internal/pkg/models"
)

// BookingRepo defines the interface for booking and worker data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limpia-app/dispatch/services/dispatch BookingRepo,LocationRepo
type BookingRepo interface {
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookingsByWorker(ctx context.Context, workerID string) ([]models.Booking, error)
	ListOpenBookings(ctx context.Context) ([]models.Booking, error)
	AssignBooking(ctx context.Context, bookingID, workerID string, assignedAt time.Time) error

	GetWorker(ctx context.Context, workerID string) (*models.Worker, error)
	ListWorkers(ctx context.Context) ([]models.Worker, error)
	ListWorkersByStatus(ctx context.Context, status models.WorkerStatus) ([]models.Worker, error)
	UpdateWorkerSeenAt(ctx context.Context, workerID string, seenAt time.Time) error
}

// LocationRepo defines the interface for the worker location cache
type LocationRepo interface {
	SaveWorkerLocation(ctx context.Context, workerID string, location models.Coordinate, reportedAt time.Time) error
	GetWorkerLocation(ctx context.Context, workerID string) (*models.Coordinate, error)
	NearbyWorkers(ctx context.Context, center models.Coordinate, radiusKm float64, count int) ([]models.NearbyWorker, error)
	RemoveWorker(ctx context.Context, workerID string) error
}
