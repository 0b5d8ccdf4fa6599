package dispatch

import (
	"context"

	"github.com/limpia-app/dispatch/internal/pkg/models"
)

// BoardUC defines the interface for dispatch board business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/limpia-app/dispatch/services/dispatch BoardUC
type BoardUC interface {
	// Load pulls the initial collections from the record store
	Load(ctx context.Context) error

	// Live collections
	Workers() []models.Worker
	Bookings() []models.Booking
	ApplyBookingChange(event models.BookingChangeEvent)
	ApplyWorkerChange(event models.WorkerChangeEvent)

	// Operator selection and toggles
	SelectWorker(ctx context.Context, workerID string) error
	SelectBooking(bookingID string)
	ClearSelection()
	SetShowRoutes(ctx context.Context, enabled bool)
	SetOptimizeRoutes(ctx context.Context, enabled bool)
	SetViewMode(mode models.ViewMode) error
	SetShowTraffic(enabled bool)
	SetShowServiceArea(enabled bool)
	DisplayState() models.DisplayState
	RouteState() models.RouteState
	SubscribeRouteState(fn func(models.RouteState))

	// Mutations and queries
	AssignBooking(ctx context.Context, req models.AssignRequest) error
	ReportWorkerLocation(ctx context.Context, update models.LocationUpdate) error
	NearbyWorkers(ctx context.Context, bookingID string) ([]models.NearbyWorker, error)
	WorkerBookings(ctx context.Context, workerID string) ([]models.Booking, error)
	WorkersByStatus(ctx context.Context, status models.WorkerStatus) ([]models.Worker, error)
}
