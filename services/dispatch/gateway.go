package dispatch

import (
	"context"

	"github.com/limpia-app/dispatch/internal/pkg/models"
)

// GeoClient defines the interface to the external directions/optimization provider.
// Both calls report "route unavailable" as a nil result with a nil error; a
// non-nil error means the request itself could not be made.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/limpia-app/dispatch/services/dispatch GeoClient,DispatchGW
type GeoClient interface {
	Route(ctx context.Context, origin, destination models.Coordinate) (*models.RouteResult, error)
	OptimizedRoute(ctx context.Context, points []models.Coordinate) (*models.OptimizedResult, error)
}

// DispatchGW defines the interface for dispatch event publishing
type DispatchGW interface {
	PublishBookingAssigned(ctx context.Context, event models.BookingAssigned) error
	PublishOperatorNotice(ctx context.Context, notice models.OperatorNotice) error
	PublishWorkerLocation(ctx context.Context, update models.LocationUpdate) error
}
