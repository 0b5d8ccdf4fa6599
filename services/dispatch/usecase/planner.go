package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/limpia-app/dispatch/services/dispatch"
)

// Planner shapes GeoClient results into a RoutePlan for one worker.
// Plans are rebuilt from scratch on every run; nothing is cached between
// runs and no plan outlives the run that produced it.
type Planner struct {
	geo dispatch.GeoClient
	now func() time.Time
}

// NewPlanner creates a new route planner
func NewPlanner(geo dispatch.GeoClient) *Planner {
	return &Planner{
		geo: geo,
		now: time.Now,
	}
}

// PlanRoute computes the route for a worker over their active bookings.
// Returns (nil, nil) when there is nothing to plan: no active bookings,
// no known worker location, or no leg could be routed. That outcome is
// rendered as the empty state, not an error.
func (p *Planner) PlanRoute(ctx context.Context, worker *models.Worker, bookings []models.Booking, optimize bool) (*models.RoutePlan, error) {
	active := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ActiveFor(worker.ID) {
			active = append(active, b)
		}
	}

	if len(active) == 0 || worker.Location == nil {
		return nil, nil
	}

	start := p.now()

	if len(active) == 1 {
		return p.planSingle(ctx, worker, active[0], start)
	}
	if optimize {
		return p.planOptimized(ctx, worker, active, start)
	}
	return p.planSequential(ctx, worker, active, start)
}

// planSingle issues one leg from the worker to the only active stop
func (p *Planner) planSingle(ctx context.Context, worker *models.Worker, booking models.Booking, start time.Time) (*models.RoutePlan, error) {
	leg, err := p.geo.Route(ctx, *worker.Location, booking.Location)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}
	if leg == nil {
		logger.Warn("Route unavailable for only active stop",
			logger.String("worker_id", worker.ID.String()),
			logger.String("booking_id", booking.ID.String()))
		return nil, nil
	}

	return &models.RoutePlan{
		WorkerID: worker.ID.String(),
		Stops: []models.RouteStop{{
			Booking:         booking,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			ETA:             start.Add(time.Duration(leg.DurationSeconds * float64(time.Second))),
		}},
		DistanceMeters:  leg.DistanceMeters,
		DurationSeconds: leg.DurationSeconds,
		Geometry:        leg.Geometry,
		Optimized:       false,
		PlannedAt:       start,
	}, nil
}

// planOptimized issues one optimization call over all stops. The provider
// returns only aggregate metrics, so per-stop distance and duration are an
// even split of the totals rather than a true per-leg breakdown.
func (p *Planner) planOptimized(ctx context.Context, worker *models.Worker, active []models.Booking, start time.Time) (*models.RoutePlan, error) {
	points := make([]models.Coordinate, 0, len(active)+1)
	points = append(points, *worker.Location)
	for _, b := range active {
		points = append(points, b.Location)
	}

	trip, err := p.geo.OptimizedRoute(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}
	if trip == nil {
		logger.Warn("Optimized route unavailable",
			logger.String("worker_id", worker.ID.String()),
			logger.Int("stops", len(active)))
		return nil, nil
	}

	ordered := active
	if len(trip.Order) == len(active) {
		ordered = make([]models.Booking, 0, len(active))
		for _, idx := range trip.Order {
			ordered = append(ordered, active[idx])
		}
	}

	count := float64(len(ordered))
	segDistance := trip.DistanceMeters / count
	segDuration := trip.DurationSeconds / count

	stops := make([]models.RouteStop, 0, len(ordered))
	for i, booking := range ordered {
		cumulative := segDuration * float64(i+1)
		stops = append(stops, models.RouteStop{
			Booking:         booking,
			DistanceMeters:  segDistance,
			DurationSeconds: segDuration,
			ETA:             start.Add(time.Duration(cumulative * float64(time.Second))),
		})
	}

	return &models.RoutePlan{
		WorkerID:        worker.ID.String(),
		Stops:           stops,
		DistanceMeters:  trip.DistanceMeters,
		DurationSeconds: trip.DurationSeconds,
		Geometry:        trip.Geometry,
		Optimized:       true,
		PlannedAt:       start,
	}, nil
}

// planSequential visits stops in booking-list order, one leg per stop, the
// origin advancing to each visited stop. An unavailable leg is skipped: it
// emits no stop, contributes nothing to the totals, and the origin stays
// where it was.
func (p *Planner) planSequential(ctx context.Context, worker *models.Worker, active []models.Booking, start time.Time) (*models.RoutePlan, error) {
	current := *worker.Location

	var totalDistance, totalDuration float64
	stops := make([]models.RouteStop, 0, len(active))

	for _, booking := range active {
		leg, err := p.geo.Route(ctx, current, booking.Location)
		if err != nil {
			return nil, fmt.Errorf("plan route: %w", err)
		}
		if leg == nil {
			logger.Warn("Leg unavailable, skipping stop",
				logger.String("worker_id", worker.ID.String()),
				logger.String("booking_id", booking.ID.String()))
			continue
		}

		totalDistance += leg.DistanceMeters
		totalDuration += leg.DurationSeconds
		stops = append(stops, models.RouteStop{
			Booking:         booking,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			ETA:             start.Add(time.Duration(totalDuration * float64(time.Second))),
		})

		current = booking.Location
	}

	if len(stops) == 0 {
		return nil, nil
	}

	return &models.RoutePlan{
		WorkerID:        worker.ID.String(),
		Stops:           stops,
		DistanceMeters:  totalDistance,
		DurationSeconds: totalDuration,
		Optimized:       false,
		PlannedAt:       start,
	}, nil
}
