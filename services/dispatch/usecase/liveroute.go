package usecase

import (
	"context"
	"sync"

	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/models"
)

const routeErrorMessage = "Failed to calculate route"

// LiveRoute owns the asynchronous lifecycle around the planner: loading
// while a plan is computed, error when computation fails, success with the
// fresh plan otherwise. Every trigger re-enters loading; terminal states
// never persist across triggers.
//
// Each run carries a token from a monotonically increasing counter. A run
// whose token is no longer current discards its result, so a slow, stale
// response cannot clobber the state of a newer run.
type LiveRoute struct {
	mu        sync.Mutex
	planner   *Planner
	state     models.RouteState
	runToken  uint64
	listeners []func(models.RouteState)
}

// NewLiveRoute creates a live route view in the idle state
func NewLiveRoute(planner *Planner) *LiveRoute {
	return &LiveRoute{
		planner: planner,
		state:   models.RouteState{Status: models.RouteStateIdle},
	}
}

// Subscribe registers a listener for state snapshots. Listeners are invoked
// outside the lock, in trigger order for any single run.
func (lr *LiveRoute) Subscribe(fn func(models.RouteState)) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	lr.listeners = append(lr.listeners, fn)
}

// State returns the current state snapshot
func (lr *LiveRoute) State() models.RouteState {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.state
}

// Refresh starts a new planning run for the given inputs. The previous
// run, if still in flight, is invalidated by the token bump. The bookings
// slice must be a snapshot owned by the caller; it is not mutated here.
func (lr *LiveRoute) Refresh(ctx context.Context, worker *models.Worker, bookings []models.Booking, optimize bool) {
	lr.mu.Lock()
	lr.runToken++
	token := lr.runToken
	lr.state = models.RouteState{Status: models.RouteStateLoading}
	listeners := lr.snapshotListeners()
	state := lr.state
	lr.mu.Unlock()

	lr.notify(listeners, state)

	go lr.run(ctx, token, worker, bookings, optimize)
}

// Reset returns the view to idle (worker deselected or routes hidden)
func (lr *LiveRoute) Reset() {
	lr.mu.Lock()
	lr.runToken++
	lr.state = models.RouteState{Status: models.RouteStateIdle}
	listeners := lr.snapshotListeners()
	state := lr.state
	lr.mu.Unlock()

	lr.notify(listeners, state)
}

func (lr *LiveRoute) run(ctx context.Context, token uint64, worker *models.Worker, bookings []models.Booking, optimize bool) {
	plan, err := lr.planner.PlanRoute(ctx, worker, bookings, optimize)

	lr.mu.Lock()
	if token != lr.runToken {
		lr.mu.Unlock()
		logger.Debug("Discarding stale route plan result",
			logger.String("worker_id", worker.ID.String()))
		return
	}

	if err != nil {
		logger.Error("Route plan computation failed",
			logger.String("worker_id", worker.ID.String()),
			logger.Err(err))
		lr.state = models.RouteState{
			Status:  models.RouteStateError,
			Message: routeErrorMessage,
		}
	} else {
		lr.state = models.RouteState{
			Status: models.RouteStateSuccess,
			Plan:   plan,
		}
	}

	listeners := lr.snapshotListeners()
	state := lr.state
	lr.mu.Unlock()

	lr.notify(listeners, state)
}

func (lr *LiveRoute) snapshotListeners() []func(models.RouteState) {
	out := make([]func(models.RouteState), len(lr.listeners))
	copy(out, lr.listeners)
	return out
}

func (lr *LiveRoute) notify(listeners []func(models.RouteState), state models.RouteState) {
	for _, fn := range listeners {
		fn(state)
	}
}
