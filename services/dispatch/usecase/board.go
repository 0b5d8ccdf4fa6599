package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/limpia-app/dispatch/internal/utils"
	"github.com/limpia-app/dispatch/services/dispatch"
)

const nearbyWorkerLimit = 5

// boardUC implements the dispatch.BoardUC interface. It owns the live
// worker/booking collections fed by the record-store change feed; the feed
// is the sole writer of canonical state, the board only mirrors it.
type boardUC struct {
	cfg       *models.Config
	repo      dispatch.BookingRepo
	locations dispatch.LocationRepo
	gw        dispatch.DispatchGW
	live      *LiveRoute

	mu              sync.RWMutex
	bookings        map[string]models.Booking
	workers         map[string]models.Worker
	selectedWorker  string
	selectedBooking string
	viewMode        models.ViewMode
	showTraffic     bool
	showServiceArea bool
	showRoutes      bool
	optimizeRoutes  bool
}

// NewBoardUC creates a new dispatch board use case
func NewBoardUC(
	cfg *models.Config,
	repo dispatch.BookingRepo,
	locationRepo dispatch.LocationRepo,
	gw dispatch.DispatchGW,
	geo dispatch.GeoClient,
) (dispatch.BoardUC, error) {
	return &boardUC{
		cfg:       cfg,
		repo:      repo,
		locations: locationRepo,
		gw:        gw,
		live:      NewLiveRoute(NewPlanner(geo)),
		viewMode:  models.ViewModeMap,
		bookings:  make(map[string]models.Booking),
		workers:   make(map[string]models.Worker),
	}, nil
}

// Load pulls the initial collections from the record store
func (uc *boardUC) Load(ctx context.Context) error {
	bookings, err := uc.repo.ListOpenBookings(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	workers, err := uc.repo.ListWorkers(ctx)
	if err != nil {
		return fmt.Errorf("load workers: %w", err)
	}

	uc.mu.Lock()
	uc.bookings = make(map[string]models.Booking, len(bookings))
	for _, b := range bookings {
		uc.bookings[b.ID.String()] = b
	}
	uc.workers = make(map[string]models.Worker, len(workers))
	for _, w := range workers {
		uc.workers[w.ID.String()] = w
	}
	uc.mu.Unlock()

	logger.Info("Dispatch board loaded",
		logger.Int("bookings", len(bookings)),
		logger.Int("workers", len(workers)))

	return nil
}

// Workers returns a snapshot of the worker collection with map zones attached
func (uc *boardUC) Workers() []models.Worker {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]models.Worker, 0, len(uc.workers))
	for _, w := range uc.workers {
		if w.Location != nil {
			w.Zone = utils.Zone(*w.Location)
		}
		out = append(out, w)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}

// Bookings returns a snapshot of the booking collection in scheduled order
func (uc *boardUC) Bookings() []models.Booking {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.bookingsSorted()
}

// bookingsSorted returns bookings ordered by scheduled time, then ID for a
// stable order. Callers must hold at least the read lock.
func (uc *boardUC) bookingsSorted() []models.Booking {
	out := make([]models.Booking, 0, len(uc.bookings))
	for _, b := range uc.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

// ApplyBookingChange mirrors one change-feed event into the collection and
// retriggers planning when the selected worker's active set is affected.
func (uc *boardUC) ApplyBookingChange(event models.BookingChangeEvent) {
	id := event.Booking.ID.String()

	uc.mu.Lock()
	previous, existed := uc.bookings[id]
	switch event.Type {
	case models.ChangeTypeDelete:
		delete(uc.bookings, id)
	default:
		uc.bookings[id] = event.Booking
	}

	affects := uc.affectsSelected(event.Booking) || (existed && uc.affectsSelected(previous))
	uc.mu.Unlock()

	if affects {
		uc.refreshRoute(context.Background())
	}
}

// ApplyWorkerChange mirrors one change-feed event into the collection.
// A worker going offline is also dropped from the location cache so the
// nearby index never suggests them.
func (uc *boardUC) ApplyWorkerChange(event models.WorkerChangeEvent) {
	id := event.Worker.ID.String()

	if event.Type != models.ChangeTypeDelete && event.Worker.Status == models.WorkerStatusOffline {
		if err := uc.locations.RemoveWorker(context.Background(), id); err != nil {
			logger.Warn("Failed to evict offline worker from location cache",
				logger.String("worker_id", id),
				logger.Err(err))
		}
	}

	uc.mu.Lock()
	switch event.Type {
	case models.ChangeTypeDelete:
		delete(uc.workers, id)
	default:
		// Preserve a cached location when the row carries none
		if event.Worker.Location == nil {
			if current, ok := uc.workers[id]; ok {
				event.Worker.Location = current.Location
			}
		}
		uc.workers[id] = event.Worker
	}
	selected := uc.selectedWorker == id
	uc.mu.Unlock()

	if selected {
		uc.refreshRoute(context.Background())
	}
}

// affectsSelected reports whether a booking belongs to the selected worker.
// Callers must hold the lock.
func (uc *boardUC) affectsSelected(b models.Booking) bool {
	return uc.selectedWorker != "" && b.WorkerID != nil && b.WorkerID.String() == uc.selectedWorker
}

// SelectWorker sets the operator's worker selection and retriggers planning.
// A worker the change feed has not delivered yet is fetched from the record
// store and put on the board.
func (uc *boardUC) SelectWorker(ctx context.Context, workerID string) error {
	uc.mu.Lock()
	_, known := uc.workers[workerID]
	uc.mu.Unlock()

	if !known {
		worker, err := uc.repo.GetWorker(ctx, workerID)
		if err != nil {
			return fmt.Errorf("select worker: %w", err)
		}
		uc.mu.Lock()
		uc.workers[workerID] = *worker
		uc.mu.Unlock()
	}

	uc.mu.Lock()
	uc.selectedWorker = workerID
	uc.mu.Unlock()

	uc.refreshRoute(ctx)
	return nil
}

// ClearSelection drops the worker and booking selections and resets the
// route view
func (uc *boardUC) ClearSelection() {
	uc.mu.Lock()
	uc.selectedWorker = ""
	uc.selectedBooking = ""
	uc.mu.Unlock()

	uc.live.Reset()
}

// SelectBooking sets the operator's booking selection. An empty ID clears
// it. The selection only marks a console row, it never feeds planning.
func (uc *boardUC) SelectBooking(bookingID string) {
	uc.mu.Lock()
	uc.selectedBooking = bookingID
	uc.mu.Unlock()
}

// SetViewMode switches the console between the map and list panels
func (uc *boardUC) SetViewMode(mode models.ViewMode) error {
	if mode != models.ViewModeMap && mode != models.ViewModeList {
		return fmt.Errorf("unknown view mode %q", mode)
	}

	uc.mu.Lock()
	uc.viewMode = mode
	uc.mu.Unlock()
	return nil
}

// SetShowTraffic toggles the traffic overlay
func (uc *boardUC) SetShowTraffic(enabled bool) {
	uc.mu.Lock()
	uc.showTraffic = enabled
	uc.mu.Unlock()
}

// SetShowServiceArea toggles the service area overlay
func (uc *boardUC) SetShowServiceArea(enabled bool) {
	uc.mu.Lock()
	uc.showServiceArea = enabled
	uc.mu.Unlock()
}

// DisplayState returns a snapshot of the console rendering state
func (uc *boardUC) DisplayState() models.DisplayState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return models.DisplayState{
		ViewMode:        uc.viewMode,
		ShowTraffic:     uc.showTraffic,
		ShowServiceArea: uc.showServiceArea,
		ShowRoutes:      uc.showRoutes,
		OptimizeRoutes:  uc.optimizeRoutes,
		SelectedWorker:  uc.selectedWorker,
		SelectedBooking: uc.selectedBooking,
	}
}

// SetShowRoutes toggles the route panel
func (uc *boardUC) SetShowRoutes(ctx context.Context, enabled bool) {
	uc.mu.Lock()
	uc.showRoutes = enabled
	uc.mu.Unlock()

	uc.refreshRoute(ctx)
}

// SetOptimizeRoutes toggles optimized planning and retriggers a fresh run
func (uc *boardUC) SetOptimizeRoutes(ctx context.Context, enabled bool) {
	uc.mu.Lock()
	uc.optimizeRoutes = enabled
	uc.mu.Unlock()

	uc.refreshRoute(ctx)
}

// RouteState returns the current live route state snapshot
func (uc *boardUC) RouteState() models.RouteState {
	return uc.live.State()
}

// SubscribeRouteState registers a listener for live route state snapshots
func (uc *boardUC) SubscribeRouteState(fn func(models.RouteState)) {
	uc.live.Subscribe(fn)
}

// refreshRoute starts a new planning run for the current selection, or
// resets the view when routes are hidden or nothing is selected.
func (uc *boardUC) refreshRoute(ctx context.Context) {
	uc.mu.RLock()
	show := uc.showRoutes
	selected := uc.selectedWorker
	optimize := uc.optimizeRoutes
	worker, hasWorker := uc.workers[selected]
	bookings := uc.bookingsSorted()
	uc.mu.RUnlock()

	if !show || selected == "" || !hasWorker {
		uc.live.Reset()
		return
	}

	// Fall back to the cached position when the row carries no location
	if worker.Location == nil {
		location, err := uc.locations.GetWorkerLocation(ctx, selected)
		if err != nil {
			logger.Warn("Failed to read cached worker location",
				logger.String("worker_id", selected),
				logger.Err(err))
		}
		worker.Location = location
	}

	uc.live.Refresh(ctx, &worker, bookings, optimize)
}

// AssignBooking sets a booking's worker through the record store. Local
// state is not mutated on any path; the next change event re-syncs it.
func (uc *boardUC) AssignBooking(ctx context.Context, req models.AssignRequest) error {
	uc.mu.RLock()
	_, workerKnown := uc.workers[req.WorkerID]
	uc.mu.RUnlock()

	if !workerKnown {
		return fmt.Errorf("worker %s not on the board", req.WorkerID)
	}

	if err := uc.repo.AssignBooking(ctx, req.BookingID, req.WorkerID, time.Now()); err != nil {
		notice := models.OperatorNotice{
			Level:     "error",
			Message:   "Failed to assign booking",
			CreatedAt: time.Now(),
		}
		if pubErr := uc.gw.PublishOperatorNotice(ctx, notice); pubErr != nil {
			logger.Warn("Failed to publish operator notice", logger.Err(pubErr))
		}
		return fmt.Errorf("assign booking: %w", err)
	}

	event := models.BookingAssigned{
		BookingID:  req.BookingID,
		WorkerID:   req.WorkerID,
		AssignedAt: time.Now(),
	}
	if err := uc.gw.PublishBookingAssigned(ctx, event); err != nil {
		logger.Warn("Failed to publish assignment event",
			logger.String("booking_id", req.BookingID),
			logger.Err(err))
	}

	return nil
}

// ReportWorkerLocation records a worker position report
func (uc *boardUC) ReportWorkerLocation(ctx context.Context, update models.LocationUpdate) error {
	if !update.Location.Valid() {
		return fmt.Errorf("invalid coordinates for worker %s", update.WorkerID)
	}

	center := models.Coordinate{
		Latitude:  uc.cfg.Dispatch.ServiceAreaLat,
		Longitude: uc.cfg.Dispatch.ServiceAreaLng,
	}
	if !utils.WithinServiceArea(update.Location, center, uc.cfg.Dispatch.ServiceAreaMiles) {
		return fmt.Errorf("worker %s reported a position outside the service area", update.WorkerID)
	}
	if update.ReportedAt.IsZero() {
		update.ReportedAt = time.Now()
	}

	if err := uc.locations.SaveWorkerLocation(ctx, update.WorkerID, update.Location, update.ReportedAt); err != nil {
		return fmt.Errorf("report worker location: %w", err)
	}
	if err := uc.repo.UpdateWorkerSeenAt(ctx, update.WorkerID, update.ReportedAt); err != nil {
		logger.Warn("Failed to stamp worker row",
			logger.String("worker_id", update.WorkerID),
			logger.Err(err))
	}
	if err := uc.gw.PublishWorkerLocation(ctx, update); err != nil {
		logger.Warn("Failed to publish worker location",
			logger.String("worker_id", update.WorkerID),
			logger.Err(err))
	}

	uc.mu.Lock()
	worker, ok := uc.workers[update.WorkerID]
	if ok {
		location := update.Location
		worker.Location = &location
		seenAt := update.ReportedAt
		worker.LocationSeenAt = &seenAt
		uc.workers[update.WorkerID] = worker
	}
	selected := uc.selectedWorker == update.WorkerID
	uc.mu.Unlock()

	if selected {
		uc.refreshRoute(ctx)
	}

	return nil
}

// NearbyWorkers suggests available workers close to a booking's destination
func (uc *boardUC) NearbyWorkers(ctx context.Context, bookingID string) ([]models.NearbyWorker, error) {
	uc.mu.RLock()
	booking, ok := uc.bookings[bookingID]
	uc.mu.RUnlock()

	if !ok {
		fetched, err := uc.repo.GetBooking(ctx, bookingID)
		if err != nil {
			return nil, fmt.Errorf("nearby workers: %w", err)
		}
		booking = *fetched
	}

	candidates, err := uc.locations.NearbyWorkers(ctx, booking.Location, uc.cfg.Dispatch.NearbyRadiusKm, nearbyWorkerLimit)
	if err != nil {
		return nil, fmt.Errorf("nearby workers: %w", err)
	}

	// Keep only workers currently available on the board
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]models.NearbyWorker, 0, len(candidates))
	for _, candidate := range candidates {
		worker, known := uc.workers[candidate.WorkerID]
		if known && worker.Status == models.WorkerStatusAvailable {
			out = append(out, candidate)
		}
	}

	return out, nil
}

// WorkerBookings lists a worker's bookings in scheduled order
func (uc *boardUC) WorkerBookings(ctx context.Context, workerID string) ([]models.Booking, error) {
	bookings, err := uc.repo.ListBookingsByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("worker bookings: %w", err)
	}
	return bookings, nil
}

// WorkersByStatus lists workers filtered by dispatch status
func (uc *boardUC) WorkersByStatus(ctx context.Context, status models.WorkerStatus) ([]models.Worker, error) {
	workers, err := uc.repo.ListWorkersByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("workers by status: %w", err)
	}
	return workers, nil
}
