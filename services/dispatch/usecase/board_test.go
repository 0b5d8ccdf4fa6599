package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/limpia-app/dispatch/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardMocks struct {
	repo      *mocks.MockBookingRepo
	locations *mocks.MockLocationRepo
	gw        *mocks.MockDispatchGW
	geo       *mocks.MockGeoClient
}

func newBoard(t *testing.T) (*boardUC, boardMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := boardMocks{
		repo:      mocks.NewMockBookingRepo(ctrl),
		locations: mocks.NewMockLocationRepo(ctrl),
		gw:        mocks.NewMockDispatchGW(ctrl),
		geo:       mocks.NewMockGeoClient(ctrl),
	}

	cfg := &models.Config{}
	cfg.Dispatch.NearbyRadiusKm = 10
	cfg.Dispatch.ServiceAreaLat = 27.5064
	cfg.Dispatch.ServiceAreaLng = -99.5075
	cfg.Dispatch.ServiceAreaMiles = 25

	uc, err := NewBoardUC(cfg, m.repo, m.locations, m.gw, m.geo)
	require.NoError(t, err)

	return uc.(*boardUC), m, ctrl
}

func pendingBooking(scheduledAt time.Time) models.Booking {
	return models.Booking{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		ServiceType: "deep_clean",
		ScheduledAt: scheduledAt,
		Status:      models.BookingStatusPending,
		Location:    models.Coordinate{Latitude: 27.52, Longitude: -99.46},
	}
}

func boardWorker(name string, status models.WorkerStatus) models.Worker {
	return models.Worker{
		ID:       uuid.New(),
		FullName: name,
		Status:   status,
		Location: &models.Coordinate{Latitude: 27.50, Longitude: -99.48},
	}
}

func TestBoardLoad(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	booking := pendingBooking(time.Now())
	worker := boardWorker("Ana Torres", models.WorkerStatusAvailable)

	m.repo.EXPECT().ListOpenBookings(gomock.Any()).Return([]models.Booking{booking}, nil)
	m.repo.EXPECT().ListWorkers(gomock.Any()).Return([]models.Worker{worker}, nil)

	err := uc.Load(context.Background())

	assert.NoError(t, err)
	assert.Len(t, uc.Bookings(), 1)
	assert.Len(t, uc.Workers(), 1)
}

func TestBoardLoad_RepoError(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	m.repo.EXPECT().ListOpenBookings(gomock.Any()).Return(nil, errors.New("connection refused"))

	err := uc.Load(context.Background())

	assert.Error(t, err)
}

func TestBoardBookings_DeterministicOrder(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	later := pendingBooking(base.Add(time.Hour))
	earlier := pendingBooking(base)
	sameTime := pendingBooking(base)

	for _, b := range []models.Booking{later, earlier, sameTime} {
		uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeInsert, Booking: b})
	}

	got := uc.Bookings()
	require.Len(t, got, 3)

	// Scheduled time first, booking ID as the tiebreaker
	assert.Equal(t, later.ID, got[2].ID)
	first, second := got[0], got[1]
	assert.True(t, first.ID.String() < second.ID.String())
}

func TestBoardApplyBookingChange_Delete(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	booking := pendingBooking(time.Now())
	uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeInsert, Booking: booking})
	require.Len(t, uc.Bookings(), 1)

	uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeDelete, Booking: booking})

	assert.Empty(t, uc.Bookings())
}

func TestBoardApplyWorkerChange_PreservesCachedLocation(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusAvailable)
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: worker})

	// The next row update carries no location column
	updated := worker
	updated.Location = nil
	updated.Status = models.WorkerStatusOnJob
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeUpdate, Worker: updated})

	got := uc.Workers()
	require.Len(t, got, 1)
	assert.Equal(t, models.WorkerStatusOnJob, got[0].Status)
	require.NotNil(t, got[0].Location)
	assert.Equal(t, worker.Location.Latitude, got[0].Location.Latitude)
}

func TestBoardWorkers_SortedWithZone(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: boardWorker("Zoe Pena", models.WorkerStatusAvailable)})
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: boardWorker("Ana Torres", models.WorkerStatusOnJob)})

	got := uc.Workers()
	require.Len(t, got, 2)
	assert.Equal(t, "Ana Torres", got[0].FullName)
	assert.Equal(t, "Zoe Pena", got[1].FullName)
	assert.NotEmpty(t, got[0].Zone)
}

func TestBoardSelectWorker_Unknown(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	workerID := uuid.NewString()
	m.repo.EXPECT().
		GetWorker(gomock.Any(), workerID).
		Return(nil, errors.New("worker not found"))

	err := uc.SelectWorker(context.Background(), workerID)

	assert.Error(t, err)
}

func TestBoardSelectWorker_FetchedFromStore(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusAvailable)
	m.repo.EXPECT().
		GetWorker(gomock.Any(), worker.ID.String()).
		Return(&worker, nil)

	// Routes hidden, so selection only resets the view
	err := uc.SelectWorker(context.Background(), worker.ID.String())

	assert.NoError(t, err)
	assert.Len(t, uc.Workers(), 1)
}

func TestBoardAssignBooking_Success(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusAvailable)
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: worker})

	booking := pendingBooking(time.Now())
	uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeInsert, Booking: booking})

	req := models.AssignRequest{BookingID: booking.ID.String(), WorkerID: worker.ID.String()}

	m.repo.EXPECT().
		AssignBooking(gomock.Any(), req.BookingID, req.WorkerID, gomock.Any()).
		Return(nil)
	m.gw.EXPECT().
		PublishBookingAssigned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.BookingAssigned) error {
			assert.Equal(t, req.BookingID, event.BookingID)
			assert.Equal(t, req.WorkerID, event.WorkerID)
			return nil
		})

	err := uc.AssignBooking(context.Background(), req)

	assert.NoError(t, err)

	// Local state waits for the change feed, the mutation never writes it
	got := uc.Bookings()
	require.Len(t, got, 1)
	assert.Nil(t, got[0].WorkerID)
}

func TestBoardAssignBooking_FailurePublishesNotice(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusAvailable)
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: worker})

	req := models.AssignRequest{BookingID: uuid.NewString(), WorkerID: worker.ID.String()}

	m.repo.EXPECT().
		AssignBooking(gomock.Any(), req.BookingID, req.WorkerID, gomock.Any()).
		Return(errors.New("booking already assigned"))
	m.gw.EXPECT().
		PublishOperatorNotice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notice models.OperatorNotice) error {
			assert.Equal(t, "error", notice.Level)
			return nil
		})

	err := uc.AssignBooking(context.Background(), req)

	assert.Error(t, err)
}

func TestBoardAssignBooking_UnknownWorker(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	req := models.AssignRequest{BookingID: uuid.NewString(), WorkerID: uuid.NewString()}

	err := uc.AssignBooking(context.Background(), req)

	assert.Error(t, err)
}

func TestBoardReportWorkerLocation(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusAvailable)
	worker.Location = nil
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: worker})

	update := models.LocationUpdate{
		WorkerID:   worker.ID.String(),
		Location:   models.Coordinate{Latitude: 27.51, Longitude: -99.49},
		ReportedAt: time.Now(),
	}

	m.locations.EXPECT().
		SaveWorkerLocation(gomock.Any(), update.WorkerID, update.Location, update.ReportedAt).
		Return(nil)
	m.repo.EXPECT().
		UpdateWorkerSeenAt(gomock.Any(), update.WorkerID, update.ReportedAt).
		Return(nil)
	m.gw.EXPECT().
		PublishWorkerLocation(gomock.Any(), update).
		Return(nil)

	err := uc.ReportWorkerLocation(context.Background(), update)

	assert.NoError(t, err)

	got := uc.Workers()
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Location)
	assert.Equal(t, 27.51, got[0].Location.Latitude)
}

func TestBoardReportWorkerLocation_InvalidCoordinates(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	update := models.LocationUpdate{
		WorkerID: uuid.NewString(),
		Location: models.Coordinate{Latitude: 127.0, Longitude: -99.49},
	}

	err := uc.ReportWorkerLocation(context.Background(), update)

	assert.Error(t, err)
}

func TestBoardNearbyWorkers_FiltersToAvailable(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	available := boardWorker("Ana Torres", models.WorkerStatusAvailable)
	busy := boardWorker("Zoe Pena", models.WorkerStatusOnJob)
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: available})
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: busy})

	booking := pendingBooking(time.Now())
	uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeInsert, Booking: booking})

	candidates := []models.NearbyWorker{
		{WorkerID: available.ID.String(), DistanceKm: 1.2},
		{WorkerID: busy.ID.String(), DistanceKm: 0.8},
		{WorkerID: uuid.NewString(), DistanceKm: 2.0}, // not on the board
	}

	m.locations.EXPECT().
		NearbyWorkers(gomock.Any(), booking.Location, 10.0, nearbyWorkerLimit).
		Return(candidates, nil)

	got, err := uc.NearbyWorkers(context.Background(), booking.ID.String())

	assert.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, available.ID.String(), got[0].WorkerID)
}

func TestBoardApplyWorkerChange_OfflineEvictsLocation(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusOffline)
	m.locations.EXPECT().
		RemoveWorker(gomock.Any(), worker.ID.String()).
		Return(nil)

	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeUpdate, Worker: worker})

	got := uc.Workers()
	require.Len(t, got, 1)
	assert.Equal(t, models.WorkerStatusOffline, got[0].Status)
}

func TestBoardReportWorkerLocation_OutsideServiceArea(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	// San Antonio, well outside the 25 mile radius
	update := models.LocationUpdate{
		WorkerID:   uuid.NewString(),
		Location:   models.Coordinate{Latitude: 29.4241, Longitude: -98.4936},
		ReportedAt: time.Now(),
	}

	err := uc.ReportWorkerLocation(context.Background(), update)

	assert.Error(t, err)
}

func TestBoardWorkerBookings(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	workerID := uuid.NewString()
	m.repo.EXPECT().
		ListBookingsByWorker(gomock.Any(), workerID).
		Return([]models.Booking{pendingBooking(time.Now())}, nil)

	got, err := uc.WorkerBookings(context.Background(), workerID)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBoardWorkersByStatus(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	m.repo.EXPECT().
		ListWorkersByStatus(gomock.Any(), models.WorkerStatusAvailable).
		Return([]models.Worker{boardWorker("Ana Torres", models.WorkerStatusAvailable)}, nil)

	got, err := uc.WorkersByStatus(context.Background(), models.WorkerStatusAvailable)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func assignedBooking(workerID uuid.UUID, scheduledAt time.Time, lat, lng float64) models.Booking {
	b := pendingBooking(scheduledAt)
	b.WorkerID = &workerID
	b.Status = models.BookingStatusConfirmed
	b.Location = models.Coordinate{Latitude: lat, Longitude: lng}
	return b
}

func TestBoardShowRoutes_TriggersPlanning(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusEnRoute)
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: worker})

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	first := assignedBooking(worker.ID, base, 27.52, -99.46)
	second := assignedBooking(worker.ID, base.Add(time.Hour), 27.53, -99.45)
	uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeInsert, Booking: first})
	uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeInsert, Booking: second})

	states := make(chan models.RouteState, 16)
	uc.SubscribeRouteState(func(state models.RouteState) { states <- state })

	// Sequential run, one leg per stop
	m.geo.EXPECT().
		Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RouteResult{DistanceMeters: 4000, DurationSeconds: 450}, nil).
		Times(2)

	require.NoError(t, uc.SelectWorker(context.Background(), worker.ID.String()))
	uc.SetShowRoutes(context.Background(), true)

	state := waitForState(t, states, models.RouteStateSuccess)
	require.NotNil(t, state.Plan)
	assert.False(t, state.Plan.Optimized)
	assert.Len(t, state.Plan.Stops, 2)

	// Flipping the optimize toggle starts a fresh run
	m.geo.EXPECT().
		OptimizedRoute(gomock.Any(), gomock.Any()).
		Return(&models.OptimizedResult{DistanceMeters: 8000, DurationSeconds: 900, Order: []int{0, 1}}, nil)

	uc.SetOptimizeRoutes(context.Background(), true)

	state = waitForState(t, states, models.RouteStateSuccess)
	require.NotNil(t, state.Plan)
	assert.True(t, state.Plan.Optimized)
}

func TestBoardRefreshRoute_LocationFromCache(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusEnRoute)
	worker.Location = nil
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: worker})

	booking := assignedBooking(worker.ID, time.Now(), 27.52, -99.46)
	uc.ApplyBookingChange(models.BookingChangeEvent{Type: models.ChangeTypeInsert, Booking: booking})

	states := make(chan models.RouteState, 16)
	uc.SubscribeRouteState(func(state models.RouteState) { states <- state })

	// The worker row carries no location, planning falls back to the cache
	cached := models.Coordinate{Latitude: 27.50, Longitude: -99.48}
	m.locations.EXPECT().
		GetWorkerLocation(gomock.Any(), worker.ID.String()).
		Return(&cached, nil)
	m.geo.EXPECT().
		Route(gomock.Any(), cached, booking.Location).
		Return(&models.RouteResult{DistanceMeters: 3200, DurationSeconds: 480}, nil)

	uc.SetShowRoutes(context.Background(), true)
	require.NoError(t, uc.SelectWorker(context.Background(), worker.ID.String()))

	state := waitForState(t, states, models.RouteStateSuccess)
	require.NotNil(t, state.Plan)
	assert.Equal(t, worker.ID.String(), state.Plan.WorkerID)
	assert.Len(t, state.Plan.Stops, 1)
}

func TestBoardDisplayState(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	state := uc.DisplayState()
	assert.Equal(t, models.ViewModeMap, state.ViewMode)
	assert.False(t, state.ShowTraffic)
	assert.False(t, state.ShowServiceArea)

	require.NoError(t, uc.SetViewMode(models.ViewModeList))
	uc.SetShowTraffic(true)
	uc.SetShowServiceArea(true)
	bookingID := uuid.NewString()
	uc.SelectBooking(bookingID)

	state = uc.DisplayState()
	assert.Equal(t, models.ViewModeList, state.ViewMode)
	assert.True(t, state.ShowTraffic)
	assert.True(t, state.ShowServiceArea)
	assert.Equal(t, bookingID, state.SelectedBooking)
}

func TestBoardSetViewMode_Unknown(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	err := uc.SetViewMode("satellite")

	assert.Error(t, err)
}

func TestBoardClearSelection_DropsBothSelections(t *testing.T) {
	uc, _, ctrl := newBoard(t)
	defer ctrl.Finish()

	worker := boardWorker("Ana Torres", models.WorkerStatusAvailable)
	uc.ApplyWorkerChange(models.WorkerChangeEvent{Type: models.ChangeTypeInsert, Worker: worker})
	require.NoError(t, uc.SelectWorker(context.Background(), worker.ID.String()))
	uc.SelectBooking(uuid.NewString())

	uc.ClearSelection()

	state := uc.DisplayState()
	assert.Empty(t, state.SelectedWorker)
	assert.Empty(t, state.SelectedBooking)
	assert.Equal(t, models.RouteStateIdle, uc.RouteState().Status)
}

func TestBoardNearbyWorkers_BookingFetchedWhenNotOnBoard(t *testing.T) {
	uc, m, ctrl := newBoard(t)
	defer ctrl.Finish()

	booking := pendingBooking(time.Now())

	m.repo.EXPECT().
		GetBooking(gomock.Any(), booking.ID.String()).
		Return(&booking, nil)
	m.locations.EXPECT().
		NearbyWorkers(gomock.Any(), booking.Location, 10.0, nearbyWorkerLimit).
		Return(nil, nil)

	got, err := uc.NearbyWorkers(context.Background(), booking.ID.String())

	assert.NoError(t, err)
	assert.Empty(t, got)
}
