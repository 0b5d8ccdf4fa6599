package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	nrpkg "github.com/limpia-app/dispatch/internal/pkg/newrelic"
	"github.com/limpia-app/dispatch/internal/utils"
	"github.com/limpia-app/dispatch/services/dispatch"
)

// BoardHandler handles HTTP requests for the dispatch board
type BoardHandler struct {
	boardUC dispatch.BoardUC
}

// NewBoardHandler creates a new dispatch board HTTP handler
func NewBoardHandler(boardUC dispatch.BoardUC) *BoardHandler {
	return &BoardHandler{
		boardUC: boardUC,
	}
}

// ListWorkers returns the live worker collection, optionally filtered by
// dispatch status through the record store
func (h *BoardHandler) ListWorkers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.ListWorkers")

	if status := c.QueryParam("status"); status != "" {
		workers, err := h.boardUC.WorkersByStatus(c.Request().Context(), models.WorkerStatus(status))
		if err != nil {
			nrpkg.NoticeTransactionError(txn, err)
			return utils.InternalServerErrorResponse(c, "Failed to list workers")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Workers retrieved", workers)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Workers retrieved", h.boardUC.Workers())
}

// WorkerBookings returns a worker's bookings in scheduled order
func (h *BoardHandler) WorkerBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.WorkerBookings")

	workerID := c.Param("workerID")
	if workerID == "" {
		return utils.BadRequestResponse(c, "Worker ID is required")
	}

	bookings, err := h.boardUC.WorkerBookings(c.Request().Context(), workerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list worker bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Worker bookings retrieved", bookings)
}

// ListBookings returns the live booking collection
func (h *BoardHandler) ListBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.ListBookings")

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", h.boardUC.Bookings())
}

// SelectWorker sets the operator's worker selection
func (h *BoardHandler) SelectWorker(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SelectWorker")

	workerID := c.Param("workerID")
	if workerID == "" {
		return utils.BadRequestResponse(c, "Worker ID is required")
	}

	if err := h.boardUC.SelectWorker(c.Request().Context(), workerID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Worker selected", nil)
}

// ClearSelection drops the operator's worker selection
func (h *BoardHandler) ClearSelection(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.ClearSelection")

	h.boardUC.ClearSelection()
	return utils.SuccessResponse(c, http.StatusOK, "Selection cleared", nil)
}

// ToggleRequest is the payload for the board display toggles
type ToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// SetShowRoutes toggles the route panel
func (h *BoardHandler) SetShowRoutes(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SetShowRoutes")

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	h.boardUC.SetShowRoutes(c.Request().Context(), req.Enabled)
	return utils.SuccessResponse(c, http.StatusOK, "Route display updated", nil)
}

// SetOptimizeRoutes toggles optimized planning
func (h *BoardHandler) SetOptimizeRoutes(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SetOptimizeRoutes")

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	h.boardUC.SetOptimizeRoutes(c.Request().Context(), req.Enabled)
	return utils.SuccessResponse(c, http.StatusOK, "Route optimization updated", nil)
}

// ViewModeRequest is the payload for switching the console panel
type ViewModeRequest struct {
	Mode models.ViewMode `json:"mode"`
}

// SetViewMode switches the console between the map and list panels
func (h *BoardHandler) SetViewMode(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SetViewMode")

	var req ViewModeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.boardUC.SetViewMode(req.Mode); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "View mode updated", nil)
}

// SetShowTraffic toggles the traffic overlay
func (h *BoardHandler) SetShowTraffic(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SetShowTraffic")

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	h.boardUC.SetShowTraffic(req.Enabled)
	return utils.SuccessResponse(c, http.StatusOK, "Traffic display updated", nil)
}

// SetShowServiceArea toggles the service area overlay
func (h *BoardHandler) SetShowServiceArea(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SetShowServiceArea")

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	h.boardUC.SetShowServiceArea(req.Enabled)
	return utils.SuccessResponse(c, http.StatusOK, "Service area display updated", nil)
}

// SelectBooking marks a booking row on the console
func (h *BoardHandler) SelectBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SelectBooking")

	bookingID := c.Param("bookingID")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Booking ID is required")
	}

	h.boardUC.SelectBooking(bookingID)
	return utils.SuccessResponse(c, http.StatusOK, "Booking selected", nil)
}

// GetDisplayState returns the console rendering state
func (h *BoardHandler) GetDisplayState(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.GetDisplayState")

	return utils.SuccessResponse(c, http.StatusOK, "Display state retrieved", h.boardUC.DisplayState())
}

// RouteStopView is a stop with presentation fields attached
type RouteStopView struct {
	models.RouteStop
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Arrival  string `json:"arrival"`
}

// RouteStateView is the route state with presentation fields attached
type RouteStateView struct {
	Status        models.RouteStateStatus `json:"status"`
	Message       string                  `json:"message,omitempty"`
	Plan          *models.RoutePlan       `json:"plan,omitempty"`
	Stops         []RouteStopView         `json:"stops,omitempty"`
	TotalDistance string                  `json:"total_distance,omitempty"`
	TotalDuration string                  `json:"total_duration,omitempty"`
	MapsURL       string                  `json:"maps_url,omitempty"`
}

// GetRouteState returns the current live route state with formatted metrics
func (h *BoardHandler) GetRouteState(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.GetRouteState")

	state := h.boardUC.RouteState()
	return c.JSON(http.StatusOK, NewRouteStateView(state))
}

// NewRouteStateView attaches formatted metrics and the external maps URL
// to a route state snapshot.
func NewRouteStateView(state models.RouteState) RouteStateView {
	view := RouteStateView{
		Status:  state.Status,
		Message: state.Message,
		Plan:    state.Plan,
	}

	if state.Plan != nil {
		view.TotalDistance = utils.FormatMiles(state.Plan.DistanceMeters)
		view.TotalDuration = utils.FormatDuration(state.Plan.DurationSeconds)

		addresses := make([]string, 0, len(state.Plan.Stops))
		for _, stop := range state.Plan.Stops {
			view.Stops = append(view.Stops, RouteStopView{
				RouteStop: stop,
				Distance:  utils.FormatMiles(stop.DistanceMeters),
				Duration:  utils.FormatDuration(stop.DurationSeconds),
				Arrival:   utils.FormatETA(stop.ETA),
			})
			addresses = append(addresses, stop.Booking.Address)
		}
		view.MapsURL = utils.GoogleMapsURL(addresses)
	}

	return view
}

// AssignBooking assigns a booking to a worker
func (h *BoardHandler) AssignBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.AssignBooking")

	var req models.AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.BookingID == "" || req.WorkerID == "" {
		return utils.BadRequestResponse(c, "Booking ID and worker ID are required")
	}

	if err := h.boardUC.AssignBooking(c.Request().Context(), req); err != nil {
		logger.Error("Failed to assign booking",
			logger.String("booking_id", req.BookingID),
			logger.String("worker_id", req.WorkerID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to assign booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking assigned", nil)
}

// NearbyWorkers suggests available workers for a booking
func (h *BoardHandler) NearbyWorkers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.NearbyWorkers")

	bookingID := c.Param("bookingID")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Booking ID is required")
	}

	nearby, err := h.boardUC.NearbyWorkers(c.Request().Context(), bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to find nearby workers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby workers retrieved", nearby)
}

// ReportLocation records a worker location report
func (h *BoardHandler) ReportLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.ReportLocation")

	workerID := c.Param("workerID")
	if workerID == "" {
		return utils.BadRequestResponse(c, "Worker ID is required")
	}

	var update models.LocationUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	update.WorkerID = workerID
	if update.ReportedAt.IsZero() {
		update.ReportedAt = time.Now()
	}

	if err := h.boardUC.ReportWorkerLocation(c.Request().Context(), update); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location recorded", nil)
}
