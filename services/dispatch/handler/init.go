package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/limpia-app/dispatch/internal/pkg/middleware"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	natspkg "github.com/limpia-app/dispatch/internal/pkg/nats"
	ws "github.com/limpia-app/dispatch/internal/pkg/websocket"
	"github.com/limpia-app/dispatch/services/dispatch"
	httphandler "github.com/limpia-app/dispatch/services/dispatch/handler/http"
	wsfeed "github.com/limpia-app/dispatch/services/dispatch/handler/websocket"
)

// Handler combines the HTTP, NATS, and websocket handlers for the
// dispatch service
type Handler struct {
	boardHTTP *httphandler.BoardHandler
	boardNATS *NatsHandler
	feed      *wsfeed.Feed
	cfg       *models.Config
}

// NewHandler creates the composite dispatch handler
func NewHandler(boardUC dispatch.BoardUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	feed := wsfeed.NewFeed(ws.NewManager(cfg.JWT), boardUC)

	return &Handler{
		boardHTTP: httphandler.NewBoardHandler(boardUC),
		boardNATS: NewNatsHandler(boardUC, feed, natsClient),
		feed:      feed,
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP and websocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	board := e.Group("/dispatch", apiKey.Validate("dispatch-service", "admin-portal"))

	board.GET("/workers", h.boardHTTP.ListWorkers)
	board.GET("/workers/:workerID/bookings", h.boardHTTP.WorkerBookings)
	board.POST("/workers/:workerID/location", h.boardHTTP.ReportLocation)
	board.PUT("/workers/:workerID/select", h.boardHTTP.SelectWorker)
	board.DELETE("/selection", h.boardHTTP.ClearSelection)

	board.GET("/bookings", h.boardHTTP.ListBookings)
	board.GET("/bookings/:bookingID/nearby-workers", h.boardHTTP.NearbyWorkers)
	board.PUT("/bookings/:bookingID/select", h.boardHTTP.SelectBooking)
	board.POST("/bookings/assign", h.boardHTTP.AssignBooking)

	board.PUT("/routes/show", h.boardHTTP.SetShowRoutes)
	board.PUT("/routes/optimize", h.boardHTTP.SetOptimizeRoutes)
	board.GET("/routes/state", h.boardHTTP.GetRouteState)

	board.GET("/display", h.boardHTTP.GetDisplayState)
	board.PUT("/display/view", h.boardHTTP.SetViewMode)
	board.PUT("/display/traffic", h.boardHTTP.SetShowTraffic)
	board.PUT("/display/service-area", h.boardHTTP.SetShowServiceArea)

	// Operator consoles authenticate with JWT on the socket itself
	e.GET("/ws/dispatch", h.feed.HandleConnection)
}

// InitNATSConsumers starts consuming the record store change feed
func (h *Handler) InitNATSConsumers() error {
	return h.boardNATS.InitConsumers()
}

// Close tears down NATS subscriptions
func (h *Handler) Close() {
	h.boardNATS.Close()
}
