package websocket

import (
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	ws "github.com/limpia-app/dispatch/internal/pkg/websocket"
	"github.com/limpia-app/dispatch/services/dispatch"
)

// Feed pushes board changes and route state snapshots to connected
// operator consoles
type Feed struct {
	manager *ws.Manager
	boardUC dispatch.BoardUC
	once    sync.Once
}

// NewFeed creates the operator websocket feed
func NewFeed(manager *ws.Manager, boardUC dispatch.BoardUC) *Feed {
	return &Feed{
		manager: manager,
		boardUC: boardUC,
	}
}

// HandleConnection upgrades an operator connection and serves it until
// the peer disconnects
func (f *Feed) HandleConnection(c echo.Context) error {
	// Route state snapshots fan out to every console. Registering on
	// first connection keeps board startup free of feed wiring.
	f.once.Do(func() {
		f.boardUC.SubscribeRouteState(f.broadcastRouteState)
	})

	return f.manager.HandleConnection(c, f.serveClient)
}

func (f *Feed) serveClient(client *models.WebSocketClient) error {
	f.manager.AddClient(client)
	defer f.manager.RemoveClient(client.OperatorID)

	logger.Info("Operator console connected",
		logger.String("operator_id", client.OperatorID),
		logger.String("role", client.Role))

	// Initial snapshots so a console joining mid-shift sees current state.
	if err := f.manager.Send(client, models.WSMessage{
		Event: models.WSEventRouteState,
		Data:  f.boardUC.RouteState(),
	}); err != nil {
		return err
	}
	if err := f.manager.Send(client, models.WSMessage{
		Event: models.WSEventDisplayState,
		Data:  f.boardUC.DisplayState(),
	}); err != nil {
		return err
	}

	// The read loop only detects disconnects. Operators mutate the board
	// over HTTP, not over the socket.
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			logger.Info("Operator console disconnected",
				logger.String("operator_id", client.OperatorID))
			return nil
		}
	}
}

// BroadcastBookingChange pushes a booking change to all consoles
func (f *Feed) BroadcastBookingChange(event models.BookingChangeEvent) {
	f.manager.Broadcast(models.WSMessage{
		Event: models.WSEventBookingChanged,
		Data:  event,
	})
}

// BroadcastWorkerChange pushes a worker change to all consoles
func (f *Feed) BroadcastWorkerChange(event models.WorkerChangeEvent) {
	f.manager.Broadcast(models.WSMessage{
		Event: models.WSEventWorkerChanged,
		Data:  event,
	})
}

// BroadcastNotice pushes an operator notice to all consoles
func (f *Feed) BroadcastNotice(notice models.OperatorNotice) {
	f.manager.Broadcast(models.WSMessage{
		Event: models.WSEventNotice,
		Data:  notice,
	})
}

func (f *Feed) broadcastRouteState(state models.RouteState) {
	f.manager.Broadcast(models.WSMessage{
		Event: models.WSEventRouteState,
		Data:  state,
	})
}
