package handler

import (
	"encoding/json"
	"fmt"

	"github.com/limpia-app/dispatch/internal/pkg/constants"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	natspkg "github.com/limpia-app/dispatch/internal/pkg/nats"
	"github.com/limpia-app/dispatch/services/dispatch"
	wsfeed "github.com/limpia-app/dispatch/services/dispatch/handler/websocket"
)

// NatsHandler consumes record store change events and applies them
// to the dispatch board
type NatsHandler struct {
	boardUC  dispatch.BoardUC
	feed     *wsfeed.Feed
	consumer *natspkg.Consumer
}

// NewNatsHandler creates a new NATS event handler
func NewNatsHandler(boardUC dispatch.BoardUC, feed *wsfeed.Feed, client *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		boardUC:  boardUC,
		feed:     feed,
		consumer: natspkg.NewConsumer(client),
	}
}

// InitConsumers subscribes to the booking and worker change subjects
func (h *NatsHandler) InitConsumers() error {
	if err := h.consumer.ConsumeQueue(constants.SubjectBookingChanged,
		constants.QueueGroupDispatch, h.handleBookingChanged); err != nil {
		return err
	}

	if err := h.consumer.ConsumeQueue(constants.SubjectWorkerChanged,
		constants.QueueGroupDispatch, h.handleWorkerChanged); err != nil {
		return err
	}

	// Notices are fan-out, not queue work. Every instance forwards them
	// to its own connected consoles.
	if err := h.consumer.Consume(constants.SubjectDispatchNotify, h.handleNotice); err != nil {
		return err
	}

	return nil
}

// Close unsubscribes all consumers
func (h *NatsHandler) Close() {
	h.consumer.Close()
}

func (h *NatsHandler) handleBookingChanged(message []byte) error {
	var event models.BookingChangeEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking change event: %w", err)
	}

	h.boardUC.ApplyBookingChange(event)
	h.feed.BroadcastBookingChange(event)
	return nil
}

func (h *NatsHandler) handleNotice(message []byte) error {
	var notice models.OperatorNotice
	if err := json.Unmarshal(message, &notice); err != nil {
		return fmt.Errorf("failed to unmarshal operator notice: %w", err)
	}

	h.feed.BroadcastNotice(notice)
	return nil
}

func (h *NatsHandler) handleWorkerChanged(message []byte) error {
	var event models.WorkerChangeEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal worker change event: %w", err)
	}

	h.boardUC.ApplyWorkerChange(event)
	h.feed.BroadcastWorkerChange(event)
	return nil
}
