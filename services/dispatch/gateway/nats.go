package gateway

import (
	"context"
	"encoding/json"

	"github.com/limpia-app/dispatch/internal/pkg/constants"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	natspkg "github.com/limpia-app/dispatch/internal/pkg/nats"
	"github.com/limpia-app/dispatch/services/dispatch"
)

// DispatchGW handles NATS publishing for dispatch events
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(client *natspkg.Client) dispatch.DispatchGW {
	return &DispatchGW{
		natsClient: client,
	}
}

// PublishBookingAssigned publishes a booking assignment event
func (g *DispatchGW) PublishBookingAssigned(ctx context.Context, event models.BookingAssigned) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectBookingAssigned, data)
}

// PublishOperatorNotice publishes a transient operator notification
func (g *DispatchGW) PublishOperatorNotice(ctx context.Context, notice models.OperatorNotice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDispatchNotify, data)
}

// PublishWorkerLocation publishes a worker location report
func (g *DispatchGW) PublishWorkerLocation(ctx context.Context, update models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectWorkerLocation, data)
}
