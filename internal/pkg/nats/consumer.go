package nats

import (
	"fmt"

	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer owns a set of subscriptions with an explicit teardown lifecycle.
// Each screen/handler instance creates its own consumer and closes it on
// shutdown so no ambient subscription state survives the owner.
type Consumer struct {
	client        *Client
	subscriptions []*nats.Subscription
}

// NewConsumer creates a consumer bound to an existing NATS client
func NewConsumer(client *Client) *Consumer {
	return &Consumer{client: client}
}

// Consume subscribes to a subject and tracks the subscription for teardown
func (c *Consumer) Consume(subject string, handler MessageHandler) error {
	sub, err := c.client.Subscribe(subject, func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to consume subject %s: %w", subject, err)
	}

	c.subscriptions = append(c.subscriptions, sub)
	return nil
}

// ConsumeQueue subscribes within a queue group and tracks the subscription
func (c *Consumer) ConsumeQueue(subject, queue string, handler MessageHandler) error {
	sub, err := c.client.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queue),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to consume subject %s: %w", subject, err)
	}

	c.subscriptions = append(c.subscriptions, sub)
	return nil
}

// Close unsubscribes all tracked subscriptions
func (c *Consumer) Close() {
	for _, sub := range c.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
	c.subscriptions = nil
}
