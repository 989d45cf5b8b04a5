// Package rabbitmq publishes order lifecycle events to a RabbitMQ exchange
// for notification and analytics consumers.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"eatery/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventPublisher implements ports.EventPublisher over an AMQP topic
// exchange. Publishing is fire-and-forget: a broker failure is logged and
// swallowed so it can never fail the business operation that produced the
// event.
type EventPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// eventMessage is the wire shape of one lifecycle event.
type eventMessage struct {
	Kind           string    `json:"kind"`
	OrderID        string    `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	NewStatus      string    `json:"newStatus"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewEventPublisher connects to the broker and declares the topic exchange.
func NewEventPublisher(url, exchange string, logger *slog.Logger) (*EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &EventPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Publish sends one lifecycle event with routing key "order.<kind>".
// Failures are logged, never returned.
func (p *EventPublisher) Publish(ctx context.Context, event order.LifecycleEvent) {
	body, err := json.Marshal(eventMessage{
		Kind:           string(event.Kind),
		OrderID:        event.OrderID.String(),
		OrderNumber:    event.OrderNumber,
		PreviousStatus: event.PreviousStatus,
		NewStatus:      event.NewStatus,
		OccurredAt:     event.OccurredAt,
	})
	if err != nil {
		p.logger.Error("marshal lifecycle event", "error", err, "order_id", event.OrderID.String())
		return
	}

	routingKey := "order." + string(event.Kind)

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt.UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		p.logger.Error("publish lifecycle event",
			"error", err,
			"order_id", event.OrderID.String(),
			"routing_key", routingKey,
		)
	}
}

// Close releases the channel and connection.
func (p *EventPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
