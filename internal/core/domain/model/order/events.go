package order

import (
	"time"

	"eatery/internal/core/domain/model/kernel"
)

// EventKind classifies lifecycle events for downstream consumers.
type EventKind string

const (
	// EventOrderCreated is emitted once when an order is placed.
	// Consumers use it to send the order confirmation.
	EventOrderCreated EventKind = "order_created"

	// EventStatusChanged is emitted on every successful status transition.
	EventStatusChanged EventKind = "status_changed"

	// EventPaymentStatusChanged is emitted on every successful payment
	// status transition.
	EventPaymentStatusChanged EventKind = "payment_status_changed"
)

// LifecycleEvent describes one observable change of an order. Events are
// recorded by the aggregate during mutation and published to the notification
// dispatcher after the change is committed; publishing is fire-and-forget and
// never blocks or rolls back the mutation.
type LifecycleEvent struct {
	Kind           EventKind
	OrderID        kernel.UUID
	OrderNumber    string
	PreviousStatus string
	NewStatus      string
	OccurredAt     time.Time
}
