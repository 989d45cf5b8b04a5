package ports

import (
	"context"

	"eatery/internal/core/domain/model/order"
)

// EventPublisher delivers order lifecycle events to interested parties
// (notification services, analytics). Publishing happens after the owning
// transaction commits and is fire-and-forget: implementations log failures
// but never propagate them into the business operation.
type EventPublisher interface {
	Publish(ctx context.Context, event order.LifecycleEvent)
}
