// Package ports defines the contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
)

// ErrConcurrentModification is returned by Update when the stored aggregate
// version no longer matches the one the caller loaded. Exactly one of two
// concurrent writers observes it.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate version as an optimistic lock. Returns
	// ErrConcurrentModification when the stored version has moved on.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsByNumber reports whether an order with the given number is
	// already stored. Used by the creation workflow to re-roll colliding
	// order numbers.
	ExistsByNumber(ctx context.Context, number order.OrderNumber) (bool, error)

	// GetAllPendingBefore retrieves pending orders created at or before the
	// given cutoff. Used by the expiration job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
