package ports

import (
	"context"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetAllByRestaurant retrieves every review left for a restaurant.
	// The rating aggregation works over the full set so the derived mean
	// always matches the stored reviews.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*review.Review, error)
}
