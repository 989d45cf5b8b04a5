package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantRatingQueryHandler computes a restaurant's rating with a
// single aggregate query over the reviews table. The rating is derived on
// read; nothing stores it.
type GetRestaurantRatingQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantRatingQueryHandler creates a handler for rating reads.
// Requires a GORM database connection for query execution.
func NewGetRestaurantRatingQueryHandler(db *gorm.DB) GetRestaurantRatingQueryHandler {
	return GetRestaurantRatingQueryHandler{db: db}
}

// Handle returns the average rating and review count for the restaurant.
func (h GetRestaurantRatingQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantRatingQuery,
) (RestaurantRatingResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantRatingResponse{}, err
	}

	var result struct {
		Average float64
		Count   int64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(AVG(rating), 0) AS average,
			COUNT(*) AS count
		FROM reviews
		WHERE restaurant_id = ?
	`, query.RestaurantID().String()).Scan(&result).Error
	if err != nil {
		return RestaurantRatingResponse{}, err
	}

	return RestaurantRatingResponse{
		RestaurantID: query.RestaurantID().String(),
		Average:      result.Average,
		ReviewCount:  result.Count,
	}, nil
}
