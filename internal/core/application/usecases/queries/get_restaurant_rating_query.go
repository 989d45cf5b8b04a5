package queries

import (
	"errors"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

var ErrGetRestaurantRatingQueryIsNotConstructed = errors.New(
	"GetRestaurantRatingQuery must be created via NewGetRestaurantRatingQuery constructor",
)

// GetRestaurantRatingQuery retrieves a restaurant's aggregate rating.
type GetRestaurantRatingQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantRatingQuery creates a query for a restaurant's rating.
func NewGetRestaurantRatingQuery(restaurantID kernel.UUID) (GetRestaurantRatingQuery, error) {
	query := GetRestaurantRatingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return GetRestaurantRatingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantRatingQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose rating is requested.
func (q GetRestaurantRatingQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetRestaurantRatingQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	q.restaurantID = restaurantID
	return nil
}

// RestaurantRatingResponse is the aggregate rating read model. Average is
// zero when the restaurant has no reviews yet.
type RestaurantRatingResponse struct {
	RestaurantID string  `json:"restaurantId"`
	Average      float64 `json:"average"`
	ReviewCount  int64   `json:"reviewCount"`
}
