package services

import (
	"eatery/internal/core/domain/model/review"
)

// RatingAggregator derives a restaurant's rating from its reviews. The mean
// is recomputed from the full review set on every change so the stored value
// can never drift from the reviews it summarizes.
type RatingAggregator struct{}

// NewRatingAggregator creates a new RatingAggregator instance.
func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// AverageRating returns the arithmetic mean of the review ratings. A
// restaurant without reviews is unrated and averages to zero.
func (r RatingAggregator) AverageRating(reviews []*review.Review) (float64, error) {
	if len(reviews) == 0 {
		return 0, nil
	}

	var sum int
	for _, rv := range reviews {
		if err := rv.Validate(); err != nil {
			return 0, err
		}
		sum += rv.Rating()
	}

	return float64(sum) / float64(len(reviews)), nil
}
