package commands

import (
	"context"
	"time"

	"eatery/internal/core/domain/model/review"
	"eatery/internal/core/domain/services"
)

// AddReviewCommandHandler stores a new review and recomputes the
// restaurant's rating from the full review set in the same transaction.
// The mean is derived, never stored, so it cannot drift from the reviews.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	rating     services.RatingAggregator
}

// NewAddReviewCommandHandler creates a handler for adding reviews.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
		rating:     services.NewRatingAggregator(),
	}
}

// Handle stores the review and returns the restaurant's recomputed average
// rating including the new review.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(),
		cmd.RestaurantID(),
		cmd.UserID(),
		cmd.Rating(),
		cmd.Comment(),
		time.Now(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()

	if err = reviewRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	reviews, err := reviewRepo.GetAllByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	average, err := h.rating.AverageRating(reviews)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return average, nil
}
