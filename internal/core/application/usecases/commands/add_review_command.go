package commands

import (
	"errors"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/review"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand represents a request to leave a review for a restaurant.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID     kernel.UUID
	restaurantID kernel.UUID
	userID       kernel.UUID
	rating       int
	comment      string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to add a restaurant review.
func NewAddReviewCommand(
	reviewID kernel.UUID,
	restaurantID kernel.UUID,
	userID kernel.UUID,
	rating int,
	comment string,
) (AddReviewCommand, error) {
	cmd := AddReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setRestaurantID(restaurantID),
		cmd.setUserID(userID),
		cmd.setRating(rating),
	); err != nil {
		return AddReviewCommand{}, err
	}

	cmd.comment = comment

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier the new review will be stored under.
func (c AddReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// RestaurantID returns the reviewed restaurant.
func (c AddReviewCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// UserID returns the reviewing customer.
func (c AddReviewCommand) UserID() kernel.UUID {
	return c.userID
}

// Rating returns the rating on the 1..5 scale.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the free-form review text.
func (c AddReviewCommand) Comment() string {
	return c.comment
}

func (c *AddReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reviewId", err)
	}

	c.reviewID = reviewID
	return nil
}

func (c *AddReviewCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddReviewCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *AddReviewCommand) setRating(rating int) error {
	if rating < review.RatingMin || rating > review.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.RatingMin, review.RatingMax)
	}

	c.rating = rating
	return nil
}
