package review

import (
	"errors"
	"strconv"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/pkg/errs"
)

const (
	RatingMin = 1
	RatingMax = 5
)

var ErrReviewIsNotConstructed = errors.New(
	"Review must be created via NewReview or RestoreReview")

// Review is a customer's rating of a restaurant. A restaurant's aggregate
// rating is always derived from its reviews, never stored on its own.
type Review struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	userID       kernel.UUID
	rating       int
	comment      string
	createdAt    time.Time

	isConstructed bool
}

func NewReview(
	id kernel.UUID,
	restaurantID kernel.UUID,
	userID kernel.UUID,
	rating int,
	comment string,
	now time.Time,
) (*Review, error) {
	r := &Review{isConstructed: true}

	err := errors.Join(
		r.setID(id),
		r.setRestaurantID(restaurantID),
		r.setUserID(userID),
		r.setRating(rating),
	)
	if err != nil {
		return nil, err
	}

	r.comment = comment
	r.createdAt = now

	return r, nil
}

func RestoreReview(
	id kernel.UUID,
	restaurantID kernel.UUID,
	userID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, restaurantID, userID, rating, comment, createdAt)
}

func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}

	return nil
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) RestaurantID() kernel.UUID {
	return r.restaurantID
}

func (r *Review) UserID() kernel.UUID {
	return r.userID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) IsEqual(other *Review) bool {
	if other == nil {
		return false
	}

	return r.id.IsEqual(other.id)
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reviewId", err)
	}

	r.id = id

	return nil
}

func (r *Review) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	r.restaurantID = restaurantID

	return nil
}

func (r *Review) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	r.userID = userID

	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating",
			strconv.Itoa(rating), strconv.Itoa(RatingMin), strconv.Itoa(RatingMax))
	}

	r.rating = rating

	return nil
}
