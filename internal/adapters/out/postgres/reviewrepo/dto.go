// Package reviewrepo implements the repository pattern for reviews, handling
// the conversion between domain entities and database representations.
package reviewrepo

import (
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	Rating       int       `gorm:"type:smallint"`
	Comment      string
	CreatedAt    time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		Rating:       aggregate.Rating(),
		Comment:      aggregate.Comment(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, restaurantID, userID, dto.Rating, dto.Comment, dto.CreatedAt)
}
