package services

import (
	"math"

	"eatery/internal/core/domain/model/kernel"
)

// Delivery rate policy parameters.
const (
	BaseDeliveryFee       int64 = 500
	PerKmDeliveryFee      int64 = 100
	FreeDeliveryThreshold int64 = 5000

	DefaultAvgSpeedKmh = 30

	MaxDeliveryDistanceMeters = 10_000
)

// GeoCalculator is a domain service turning distances between coordinates
// into delivery fees and travel time estimates.
type GeoCalculator struct{}

// NewGeoCalculator creates a new GeoCalculator instance.
func NewGeoCalculator() GeoCalculator {
	return GeoCalculator{}
}

// EstimatedTravelMinutes estimates the travel time between two points at the
// given average speed, rounded up to whole minutes.
func (g GeoCalculator) EstimatedTravelMinutes(from, to kernel.Coordinates, avgSpeedKmh int) (int, error) {
	meters, err := from.Distance(to)
	if err != nil {
		return 0, err
	}

	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultAvgSpeedKmh
	}

	km := float64(meters) / 1000.0
	minutes := km / float64(avgSpeedKmh) * 60

	return int(math.Ceil(minutes)), nil
}

// DeliveryFee computes the fee for delivering between two points: a base fee
// plus a per-kilometer charge with partial kilometers rounded up. Orders at or
// above the free delivery threshold pay nothing.
func (g GeoCalculator) DeliveryFee(from, to kernel.Coordinates, subtotal int64) (int64, error) {
	meters, err := from.Distance(to)
	if err != nil {
		return 0, err
	}

	if subtotal >= FreeDeliveryThreshold {
		return 0, nil
	}

	km := float64(meters) / 1000.0

	return BaseDeliveryFee + int64(math.Ceil(km*float64(PerKmDeliveryFee))), nil
}

// IsDeliverable reports whether the two points are within the maximum
// supported delivery distance.
func (g GeoCalculator) IsDeliverable(from, to kernel.Coordinates) (bool, error) {
	return from.IsWithinRange(to, MaxDeliveryDistanceMeters)
}
