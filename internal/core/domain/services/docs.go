// Package services provides domain services that implement business
// calculations spanning multiple entities of the ordering system.
//
// The package includes:
//   - PricingEngine: pure price calculations over integer minor units
//   - GeoCalculator: delivery fees and travel estimates from coordinates
//   - RatingAggregator: restaurant rating derived from reviews
//
// Domain services hold no state of their own; they operate on aggregates and
// value objects passed in by the application layer.
package services
