package kernel

import (
	"errors"
	"fmt"
	"math"

	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusMeters is the mean Earth radius used by the haversine formula.
	earthRadiusMeters = 6371_000.0
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use an improperly
// initialized Coordinates value. Coordinates must be created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates represents a geographic position with validated latitude and
// longitude. It is an immutable value object; the zero value is invalid and
// fails validation.
//
// Example:
//
//	point, err := kernel.NewCoordinates(43.238949, 76.889709)
//	if err != nil {
//	    // handle validation error
//	}
//	meters, _ := point.Distance(other)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates from latitude and longitude in degrees.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// out-of-range values produce a ValueIsOutOfRangeError.
func NewCoordinates(latitude float64, longitude float64) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(coords.setLatitude(latitude), coords.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Validate checks that the Coordinates were created through the constructor.
// The zero value fails with ErrCoordinatesAreNotConstructed.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// String returns a human-readable representation in "lat,lon" form.
// Implements the fmt.Stringer interface.
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.latitude, c.longitude)
}

// IsEqual compares two coordinate pairs for exact equality.
// Both values must be properly constructed for the comparison to succeed.
func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.latitude == other.latitude && c.longitude == other.longitude, nil
}

// Distance calculates the great-circle distance to another point using the
// haversine formula with a mean Earth radius of 6371 km. The result is
// rounded to the nearest integer meter.
//
// Distance is symmetric: a.Distance(b) == b.Distance(a), and the distance
// from a point to itself is zero.
func (c Coordinates) Distance(other Coordinates) (int, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(c.latitude)
	lat2 := toRadians(other.latitude)
	dLat := toRadians(other.latitude - c.latitude)
	dLon := toRadians(other.longitude - c.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusMeters * arc)), nil
}

// IsWithinRange reports whether the distance to other does not exceed
// maxMeters.
func (c Coordinates) IsWithinRange(other Coordinates, maxMeters int) (bool, error) {
	distance, err := c.Distance(other)
	if err != nil {
		return false, err
	}

	return distance <= maxMeters, nil
}

// setLatitude sets the latitude with validation.
// Note: private setters use pointer receivers to enable self-encapsulated
// validation during construction, while public methods use value receivers.
func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
