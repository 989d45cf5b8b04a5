package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via GenerateOrderNumber or OrderNumberFromString")

var orderNumberPattern = regexp.MustCompile(`^\d{6}-\d{3}$`)

// OrderNumber is the human-readable order identifier in YYMMDD-NNN form,
// where NNN is a random zero-padded three-digit suffix. It is generated
// exactly once at creation and never regenerated; uniqueness is enforced at
// save time because the random suffix can collide.
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// GenerateOrderNumber creates a fresh order number for the given creation
// time with a random suffix. Two orders created the same day may draw the
// same suffix, so the caller must retry generation when the store reports a
// duplicate.
func GenerateOrderNumber(at time.Time) OrderNumber {
	suffix := rand.IntN(1000) //nolint:gosec // uniqueness is checked at save time
	return OrderNumber{
		value: fmt.Sprintf("%s-%03d", at.Format("060102"), suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderNumberFromString parses a persisted order number, validating its
// YYMMDD-NNN shape.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber", fmt.Errorf("%q does not match YYMMDD-NNN", s))
	}

	return OrderNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the order number was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// String returns the order number text. Implements fmt.Stringer.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}
