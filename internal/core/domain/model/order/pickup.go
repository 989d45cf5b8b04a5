package order

import (
	"fmt"

	"eatery/internal/pkg/errs"
)

// PickupType identifies how the customer receives the order.
type PickupType int

const (
	// PickupTypeUnknown represents an invalid or undefined pickup type.
	PickupTypeUnknown PickupType = iota

	// PickupTypeTakeaway means the customer takes the order away.
	PickupTypeTakeaway

	// PickupTypeDineIn means the order is served at the restaurant.
	PickupTypeDineIn
)

func getPickupTypeStrings() map[PickupType]string {
	return map[PickupType]string{
		PickupTypeUnknown:  "unknown",
		PickupTypeTakeaway: "takeaway",
		PickupTypeDineIn:   "dine-in",
	}
}

// PickupTypeFromString parses a pickup type from its wire representation.
func PickupTypeFromString(s string) (PickupType, error) {
	for pickupType, str := range getPickupTypeStrings() {
		if pickupType != PickupTypeUnknown && str == s {
			return pickupType, nil
		}
	}
	return PickupTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"pickupType", fmt.Errorf("%q is not a valid pickup type", s))
}

// Validate checks if the PickupType is one of the defined values.
func (p PickupType) Validate() error {
	if p != PickupTypeTakeaway && p != PickupTypeDineIn {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickupType", fmt.Errorf("%d is not a valid pickup type", p))
	}
	return nil
}

// String returns the wire name of the pickup type. Implements fmt.Stringer.
func (p PickupType) String() string {
	if str, ok := getPickupTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}
