package order

import (
	"fmt"

	"eatery/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays for the order.
// It is immutable after creation.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCard means the order is paid with a bank card.
	PaymentMethodCard

	// PaymentMethodCash means the order is paid in cash at pickup.
	PaymentMethodCash
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentMethodCard:    "card",
		PaymentMethodCash:    "cash",
	}
}

// PaymentMethodFromString parses a payment method from its wire representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod is one of the defined values.
func (m PaymentMethod) Validate() error {
	if m != PaymentMethodCard && m != PaymentMethodCash {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks the payment outcome for an order. It is an axis
// independent from Status, but constrained: an order may only become paid
// while it is not cancelled.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending is the initial payment status at creation.
	PaymentStatusPending

	// PaymentStatusPaid indicates the payment settled successfully. Terminal.
	PaymentStatusPaid

	// PaymentStatusFailed indicates the payment attempt failed.
	// A failed payment may be retried, so Paid remains reachable.
	PaymentStatusFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentStatusPending: "pending",
		PaymentStatusPaid:    "paid",
		PaymentStatusFailed:  "failed",
	}
}

// PaymentStatusFromString parses a payment status from its wire representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentStatusUnknown && str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus is one of the defined values.
func (p PaymentStatus) Validate() error {
	if p != PaymentStatusPending && p != PaymentStatusPaid && p != PaymentStatusFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name of the payment status. Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Transition moves the payment status to target.
//
// Valid transitions:
//   - Pending -> Paid
//   - Pending -> Failed
//   - Failed -> Paid (retry after a failed attempt)
//
// Paid is terminal. Anything else returns ErrInvalidTransition.
func (p PaymentStatus) Transition(target PaymentStatus) (PaymentStatus, error) {
	if err := target.Validate(); err != nil {
		return PaymentStatusUnknown, err
	}

	allowed := p == PaymentStatusPending && (target == PaymentStatusPaid || target == PaymentStatusFailed) ||
		p == PaymentStatusFailed && target == PaymentStatusPaid

	if !allowed {
		return PaymentStatusUnknown, fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, p, target)
	}

	return target, nil
}
