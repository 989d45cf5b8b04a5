package commands

import (
	"errors"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a payment outcome reported for an order.
// Outcomes come from the payment provider callback, not from a user, so the
// command carries no actor. Only terminal outcomes are accepted; "pending"
// is the initial state, never a reported one.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command recording a payment outcome.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	outcome order.PaymentStatus,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOutcome(outcome),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the reported payment outcome.
func (c RecordPaymentCommand) Outcome() order.PaymentStatus {
	return c.outcome
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setOutcome(outcome order.PaymentStatus) error {
	if outcome != order.PaymentStatusPaid && outcome != order.PaymentStatusFailed {
		return errs.NewValueIsInvalidError("outcome")
	}

	c.outcome = outcome
	return nil
}
