package order

import (
	"errors"
	"fmt"

	"eatery/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not
// permitted by the order workflow. Use errors.Is to classify.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the kitchen workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Completed
//	   │
//	   └──> Cancelled
//
// Completed and Cancelled are terminal; no transitions leave them.
// Cancellation is only permitted from Pending.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at creation.
	// Pending orders await restaurant confirmation and are the only
	// orders that can be cancelled.
	StatusPending

	// StatusConfirmed indicates the restaurant accepted the order.
	StatusConfirmed

	// StatusPreparing indicates the kitchen started working on the order.
	StatusPreparing

	// StatusReady indicates the order is ready for pickup.
	StatusReady

	// StatusCompleted indicates the order was picked up. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled while pending. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// nextStatus holds the single legal forward step for every non-terminal status.
func nextStatus() map[Status]Status {
	return map[Status]Status{
		StatusPending:   StatusConfirmed,
		StatusConfirmed: StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusCompleted,
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined workflow states.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Advance transitions the status one step forward to target.
//
// Valid transitions:
//   - Pending -> Confirmed
//   - Confirmed -> Preparing
//   - Preparing -> Ready
//   - Ready -> Completed
//
// Any skip, backward move, or transition out of a terminal status returns
// ErrInvalidTransition. Cancellation is handled separately by Cancel.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if next, ok := nextStatus()[s]; ok && next == target {
		return target, nil
	}

	return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}

// Cancel transitions the status to Cancelled.
// Only pending orders can be cancelled; any other current status, including
// Cancelled itself, returns ErrInvalidTransition.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, StatusCancelled)
	}

	return StatusCancelled, nil
}
