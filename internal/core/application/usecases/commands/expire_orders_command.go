package commands

import (
	"errors"
	"time"

	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

var ErrExpireOrdersCommandIsNotConstructed = errors.New(
	"ExpireOrdersCommand must be created via NewExpireOrdersCommand constructor",
)

// ExpireOrdersCommand requests cancellation of every order that is still
// pending at the cutoff time. Issued by the expiration job, not by users.
//
//nolint:recvcheck //using for validation
type ExpireOrdersCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireOrdersCommand creates a command to expire orders created at or
// before the cutoff.
func NewExpireOrdersCommand(cutoff time.Time) (ExpireOrdersCommand, error) {
	if cutoff.IsZero() {
		return ExpireOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ExpireOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation time at or before which pending orders expire.
func (c ExpireOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
