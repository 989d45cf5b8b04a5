package kernel

import (
	"fmt"

	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

// Role identifies the kind of user performing an operation.
// Every mutating use case checks the actor's role against its transition rules.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// RoleCustomer places orders, cancels own pending orders and leaves reviews.
	RoleCustomer

	// RoleRestaurantOwner advances order statuses through the kitchen workflow.
	RoleRestaurantOwner

	// RoleAdmin can perform any operation on any order.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:         "unknown",
		RoleCustomer:        "customer",
		RoleRestaurantOwner: "restaurant_owner",
		RoleAdmin:           "admin",
	}
}

// RoleFromString parses a role from its wire representation
// ("customer", "restaurant_owner" or "admin").
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleRestaurantOwner && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the authenticated identity on whose behalf a use case runs.
// It carries the user identifier and role extracted from the request context
// by the inbound adapter; the core never inspects credentials itself.
type Actor struct {
	userID UUID
	role   Role
	guard  guard.ConstructorGuard
}

// NewActor creates an Actor with a validated user ID and role.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns the acting user's identifier.
func (a Actor) UserID() UUID {
	return a.userID
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// CanPlaceOrders reports whether the actor may create new orders.
// Placing an order is a customer action.
func (a Actor) CanPlaceOrders() bool {
	return a.role == RoleCustomer
}

// CanManageOrders reports whether the actor may advance order statuses.
// Only restaurant owners and admins manage the kitchen workflow.
func (a Actor) CanManageOrders() bool {
	return a.role == RoleRestaurantOwner || a.role == RoleAdmin
}
