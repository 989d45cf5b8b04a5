// Package queries contains read-side operations of the CQRS split. Query
// handlers read directly from the database into response models, bypassing
// the aggregates and their invariants.
package queries

import (
	"errors"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier. Customers may
// only read their own orders; admins may read any.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID kernel.UUID, actor kernel.Actor) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setActor(actor),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns who is requesting the order.
func (q GetOrderQuery) Actor() kernel.Actor {
	return q.actor
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// OrderItemResponse is one order line in a read model.
type OrderItemResponse struct {
	MenuItemID string                    `json:"menuItemId"`
	Quantity   int                       `json:"quantity"`
	UnitPrice  int64                     `json:"unitPrice"`
	Options    []OrderItemOptionResponse `json:"options,omitempty"`
	Notes      string                    `json:"notes,omitempty"`
}

// OrderItemOptionResponse is one item option in a read model.
type OrderItemOptionResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OrderResponse is the full order read model.
type OrderResponse struct {
	ID               string              `json:"id"`
	Number           string              `json:"number"`
	UserID           string              `json:"userId"`
	RestaurantID     string              `json:"restaurantId"`
	Items            []OrderItemResponse `json:"items"`
	TotalAmount      int64               `json:"totalAmount"`
	Status           string              `json:"status"`
	PaymentStatus    string              `json:"paymentStatus"`
	PaymentMethod    string              `json:"paymentMethod"`
	PickupTime       time.Time           `json:"pickupTime"`
	PickupType       string              `json:"pickupType"`
	PrepTimeMinutes  int                 `json:"prepTimeMinutes"`
	ActualPickupTime *time.Time          `json:"actualPickupTime,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	Version          int64               `json:"version"`
}
