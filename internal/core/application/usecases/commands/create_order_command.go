package commands

import (
	"errors"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemOptionInput is a raw item option as received from the outer layer.
type ItemOptionInput struct {
	Name  string
	Price int64
}

// ItemInput is a raw order line as received from the outer layer. The domain
// Item is built from it inside the handler.
type ItemInput struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  int64
	Options    []ItemOptionInput
	Notes      string
}

// CreateOrderCommand represents a request to place a new order. Carries
// everything needed to price the order once: the items, the discount and tip
// percentages, and the two locations the delivery fee is derived from.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, userID, restaurantID, items,
//	    order.PaymentMethodCard, pickupTime, order.PickupTypeTakeaway,
//	    20, 0, 0, customerLocation, restaurantLocation, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	userID             kernel.UUID
	restaurantID       kernel.UUID
	items              []ItemInput
	paymentMethod      order.PaymentMethod
	pickupTime         time.Time
	pickupType         order.PickupType
	prepTimeMinutes    int
	discountPct        int
	tipPct             int
	customerLocation   kernel.Coordinates
	restaurantLocation kernel.Coordinates
	notes              string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the item list, the enumerated fields and the tip
// percentage (0..100); the remaining pricing rules (discount range, negative
// totals) are enforced by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []ItemInput,
	paymentMethod order.PaymentMethod,
	pickupTime time.Time,
	pickupType order.PickupType,
	prepTimeMinutes int,
	discountPct int,
	tipPct int,
	customerLocation kernel.Coordinates,
	restaurantLocation kernel.Coordinates,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setPickupType(pickupType),
		cmd.setPrepTimeMinutes(prepTimeMinutes),
		cmd.setTipPct(tipPct),
		cmd.setLocations(customerLocation, restaurantLocation),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.pickupTime = pickupTime
	cmd.discountPct = discountPct
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the ordering customer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the restaurant the order is placed with.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the raw order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// PaymentMethod returns how the customer intends to pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PickupTime returns the requested pickup time.
func (c CreateOrderCommand) PickupTime() time.Time {
	return c.pickupTime
}

// PickupType returns how the customer receives the order.
func (c CreateOrderCommand) PickupType() order.PickupType {
	return c.pickupType
}

// PrepTimeMinutes returns the restaurant's estimated preparation time.
func (c CreateOrderCommand) PrepTimeMinutes() int {
	return c.prepTimeMinutes
}

// DiscountPct returns the discount percentage applied to the subtotal.
func (c CreateOrderCommand) DiscountPct() int {
	return c.discountPct
}

// TipPct returns the tip percentage.
func (c CreateOrderCommand) TipPct() int {
	return c.tipPct
}

// CustomerLocation returns where the customer is ordering from.
func (c CreateOrderCommand) CustomerLocation() kernel.Coordinates {
	return c.customerLocation
}

// RestaurantLocation returns the restaurant's location.
func (c CreateOrderCommand) RestaurantLocation() kernel.Coordinates {
	return c.restaurantLocation
}

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setPickupType(pickupType order.PickupType) error {
	if err := pickupType.Validate(); err != nil {
		return err
	}

	c.pickupType = pickupType
	return nil
}

func (c *CreateOrderCommand) setPrepTimeMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidError("prepTimeMinutes")
	}

	c.prepTimeMinutes = minutes
	return nil
}

func (c *CreateOrderCommand) setTipPct(tipPct int) error {
	if tipPct < 0 || tipPct > 100 {
		return errs.NewValueIsOutOfRangeError("tipPct", tipPct, 0, 100)
	}

	c.tipPct = tipPct
	return nil
}

func (c *CreateOrderCommand) setLocations(customer, restaurant kernel.Coordinates) error {
	if err := customer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerLocation", err)
	}
	if err := restaurant.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantLocation", err)
	}

	c.customerLocation = customer
	c.restaurantLocation = restaurant
	return nil
}
