package order

import (
	"errors"
	"fmt"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

// ErrItemOptionIsNotConstructed is returned when validating a zero-value ItemOption.
var ErrItemOptionIsNotConstructed = errs.NewValueIsRequiredError(
	"item option must be created via NewItemOption constructor")

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// ItemOption is a selected customization of a menu item, such as an extra
// topping. The price is in minor currency units and is added to the item's
// unit price once per item.
type ItemOption struct {
	name  string
	price int64

	guard guard.ConstructorGuard
}

// NewItemOption creates a validated item option. Name is required and price
// must not be negative (free options are allowed).
func NewItemOption(name string, price int64) (ItemOption, error) {
	if name == "" {
		return ItemOption{}, errs.NewValueIsRequiredError("option name")
	}
	if price < 0 {
		return ItemOption{}, errs.NewValueIsInvalidErrorWithCause(
			"option price", fmt.Errorf("%d is negative", price))
	}

	return ItemOption{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the option was created through the constructor.
func (o ItemOption) Validate() error {
	return o.guard.Validate(ErrItemOptionIsNotConstructed)
}

// Name returns the option's display name.
func (o ItemOption) Name() string {
	return o.name
}

// Price returns the option's surcharge in minor currency units.
func (o ItemOption) Price() int64 {
	return o.price
}

// Item is a line of an order: a menu item with quantity, unit price, selected
// options and optional preparation notes. Items are immutable once the order
// is created; changing an order's contents means cancelling it and placing a
// new one.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  int64
	options    []ItemOption
	notes      string

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
// Quantity must be at least 1 and the unit price must not be negative.
// All options must themselves be constructed values.
func NewItem(menuItemID kernel.UUID, quantity int, unitPrice int64, options []ItemOption, notes string) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setOptions(options),
	); err != nil {
		return Item{}, err
	}

	item.notes = notes
	return item, nil
}

// Validate checks that the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the menu item's price in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Options returns a copy of the selected options.
func (i Item) Options() []ItemOption {
	options := make([]ItemOption, len(i.options))
	copy(options, i.options)
	return options
}

// Notes returns the free-form preparation notes.
func (i Item) Notes() string {
	return i.notes
}

// LineTotal returns (unitPrice + sum of option prices) * quantity in minor
// currency units.
func (i Item) LineTotal() int64 {
	perUnit := i.unitPrice
	for _, option := range i.options {
		perUnit += option.price
	}
	return perUnit * int64(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%d is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setOptions(options []ItemOption) error {
	for idx, option := range options {
		if err := option.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("options[%d]", idx), err)
		}
	}
	i.options = make([]ItemOption, len(options))
	copy(i.options, options)
	return nil
}
