package services

import (
	"errors"

	"eatery/internal/core/domain/model/order"
)

// ErrEmptyOrder is returned when a price calculation is attempted over an
// order with no items.
var ErrEmptyOrder = errors.New("order has no items")

// ErrInvalidDiscount is returned when a discount percentage is outside
// the [0, 100] range.
var ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")

// ErrNegativeTotal is returned when the composed total of an order would be
// negative, which indicates inconsistent inputs rather than a valid price.
var ErrNegativeTotal = errors.New("total cannot be negative")

// Default pricing parameters. All monetary values are integer minor units.
const (
	DefaultTaxRatePct     = 12
	BulkDiscountThreshold = 5
	BulkDiscountPct       = 10
	DefaultLoyaltyRate    = 1
)

// PricingEngine is a domain service computing order prices. All operations
// are pure functions over integer minor units so repeated quotes for the
// same inputs always agree to the cent.
//
// Fractional intermediate results are rounded half-up at every step, never
// carried forward, so the composed total equals the sum of its displayed
// components.
//
// Example usage:
//
//	engine := NewPricingEngine()
//	quote, err := engine.Quote(items, discountPct, deliveryFee, DefaultTaxRatePct, tipPct)
//	if err != nil {
//	    // empty order or invalid discount
//	    return
//	}
//	fmt.Printf("total: %d", quote.Total)
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Quote is the itemized price breakdown for an order. Total is the amount
// the customer pays; LoyaltyPoints accrue on that amount.
type Quote struct {
	Subtotal      int64
	Discount      int64
	DeliveryFee   int64
	Tax           int64
	Tip           int64
	Total         int64
	LoyaltyPoints int64
}

// Subtotal sums the line totals of all items. Each line total already
// includes the per-unit option prices.
func (p PricingEngine) Subtotal(items []order.Item) (int64, error) {
	if len(items) == 0 {
		return 0, ErrEmptyOrder
	}

	var sum int64
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return 0, err
		}
		sum += items[i].LineTotal()
	}

	return sum, nil
}

// Discount computes pct percent of price, rounded half-up.
func (p PricingEngine) Discount(price int64, pct int) (int64, error) {
	if pct < 0 || pct > 100 {
		return 0, ErrInvalidDiscount
	}

	return percentOf(price, pct), nil
}

// BulkDiscount applies the discount only once the quantity reaches the
// threshold. Below the threshold the discount is zero.
func (p PricingEngine) BulkDiscount(price int64, quantity, threshold, pct int) (int64, error) {
	if quantity < threshold {
		return 0, nil
	}

	return p.Discount(price, pct)
}

// Tax computes the tax amount on price at the given rate, rounded half-up.
func (p PricingEngine) Tax(price int64, ratePct int) int64 {
	return percentOf(price, ratePct)
}

// Tip computes the tip amount on price, rounded half-up.
func (p PricingEngine) Tip(price int64, pct int) int64 {
	return percentOf(price, pct)
}

// LoyaltyPoints accrued for a paid amount. Points are whole units, fractions
// are dropped.
func (p PricingEngine) LoyaltyPoints(price int64, rate int) int64 {
	if price < 0 || rate < 0 {
		return 0
	}

	return price * int64(rate)
}

// Total composes the final amount: subtotal minus discount, plus delivery
// fee, tax and tip. A zero total is valid, a negative one is not.
func (p PricingEngine) Total(subtotal, discount, deliveryFee, tax, tip int64) (int64, error) {
	total := subtotal - discount + deliveryFee + tax + tip
	if total < 0 {
		return 0, ErrNegativeTotal
	}

	return total, nil
}

// Compose builds the full quote for an order. The tax base is the running
// sum after discount and delivery fee, matching the receipt the customer
// sees: subtotal, minus discount, plus delivery fee, plus tax, plus tip.
func (p PricingEngine) Compose(
	items []order.Item,
	discountPct int,
	deliveryFee int64,
	taxRatePct int,
	tipPct int,
) (Quote, error) {
	subtotal, err := p.Subtotal(items)
	if err != nil {
		return Quote{}, err
	}

	discount, err := p.Discount(subtotal, discountPct)
	if err != nil {
		return Quote{}, err
	}

	taxBase := subtotal - discount + deliveryFee
	tax := p.Tax(taxBase, taxRatePct)
	tip := p.Tip(taxBase+tax, tipPct)

	total, err := p.Total(subtotal, discount, deliveryFee, tax, tip)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Subtotal:      subtotal,
		Discount:      discount,
		DeliveryFee:   deliveryFee,
		Tax:           tax,
		Tip:           tip,
		Total:         total,
		LoyaltyPoints: p.LoyaltyPoints(total, DefaultLoyaltyRate),
	}, nil
}

// percentOf computes pct percent of value with half-up rounding on the
// fractional part.
func percentOf(value int64, pct int) int64 {
	if value < 0 {
		return -percentOf(-value, pct)
	}

	return (value*int64(pct) + 50) / 100
}
