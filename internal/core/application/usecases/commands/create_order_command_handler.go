package commands

import (
	"context"
	"errors"
	"time"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/domain/services"
	"eatery/internal/core/ports"
)

// ErrOrderNumberExhausted is returned when repeated order number generation
// keeps colliding with stored orders. The suffix space is small, so a burst
// of creations on one day can exhaust the bounded retry budget.
var ErrOrderNumberExhausted = errors.New("could not generate a unique order number")

// ErrOutOfDeliveryRange is returned when the customer is farther from the
// restaurant than the maximum supported delivery distance.
var ErrOutOfDeliveryRange = errors.New("customer is out of delivery range")

// orderNumberAttempts bounds the retry loop for colliding order numbers.
const orderNumberAttempts = 5

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the order exactly once, generates a unique human-readable order
// number and stores the order in "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	pricing    services.PricingEngine
	geo        services.GeoCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for post-commit lifecycle notifications.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		pricing:    services.NewPricingEngine(),
		geo:        services.NewGeoCalculator(),
	}
}

// Handle processes the order creation command. The total amount is computed
// here, once, and never recomputed afterwards. The whole write happens in one
// transaction; lifecycle events go out only after the commit succeeds.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return err
	}

	subtotal, err := h.pricing.Subtotal(items)
	if err != nil {
		return err
	}

	deliverable, err := h.geo.IsDeliverable(cmd.RestaurantLocation(), cmd.CustomerLocation())
	if err != nil {
		return err
	}
	if !deliverable {
		return ErrOutOfDeliveryRange
	}

	deliveryFee, err := h.geo.DeliveryFee(cmd.RestaurantLocation(), cmd.CustomerLocation(), subtotal)
	if err != nil {
		return err
	}

	quote, err := h.pricing.Compose(
		items, cmd.DiscountPct(), deliveryFee, services.DefaultTaxRatePct, cmd.TipPct())
	if err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number, err := generateUniqueNumber(ctx, orderRepo, now)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.UserID(),
		cmd.RestaurantID(),
		items,
		quote.Total,
		cmd.PaymentMethod(),
		cmd.PickupTime(),
		cmd.PickupType(),
		cmd.PrepTimeMinutes(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range aggregate.PullEvents() {
		h.publisher.Publish(ctx, event)
	}

	return nil
}

// buildItems turns raw inputs into validated domain items.
func buildItems(inputs []ItemInput) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))

	for _, input := range inputs {
		options := make([]order.ItemOption, 0, len(input.Options))
		for _, opt := range input.Options {
			option, err := order.NewItemOption(opt.Name, opt.Price)
			if err != nil {
				return nil, err
			}
			options = append(options, option)
		}

		item, err := order.NewItem(input.MenuItemID, input.Quantity, input.UnitPrice, options, input.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// generateUniqueNumber rolls order numbers until one is free, giving up
// after a bounded number of attempts.
func generateUniqueNumber(
	ctx context.Context,
	repo ports.OrderRepository,
	now time.Time,
) (order.OrderNumber, error) {
	for range orderNumberAttempts {
		number := order.GenerateOrderNumber(now)

		taken, err := repo.ExistsByNumber(ctx, number)
		if err != nil {
			return order.OrderNumber{}, err
		}
		if !taken {
			return number, nil
		}
	}

	return order.OrderNumber{}, ErrOrderNumberExhausted
}
