package commands

import (
	"context"
	"errors"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
)

// ErrNoStaleOrders is returned when no pending order has aged past the cutoff.
var ErrNoStaleOrders = errors.New("no stale pending orders found")

// ExpireOrdersCommandHandler cancels pending orders that were never
// confirmed before the cutoff. Acts with a dedicated admin identity since
// expiration is a system decision, not a user one.
type ExpireOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	system     kernel.Actor
}

// NewExpireOrdersCommandHandler creates a handler for order expiration.
func NewExpireOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) ExpireOrdersCommandHandler {
	system, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	if err != nil {
		panic(err)
	}

	return ExpireOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		system:     system,
	}
}

// Handle cancels every stale pending order in one transaction. An order that
// was advanced or cancelled by another writer between the load and the
// update simply loses the version race and is skipped; the next run will not
// see it as pending anymore.
func (h *ExpireOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	stale, err := orderRepo.GetAllPendingBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return ErrNoStaleOrders
	}

	expired := make([]*order.Order, 0, len(stale))
	for _, aggregate := range stale {
		if err = aggregate.Cancel(h.system, time.Now()); err != nil {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			if errors.Is(err, ports.ErrConcurrentModification) {
				continue
			}
			return err
		}

		expired = append(expired, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range expired {
		for _, event := range aggregate.PullEvents() {
			h.publisher.Publish(ctx, event)
		}
	}

	return nil
}
