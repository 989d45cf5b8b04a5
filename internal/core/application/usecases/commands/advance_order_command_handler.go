package commands

import (
	"context"
	"time"

	"eatery/internal/core/ports"
)

// AdvanceOrderCommandHandler moves an order one step forward through its
// workflow. The repository update is an optimistic compare-and-swap on the
// aggregate version, so of two racing transitions exactly one wins and the
// other sees ports.ErrConcurrentModification.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAdvanceOrderCommandHandler creates a handler for status transitions.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the transition and writes it back under
// the version check. Events go out only after the commit succeeds.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(cmd.Actor(), cmd.Target(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
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
