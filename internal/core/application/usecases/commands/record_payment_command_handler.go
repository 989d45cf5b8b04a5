package commands

import (
	"context"
	"time"

	"eatery/internal/core/ports"
)

// RecordPaymentCommandHandler applies a reported payment outcome to an
// order. A cancelled order can never become paid; a failed payment may be
// retried until it succeeds.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRecordPaymentCommandHandler creates a handler for payment outcomes.
func NewRecordPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the payment transition and writes it back
// under the version check.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	if err = aggregate.RecordPayment(cmd.Outcome(), time.Now()); err != nil {
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
