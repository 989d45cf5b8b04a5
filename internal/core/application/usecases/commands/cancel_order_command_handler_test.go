package commands_test

import (
	"testing"

	"eatery/internal/core/application/usecases/commands"
	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestCancelOrderCommandHandler_Handle_OwnerCancels(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	stored := storedPendingOrder(t, userID)

	actor, err := kernel.NewActor(userID, kernel.RoleCustomer)
	require.NoError(t, err)
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), actor)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	stored := storedPendingOrder(t, kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(stored.ID(), actorWithRole(t, kernel.RoleCustomer))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.StatusPending, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(orderID, actorWithRole(t, kernel.RoleAdmin))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
