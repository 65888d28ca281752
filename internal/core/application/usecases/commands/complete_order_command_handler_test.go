package commands_test

import (
	"errors"
	"testing"

	"mealorder/internal/core/application/usecases/commands"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := openOrder(t, 5)
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	lockStore := new(MockLockStore)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		lockStore.On("Release", ctx, "order:5").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, lockStore)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Ordered, updated.Status())
	lockStore.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(mustID(t, 99))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 99)).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, new(MockLockStore))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoOrderFound)
}

func TestCompleteOrderCommandHandler_Handle_AlreadyOrdered(t *testing.T) {
	ctx := t.Context()
	aggregate := orderedOrder(t, 5)
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	lockStore := new(MockLockStore)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, lockStore)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	lockStore.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestCompleteOrderCommandHandler_Handle_UpdateErrorKeepsLock(t *testing.T) {
	ctx := t.Context()
	aggregate := openOrder(t, 5)
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	lockStore := new(MockLockStore)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, lockStore)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	lockStore.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}
