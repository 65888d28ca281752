package commands

import (
	"context"
	"errors"

	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/ports"
	"mealorder/internal/pkg/errs"
)

// ErrNoOrderFound signals that the referenced order does not exist.
var ErrNoOrderFound = errors.New("no order found")

// CompleteOrderCommandHandler transitions an order from Open to Ordered and
// releases the worker's claim on it.
//
// The status change commits before the lock is touched: a failed save leaves
// the lock in place so no other worker picks up an order whose outcome is
// unknown, and the TTL bounds how long that protection lasts.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lockStore  ports.LockStore
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, lockStore ports.LockStore) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		lockStore:  lockStore,
	}
}

// Handle completes the order and returns its updated state.
// Returns ErrNoOrderFound for an unknown order id; an order already in
// Ordered status fails the domain transition and surfaces that error.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOrderFound
	}
	if err != nil {
		return nil, err
	}

	if err = aggregate.Complete(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.lockStore.Release(ctx, aggregate.LockKey()); err != nil {
		return aggregate, err
	}

	return aggregate, nil
}
