package commands

import (
	"context"
	"errors"

	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/ports"
	"mealorder/internal/pkg/errs"
)

// ResetOrderCommandHandler moves an order back to Open and releases its lock,
// making it claimable again.
type ResetOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lockStore  ports.LockStore
}

// NewResetOrderCommandHandler creates a handler for order resets.
func NewResetOrderCommandHandler(uowFactory OrderUoWFactory, lockStore ports.LockStore) ResetOrderCommandHandler {
	return ResetOrderCommandHandler{
		uowFactory: uowFactory,
		lockStore:  lockStore,
	}
}

// Handle resets the order to Open and returns its updated state.
// Returns ErrNoOrderFound for an unknown order id.
func (h ResetOrderCommandHandler) Handle(ctx context.Context, command ResetOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Reopen(); err != nil {
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
