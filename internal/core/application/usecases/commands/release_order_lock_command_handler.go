package commands

import (
	"context"
	"errors"

	"mealorder/internal/core/ports"
	"mealorder/internal/pkg/errs"
)

// ReleaseOrderLockCommandHandler releases an order's lock without touching
// its status. The order is loaded first so an unknown id surfaces as
// ErrNoOrderFound instead of silently releasing nothing.
type ReleaseOrderLockCommandHandler struct {
	uowFactory OrderUoWFactory
	lockStore  ports.LockStore
}

// NewReleaseOrderLockCommandHandler creates a handler for lock releases.
func NewReleaseOrderLockCommandHandler(uowFactory OrderUoWFactory, lockStore ports.LockStore) ReleaseOrderLockCommandHandler {
	return ReleaseOrderLockCommandHandler{
		uowFactory: uowFactory,
		lockStore:  lockStore,
	}
}

// Handle releases the lock guarding the order. Releasing an order that is
// not locked is a no-op.
func (h ReleaseOrderLockCommandHandler) Handle(ctx context.Context, command ReleaseOrderLockCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	return h.lockStore.Release(ctx, aggregate.LockKey())
}
