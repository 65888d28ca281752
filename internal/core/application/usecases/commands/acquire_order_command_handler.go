package commands

import (
	"context"
	"errors"
	"time"

	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/ports"
)

// ErrNoOrderAvailable signals that every open order was already claimed by
// another worker, or no open orders exist at all. A routine business outcome
// for a worker polling an empty or busy pool, not a failure.
var ErrNoOrderAvailable = errors.New("no order available")

// defaultLockTTL bounds how long a worker may sit on an acquired order
// before the claim expires and the order returns to the candidate pool.
const defaultLockTTL = 20 * time.Minute

// AcquireOrderCommandHandler claims the next open order for a fulfillment
// worker. Candidates are walked in repository return order and the first
// successful lock acquisition wins; the atomic TryAcquire on the lock store
// is what keeps two workers from claiming the same order.
//
// Example:
//
//	handler := NewAcquireOrderCommandHandler(uowFactory, lockStore)
//	cmd, _ := NewAcquireOrderCommand(nil)
//	acquired, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderAvailable):
//	    // try again later
//	case err != nil:
//	    return err
//	default:
//	    fmt.Printf("working on order %s", acquired.ID())
//	}
type AcquireOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lockStore  ports.LockStore
}

// NewAcquireOrderCommandHandler creates a handler for order acquisition.
func NewAcquireOrderCommandHandler(uowFactory OrderUoWFactory, lockStore ports.LockStore) AcquireOrderCommandHandler {
	return AcquireOrderCommandHandler{
		uowFactory: uowFactory,
		lockStore:  lockStore,
	}
}

// Handle claims the next available order and returns it.
// Orders without a persisted identity carry no lock key and are skipped.
// Returns ErrNoOrderAvailable when no candidate could be locked.
func (h AcquireOrderCommandHandler) Handle(ctx context.Context, command AcquireOrderCommand) (*order.Order, error) {
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

	candidates, err := uow.OrderRepository().GetAllInStatus(ctx, order.Open, command.ProviderID())
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		key := candidate.LockKey()
		if key == "" {
			continue
		}

		acquired, err := h.lockStore.TryAcquire(ctx, key, defaultLockTTL)
		if err != nil {
			return nil, err
		}
		if acquired {
			return candidate, nil
		}
	}

	return nil, ErrNoOrderAvailable
}
