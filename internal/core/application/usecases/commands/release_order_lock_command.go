package commands

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrReleaseOrderLockCommandIsNotConstructed = errors.New(
	"ReleaseOrderLockCommand must be created via NewReleaseOrderLockCommand constructor",
)

// ReleaseOrderLockCommand gives up the claim on an order without changing
// its status. The order stays Open and immediately rejoins the candidate
// pool for other workers.
type ReleaseOrderLockCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewReleaseOrderLockCommand creates a command to release the given order's lock.
func NewReleaseOrderLockCommand(orderID kernel.ID) (ReleaseOrderLockCommand, error) {
	command := ReleaseOrderLockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ReleaseOrderLockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseOrderLockCommandIsNotConstructed if validation fails.
func (c ReleaseOrderLockCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrderLockCommandIsNotConstructed)
}

// OrderID returns the identity of the order whose lock is released.
func (c ReleaseOrderLockCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *ReleaseOrderLockCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
