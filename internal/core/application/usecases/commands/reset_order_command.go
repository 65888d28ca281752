package commands

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrResetOrderCommandIsNotConstructed = errors.New(
	"ResetOrderCommand must be created via NewResetOrderCommand constructor",
)

// ResetOrderCommand returns an order to the open pool.
// Issued when a worker abandons an acquired order, or by an operator undoing
// a completion, so another worker can claim it.
type ResetOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewResetOrderCommand creates a command to reset the given order.
func NewResetOrderCommand(orderID kernel.ID) (ResetOrderCommand, error) {
	command := ResetOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ResetOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetOrderCommandIsNotConstructed if validation fails.
func (c ResetOrderCommand) Validate() error {
	return c.guard.Validate(ErrResetOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order being reset.
func (c ResetOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *ResetOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
