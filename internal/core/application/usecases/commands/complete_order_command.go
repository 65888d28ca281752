package commands

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand marks an acquired order as fulfilled.
// Issued by the worker that holds the order's lock once the meal has been
// placed with the provider.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the given order.
func NewCompleteOrderCommand(orderID kernel.ID) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
