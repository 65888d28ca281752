package commands

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrAcquireOrderCommandIsNotConstructed = errors.New(
	"AcquireOrderCommand must be created via NewAcquireOrderCommand constructor",
)

// AcquireOrderCommand requests the next open order for fulfillment.
// A fulfillment worker issues it to claim exclusive, time-bounded ownership
// of one order; the optional provider filter narrows the candidate pool to
// a single meal provider.
//
// Example:
//
//	cmd, err := NewAcquireOrderCommand(nil)
//	if err != nil {
//	    return err
//	}
//	acquired, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderAvailable) {
//	    // nothing to work on right now
//	}
type AcquireOrderCommand struct { //nolint:recvcheck //using for validation
	providerID *kernel.ID

	guard guard.ConstructorGuard
}

// NewAcquireOrderCommand creates a command to claim the next open order.
// A nil providerID means any provider; a non-nil one must be a valid identity.
func NewAcquireOrderCommand(providerID *kernel.ID) (AcquireOrderCommand, error) {
	command := AcquireOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProviderID(providerID); err != nil {
		return AcquireOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcquireOrderCommandIsNotConstructed if validation fails.
func (c AcquireOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcquireOrderCommandIsNotConstructed)
}

// ProviderID returns the provider filter, or nil when any provider qualifies.
func (c AcquireOrderCommand) ProviderID() *kernel.ID {
	return c.providerID
}

func (c *AcquireOrderCommand) setProviderID(providerID *kernel.ID) error {
	if providerID != nil {
		if err := providerID.Validate(); err != nil {
			return err
		}
	}

	c.providerID = providerID
	return nil
}
