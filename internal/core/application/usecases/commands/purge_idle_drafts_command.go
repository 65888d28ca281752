package commands

import (
	"errors"
	"time"

	"mealorder/internal/pkg/guard"
)

var (
	ErrPurgeIdleDraftsCommandIsNotConstructed = errors.New(
		"PurgeIdleDraftsCommand must be created via NewPurgeIdleDraftsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff is required")
)

// PurgeIdleDraftsCommand removes abandoned dialog drafts. Drafts whose last
// save predates the cutoff are deleted; the scheduled maintenance job issues
// this command with cutoff = now minus the idle window.
type PurgeIdleDraftsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeIdleDraftsCommand creates a command deleting drafts idle since
// before cutoff. The cutoff must be a set point in time.
func NewPurgeIdleDraftsCommand(cutoff time.Time) (PurgeIdleDraftsCommand, error) {
	command := PurgeIdleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return PurgeIdleDraftsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeIdleDraftsCommandIsNotConstructed if validation fails.
func (c PurgeIdleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeIdleDraftsCommandIsNotConstructed)
}

// Cutoff returns the point in time before which idle drafts are purged.
func (c PurgeIdleDraftsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeIdleDraftsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
