package commands

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var (
	ErrProcessMessageCommandIsNotConstructed = errors.New(
		"ProcessMessageCommand must be created via NewProcessMessageCommand constructor",
	)
	ErrMessageTextIsRequired = errors.New("message text is required")
)

// ProcessMessageCommand carries one inbound dialog message from a user.
//
// Example:
//
//	cmd, err := NewProcessMessageCommand(userID, "123 Main St")
//	if err != nil {
//	    return err
//	}
//	reply, err := handler.Handle(ctx, cmd)
type ProcessMessageCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	text   string

	guard guard.ConstructorGuard
}

// NewProcessMessageCommand creates a command for one dialog message.
// The user id must be valid and the text non-empty.
func NewProcessMessageCommand(userID kernel.ID, text string) (ProcessMessageCommand, error) {
	command := ProcessMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setText(text),
	); err != nil {
		return ProcessMessageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessMessageCommandIsNotConstructed if validation fails.
func (c ProcessMessageCommand) Validate() error {
	return c.guard.Validate(ErrProcessMessageCommandIsNotConstructed)
}

// UserID returns the identity of the message author.
func (c ProcessMessageCommand) UserID() kernel.ID {
	return c.userID
}

// Text returns the raw message text.
func (c ProcessMessageCommand) Text() string {
	return c.text
}

func (c *ProcessMessageCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ProcessMessageCommand) setText(text string) error {
	if text == "" {
		return ErrMessageTextIsRequired
	}

	c.text = text
	return nil
}
