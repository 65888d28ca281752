package commands_test

import (
	"testing"

	"mealorder/internal/core/application/usecases/commands"
	"mealorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessMessageCommand(t *testing.T) {
	userID := mustID(t, 7)

	cmd, err := commands.NewProcessMessageCommand(userID, "hello")

	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "hello", cmd.Text())
	require.NoError(t, cmd.Validate())
}

func TestNewProcessMessageCommand_EmptyText(t *testing.T) {
	_, err := commands.NewProcessMessageCommand(mustID(t, 7), "")

	require.ErrorIs(t, err, commands.ErrMessageTextIsRequired)
}

func TestNewProcessMessageCommand_InvalidUser(t *testing.T) {
	_, err := commands.NewProcessMessageCommand(kernel.ID{}, "hello")

	require.Error(t, err)
}

func TestProcessMessageCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.ProcessMessageCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrProcessMessageCommandIsNotConstructed)
}
