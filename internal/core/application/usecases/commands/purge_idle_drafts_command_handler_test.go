package commands_test

import (
	"testing"
	"time"

	"mealorder/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurgeIdleDraftsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewPurgeIdleDraftsCommand(cutoff)
	require.NoError(t, err)

	draftRepo := new(MockDraftRepository)
	uow := new(MockDraftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("DeleteIdleBefore", ctx, cutoff).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeIdleDraftsCommandHandler(factory)
	purged, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}

func TestPurgeIdleDraftsCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewPurgeIdleDraftsCommand(time.Time{})

	require.ErrorIs(t, err, commands.ErrCutoffIsRequired)
}
