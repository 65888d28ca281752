package commands

import (
	"context"
)

// PurgeIdleDraftsCommandHandler deletes dialog drafts abandoned mid-order.
type PurgeIdleDraftsCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewPurgeIdleDraftsCommandHandler creates a handler for draft purging.
func NewPurgeIdleDraftsCommandHandler(uowFactory DraftUoWFactory) PurgeIdleDraftsCommandHandler {
	return PurgeIdleDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes drafts idle since before the command's cutoff and returns
// how many were deleted.
func (h PurgeIdleDraftsCommandHandler) Handle(ctx context.Context, command PurgeIdleDraftsCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.DraftRepository().DeleteIdleBefore(ctx, command.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
