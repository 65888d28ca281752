package commands

import (
	"context"
	"errors"

	"mealorder/internal/core/domain/model/draft"
	"mealorder/internal/core/domain/services"
	"mealorder/internal/pkg/errs"
)

// ProcessMessageCommandHandler runs one turn of the ordering dialog.
// It loads the user's draft (or starts a fresh one), advances the
// conversation with the message, and persists the outcome: the draft is
// saved after every message whether or not a transition happened, and a
// confirmed order is added in the same transaction as the draft update.
//
// After a confirmation the stored draft is replaced with a fresh one, so the
// user's next message starts a new order.
type ProcessMessageCommandHandler struct {
	uowFactory   UoWFactory
	conversation services.Conversation
}

// NewProcessMessageCommandHandler creates a handler for dialog messages.
func NewProcessMessageCommandHandler(uowFactory UoWFactory, conversation services.Conversation) ProcessMessageCommandHandler {
	return ProcessMessageCommandHandler{
		uowFactory:   uowFactory,
		conversation: conversation,
	}
}

// Handle processes the message and returns the reply text to send back.
// An empty reply means the dialog step had nothing to say.
func (h ProcessMessageCommandHandler) Handle(ctx context.Context, command ProcessMessageCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draftRepo := uow.DraftRepository()

	aggregate, err := draftRepo.GetByUser(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		aggregate, err = draft.NewDraft(command.UserID())
	}
	if err != nil {
		return "", err
	}

	reply, finalized, err := h.conversation.Advance(ctx, aggregate, command.Text())
	if err != nil {
		return "", err
	}

	if finalized != nil {
		if err = uow.OrderRepository().Add(ctx, finalized); err != nil {
			return "", err
		}

		aggregate, err = draft.NewDraft(command.UserID())
		if err != nil {
			return "", err
		}
	}

	if err = draftRepo.Save(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return reply, nil
}
