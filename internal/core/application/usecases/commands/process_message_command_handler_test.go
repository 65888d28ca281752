package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealorder/internal/core/application/usecases/commands"
	"mealorder/internal/core/domain/model/draft"
	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/domain/model/provider"
	"mealorder/internal/core/domain/services"
	"mealorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) ResolveAddress(ctx context.Context, text string) (*kernel.Address, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.Address), args.Error(1)
}

func testConversation() services.Conversation {
	return services.NewConversation(new(MockGeocoder), kernel.FixedClock{
		Instant: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
	})
}

func confirmableDraft(t *testing.T, userID kernel.ID) *draft.Draft {
	t.Helper()
	location, err := provider.NewLocation(mustID(t, 10), mustID(t, 1), "Main St Diner")
	require.NoError(t, err)
	menuItem, err := provider.NewMenuItem(mustID(t, 100), "Daily Special", 4.5)
	require.NoError(t, err)
	item, err := order.NewItem(1, menuItem.Price(), menuItem)
	require.NoError(t, err)

	d, err := draft.RestoreDraft(userID, draft.ConfirmOrContinue,
		[]provider.Location{location}, []provider.MenuItem{menuItem},
		&location, []order.Item{item})
	require.NoError(t, err)
	return d
}

func TestProcessMessageCommandHandler_Handle_NewUserStartsDialog(t *testing.T) {
	ctx := t.Context()
	userID := mustID(t, 7)
	cmd, err := commands.NewProcessMessageCommand(userID, "I'd like a meal")
	require.NoError(t, err)

	draftRepo := new(MockDraftRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("GetByUser", ctx, userID).Return(nil, errs.ErrObjectNotFound).Once(),
		draftRepo.On("Save", ctx, mock.MatchedBy(func(d *draft.Draft) bool {
			return d.UserID() == userID && d.Phase() == draft.ProvidingAddress
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessMessageCommandHandler(factory, testConversation())
	reply, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Please provide your address", reply)
	draftRepo.AssertExpectations(t)
}

func TestProcessMessageCommandHandler_Handle_ConfirmPersistsOrderAndResetsDraft(t *testing.T) {
	ctx := t.Context()
	userID := mustID(t, 7)
	cmd, err := commands.NewProcessMessageCommand(userID, "CONFIRM")
	require.NoError(t, err)

	draftRepo := new(MockDraftRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("GetByUser", ctx, userID).Return(confirmableDraft(t, userID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.UserID() == userID && o.Status() == order.Open && o.SubTotal() == 4.5
		})).Return(nil).Once(),
		draftRepo.On("Save", ctx, mock.MatchedBy(func(d *draft.Draft) bool {
			return d.UserID() == userID && d.Phase() == draft.Meal
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessMessageCommandHandler(factory, testConversation())
	reply, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "", reply)
	orderRepo.AssertExpectations(t)
	draftRepo.AssertExpectations(t)
}

func TestProcessMessageCommandHandler_Handle_DraftSavedOnNonTransition(t *testing.T) {
	ctx := t.Context()
	userID := mustID(t, 7)
	cmd, err := commands.NewProcessMessageCommand(userID, "not a decision")
	require.NoError(t, err)

	draftRepo := new(MockDraftRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("GetByUser", ctx, userID).Return(confirmableDraft(t, userID), nil).Once(),
		draftRepo.On("Save", ctx, mock.MatchedBy(func(d *draft.Draft) bool {
			return d.Phase() == draft.ConfirmOrContinue
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessMessageCommandHandler(factory, testConversation())
	reply, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Please respond with CONFIRM or CONTINUE", reply)
	draftRepo.AssertExpectations(t)
}

func TestProcessMessageCommandHandler_Handle_GetDraftError(t *testing.T) {
	ctx := t.Context()
	userID := mustID(t, 7)
	cmd, err := commands.NewProcessMessageCommand(userID, "hello")
	require.NoError(t, err)

	draftRepo := new(MockDraftRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("GetByUser", ctx, userID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessMessageCommandHandler(factory, testConversation())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}
