package queries

import (
	"context"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/services"
	"mealorder/internal/core/ports"
)

// GetDailyQuotaQueryHandler evaluates a user's standing against the daily
// meal quota. The calendar day runs from midnight to one second before the
// next midnight in the clock's time zone, so "today" follows the program's
// configured zone rather than UTC.
type GetDailyQuotaQueryHandler struct {
	users  ports.UserRepository
	orders ports.OrderRepository
	codes  ports.ActivationCodeRepository
	clock  kernel.Clock
	policy services.QuotaPolicy
}

// NewGetDailyQuotaQueryHandler creates a handler for quota evaluation.
func NewGetDailyQuotaQueryHandler(
	users ports.UserRepository,
	orders ports.OrderRepository,
	codes ports.ActivationCodeRepository,
	clock kernel.Clock,
) GetDailyQuotaQueryHandler {
	return GetDailyQuotaQueryHandler{
		users:  users,
		orders: orders,
		codes:  codes,
		clock:  clock,
		policy: services.NewQuotaPolicy(),
	}
}

// Handle fetches today's orders and the user's active codes and applies the
// quota policy to both. An unknown user surfaces as an ObjectNotFoundError.
func (h GetDailyQuotaQueryHandler) Handle(
	ctx context.Context,
	query GetDailyQuotaQuery,
) (GetDailyQuotaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailyQuotaQueryResponse{}, err
	}

	if _, err := h.users.Get(ctx, query.UserID()); err != nil {
		return GetDailyQuotaQueryResponse{}, err
	}

	start, end := kernel.DayWindow(h.clock.Now())

	todaysOrders, err := h.orders.GetByUserBetween(ctx, query.UserID(), start, end)
	if err != nil {
		return GetDailyQuotaQueryResponse{}, err
	}

	activeCodes, err := h.codes.GetActiveByUser(ctx, query.UserID())
	if err != nil {
		return GetDailyQuotaQueryResponse{}, err
	}

	return GetDailyQuotaQueryResponse{
		OrdersToday:              len(todaysOrders),
		ActiveCodes:              len(activeCodes),
		MaxDailyOrdersReached:    h.policy.MaxDailyOrdersReached(todaysOrders, activeCodes),
		HasActiveActivationCodes: h.policy.HasActiveActivationCodes(activeCodes),
		CurrentPendingOrder:      h.policy.CurrentPendingOrder(todaysOrders),
	}, nil
}
