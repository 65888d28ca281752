package queries

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrGetDailyQuotaQueryIsNotConstructed = errors.New(
	"GetDailyQuotaQuery must be created via NewGetDailyQuotaQuery constructor",
)

// GetDailyQuotaQuery asks where a user stands against their daily meal
// entitlement: how many orders they placed today, how many active codes
// they hold, and the derived quota predicates.
type GetDailyQuotaQuery struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDailyQuotaQuery creates a quota query for the given user.
func NewGetDailyQuotaQuery(userID kernel.ID) (GetDailyQuotaQuery, error) {
	query := GetDailyQuotaQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return GetDailyQuotaQuery{}, err
	}
	query.userID = userID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailyQuotaQueryIsNotConstructed if validation fails.
func (q GetDailyQuotaQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyQuotaQueryIsNotConstructed)
}

// UserID returns the user whose quota is evaluated.
func (q GetDailyQuotaQuery) UserID() kernel.ID {
	return q.userID
}

// GetDailyQuotaQueryResponse is the user's quota standing for the current
// calendar day. The evaluation is advisory: enforcement happens at the
// point of order creation, not here.
type GetDailyQuotaQueryResponse struct {
	OrdersToday              int
	ActiveCodes              int
	MaxDailyOrdersReached    bool
	HasActiveActivationCodes bool
	CurrentPendingOrder      bool
}
