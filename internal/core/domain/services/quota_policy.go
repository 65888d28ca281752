package services

import (
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/domain/model/user"
)

// QuotaPolicy holds the daily-quota rules of the meal program: one active
// activation code grants one meal per day, so a user's cap for a calendar
// day equals their active-code count.
//
// All predicates are pure and side-effect-free; callers fetch today's orders
// and the active codes and are responsible for enforcing the cap before
// creating an order. The policy itself never blocks anything.
type QuotaPolicy struct{}

// NewQuotaPolicy creates a QuotaPolicy instance.
func NewQuotaPolicy() QuotaPolicy {
	return QuotaPolicy{}
}

// MaxDailyOrdersReached reports whether the user's order count for the day
// has reached their active-code count. With zero active codes the cap is
// already reached (0 >= 0): no entitlement, no orders.
func (QuotaPolicy) MaxDailyOrdersReached(todaysOrders []*order.Order, activeCodes []user.ActivationCode) bool {
	return len(todaysOrders) >= len(activeCodes)
}

// HasActiveActivationCodes reports whether the user holds at least one
// active activation code.
func (QuotaPolicy) HasActiveActivationCodes(activeCodes []user.ActivationCode) bool {
	return len(activeCodes) > 0
}

// CurrentPendingOrder reports whether any of the day's orders is still Open,
// meaning placed but not yet fulfilled.
func (QuotaPolicy) CurrentPendingOrder(todaysOrders []*order.Order) bool {
	for _, o := range todaysOrders {
		if o.Status() == order.Open {
			return true
		}
	}
	return false
}
