// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read whatever
// source answers fastest and never mutate aggregates.
package queries

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrCountAvailableOrdersQueryIsNotConstructed = errors.New(
	"CountAvailableOrdersQuery must be created via NewCountAvailableOrdersQuery constructor",
)

// CountAvailableOrdersQuery asks how many open orders are currently
// claimable, optionally restricted to one provider.
//
// The answer is a point-in-time estimate for display: locks come and go
// between counting and acting, so callers must not treat the count as a
// reservation.
type CountAvailableOrdersQuery struct { //nolint:recvcheck //using for validation
	providerID *kernel.ID

	guard guard.ConstructorGuard
}

// NewCountAvailableOrdersQuery creates a query counting claimable orders.
// A nil providerID means any provider.
func NewCountAvailableOrdersQuery(providerID *kernel.ID) (CountAvailableOrdersQuery, error) {
	query := CountAvailableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if providerID != nil {
		if err := providerID.Validate(); err != nil {
			return CountAvailableOrdersQuery{}, err
		}
		query.providerID = providerID
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountAvailableOrdersQueryIsNotConstructed if validation fails.
func (q CountAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountAvailableOrdersQueryIsNotConstructed)
}

// ProviderID returns the provider filter, or nil when any provider qualifies.
func (q CountAvailableOrdersQuery) ProviderID() *kernel.ID {
	return q.providerID
}

// CountAvailableOrdersQueryResponse carries the claimable-order count.
type CountAvailableOrdersQueryResponse struct {
	Count int
}
