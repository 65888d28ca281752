package ports

import (
	"context"
	"time"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its database identity.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identity.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllInStatus retrieves all orders in the given status, optionally
	// restricted to one provider. The return order is whatever the storage
	// yields; callers must not assume chronological ordering.
	GetAllInStatus(ctx context.Context, status order.Status, providerID *kernel.ID) ([]*order.Order, error)

	// GetByUserBetween retrieves a user's orders placed within the inclusive
	// time window. Used for daily-quota evaluation.
	GetByUserBetween(ctx context.Context, userID kernel.ID, start, end time.Time) ([]*order.Order, error)
}
