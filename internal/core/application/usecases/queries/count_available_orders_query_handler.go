package queries

import (
	"context"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/ports"

	"gorm.io/gorm"
)

// CountAvailableOrdersQueryHandler counts open orders whose fulfillment lock
// is not currently held. Reads order ids straight from the database and
// probes the lock store per id; both reads are unsynchronized, so the count
// can be stale the moment it is produced. Good enough for dashboards.
//
// Example:
//
//	handler := NewCountAvailableOrdersQueryHandler(db, lockStore)
//	query, _ := NewCountAvailableOrdersQuery(nil)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders up for grabs\n", resp.Count)
type CountAvailableOrdersQueryHandler struct {
	db        *gorm.DB
	lockStore ports.LockStore
}

// NewCountAvailableOrdersQueryHandler creates a handler for availability counts.
// Requires a GORM database connection and the lock store used by acquisition.
func NewCountAvailableOrdersQueryHandler(db *gorm.DB, lockStore ports.LockStore) CountAvailableOrdersQueryHandler {
	return CountAvailableOrdersQueryHandler{
		db:        db,
		lockStore: lockStore,
	}
}

// Handle executes the count. Orders in Open status are fetched in primary
// key order and each unlocked one adds to the count.
func (h CountAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountAvailableOrdersQuery,
) (CountAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountAvailableOrdersQueryResponse{}, err
	}

	sql := `
		SELECT
			id
		FROM orders
		WHERE status = ?
		ORDER BY id
	`
	args := []any{order.Open}
	if query.ProviderID() != nil {
		sql = `
			SELECT
				id
			FROM orders
			WHERE status = ?
			  AND location_provider_id = ?
			ORDER BY id
		`
		args = append(args, query.ProviderID().Int64())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return CountAvailableOrdersQueryResponse{}, err
	}
	defer rows.Close()

	var response CountAvailableOrdersQueryResponse
	for rows.Next() {
		var rawID int64
		if err = rows.Scan(&rawID); err != nil {
			return CountAvailableOrdersQueryResponse{}, err
		}

		id, idErr := kernel.NewID(rawID)
		if idErr != nil {
			return CountAvailableOrdersQueryResponse{}, idErr
		}

		locked, lockErr := h.lockStore.IsLocked(ctx, order.LockKeyFor(id))
		if lockErr != nil {
			return CountAvailableOrdersQueryResponse{}, lockErr
		}
		if !locked {
			response.Count++
		}
	}

	if err = rows.Err(); err != nil {
		return CountAvailableOrdersQueryResponse{}, err
	}

	return response, nil
}
