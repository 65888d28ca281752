package orderrepo

import (
	"context"
	"errors"
	"time"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and assigns the generated identity
// back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID().IsZero() {
		id, err := kernel.NewID(dto.ID)
		if err != nil {
			return err
		}
		if err = aggregate.AssignID(id); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Order lines are replaced
// wholesale since the aggregate owns them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID().IsZero() {
		return kernel.ErrIDIsNotAssigned
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"user_id":              dto.UserID,
		"status":               dto.Status,
		"order_date":           dto.OrderDate,
		"location_id":          dto.LocationID,
		"location_provider_id": dto.LocationProviderID,
		"location_name":        dto.LocationName,
		"sub_total":            dto.SubTotal,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	for i := range dto.Items {
		dto.Items[i].ID = 0
		dto.Items[i].OrderID = dto.ID
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in the given status, optionally
// restricted to one provider. Rows come back in primary key order.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status, providerID *kernel.ID) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").Where("status = ?", int(status))
	if providerID != nil {
		query = query.Where("location_provider_id = ?", providerID.Int64())
	}

	var dtos []OrderDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByUserBetween retrieves a user's orders placed within the inclusive
// time window.
func (r *GormOrderRepository) GetByUserBetween(ctx context.Context, userID kernel.ID, start, end time.Time) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND order_date BETWEEN ? AND ?", userID.Int64(), start, end).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
