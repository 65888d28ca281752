// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/domain/model/provider"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The numeric primary key is database-assigned on first insert; the chosen
// provider location is flattened into nullable columns since an order may be
// created before a location is chosen.
type OrderDTO struct {
	ID                 int64 `gorm:"primaryKey;autoIncrement"`
	UserID             int64 `gorm:"index"`
	Status             int   `gorm:"index"`
	OrderDate          time.Time
	LocationID         *int64
	LocationProviderID *int64 `gorm:"index"`
	LocationName       *string
	SubTotal           float64
	Items              []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one ordered line within an order.
type ItemDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	OrderID      int64 `gorm:"index"`
	MenuItemID   int64
	MenuItemName string
	Quantity     int64
	Amount       float64
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// An unpersisted aggregate maps to a zero ID so the insert assigns one.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		UserID:    aggregate.UserID().Int64(),
		Status:    int(aggregate.Status()),
		OrderDate: aggregate.OrderDate(),
		SubTotal:  aggregate.SubTotal(),
	}

	if !aggregate.ID().IsZero() {
		dto.ID = aggregate.ID().Int64()
	}

	if location := aggregate.Location(); location != nil {
		locationID := location.ID().Int64()
		providerID := location.ProviderID().Int64()
		name := location.Name()
		dto.LocationID = &locationID
		dto.LocationProviderID = &providerID
		dto.LocationName = &name
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:      dto.ID,
			MenuItemID:   item.MenuItemID().Int64(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Amount:       item.Amount(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	var location *provider.Location
	if dto.LocationID != nil && dto.LocationProviderID != nil && dto.LocationName != nil {
		locationID, idErr := kernel.NewID(*dto.LocationID)
		if idErr != nil {
			return nil, idErr
		}
		providerID, idErr := kernel.NewID(*dto.LocationProviderID)
		if idErr != nil {
			return nil, idErr
		}
		restored, locErr := provider.NewLocation(locationID, providerID, *dto.LocationName)
		if locErr != nil {
			return nil, locErr
		}
		location = &restored
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.NewID(itemDTO.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, order.RestoreItem(menuItemID, itemDTO.MenuItemName, itemDTO.Quantity, itemDTO.Amount))
	}

	return order.RestoreOrder(id, userID, order.Status(dto.Status), dto.OrderDate, location, items, dto.SubTotal)
}
