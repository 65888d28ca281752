// Package draftrepo persists in-progress dialog drafts. A draft is keyed by
// its owning user and overwritten on every save; the candidate lists and
// accumulated order lines are stored as JSON since they are never queried
// relationally.
package draftrepo

import (
	"encoding/json"
	"time"

	"mealorder/internal/core/domain/model/draft"
	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/domain/model/provider"
)

// DraftDTO represents the database structure for persisting dialog drafts.
// UpdatedAt drives idle-draft expiry.
type DraftDTO struct {
	UserID         int64 `gorm:"primaryKey"`
	Phase          int
	Locations      string `gorm:"type:text"`
	MenuItems      string `gorm:"type:text"`
	ChosenLocation string `gorm:"type:text"`
	Items          string `gorm:"type:text"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;index"`
}

// TableName specifies the database table name for draft entities.
func (DraftDTO) TableName() string {
	return "drafts"
}

type locationJSON struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"provider_id"`
	Name       string `json:"name"`
}

type menuItemJSON struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type itemJSON struct {
	MenuItemID   int64   `json:"menu_item_id"`
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int64   `json:"quantity"`
	Amount       float64 `json:"amount"`
}

// fromDomain converts a draft aggregate to its database representation.
func fromDomain(aggregate *draft.Draft) (DraftDTO, error) {
	locations := make([]locationJSON, 0, len(aggregate.Locations()))
	for _, location := range aggregate.Locations() {
		locations = append(locations, locationToJSON(location))
	}

	menuItems := make([]menuItemJSON, 0, len(aggregate.MenuItems()))
	for _, menuItem := range aggregate.MenuItems() {
		menuItems = append(menuItems, menuItemJSON{
			ID:    menuItem.ID().Int64(),
			Name:  menuItem.Name(),
			Price: menuItem.Price(),
		})
	}

	items := make([]itemJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemJSON{
			MenuItemID:   item.MenuItemID().Int64(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Amount:       item.Amount(),
		})
	}

	locationsRaw, err := json.Marshal(locations)
	if err != nil {
		return DraftDTO{}, err
	}
	menuItemsRaw, err := json.Marshal(menuItems)
	if err != nil {
		return DraftDTO{}, err
	}
	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return DraftDTO{}, err
	}

	chosenRaw := ""
	if chosen := aggregate.ChosenLocation(); chosen != nil {
		raw, chosenErr := json.Marshal(locationToJSON(*chosen))
		if chosenErr != nil {
			return DraftDTO{}, chosenErr
		}
		chosenRaw = string(raw)
	}

	return DraftDTO{
		UserID:         aggregate.UserID().Int64(),
		Phase:          int(aggregate.Phase()),
		Locations:      string(locationsRaw),
		MenuItems:      string(menuItemsRaw),
		ChosenLocation: chosenRaw,
		Items:          string(itemsRaw),
	}, nil
}

// toDomain converts a database DTO to a draft aggregate using RestoreDraft.
func toDomain(dto DraftDTO) (*draft.Draft, error) {
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	var locationsRaw []locationJSON
	if err = json.Unmarshal([]byte(dto.Locations), &locationsRaw); err != nil {
		return nil, err
	}
	locations := make([]provider.Location, 0, len(locationsRaw))
	for _, raw := range locationsRaw {
		location, locErr := locationFromJSON(raw)
		if locErr != nil {
			return nil, locErr
		}
		locations = append(locations, location)
	}

	var menuItemsRaw []menuItemJSON
	if err = json.Unmarshal([]byte(dto.MenuItems), &menuItemsRaw); err != nil {
		return nil, err
	}
	menuItems := make([]provider.MenuItem, 0, len(menuItemsRaw))
	for _, raw := range menuItemsRaw {
		id, idErr := kernel.NewID(raw.ID)
		if idErr != nil {
			return nil, idErr
		}
		menuItem, itemErr := provider.NewMenuItem(id, raw.Name, raw.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		menuItems = append(menuItems, menuItem)
	}

	var chosen *provider.Location
	if dto.ChosenLocation != "" {
		var raw locationJSON
		if err = json.Unmarshal([]byte(dto.ChosenLocation), &raw); err != nil {
			return nil, err
		}
		location, locErr := locationFromJSON(raw)
		if locErr != nil {
			return nil, locErr
		}
		chosen = &location
	}

	var itemsRaw []itemJSON
	if err = json.Unmarshal([]byte(dto.Items), &itemsRaw); err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(itemsRaw))
	for _, raw := range itemsRaw {
		menuItemID, idErr := kernel.NewID(raw.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, order.RestoreItem(menuItemID, raw.MenuItemName, raw.Quantity, raw.Amount))
	}

	return draft.RestoreDraft(userID, draft.Phase(dto.Phase), locations, menuItems, chosen, items)
}

func locationToJSON(location provider.Location) locationJSON {
	return locationJSON{
		ID:         location.ID().Int64(),
		ProviderID: location.ProviderID().Int64(),
		Name:       location.Name(),
	}
}

func locationFromJSON(raw locationJSON) (provider.Location, error) {
	id, err := kernel.NewID(raw.ID)
	if err != nil {
		return provider.Location{}, err
	}
	providerID, err := kernel.NewID(raw.ProviderID)
	if err != nil {
		return provider.Location{}, err
	}
	return provider.NewLocation(id, providerID, raw.Name)
}
