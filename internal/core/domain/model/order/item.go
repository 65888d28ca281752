package order

import (
	"errors"
	"fmt"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/provider"
	"mealorder/internal/pkg/errs"
	"mealorder/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a chosen menu item with a quantity and
// the unit price captured at the moment of choice. The price is copied onto
// the line so later menu changes do not alter placed orders.
type Item struct {
	menuItemID   kernel.ID
	menuItemName string
	quantity     int64
	amount       float64

	guard guard.ConstructorGuard
}

// NewItem creates a line item from a chosen menu item.
// Quantity must be positive; the amount is the menu item's unit price.
func NewItem(quantity int64, amount float64, menuItem provider.MenuItem) (Item, error) {
	if err := menuItem.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if amount < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}

	return Item{
		menuItemID:   menuItem.ID(),
		menuItemName: menuItem.Name(),
		quantity:     quantity,
		amount:       amount,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a line item from persistence without a menu-item
// lookup. Used only by repository mapping.
func RestoreItem(menuItemID kernel.ID, menuItemName string, quantity int64, amount float64) Item {
	return Item{
		menuItemID:   menuItemID,
		menuItemName: menuItemName,
		quantity:     quantity,
		amount:       amount,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the item was created through NewItem or RestoreItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the identity of the chosen menu item.
func (i Item) MenuItemID() kernel.ID {
	return i.menuItemID
}

// MenuItemName returns the captured menu item name.
func (i Item) MenuItemName() string {
	return i.menuItemName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int64 {
	return i.quantity
}

// Amount returns the captured unit price.
func (i Item) Amount() float64 {
	return i.amount
}

// Total returns the line total: amount x quantity.
func (i Item) Total() float64 {
	return i.amount * float64(i.quantity)
}
