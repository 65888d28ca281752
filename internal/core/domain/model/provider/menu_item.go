package provider

import (
	"errors"
	"fmt"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/errs"
	"mealorder/internal/pkg/guard"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a meal a provider location can serve, with its unit price.
// During the dialog, one menu item is offered per candidate location,
// index-aligned with the location list.
type MenuItem struct {
	id    kernel.ID
	name  string
	price float64

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item with a validated identity and a
// non-negative price.
func NewMenuItem(id kernel.ID, name string, price float64) (MenuItem, error) {
	if err := id.Validate(); err != nil {
		return MenuItem{}, err
	}
	if price < 0 {
		return MenuItem{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	return MenuItem{
		id:    id,
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the menu item was created through NewMenuItem.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item's identity.
func (m MenuItem) ID() kernel.ID {
	return m.id
}

// Name returns the menu item's display name.
func (m MenuItem) Name() string {
	return m.name
}

// Price returns the unit price.
func (m MenuItem) Price() float64 {
	return m.price
}
