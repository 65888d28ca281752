// Package provider contains the entities describing meal providers: the
// provider itself, the physical locations where meals can be fulfilled, and
// the menu items a location can serve. Providers and their menus are managed
// outside this system; here they appear as references on orders and as the
// candidates offered during an ordering dialog.
package provider

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrProviderIsNotConstructed = errors.New("Provider must be created via NewProvider constructor")

// Provider is an organization that serves meals to program participants.
// A provider has one or more locations where orders are fulfilled.
type Provider struct {
	id   kernel.ID
	name string

	guard guard.ConstructorGuard
}

// NewProvider creates a provider reference with a validated identity.
func NewProvider(id kernel.ID, name string) (Provider, error) {
	if err := id.Validate(); err != nil {
		return Provider{}, err
	}
	return Provider{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the provider was created through NewProvider.
func (p Provider) Validate() error {
	return p.guard.Validate(ErrProviderIsNotConstructed)
}

// ID returns the provider's identity.
func (p Provider) ID() kernel.ID {
	return p.id
}

// Name returns the provider's display name.
func (p Provider) Name() string {
	return p.name
}
