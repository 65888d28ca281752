package provider

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a physical place where a provider fulfills orders. It is the
// unit users choose during the ordering dialog and the unit a finalized
// order references.
type Location struct {
	id         kernel.ID
	providerID kernel.ID
	name       string

	guard guard.ConstructorGuard
}

// NewLocation creates a provider location with validated identities.
func NewLocation(id, providerID kernel.ID, name string) (Location, error) {
	if err := errors.Join(id.Validate(), providerID.Validate()); err != nil {
		return Location{}, err
	}
	return Location{
		id:         id,
		providerID: providerID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// ID returns the location's identity.
func (l Location) ID() kernel.ID {
	return l.id
}

// ProviderID returns the identity of the owning provider.
func (l Location) ProviderID() kernel.ID {
	return l.providerID
}

// Name returns the location's display name, as shown in dialog listings.
func (l Location) Name() string {
	return l.name
}

// IsEqual compares two locations by identity.
func (l Location) IsEqual(other Location) bool {
	return l.id.IsEqual(other.id)
}
