// Package user contains the participant entities of the meal program: the
// user placing orders and the activation codes that entitle them to meals.
// User management itself is an external concern; this package carries only
// what quota evaluation and the ordering dialog need.
package user

import (
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a program participant who places meal orders through the
// conversational front-end.
type User struct {
	id   kernel.ID
	name string

	guard guard.ConstructorGuard
}

// NewUser creates a user reference with a validated identity.
func NewUser(id kernel.ID, name string) (User, error) {
	if err := id.Validate(); err != nil {
		return User{}, err
	}
	return User{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the user was created through NewUser.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's identity.
func (u User) ID() kernel.ID {
	return u.id
}

// Name returns the user's display name.
func (u User) Name() string {
	return u.name
}
