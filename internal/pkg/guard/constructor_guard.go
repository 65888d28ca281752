// Package guard provides a defensive construction pattern for value objects
// and entities. Embedding a ConstructorGuard in a struct makes it possible to
// detect whether the struct was created through its designated constructor or
// left as a zero value, so domain invariants cannot be bypassed by direct
// struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied. Validation always fails with a meaningful message even if the
// caller passes nil.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object was created through a
// constructor function. The zero value is unconstructed and fails Validate.
//
// Example usage:
//
//	type Draft struct {
//	    userID kernel.ID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewDraft(userID kernel.ID) (*Draft, error) {
//	    if err := userID.Validate(); err != nil {
//	        return nil, err
//	    }
//	    return &Draft{userID: userID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d *Draft) Validate() error {
//	    return d.guard.Validate(ErrDraftIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the embedding object was created through its
// constructor, otherwise the supplied error (or ErrDefaultConstructorGuard
// when err is nil).
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
