package kernel

import (
	"fmt"
	"strconv"

	"mealorder/internal/pkg/errs"
)

// ErrIDIsNotAssigned indicates that an entity has not yet received a database
// identity. Returned when validating a zero-value ID.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be a positive database-assigned value")

// ID is a value object that represents a numeric, database-assigned entity
// identifier. The zero value is unassigned: entities carry it between
// construction and their first persistence, and it fails Validate.
//
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//
//	// Use as entity identifier
//	type Order struct {
//	    ID kernel.ID
//	}
type ID struct {
	value int64
}

// NewID creates an ID from a positive numeric value.
// Returns an error for zero or negative values.
func NewID(value int64) (ID, error) {
	id := ID{value: value}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// IDFromString parses a decimal identifier, as received from route parameters
// or external systems.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the numeric value of the identifier.
// Unassigned identifiers return 0.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal representation of the identifier.
func (i ID) String() string {
	return fmt.Sprintf("%d", i.value)
}

// IsZero reports whether the identifier has not been assigned yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

// IsEqual compares two identifiers by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks that the identifier is a positive assigned value.
// Returns ErrIDIsNotAssigned for the zero value and an invalid-value error
// for negative values.
func (i ID) Validate() error {
	if i.value == 0 {
		return ErrIDIsNotAssigned
	}
	if i.value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive value", i.value))
	}
	return nil
}
