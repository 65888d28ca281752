package kernel

import (
	"fmt"

	"mealorder/internal/pkg/errs"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Address is a value object representing a geocoded street address.
// It is produced by the geocoding collaborator when free-text input from a
// dialog resolves to a real place, and carries both the normalized textual
// parts and the resolved coordinates.
//
// Address is immutable; construct it with NewAddress, which validates the
// coordinate bounds.
type Address struct {
	street    string
	city      string
	state     string
	zip       string
	latitude  float64
	longitude float64
}

// NewAddress creates a validated Address. The street is required; city,
// state, and zip may be empty when the geocoder does not return them.
// Coordinates must fall within the WGS84 bounds.
func NewAddress(street, city, state, zip string, latitude, longitude float64) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if latitude < minLatitude || latitude > maxLatitude {
		return Address{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return Address{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}

	return Address{
		street:    street,
		city:      city,
		state:     state,
		zip:       zip,
		latitude:  latitude,
		longitude: longitude,
	}, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city, or an empty string when unknown.
func (a Address) City() string {
	return a.city
}

// State returns the state or region, or an empty string when unknown.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code, or an empty string when unknown.
func (a Address) Zip() string {
	return a.zip
}

// Latitude returns the resolved latitude.
func (a Address) Latitude() float64 {
	return a.latitude
}

// Longitude returns the resolved longitude.
func (a Address) Longitude() float64 {
	return a.longitude
}

// String returns a single-line rendering suitable for logs.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s %s (%f, %f)", a.street, a.city, a.state, a.zip, a.latitude, a.longitude)
}
