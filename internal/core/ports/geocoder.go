package ports

import (
	"context"

	"mealorder/internal/core/domain/model/kernel"
)

// Geocoder resolves free-text address input from the ordering dialog into a
// structured address.
type Geocoder interface {
	// ResolveAddress geocodes the given text. Returns (nil, nil) when the
	// text does not resolve to a known place; that absence is an expected
	// dialog outcome, not an error.
	ResolveAddress(ctx context.Context, text string) (*kernel.Address, error)
}
