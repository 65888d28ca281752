package ports

import (
	"context"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/user"
)

// UserRepository looks up program participants. User management lives in an
// external system; only reads are needed here.
type UserRepository interface {
	// Get retrieves a user by identity.
	// Returns an ObjectNotFoundError for unknown users.
	Get(ctx context.Context, id kernel.ID) (user.User, error)
}

// ActivationCodeRepository looks up meal entitlements. Code issuance and
// redemption live in an external system; quota evaluation only needs the
// currently active codes of a user.
type ActivationCodeRepository interface {
	// GetActiveByUser retrieves the user's currently active activation codes.
	// An empty slice means the user has no entitlement today.
	GetActiveByUser(ctx context.Context, userID kernel.ID) ([]user.ActivationCode, error)
}
