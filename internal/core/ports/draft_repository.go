package ports

import (
	"context"
	"time"

	"mealorder/internal/core/domain/model/draft"
	"mealorder/internal/core/domain/model/kernel"
)

// DraftRepository defines the persistence contract for in-progress dialog
// drafts. A draft is addressed by its owning user: there is at most one
// per user, overwritten on every save (last write wins).
type DraftRepository interface {
	// GetByUser retrieves the user's current draft.
	// Returns an ObjectNotFoundError when the user has no draft.
	GetByUser(ctx context.Context, userID kernel.ID) (*draft.Draft, error)

	// Save upserts the user's draft. Called after every dialog message,
	// whether or not a phase transition occurred.
	Save(ctx context.Context, aggregate *draft.Draft) error

	// DeleteIdleBefore removes drafts whose last save is older than cutoff,
	// returning how many were removed. Backs the idle-dialog expiry job.
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
