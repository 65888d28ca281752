package draftrepo

import (
	"context"
	"errors"
	"time"

	"mealorder/internal/core/domain/model/draft"
	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDraftRepository implements DraftRepository using GORM.
type GormDraftRepository struct {
	db *gorm.DB
}

// NewGormDraftRepository creates a new GORM draft repository.
func NewGormDraftRepository(db *gorm.DB) *GormDraftRepository {
	return &GormDraftRepository{db: db}
}

// GetByUser retrieves the user's current draft.
func (r *GormDraftRepository) GetByUser(ctx context.Context, userID kernel.ID) (*draft.Draft, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DraftDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draft", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the user's draft. Last write wins for racing messages from
// the same user.
func (r *GormDraftRepository) Save(ctx context.Context, aggregate *draft.Draft) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

// DeleteIdleBefore removes drafts whose last save is older than cutoff.
func (r *GormDraftRepository) DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&DraftDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
