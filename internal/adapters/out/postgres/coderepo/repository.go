// Package coderepo reads meal entitlements from the database. Activation
// codes are issued and redeemed by an external system; quota evaluation only
// needs the codes that are currently active for a user.
package coderepo

import (
	"context"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// ActivationCodeDTO represents the database structure for meal entitlements.
type ActivationCodeDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	UserID         int64 `gorm:"index"`
	Code           string
	MealsRemaining int
	Active         bool
}

// TableName specifies the database table name for activation code entities.
func (ActivationCodeDTO) TableName() string {
	return "activation_codes"
}

// GormActivationCodeRepository implements ActivationCodeRepository using GORM.
type GormActivationCodeRepository struct {
	db *gorm.DB
}

// NewGormActivationCodeRepository creates a new GORM activation code repository.
func NewGormActivationCodeRepository(db *gorm.DB) *GormActivationCodeRepository {
	return &GormActivationCodeRepository{db: db}
}

// GetActiveByUser retrieves the user's currently active activation codes.
func (r *GormActivationCodeRepository) GetActiveByUser(ctx context.Context, userID kernel.ID) ([]user.ActivationCode, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ActivationCodeDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID.Int64(), true).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	codes := make([]user.ActivationCode, 0, len(dtos))
	for _, dto := range dtos {
		code, codeErr := user.NewActivationCode(dto.Code, dto.MealsRemaining)
		if codeErr != nil {
			return nil, codeErr
		}
		codes = append(codes, code)
	}

	return codes, nil
}
