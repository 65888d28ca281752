// Package userrepo reads program participants from the database. User
// management lives in an external system that shares these tables, so this
// adapter is read-only.
package userrepo

import (
	"context"
	"errors"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/user"
	"mealorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserDTO represents the database structure for program participants.
type UserDTO struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by identity.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (user.User, error) {
	if err := id.Validate(); err != nil {
		return user.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return user.User{}, err
	}

	userID, err := kernel.NewID(dto.ID)
	if err != nil {
		return user.User{}, err
	}

	return user.NewUser(userID, dto.Name)
}
