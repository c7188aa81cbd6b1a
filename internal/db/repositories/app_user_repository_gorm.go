package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "auto-pana/garaje/internal/models/gorm"
)

// ErrNotFound marks lookups that matched no row. Callers that upsert
// check for it with errors.Is.
var ErrNotFound = errors.New("record not found")

type AppUserRepositoryGORM struct {
	db *gorm.DB
}

// NewAppUserRepositoryGORM creates a new GORM-based app user repository
func NewAppUserRepositoryGORM(db *gorm.DB) *AppUserRepositoryGORM {
	return &AppUserRepositoryGORM{db: db}
}

// GetByEmail retrieves a user by email
func (r *AppUserRepositoryGORM) GetByEmail(ctx context.Context, email string) (*gormModels.AppUser, error) {
	var user gormModels.AppUser

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by ID
func (r *AppUserRepositoryGORM) GetByID(ctx context.Context, id string) (*gormModels.AppUser, error) {
	var user gormModels.AppUser

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user
func (r *AppUserRepositoryGORM) Create(ctx context.Context, user *gormModels.AppUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update saves the full user record
func (r *AppUserRepositoryGORM) Update(ctx context.Context, user *gormModels.AppUser) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// CountAll returns the total number of registered users
func (r *AppUserRepositoryGORM) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&gormModels.AppUser{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
