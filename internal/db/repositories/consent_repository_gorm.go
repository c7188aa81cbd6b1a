package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "auto-pana/garaje/internal/models/gorm"
)

type ConsentRepositoryGORM struct {
	db *gorm.DB
}

// NewConsentRepositoryGORM creates a new GORM-based consent repository
func NewConsentRepositoryGORM(db *gorm.DB) *ConsentRepositoryGORM {
	return &ConsentRepositoryGORM{db: db}
}

// Upsert writes the current state of one consent switch for a user.
// One row exists per (user, consent type).
func (r *ConsentRepositoryGORM) Upsert(ctx context.Context, userID, consentType string, granted bool) error {
	var consent gormModels.UserConsent

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND consent_type = ?", userID, consentType).
		First(&consent).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		consent = gormModels.UserConsent{
			UserID:      userID,
			ConsentType: consentType,
			Granted:     granted,
		}
		if err := r.db.WithContext(ctx).Create(&consent).Error; err != nil {
			return fmt.Errorf("failed to create consent: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch consent: %w", err)
	}

	consent.Granted = granted
	if err := r.db.WithContext(ctx).Save(&consent).Error; err != nil {
		return fmt.Errorf("failed to update consent: %w", err)
	}
	return nil
}

// LogEvent appends one entry to the consent audit trail
func (r *ConsentRepositoryGORM) LogEvent(ctx context.Context, event *gormModels.ConsentEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to log consent event: %w", err)
	}
	return nil
}

// ListEventsByUser retrieves the consent audit trail for a user, newest first
func (r *ConsentRepositoryGORM) ListEventsByUser(ctx context.Context, userID string) ([]gormModels.ConsentEvent, error) {
	var events []gormModels.ConsentEvent

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list consent events: %w", err)
	}

	return events, nil
}
