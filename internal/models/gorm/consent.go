package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserConsent is the normalized current state of one consent switch for
// one user. One row per (user, consent type).
type UserConsent struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;not null;index:idx_user_consent,unique" json:"userId"`
	ConsentType string    `gorm:"column:consent_type;not null;index:idx_user_consent,unique" json:"consentType"`
	Granted     bool      `gorm:"column:granted;not null" json:"granted"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for UserConsent
func (UserConsent) TableName() string {
	return "user_consents"
}

func (c *UserConsent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ConsentEvent is the append-only audit trail of consent changes.
type ConsentEvent struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;not null;index" json:"userId"`
	ConsentType string    `gorm:"column:consent_type;not null" json:"consentType"`
	Action      string    `gorm:"column:action;not null" json:"action"`
	IPAddress   string    `gorm:"column:ip_address" json:"ipAddress,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for ConsentEvent
func (ConsentEvent) TableName() string {
	return "consent_events"
}

func (e *ConsentEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
