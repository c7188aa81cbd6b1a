package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppUser is one registered app install, keyed by email. Latitude and
// longitude are stored as strings to keep decimal precision intact.
type AppUser struct {
	ID               string    `gorm:"column:id;primaryKey" json:"id"`
	Email            string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	DeviceID         string    `gorm:"column:device_id" json:"deviceId,omitempty"`
	RegisteredAt     time.Time `gorm:"column:registered_at;autoCreateTime" json:"registeredAt"`
	Country          string    `gorm:"column:country" json:"country,omitempty"`
	State            string    `gorm:"column:state" json:"state,omitempty"`
	City             string    `gorm:"column:city" json:"city,omitempty"`
	Latitude         string    `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude        string    `gorm:"column:longitude" json:"longitude,omitempty"`
	MarketingConsent bool      `gorm:"column:marketing_consent;default:false" json:"marketingConsent"`
	AnalyticsConsent bool      `gorm:"column:analytics_consent;default:true" json:"analyticsConsent"`
	LocationConsent  bool      `gorm:"column:location_consent;default:false" json:"locationConsent"`
	AppVersion       string    `gorm:"column:app_version" json:"appVersion,omitempty"`
	Platform         string    `gorm:"column:platform" json:"platform,omitempty"`
}

// TableName specifies the table name for AppUser
func (AppUser) TableName() string {
	return "app_users"
}

// BeforeCreate assigns a UUID so the schema works on sqlite and postgres alike.
func (u *AppUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
