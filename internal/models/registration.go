package models

// RegistrationLocation is the coarse location captured at registration time,
// only when the user granted location consent.
type RegistrationLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
}

// UserRegistration is the locally stored registration record. UserID is
// filled in once the remote API issues one; the record is valid without it.
type UserRegistration struct {
	UserID               string                `json:"userId,omitempty"`
	Email                string                `json:"email"`
	MarketingConsent     bool                  `json:"marketingConsent"`
	AnalyticsConsent     bool                  `json:"analyticsConsent"`
	RegistrationLocation *RegistrationLocation `json:"registrationLocation,omitempty"`
	RegisteredAt         string                `json:"registeredAt"`
}

// ConsentType enumerates the consent switches the remote API tracks.
type ConsentType string

const (
	ConsentMarketing ConsentType = "marketing"
	ConsentAnalytics ConsentType = "analytics"
	ConsentLocation  ConsentType = "location"
)
