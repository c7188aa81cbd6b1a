package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"auto-pana/garaje/internal/db/repositories"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/metrics"
	gormModels "auto-pana/garaje/internal/models/gorm"
)

// Consent type identifiers shared by the registration and consent endpoints.
const (
	ConsentMarketing = "marketing"
	ConsentAnalytics = "analytics"
	ConsentLocation  = "location"
)

// ErrUnknownConsentType rejects consent updates for a type the schema
// does not track.
var ErrUnknownConsentType = errors.New("unknown consent type")

// ErrInvalidEmail rejects registrations without a usable email.
var ErrInvalidEmail = errors.New("invalid email")

// RegisterLocation is the coarse location attached to a registration
// when the user granted location consent.
type RegisterLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
}

// RegisterInput carries one registration upload. Location being present
// doubles as the location consent signal.
type RegisterInput struct {
	Email            string            `json:"email"`
	DeviceID         string            `json:"deviceId,omitempty"`
	MarketingConsent bool              `json:"marketingConsent"`
	AnalyticsConsent bool              `json:"analyticsConsent"`
	Location         *RegisterLocation `json:"location,omitempty"`
	AppVersion       string            `json:"appVersion,omitempty"`
	Platform         string            `json:"platform,omitempty"`

	// IPAddress is filled in by the handler for the consent audit trail.
	IPAddress string `json:"-"`
}

// RegisterResult reports whether the upload created a user or refreshed
// an existing one.
type RegisterResult struct {
	User  *gormModels.AppUser
	IsNew bool
}

// RegistrationService upserts users by email and keeps the consent
// records in step with every upload.
type RegistrationService struct {
	users    *repositories.AppUserRepositoryGORM
	consents *repositories.ConsentRepositoryGORM
	metrics  *metrics.MetricsRegistry
}

func NewRegistrationService(
	users *repositories.AppUserRepositoryGORM,
	consents *repositories.ConsentRepositoryGORM,
	metricsReg *metrics.MetricsRegistry,
) *RegistrationService {
	return &RegistrationService{users: users, consents: consents, metrics: metricsReg}
}

// Register upserts a user by email. A repeated registration refreshes
// the profile and logs audit events only for consents that changed.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, input.Email)
	}

	locationConsent := input.Location != nil

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		return s.refresh(ctx, existing, input, locationConsent)
	}

	user := &gormModels.AppUser{
		Email:            email,
		DeviceID:         input.DeviceID,
		MarketingConsent: input.MarketingConsent,
		AnalyticsConsent: input.AnalyticsConsent,
		LocationConsent:  locationConsent,
		AppVersion:       input.AppVersion,
		Platform:         input.Platform,
	}
	applyLocation(user, input.Location)

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	for consentType, granted := range map[string]bool{
		ConsentMarketing: input.MarketingConsent,
		ConsentAnalytics: input.AnalyticsConsent,
		ConsentLocation:  locationConsent,
	} {
		if err := s.recordConsent(ctx, user.ID, consentType, granted, input.IPAddress); err != nil {
			return nil, err
		}
	}

	s.metrics.UsersRegisteredTotal.WithLabelValues("created").Inc()
	logging.Info("user registered", "user_id", user.ID, "platform", user.Platform)

	return &RegisterResult{User: user, IsNew: true}, nil
}

// refresh handles a registration upload for an email already on file.
func (s *RegistrationService) refresh(ctx context.Context, user *gormModels.AppUser, input RegisterInput, locationConsent bool) (*RegisterResult, error) {
	changed := map[string]bool{}
	if user.MarketingConsent != input.MarketingConsent {
		changed[ConsentMarketing] = input.MarketingConsent
	}
	if user.AnalyticsConsent != input.AnalyticsConsent {
		changed[ConsentAnalytics] = input.AnalyticsConsent
	}
	if user.LocationConsent != locationConsent {
		changed[ConsentLocation] = locationConsent
	}

	for consentType, granted := range changed {
		if err := s.logConsentEvent(ctx, user.ID, consentType, granted, input.IPAddress); err != nil {
			return nil, err
		}
	}

	user.DeviceID = input.DeviceID
	user.MarketingConsent = input.MarketingConsent
	user.AnalyticsConsent = input.AnalyticsConsent
	user.LocationConsent = locationConsent
	user.AppVersion = input.AppVersion
	user.Platform = input.Platform
	applyLocation(user, input.Location)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	// The normalized table always reflects the latest upload, changed
	// or not.
	for consentType, granted := range map[string]bool{
		ConsentMarketing: input.MarketingConsent,
		ConsentAnalytics: input.AnalyticsConsent,
		ConsentLocation:  locationConsent,
	} {
		if err := s.consents.Upsert(ctx, user.ID, consentType, granted); err != nil {
			return nil, err
		}
	}

	s.metrics.UsersRegisteredTotal.WithLabelValues("updated").Inc()

	return &RegisterResult{User: user, IsNew: false}, nil
}

// UpdateConsent flips one consent switch: audit event, normalized row,
// and the denormalized flag on the user record.
func (s *RegistrationService) UpdateConsent(ctx context.Context, userID, consentType string, granted bool, ipAddress string) (*gormModels.AppUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch consentType {
	case ConsentMarketing:
		user.MarketingConsent = granted
	case ConsentAnalytics:
		user.AnalyticsConsent = granted
	case ConsentLocation:
		user.LocationConsent = granted
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConsentType, consentType)
	}

	if err := s.recordConsent(ctx, user.ID, consentType, granted, ipAddress); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail looks a user up by normalized email.
func (s *RegistrationService) GetByEmail(ctx context.Context, email string) (*gormModels.AppUser, error) {
	return s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// recordConsent writes both the audit event and the normalized row.
func (s *RegistrationService) recordConsent(ctx context.Context, userID, consentType string, granted bool, ipAddress string) error {
	if err := s.logConsentEvent(ctx, userID, consentType, granted, ipAddress); err != nil {
		return err
	}
	return s.consents.Upsert(ctx, userID, consentType, granted)
}

func (s *RegistrationService) logConsentEvent(ctx context.Context, userID, consentType string, granted bool, ipAddress string) error {
	action := "revoked"
	if granted {
		action = "granted"
	}

	err := s.consents.LogEvent(ctx, &gormModels.ConsentEvent{
		UserID:      userID,
		ConsentType: consentType,
		Action:      action,
		IPAddress:   ipAddress,
	})
	if err != nil {
		return err
	}

	s.metrics.ConsentEventsTotal.WithLabelValues(consentType, action).Inc()
	return nil
}

func applyLocation(user *gormModels.AppUser, loc *RegisterLocation) {
	if loc == nil {
		return
	}
	user.Latitude = strconv.FormatFloat(loc.Latitude, 'f', -1, 64)
	user.Longitude = strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
	user.City = loc.City
	user.State = loc.State
	user.Country = loc.Country
}
