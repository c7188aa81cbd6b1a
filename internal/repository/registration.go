package repository

import (
	"context"

	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/models"
)

// UserRegistrationID returns the server-issued user id, empty when the user
// never registered or registration never synced.
func (r *Repository) UserRegistrationID(ctx context.Context) string {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyUserRegistrationID)
	if err != nil || !ok {
		return ""
	}
	return raw
}

// SetUserRegistrationID stores the server-issued user id.
func (r *Repository) SetUserRegistrationID(ctx context.Context, id string) {
	if err := r.store.Set(ctx, kvstore.KeyUserRegistrationID, id); err != nil {
		logging.Error("failed to write registration id", "error", err)
	}
}

// HasUserRegistration reports whether a server-issued user id exists.
func (r *Repository) HasUserRegistration(ctx context.Context) bool {
	return r.UserRegistrationID(ctx) != ""
}

// UserRegistration returns the locally stored registration record.
func (r *Repository) UserRegistration(ctx context.Context) (models.UserRegistration, bool) {
	var reg models.UserRegistration
	if !r.getJSON(ctx, kvstore.KeyUserRegistration, &reg) {
		return models.UserRegistration{}, false
	}
	return reg, true
}

// SetUserRegistration stores the registration record. When the record
// already carries a server-issued id, the id key is kept in sync.
func (r *Repository) SetUserRegistration(ctx context.Context, reg models.UserRegistration) {
	r.setJSON(ctx, kvstore.KeyUserRegistration, reg)
	if reg.UserID != "" {
		r.SetUserRegistrationID(ctx, reg.UserID)
	}
}

// ClearUserRegistration removes the registration record and its id.
func (r *Repository) ClearUserRegistration(ctx context.Context) {
	r.remove(ctx, kvstore.KeyUserRegistration)
	r.remove(ctx, kvstore.KeyUserRegistrationID)
}

// SetRegistrationSkipped records whether the user dismissed the
// registration prompt.
func (r *Repository) SetRegistrationSkipped(ctx context.Context, skipped bool) {
	value := "false"
	if skipped {
		value = "true"
	}
	if err := r.store.Set(ctx, kvstore.KeyRegistrationSkip, value); err != nil {
		logging.Error("failed to write registration skip flag", "error", err)
	}
}

// HasSkippedRegistration reports whether the user dismissed the
// registration prompt.
func (r *Repository) HasSkippedRegistration(ctx context.Context) bool {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyRegistrationSkip)
	return err == nil && ok && raw == "true"
}
