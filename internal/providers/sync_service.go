package providers

import (
	"context"

	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/models"
	"auto-pana/garaje/internal/repository"
)

// SyncService pushes local state to the analytics server. Every method
// is fire and forget: failures are logged and the app carries on, a
// later push retries with the same data.
type SyncService struct {
	repo   *repository.Repository
	client *SyncClient
}

func NewSyncService(repo *repository.Repository, client *SyncClient) *SyncService {
	return &SyncService{repo: repo, client: client}
}

// PushRegistration uploads the local registration record and persists
// the server-issued user ID on success.
func (s *SyncService) PushRegistration(ctx context.Context) bool {
	reg, ok := s.repo.UserRegistration(ctx)
	if !ok {
		return false
	}

	req := RegisterRequest{
		Email:            reg.Email,
		MarketingConsent: reg.MarketingConsent,
		AnalyticsConsent: reg.AnalyticsConsent,
	}
	if loc := reg.RegistrationLocation; loc != nil {
		req.Location = &RegisterLocation{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			City:      loc.City,
			State:     loc.State,
			Country:   loc.Country,
		}
	}

	resp, err := s.client.RegisterUser(ctx, req)
	if err != nil {
		logging.Warn("registration upload failed, will retry later", "error", err)
		return false
	}

	if resp.User.ID != "" && resp.User.ID != reg.UserID {
		reg.UserID = resp.User.ID
		s.repo.SetUserRegistration(ctx, reg)
	}
	return true
}

// PushConsent uploads one consent change. A registration without a
// server-issued ID is uploaded first.
func (s *SyncService) PushConsent(ctx context.Context, consentType models.ConsentType, granted bool) bool {
	userID := s.repo.UserRegistrationID(ctx)
	if userID == "" {
		if !s.PushRegistration(ctx) {
			return false
		}
		userID = s.repo.UserRegistrationID(ctx)
		if userID == "" {
			return false
		}
	}

	_, err := s.client.UpdateConsent(ctx, ConsentUpdateRequest{
		UserID:      userID,
		ConsentType: string(consentType),
		Granted:     granted,
	})
	if err != nil {
		logging.Warn("consent upload failed, will retry later", "error", err)
		return false
	}
	return true
}

// PushVehicles uploads a snapshot of every local vehicle and returns
// how many made it to the server.
func (s *SyncService) PushVehicles(ctx context.Context) int {
	userID := s.repo.UserRegistrationID(ctx)
	if userID == "" {
		return 0
	}

	synced := 0
	for _, v := range s.repo.Vehicles(ctx) {
		_, err := s.client.SyncVehicle(ctx, snapshotOf(userID, v))
		if err != nil {
			logging.Warn("vehicle upload failed, will retry later",
				"vehicle_id", v.ID,
				"error", err,
			)
			continue
		}
		synced++
	}
	return synced
}

func snapshotOf(userID string, v models.Vehicle) VehicleSyncRequest {
	return VehicleSyncRequest{
		UserID:          userID,
		LocalVehicleID:  v.ID,
		Brand:           v.BrandSlug,
		BrandName:       v.Brand,
		Model:           v.ModelSlug,
		ModelName:       v.Model,
		CustomModel:     v.CustomModel,
		Year:            v.Year,
		FuelType:        string(v.FuelType),
		OilViscosity:    v.OilViscosity,
		OilBase:         v.OilBase,
		LubricantBrand:  v.LubricantBrand,
		CustomLubricant: v.CustomLubricant,
		CurrentKm:       v.CurrentKm,
		MonthlyKm:       v.MonthlyKm,
	}
}
