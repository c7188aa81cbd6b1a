package services

import (
	"context"
	"errors"
	"fmt"

	"auto-pana/garaje/internal/db/repositories"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/metrics"
	gormModels "auto-pana/garaje/internal/models/gorm"
)

// VehicleSyncInput is one vehicle snapshot uploaded from a device. The
// local vehicle ID ties repeated uploads of the same vehicle together.
type VehicleSyncInput struct {
	UserID          string `json:"userId"`
	LocalVehicleID  string `json:"localVehicleId"`
	Brand           string `json:"brand,omitempty"`
	BrandName       string `json:"brandName,omitempty"`
	Model           string `json:"model,omitempty"`
	ModelName       string `json:"modelName,omitempty"`
	CustomModel     string `json:"customModel,omitempty"`
	Year            int    `json:"year,omitempty"`
	FuelType        string `json:"fuelType,omitempty"`
	OilViscosity    string `json:"oilViscosity,omitempty"`
	OilBase         string `json:"oilBase,omitempty"`
	LubricantBrand  string `json:"lubricantBrand,omitempty"`
	CustomLubricant string `json:"customLubricant,omitempty"`
	CurrentKm       int    `json:"currentKm"`
	MonthlyKm       int    `json:"monthlyKm,omitempty"`
}

// VehicleSyncResult reports whether the upload created a server record
// or refreshed an existing one.
type VehicleSyncResult struct {
	Vehicle *gormModels.UserVehicle
	IsNew   bool
}

// VehicleSyncService upserts vehicle snapshots keyed by user and local
// vehicle ID.
type VehicleSyncService struct {
	users    *repositories.AppUserRepositoryGORM
	vehicles *repositories.UserVehicleRepositoryGORM
	metrics  *metrics.MetricsRegistry
}

func NewVehicleSyncService(
	users *repositories.AppUserRepositoryGORM,
	vehicles *repositories.UserVehicleRepositoryGORM,
	metricsReg *metrics.MetricsRegistry,
) *VehicleSyncService {
	return &VehicleSyncService{users: users, vehicles: vehicles, metrics: metricsReg}
}

// Sync upserts one vehicle snapshot.
func (s *VehicleSyncService) Sync(ctx context.Context, input VehicleSyncInput) (*VehicleSyncResult, error) {
	if input.UserID == "" || input.LocalVehicleID == "" {
		return nil, fmt.Errorf("userId and localVehicleId are required")
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	existing, err := s.vehicles.FindByLocalID(ctx, input.UserID, input.LocalVehicleID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		applySnapshot(existing, input)
		if err := s.vehicles.Update(ctx, existing); err != nil {
			return nil, err
		}
		s.metrics.VehiclesSyncedTotal.WithLabelValues("updated").Inc()
		return &VehicleSyncResult{Vehicle: existing, IsNew: false}, nil
	}

	vehicle := &gormModels.UserVehicle{
		UserID:         input.UserID,
		LocalVehicleID: input.LocalVehicleID,
	}
	applySnapshot(vehicle, input)

	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	s.metrics.VehiclesSyncedTotal.WithLabelValues("created").Inc()
	logging.Info("vehicle synced", "user_id", input.UserID, "local_vehicle_id", input.LocalVehicleID)

	return &VehicleSyncResult{Vehicle: vehicle, IsNew: true}, nil
}

// ListByUser returns every vehicle a user has synced.
func (s *VehicleSyncService) ListByUser(ctx context.Context, userID string) ([]gormModels.UserVehicle, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.vehicles.ListByUser(ctx, userID)
}

func applySnapshot(v *gormModels.UserVehicle, input VehicleSyncInput) {
	v.Brand = input.Brand
	v.BrandName = input.BrandName
	v.Model = input.Model
	v.ModelName = input.ModelName
	v.CustomModel = input.CustomModel
	v.Year = input.Year
	v.FuelType = input.FuelType
	v.OilViscosity = input.OilViscosity
	v.OilBase = input.OilBase
	v.LubricantBrand = input.LubricantBrand
	v.CustomLubricant = input.CustomLubricant
	v.CurrentKm = input.CurrentKm
	v.MonthlyKm = input.MonthlyKm
}
