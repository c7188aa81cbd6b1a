package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "auto-pana/garaje/internal/models/gorm"
)

type UserVehicleRepositoryGORM struct {
	db *gorm.DB
}

// NewUserVehicleRepositoryGORM creates a new GORM-based user vehicle repository
func NewUserVehicleRepositoryGORM(db *gorm.DB) *UserVehicleRepositoryGORM {
	return &UserVehicleRepositoryGORM{db: db}
}

// FindByLocalID retrieves the vehicle a user synced under a local vehicle ID
func (r *UserVehicleRepositoryGORM) FindByLocalID(ctx context.Context, userID, localVehicleID string) (*gormModels.UserVehicle, error) {
	var vehicle gormModels.UserVehicle

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND local_vehicle_id = ?", userID, localVehicleID).
		First(&vehicle).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %s for user %s: %w", localVehicleID, userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch vehicle: %w", err)
	}

	return &vehicle, nil
}

// ListByUser retrieves all vehicles a user has synced, newest first
func (r *UserVehicleRepositoryGORM) ListByUser(ctx context.Context, userID string) ([]gormModels.UserVehicle, error) {
	var vehicles []gormModels.UserVehicle

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicles).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

// Create inserts a new vehicle record
func (r *UserVehicleRepositoryGORM) Create(ctx context.Context, vehicle *gormModels.UserVehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update saves the full vehicle record
func (r *UserVehicleRepositoryGORM) Update(ctx context.Context, vehicle *gormModels.UserVehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// CountAll returns the total number of synced vehicles
func (r *UserVehicleRepositoryGORM) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&gormModels.UserVehicle{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

// CountByFuelType returns synced vehicle counts grouped by fuel type
func (r *UserVehicleRepositoryGORM) CountByFuelType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		FuelType string
		Count    int64
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&gormModels.UserVehicle{}).
		Select("fuel_type, count(*) as count").
		Group("fuel_type").
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles by fuel type: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.FuelType] = r.Count
	}
	return counts, nil
}
