package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserVehicle is the server-side copy of one local vehicle. The pair
// (UserID, LocalVehicleID) identifies it across syncs, so repeated
// uploads of the same vehicle update one row instead of piling up.
type UserVehicle struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	UserID          string    `gorm:"column:user_id;not null;index:idx_user_local_vehicle,unique;constraint:OnDelete:CASCADE" json:"userId"`
	LocalVehicleID  string    `gorm:"column:local_vehicle_id;not null;index:idx_user_local_vehicle,unique" json:"localVehicleId"`
	Brand           string    `gorm:"column:brand" json:"brand,omitempty"`
	BrandName       string    `gorm:"column:brand_name" json:"brandName,omitempty"`
	Model           string    `gorm:"column:model" json:"model,omitempty"`
	ModelName       string    `gorm:"column:model_name" json:"modelName,omitempty"`
	CustomModel     string    `gorm:"column:custom_model" json:"customModel,omitempty"`
	Year            int       `gorm:"column:year" json:"year,omitempty"`
	FuelType        string    `gorm:"column:fuel_type" json:"fuelType,omitempty"`
	OilViscosity    string    `gorm:"column:oil_viscosity" json:"oilViscosity,omitempty"`
	OilBase         string    `gorm:"column:oil_base" json:"oilBase,omitempty"`
	LubricantBrand  string    `gorm:"column:lubricant_brand" json:"lubricantBrand,omitempty"`
	CustomLubricant string    `gorm:"column:custom_lubricant" json:"customLubricant,omitempty"`
	CurrentKm       int       `gorm:"column:current_km" json:"currentKm"`
	MonthlyKm       int       `gorm:"column:monthly_km" json:"monthlyKm,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for UserVehicle
func (UserVehicle) TableName() string {
	return "user_vehicles"
}

func (v *UserVehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
