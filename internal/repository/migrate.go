package repository

import (
	"context"
	"strings"

	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/models"
)

// MigrationReport tells which migration steps changed stored data.
type MigrationReport struct {
	MultiVehicle bool
	FuelType     bool
	BrandSlug    bool
}

// Applied reports whether any step changed data.
func (m MigrationReport) Applied() bool {
	return m.MultiVehicle || m.FuelType || m.BrandSlug
}

// Migrate runs the schema migrations in order. Every step is idempotent
// and keyed on the absence of the fields it introduces, so running the
// engine on every startup is safe.
func (r *Repository) Migrate(ctx context.Context) MigrationReport {
	report := MigrationReport{
		MultiVehicle: r.MigrateToMultiVehicle(ctx),
	}
	report.FuelType = r.MigrateFuelType(ctx)
	report.BrandSlug = r.MigrateBrandSlug(ctx)

	if report.Applied() {
		logging.Info("storage migrations applied",
			"multiVehicle", report.MultiVehicle,
			"fuelType", report.FuelType,
			"brandSlug", report.BrandSlug)
	}
	return report
}

// NeedsMigration reports whether legacy single-car data exists with no
// vehicle collection to absorb it.
func (r *Repository) NeedsMigration(ctx context.Context) bool {
	if len(r.Vehicles(ctx)) > 0 {
		return false
	}
	_, ok, err := r.store.Get(ctx, kvstore.KeyCarData)
	return err == nil && ok
}

// MigrateToMultiVehicle converts the legacy single-car keys into the first
// entry of the vehicle collection. Skipped when vehicles already exist or
// there is nothing to convert. The legacy keys are kept; the last-vehicle
// wipe in DeleteVehicle clears them so the conversion cannot re-run.
func (r *Repository) MigrateToMultiVehicle(ctx context.Context) bool {
	if len(r.Vehicles(ctx)) > 0 {
		return false
	}

	carData, ok := r.CarData(ctx)
	if !ok {
		return false
	}

	year := carData.Year
	if year == 0 {
		year = r.now().Year()
	}
	oilViscosity := carData.OilViscosity
	if oilViscosity == "" {
		oilViscosity = "20W-50"
	}
	oilBase := carData.OilBase
	if oilBase == "" {
		oilBase = "Mineral"
	}

	vehicle := models.Vehicle{
		ID:               "vehicle_" + r.newID(),
		Name:             carData.Name,
		Brand:            carData.Brand,
		Model:            carData.Model,
		Year:             year,
		OilViscosity:     oilViscosity,
		OilBase:          oilBase,
		FuelType:         models.FuelGasolina,
		CurrentKm:        carData.CurrentKm,
		MonthlyKm:        1200,
		MaintenanceItems: dedupeItems(r.MaintenanceItems(ctx)),
		Faults:           r.Faults(ctx),
	}

	r.SaveVehicles(ctx, []models.Vehicle{vehicle})
	r.SetSelectedVehicleID(ctx, vehicle.ID)
	return true
}

// MigrateFuelType backfills the fields introduced with fuel-type support:
// monthlyKm, per-item historyStatus, and fuelType itself. Vehicles gaining
// a fuel type get their item list regenerated from the gasoline template,
// preserving lastServiceKm and historyStatus of items that already existed.
func (r *Repository) MigrateFuelType(ctx context.Context) bool {
	vehicles := r.Vehicles(ctx)
	if len(vehicles) == 0 {
		return false
	}

	changed := false
	for i := range vehicles {
		v := &vehicles[i]

		if v.MonthlyKm == 0 {
			v.MonthlyKm = 1200
			changed = true
		}

		for j := range v.MaintenanceItems {
			item := &v.MaintenanceItems[j]
			if item.HistoryStatus != "" {
				continue
			}
			// A used vehicle whose item was never serviced has no real
			// history; anything else is assumed recorded.
			if v.CurrentKm > 10000 && item.LastServiceKm == 0 {
				item.HistoryStatus = models.HistoryUnknown
			} else {
				item.HistoryStatus = models.HistoryKnown
			}
			changed = true
		}

		if v.FuelType != "" {
			continue
		}

		v.FuelType = models.FuelGasolina
		changed = true

		regenerated := r.seedMaintenanceItems(v.CurrentKm, models.FuelGasolina, models.HistoryKnown, "", "")
		for j := range regenerated {
			for _, old := range v.MaintenanceItems {
				if old.ID != regenerated[j].ID {
					continue
				}
				regenerated[j].LastServiceKm = old.LastServiceKm
				if old.HistoryStatus != "" {
					regenerated[j].HistoryStatus = old.HistoryStatus
				}
				break
			}
		}
		v.MaintenanceItems = regenerated
	}

	if changed {
		r.SaveVehicles(ctx, vehicles)
	}
	return changed
}

// MigrateBrandSlug matches free-text brand and model names against the
// catalog and, on a hit, records the slugs and refreshes the maintenance
// intervals with the catalog's recommendations. Vehicles whose brand does
// not match are left for the user to fix by hand.
func (r *Repository) MigrateBrandSlug(ctx context.Context) bool {
	vehicles := r.Vehicles(ctx)
	if len(vehicles) == 0 {
		return false
	}

	changed := false
	for i := range vehicles {
		v := &vehicles[i]
		if v.BrandSlug != "" {
			continue
		}

		var brandSlug string
		for _, m := range r.cat.Manufacturers() {
			if strings.EqualFold(m.Name, v.Brand) {
				brandSlug = m.Slug
				break
			}
		}
		if brandSlug == "" {
			continue
		}

		changed = true
		v.BrandSlug = brandSlug

		for _, m := range r.cat.ModelsForBrand(brandSlug) {
			if strings.EqualFold(m.Name, v.Model) {
				v.ModelSlug = m.Slug
				break
			}
		}

		if v.ModelSlug == "" {
			continue
		}
		intervals := r.cat.AllMaintenanceIntervals(brandSlug, v.ModelSlug)
		for j := range v.MaintenanceItems {
			if km, ok := intervals[v.MaintenanceItems[j].ID]; ok && km > 0 {
				v.MaintenanceItems[j].IntervalKm = km
			}
		}
	}

	if changed {
		r.SaveVehicles(ctx, vehicles)
	}
	return changed
}
