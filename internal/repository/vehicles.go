package repository

import (
	"context"

	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/models"
)

// Vehicles lists every stored vehicle, empty when none exist or the store
// is unreadable.
func (r *Repository) Vehicles(ctx context.Context) []models.Vehicle {
	var vehicles []models.Vehicle
	r.getJSON(ctx, kvstore.KeyVehicles, &vehicles)
	return vehicles
}

// SaveVehicles overwrites the whole vehicle collection.
func (r *Repository) SaveVehicles(ctx context.Context, vehicles []models.Vehicle) {
	r.setJSON(ctx, kvstore.KeyVehicles, vehicles)
}

// HasVehicles reports whether at least one vehicle exists.
func (r *Repository) HasVehicles(ctx context.Context) bool {
	return len(r.Vehicles(ctx)) > 0
}

// SelectedVehicleID returns the active vehicle id, empty when none is set.
func (r *Repository) SelectedVehicleID(ctx context.Context) string {
	raw, ok, err := r.store.Get(ctx, kvstore.KeySelectedVehicleID)
	if err != nil || !ok {
		return ""
	}
	return raw
}

// SetSelectedVehicleID marks a vehicle as the active one.
func (r *Repository) SetSelectedVehicleID(ctx context.Context, id string) {
	if err := r.store.Set(ctx, kvstore.KeySelectedVehicleID, id); err != nil {
		logging.Error("failed to write selected vehicle id", "error", err)
	}
}

// SelectedVehicle resolves the active vehicle. Duplicate maintenance items
// (a historical bug when migrations ran twice concurrently) are collapsed
// keeping the first occurrence, and the cleaned list is written back.
func (r *Repository) SelectedVehicle(ctx context.Context) (models.Vehicle, bool) {
	id := r.SelectedVehicleID(ctx)
	if id == "" {
		return models.Vehicle{}, false
	}

	vehicle, ok := r.VehicleByID(ctx, id)
	if !ok {
		return models.Vehicle{}, false
	}

	deduped := dedupeItems(vehicle.MaintenanceItems)
	if len(deduped) != len(vehicle.MaintenanceItems) {
		vehicle.MaintenanceItems = deduped
		r.UpdateVehicle(ctx, vehicle.ID, models.VehicleUpdate{MaintenanceItems: &deduped})
	}

	return vehicle, true
}

// VehicleByID looks a vehicle up by id.
func (r *Repository) VehicleByID(ctx context.Context, id string) (models.Vehicle, bool) {
	for _, v := range r.Vehicles(ctx) {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// AddVehicle creates a vehicle from the user-provided fields, seeds its
// maintenance items from the fuel-type template refined by the catalog
// intervals for its brand/model, and appends it to the collection. The
// first vehicle ever added becomes the selected one.
func (r *Repository) AddVehicle(ctx context.Context, data models.NewVehicle) models.Vehicle {
	vehicles := r.Vehicles(ctx)

	vehicle := models.Vehicle{
		ID:               "vehicle_" + r.newID(),
		Name:             data.Name,
		Brand:            data.Brand,
		Model:            data.Model,
		Year:             data.Year,
		OilViscosity:     data.OilViscosity,
		OilBase:          data.OilBase,
		FuelType:         data.FuelType,
		CurrentKm:        data.CurrentKm,
		MonthlyKm:        data.MonthlyKm,
		MaintenanceItems: r.seedMaintenanceItems(data.CurrentKm, data.FuelType, models.HistoryKnown, data.BrandSlug, data.ModelSlug),
		Faults:           []models.Fault{},
		BrandSlug:        data.BrandSlug,
		ModelSlug:        data.ModelSlug,
		CustomModel:      data.CustomModel,
		LubricantBrand:   data.LubricantBrand,
		CustomLubricant:  data.CustomLubricant,
	}

	r.SaveVehicles(ctx, append(vehicles, vehicle))

	if len(vehicles) == 0 {
		r.SetSelectedVehicleID(ctx, vehicle.ID)
	}

	return vehicle
}

// UpdateVehicle applies a partial update to one vehicle; other vehicles are
// untouched and an unknown id is a no-op.
func (r *Repository) UpdateVehicle(ctx context.Context, id string, update models.VehicleUpdate) {
	vehicles := r.Vehicles(ctx)
	for i := range vehicles {
		if vehicles[i].ID == id {
			update.Apply(&vehicles[i])
		}
	}
	r.SaveVehicles(ctx, vehicles)
}

// DeleteVehicle removes a vehicle. Deleting the selected vehicle promotes
// the first remaining one; deleting the last vehicle wipes the selection,
// the setup flag and the legacy single-car keys so the migration engine
// cannot resurrect the vehicle from stale data.
func (r *Repository) DeleteVehicle(ctx context.Context, id string) {
	vehicles := r.Vehicles(ctx)
	remaining := vehicles[:0:0]
	for _, v := range vehicles {
		if v.ID != id {
			remaining = append(remaining, v)
		}
	}
	r.SaveVehicles(ctx, remaining)

	selectedID := r.SelectedVehicleID(ctx)
	switch {
	case selectedID == id && len(remaining) > 0:
		r.SetSelectedVehicleID(ctx, remaining[0].ID)
	case len(remaining) == 0:
		r.remove(ctx, kvstore.KeySelectedVehicleID)
		r.remove(ctx, kvstore.KeyHasSetup)
		r.remove(ctx, kvstore.KeyCarData)
		r.remove(ctx, kvstore.KeyMaintenanceItems)
		r.remove(ctx, kvstore.KeyFaults)
	}
}

// VehicleMaintenanceItems returns the maintenance items of one vehicle.
func (r *Repository) VehicleMaintenanceItems(ctx context.Context, vehicleID string) []models.MaintenanceItem {
	v, ok := r.VehicleByID(ctx, vehicleID)
	if !ok {
		return nil
	}
	return v.MaintenanceItems
}

// sanitizeItemUpdate drops numeric fields that would corrupt the status
// computation: intervals must be positive, service readings cannot be
// negative. The rest of the update still applies.
func sanitizeItemUpdate(update models.MaintenanceItemUpdate) models.MaintenanceItemUpdate {
	if update.IntervalKm != nil && *update.IntervalKm <= 0 {
		logging.Warn("ignoring non-positive maintenance interval", "interval_km", *update.IntervalKm)
		update.IntervalKm = nil
	}
	if update.LastServiceKm != nil && *update.LastServiceKm < 0 {
		logging.Warn("ignoring negative service reading", "last_service_km", *update.LastServiceKm)
		update.LastServiceKm = nil
	}
	return update
}

// UpdateVehicleMaintenanceItem applies a partial update to one item of one
// vehicle. Invalid numeric fields are dropped.
func (r *Repository) UpdateVehicleMaintenanceItem(ctx context.Context, vehicleID, itemID string, update models.MaintenanceItemUpdate) {
	update = sanitizeItemUpdate(update)
	vehicles := r.Vehicles(ctx)
	for i := range vehicles {
		if vehicles[i].ID != vehicleID {
			continue
		}
		for j := range vehicles[i].MaintenanceItems {
			if vehicles[i].MaintenanceItems[j].ID == itemID {
				update.Apply(&vehicles[i].MaintenanceItems[j])
			}
		}
	}
	r.SaveVehicles(ctx, vehicles)
}

// VehicleFaults returns the faults of one vehicle, newest first.
func (r *Repository) VehicleFaults(ctx context.Context, vehicleID string) []models.Fault {
	v, ok := r.VehicleByID(ctx, vehicleID)
	if !ok {
		return nil
	}
	return v.Faults
}

// AddVehicleFault prepends a fault to one vehicle, assigning it an id.
func (r *Repository) AddVehicleFault(ctx context.Context, vehicleID string, fault models.Fault) {
	fault.ID = r.newID()
	vehicles := r.Vehicles(ctx)
	for i := range vehicles {
		if vehicles[i].ID == vehicleID {
			vehicles[i].Faults = append([]models.Fault{fault}, vehicles[i].Faults...)
		}
	}
	r.SaveVehicles(ctx, vehicles)
}

// DeleteVehicleFault removes one fault from one vehicle.
func (r *Repository) DeleteVehicleFault(ctx context.Context, vehicleID, faultID string) {
	vehicles := r.Vehicles(ctx)
	for i := range vehicles {
		if vehicles[i].ID != vehicleID {
			continue
		}
		faults := vehicles[i].Faults[:0:0]
		for _, f := range vehicles[i].Faults {
			if f.ID != faultID {
				faults = append(faults, f)
			}
		}
		vehicles[i].Faults = faults
	}
	r.SaveVehicles(ctx, vehicles)
}

// UpdateVehicleKm sets the odometer reading of one vehicle. Negative
// readings are rejected.
func (r *Repository) UpdateVehicleKm(ctx context.Context, vehicleID string, km int) {
	if km < 0 {
		logging.Warn("ignoring negative odometer reading", "vehicle_id", vehicleID, "km", km)
		return
	}
	r.UpdateVehicle(ctx, vehicleID, models.VehicleUpdate{CurrentKm: &km})
}

// seedMaintenanceItems instantiates the fuel-type template at the given
// odometer reading. When brand and model slugs are known, catalog intervals
// override the template ones.
func (r *Repository) seedMaintenanceItems(currentKm int, fuel models.FuelType, history models.HistoryStatus, brandSlug, modelSlug string) []models.MaintenanceItem {
	template := r.cat.ItemTemplate(fuel)

	var intervals map[string]int
	if brandSlug != "" && modelSlug != "" {
		intervals = r.cat.AllMaintenanceIntervals(brandSlug, modelSlug)
	}

	items := make([]models.MaintenanceItem, 0, len(template))
	for _, t := range template {
		intervalKm := t.IntervalKm
		if km, ok := intervals[t.ID]; ok && km > 0 {
			intervalKm = km
		}
		items = append(items, models.MaintenanceItem{
			ID:            t.ID,
			Name:          t.Name,
			Icon:          t.Icon,
			LastServiceKm: currentKm,
			IntervalKm:    intervalKm,
			HistoryStatus: history,
		})
	}
	return items
}

// dedupeItems collapses duplicate maintenance item ids, keeping the first
// occurrence.
func dedupeItems(items []models.MaintenanceItem) []models.MaintenanceItem {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}
