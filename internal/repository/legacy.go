package repository

import (
	"context"

	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/models"
)

// The single-car item set from before fuel-type templates existed. Still
// authoritative for installations that never migrated.
var legacyDefaultItems = []models.MaintenanceItem{
	{ID: "engine-oil", Name: "Aceite de Motor", Icon: "droplet", LastServiceKm: 0, IntervalKm: 5000, HistoryStatus: models.HistoryKnown},
	{ID: "transmission-oil", Name: "Aceite de Caja", Icon: "settings", LastServiceKm: 0, IntervalKm: 60000, HistoryStatus: models.HistoryKnown},
	{ID: "brake-pads", Name: "Frenos: Pastillas", Icon: "disc", LastServiceKm: 0, IntervalKm: 40000, HistoryStatus: models.HistoryKnown},
	{ID: "brake-fluid", Name: "Frenos: Liquido", Icon: "flask", LastServiceKm: 0, IntervalKm: 40000, HistoryStatus: models.HistoryKnown},
	{ID: "tires", Name: "Cauchos", Icon: "circle", LastServiceKm: 0, IntervalKm: 50000, HistoryStatus: models.HistoryKnown},
	{ID: "battery", Name: "Bateria", Icon: "battery", LastServiceKm: 0, IntervalKm: 40000, HistoryStatus: models.HistoryKnown},
}

// HasCompletedSetup reports whether the first-run flow finished.
func (r *Repository) HasCompletedSetup(ctx context.Context) bool {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyHasSetup)
	return err == nil && ok && raw == "true"
}

// SetCompletedSetup marks the first-run flow as finished.
func (r *Repository) SetCompletedSetup(ctx context.Context) {
	if err := r.store.Set(ctx, kvstore.KeyHasSetup, "true"); err != nil {
		logging.Error("failed to write setup flag", "error", err)
	}
}

// CarData returns the legacy single-car record, false when absent.
func (r *Repository) CarData(ctx context.Context) (models.CarData, bool) {
	var data models.CarData
	if !r.getJSON(ctx, kvstore.KeyCarData, &data) {
		return models.CarData{}, false
	}
	return data, true
}

// SaveCarData stores the legacy single-car record.
func (r *Repository) SaveCarData(ctx context.Context, data models.CarData) {
	r.setJSON(ctx, kvstore.KeyCarData, data)
}

// UpdateCurrentKm sets the odometer of the legacy record, a no-op when no
// record exists.
func (r *Repository) UpdateCurrentKm(ctx context.Context, km int) {
	data, ok := r.CarData(ctx)
	if !ok {
		return
	}
	data.CurrentKm = km
	r.SaveCarData(ctx, data)
}

// MaintenanceItems returns the legacy maintenance item list. Reading is
// self-repairing: default items missing from the stored list are appended
// (initialized at the current odometer), and two renamed item ids are
// rewritten in place. Any repair is persisted before returning.
func (r *Repository) MaintenanceItems(ctx context.Context) []models.MaintenanceItem {
	var stored []models.MaintenanceItem
	if !r.getJSON(ctx, kvstore.KeyMaintenanceItems, &stored) {
		return legacyDefaultItems
	}

	storedIDs := make(map[string]bool, len(stored))
	for _, item := range stored {
		storedIDs[item.ID] = true
	}

	items := stored
	changed := false

	for _, def := range legacyDefaultItems {
		if storedIDs[def.ID] {
			continue
		}
		currentKm := 0
		if data, ok := r.CarData(ctx); ok {
			currentKm = data.CurrentKm
		}
		def.LastServiceKm = currentKm
		items = append(items, def)
		changed = true
	}

	// Two ids were renamed across releases. Rewrite only when the new id
	// is not already present, otherwise the rename would duplicate it.
	renames := []struct{ from, to, name string }{
		{"oil", "engine-oil", "Aceite de Motor"},
		{"brakes", "brake-pads", "Frenos: Pastillas"},
	}
	for _, rn := range renames {
		if !storedIDs[rn.from] || storedIDs[rn.to] {
			continue
		}
		for i := range items {
			if items[i].ID == rn.from {
				items[i].ID = rn.to
				items[i].Name = rn.name
				changed = true
				break
			}
		}
	}

	if changed {
		r.SaveMaintenanceItems(ctx, items)
	}

	return items
}

// SaveMaintenanceItems overwrites the legacy maintenance item list.
func (r *Repository) SaveMaintenanceItems(ctx context.Context, items []models.MaintenanceItem) {
	r.setJSON(ctx, kvstore.KeyMaintenanceItems, items)
}

// UpdateMaintenanceItem applies a partial update to one legacy item.
func (r *Repository) UpdateMaintenanceItem(ctx context.Context, id string, update models.MaintenanceItemUpdate) {
	update = sanitizeItemUpdate(update)
	items := r.MaintenanceItems(ctx)
	for i := range items {
		if items[i].ID == id {
			update.Apply(&items[i])
		}
	}
	r.SaveMaintenanceItems(ctx, items)
}

// InitializeMaintenanceItems resets the legacy list to the defaults with
// every item last serviced at the given odometer.
func (r *Repository) InitializeMaintenanceItems(ctx context.Context, currentKm int) {
	items := make([]models.MaintenanceItem, len(legacyDefaultItems))
	copy(items, legacyDefaultItems)
	for i := range items {
		items[i].LastServiceKm = currentKm
		items[i].HistoryStatus = models.HistoryKnown
	}
	r.SaveMaintenanceItems(ctx, items)
}

// Faults returns the legacy fault list, newest first.
func (r *Repository) Faults(ctx context.Context) []models.Fault {
	var faults []models.Fault
	r.getJSON(ctx, kvstore.KeyFaults, &faults)
	return faults
}

// SaveFaults overwrites the legacy fault list.
func (r *Repository) SaveFaults(ctx context.Context, faults []models.Fault) {
	r.setJSON(ctx, kvstore.KeyFaults, faults)
}

// AddFault prepends a fault to the legacy list, assigning it an id.
func (r *Repository) AddFault(ctx context.Context, fault models.Fault) {
	fault.ID = r.newID()
	r.SaveFaults(ctx, append([]models.Fault{fault}, r.Faults(ctx)...))
}

// DeleteFault removes one fault from the legacy list.
func (r *Repository) DeleteFault(ctx context.Context, id string) {
	faults := r.Faults(ctx)
	out := faults[:0:0]
	for _, f := range faults {
		if f.ID != id {
			out = append(out, f)
		}
	}
	r.SaveFaults(ctx, out)
}
