package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"auto-pana/garaje/internal/catalog"
	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/models"
)

func newTestRepo() (*Repository, *kvstore.MemStore) {
	store := kvstore.NewMemStore()
	repo := New(store, catalog.New())
	repo.now = func() time.Time {
		return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	seq := 0
	repo.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return repo, store
}

func seedJSON(t *testing.T, store *kvstore.MemStore, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
	if err := store.Set(context.Background(), key, string(raw)); err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

func TestAddVehicleSeedsTemplateAndSelectsFirst(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	v := repo.AddVehicle(ctx, models.NewVehicle{
		Name:      "Mi Corolla",
		Brand:     "Toyota",
		Model:     "Corolla",
		Year:      2018,
		FuelType:  models.FuelGasolina,
		CurrentKm: 45000,
		MonthlyKm: 1500,
		BrandSlug: "toyota",
		ModelSlug: "corolla",
	})

	if len(v.MaintenanceItems) != 9 {
		t.Fatalf("expected 9 gasoline items, got %d", len(v.MaintenanceItems))
	}
	for _, item := range v.MaintenanceItems {
		if item.LastServiceKm != 45000 {
			t.Errorf("item %s: expected lastServiceKm 45000, got %d", item.ID, item.LastServiceKm)
		}
		if item.HistoryStatus != models.HistoryKnown {
			t.Errorf("item %s: expected known history", item.ID)
		}
	}

	// Catalog intervals override template ones for a matched model.
	for _, item := range v.MaintenanceItems {
		if item.ID == catalog.ItemTransmissionOil && item.IntervalKm != 80000 {
			t.Errorf("expected toyota transmission interval 80000, got %d", item.IntervalKm)
		}
	}

	if got := repo.SelectedVehicleID(ctx); got != v.ID {
		t.Errorf("expected first vehicle to become selected, got %q", got)
	}

	// A second vehicle must not steal the selection.
	repo.AddVehicle(ctx, models.NewVehicle{Name: "Camioneta", FuelType: models.FuelDiesel, CurrentKm: 90000})
	if got := repo.SelectedVehicleID(ctx); got != v.ID {
		t.Errorf("expected selection to stay on first vehicle, got %q", got)
	}
}

func TestSelectedVehicleDeduplicatesItems(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	vehicle := models.Vehicle{
		ID:   "vehicle_dup",
		Name: "Duplicado",
		MaintenanceItems: []models.MaintenanceItem{
			{ID: "engine-oil", Name: "Aceite de Motor", LastServiceKm: 100, IntervalKm: 5000},
			{ID: "tires", Name: "Cauchos", LastServiceKm: 200, IntervalKm: 50000},
			{ID: "engine-oil", Name: "Aceite de Motor", LastServiceKm: 999, IntervalKm: 5000},
		},
	}
	seedJSON(t, store, kvstore.KeyVehicles, []models.Vehicle{vehicle})
	store.Set(ctx, kvstore.KeySelectedVehicleID, "vehicle_dup")

	got, ok := repo.SelectedVehicle(ctx)
	if !ok {
		t.Fatal("expected selected vehicle")
	}
	if len(got.MaintenanceItems) != 2 {
		t.Fatalf("expected 2 items after dedupe, got %d", len(got.MaintenanceItems))
	}
	// Keep-first: the surviving engine-oil entry is the original one.
	if got.MaintenanceItems[0].LastServiceKm != 100 {
		t.Errorf("expected first occurrence to survive, got lastServiceKm %d", got.MaintenanceItems[0].LastServiceKm)
	}

	// The repair is persisted.
	stored, _ := repo.VehicleByID(ctx, "vehicle_dup")
	if len(stored.MaintenanceItems) != 2 {
		t.Errorf("expected dedupe to be written back, got %d items", len(stored.MaintenanceItems))
	}
}

func TestDeleteVehiclePromotesAndWipes(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	first := repo.AddVehicle(ctx, models.NewVehicle{Name: "Uno", FuelType: models.FuelGasolina})
	second := repo.AddVehicle(ctx, models.NewVehicle{Name: "Dos", FuelType: models.FuelGasolina})

	repo.DeleteVehicle(ctx, first.ID)
	if got := repo.SelectedVehicleID(ctx); got != second.ID {
		t.Errorf("expected promotion of first remaining vehicle, got %q", got)
	}

	// Seed legacy keys, then delete the last vehicle: everything legacy
	// must be wiped so the migration cannot resurrect the car.
	seedJSON(t, store, kvstore.KeyCarData, models.CarData{Name: "Viejo", CurrentKm: 1000})
	repo.SetCompletedSetup(ctx)

	repo.DeleteVehicle(ctx, second.ID)

	if repo.SelectedVehicleID(ctx) != "" {
		t.Error("expected selection cleared")
	}
	if repo.HasCompletedSetup(ctx) {
		t.Error("expected setup flag cleared")
	}
	if _, ok := repo.CarData(ctx); ok {
		t.Error("expected legacy car data cleared")
	}
	if repo.Migrate(ctx).Applied() {
		t.Error("expected no migration to apply after full wipe")
	}
	if repo.HasVehicles(ctx) {
		t.Error("expected no vehicles to come back")
	}
}

func TestLegacyMaintenanceItemsBackfillAndRename(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	seedJSON(t, store, kvstore.KeyCarData, models.CarData{Name: "Viejo", CurrentKm: 30000})
	seedJSON(t, store, kvstore.KeyMaintenanceItems, []models.MaintenanceItem{
		{ID: "oil", Name: "Aceite", LastServiceKm: 25000, IntervalKm: 5000},
		{ID: "brakes", Name: "Frenos", LastServiceKm: 20000, IntervalKm: 40000},
	})

	items := repo.MaintenanceItems(ctx)

	byID := map[string]models.MaintenanceItem{}
	for _, item := range items {
		byID[item.ID] = item
	}
	if _, ok := byID["oil"]; ok {
		t.Error("expected oil to be renamed")
	}
	renamed, ok := byID["engine-oil"]
	if !ok {
		t.Fatal("expected engine-oil after rename")
	}
	if renamed.Name != "Aceite de Motor" || renamed.LastServiceKm != 25000 {
		t.Errorf("rename lost data: %+v", renamed)
	}
	if _, ok := byID["brake-pads"]; !ok {
		t.Error("expected brake-pads after rename")
	}
	// Missing defaults backfilled at current odometer.
	if tires, ok := byID["tires"]; !ok || tires.LastServiceKm != 30000 {
		t.Errorf("expected tires backfilled at 30000, got %+v", tires)
	}
}

func TestMigrateEndToEnd(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	seedJSON(t, store, kvstore.KeyCarData, models.CarData{
		Name:      "El Clasico",
		Brand:     "Toyota",
		Model:     "Corolla",
		CurrentKm: 80000,
	})
	seedJSON(t, store, kvstore.KeyMaintenanceItems, []models.MaintenanceItem{
		{ID: "engine-oil", Name: "Aceite de Motor", Icon: "droplet", LastServiceKm: 78000, IntervalKm: 5000},
		{ID: "tires", Name: "Cauchos", Icon: "circle", LastServiceKm: 0, IntervalKm: 50000},
	})
	seedJSON(t, store, kvstore.KeyFaults, []models.Fault{
		{ID: "f1", Description: "Ruido en tren delantero", Date: "2025-01-10", Km: 79500},
	})

	report := repo.Migrate(ctx)
	if !report.MultiVehicle || !report.FuelType || !report.BrandSlug {
		t.Fatalf("expected all steps to apply, got %+v", report)
	}

	vehicles := repo.Vehicles(ctx)
	if len(vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
	}
	v := vehicles[0]

	// Step 1 defaults.
	if v.OilViscosity != "20W-50" || v.OilBase != "Mineral" || v.Year != 2025 {
		t.Errorf("unexpected conversion defaults: %+v", v)
	}
	if len(v.Faults) != 1 {
		t.Errorf("expected fault carried over, got %d", len(v.Faults))
	}

	// Step 2: fuel type, monthly km and history statuses.
	if v.FuelType != models.FuelGasolina || v.MonthlyKm != 1200 {
		t.Errorf("expected gasolina/1200, got %s/%d", v.FuelType, v.MonthlyKm)
	}
	byID := map[string]models.MaintenanceItem{}
	for _, item := range v.MaintenanceItems {
		byID[item.ID] = item
	}
	// Regeneration preserved the serviced item and flagged the untouched
	// one as unknown history (high-mileage vehicle, lastServiceKm 0).
	if oil := byID["engine-oil"]; oil.LastServiceKm != 78000 || oil.HistoryStatus != models.HistoryKnown {
		t.Errorf("expected engine-oil preserved as known, got %+v", oil)
	}
	if tires := byID["tires"]; tires.HistoryStatus != models.HistoryUnknown {
		t.Errorf("expected tires flagged unknown, got %+v", tires)
	}

	// Step 3: slugs matched and intervals refreshed from the catalog.
	if v.BrandSlug != "toyota" || v.ModelSlug != "corolla" {
		t.Errorf("expected toyota/corolla slugs, got %s/%s", v.BrandSlug, v.ModelSlug)
	}
	if trans, ok := byID["transmission-oil"]; ok && trans.IntervalKm != 80000 {
		t.Errorf("expected transmission interval refreshed to 80000, got %d", trans.IntervalKm)
	}

	if repo.SelectedVehicleID(ctx) != v.ID {
		t.Error("expected migrated vehicle to be selected")
	}

	// Idempotency: a second run changes nothing.
	if again := repo.Migrate(ctx); again.Applied() {
		t.Errorf("expected second run to be a no-op, got %+v", again)
	}
	after := repo.Vehicles(ctx)
	if len(after) != 1 || len(after[0].MaintenanceItems) != len(v.MaintenanceItems) {
		t.Error("second migration run altered data")
	}
}

func TestMigrateNothingToDo(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	if repo.NeedsMigration(ctx) {
		t.Error("expected no migration needed on empty store")
	}
	if repo.Migrate(ctx).Applied() {
		t.Error("expected no-op migration on empty store")
	}
}

func TestDocumentsBackfillAndExpiry(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	// Stored list predates two document types.
	seedJSON(t, store, kvstore.KeyDocuments, []models.Document{
		{ID: models.DocLicencia, Name: "Licencia", ExpirationDate: "2025-03-20"},
		{ID: models.DocCedula, Name: "Cedula"},
		{ID: models.DocMedico, Name: "Certificado Medico", ExpirationDate: "2025-03-10"},
		{ID: models.DocRCV, Name: "R.C.V.", ExpirationDate: "2025-06-01"},
	})

	docs := repo.Documents(ctx)
	if len(docs) != 6 {
		t.Fatalf("expected 6 documents after backfill, got %d", len(docs))
	}

	// Fixed test clock: 2025-03-15.
	expiring := repo.ExpiringDocuments(docs)
	ids := map[models.DocumentType]bool{}
	for _, d := range expiring {
		ids[d.ID] = true
	}
	if !ids[models.DocLicencia] {
		t.Error("expected licencia (5 days out) to be expiring")
	}
	if !ids[models.DocMedico] {
		t.Error("expected medico (already expired) to be expiring")
	}
	if ids[models.DocRCV] {
		t.Error("did not expect rcv (months out) to be expiring")
	}
	if ids[models.DocCedula] {
		t.Error("did not expect undated cedula to be expiring")
	}

	if days, ok := repo.DaysRemaining(docs[0]); !ok || days != 5 {
		t.Errorf("expected 5 days remaining for licencia, got %d (ok=%v)", days, ok)
	}
}

func TestExpensesMonthTotalAndOrder(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	repo.AddExpense(ctx, models.Expense{Amount: 20, Description: "Aceite", Date: "2025-03-01"})
	repo.AddExpense(ctx, models.Expense{Amount: 35.5, Description: "Caucho", Date: "2025-03-10"})
	repo.AddExpense(ctx, models.Expense{Amount: 100, Description: "Frenos", Date: "2025-02-28"})

	expenses := repo.Expenses(ctx)
	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(expenses))
	}
	if expenses[0].Description != "Frenos" {
		t.Errorf("expected newest-added first, got %s", expenses[0].Description)
	}

	if total := repo.CurrentMonthTotal(expenses); total != 55.5 {
		t.Errorf("expected march total 55.5, got %v", total)
	}

	repo.DeleteExpense(ctx, expenses[0].ID)
	if got := len(repo.Expenses(ctx)); got != 2 {
		t.Errorf("expected 2 expenses after delete, got %d", got)
	}
}

func TestRegistrationRoundTrip(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	if repo.HasUserRegistration(ctx) {
		t.Error("expected no registration initially")
	}

	repo.SetUserRegistration(ctx, models.UserRegistration{
		UserID:           "user-123",
		Email:            "pana@example.com",
		AnalyticsConsent: true,
		RegisteredAt:     "2025-03-15T12:00:00Z",
	})

	if !repo.HasUserRegistration(ctx) {
		t.Error("expected registration id to be synced from the record")
	}
	reg, ok := repo.UserRegistration(ctx)
	if !ok || reg.Email != "pana@example.com" {
		t.Errorf("unexpected registration: %+v", reg)
	}

	repo.SetRegistrationSkipped(ctx, true)
	if !repo.HasSkippedRegistration(ctx) {
		t.Error("expected skip flag set")
	}

	repo.ClearUserRegistration(ctx)
	if repo.HasUserRegistration(ctx) {
		t.Error("expected registration cleared")
	}
}

func TestReadsDegradeOnStoreFailure(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	repo.AddVehicle(ctx, models.NewVehicle{Name: "Uno", FuelType: models.FuelGasolina})

	store.FailReads = true
	if got := repo.Vehicles(ctx); got != nil {
		t.Errorf("expected nil vehicles on read failure, got %d", len(got))
	}
	if _, ok := repo.SelectedVehicle(ctx); ok {
		t.Error("expected no selected vehicle on read failure")
	}
	if items := repo.MaintenanceItems(ctx); len(items) != len(legacyDefaultItems) {
		t.Errorf("expected legacy defaults on read failure, got %d items", len(items))
	}

	store.FailReads = false
	store.FailWrites = true
	// Writes are swallowed; this must not panic and the old data survives.
	repo.UpdateVehicleKm(ctx, "nope", 123)
	if got := len(repo.Vehicles(ctx)); got != 1 {
		t.Errorf("expected stored vehicle to survive failed writes, got %d", got)
	}
}

func TestUpdateMaintenanceItemDropsInvalidNumerics(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	v := repo.AddVehicle(ctx, models.NewVehicle{
		Name:      "Mi Carro",
		FuelType:  models.FuelGasolina,
		CurrentKm: 45000,
	})

	badInterval := -5000
	badService := -1
	newName := "Aceite Sintetico"
	repo.UpdateVehicleMaintenanceItem(ctx, v.ID, "engine-oil", models.MaintenanceItemUpdate{
		Name:          &newName,
		IntervalKm:    &badInterval,
		LastServiceKm: &badService,
	})

	for _, item := range repo.VehicleMaintenanceItems(ctx, v.ID) {
		if item.ID != "engine-oil" {
			continue
		}
		if item.IntervalKm != 5000 {
			t.Errorf("expected interval kept at 5000, got %d", item.IntervalKm)
		}
		if item.LastServiceKm != 45000 {
			t.Errorf("expected service reading kept at 45000, got %d", item.LastServiceKm)
		}
		// The valid part of the update still lands.
		if item.Name != newName {
			t.Errorf("expected name updated, got %q", item.Name)
		}
	}

	zero := 0
	repo.UpdateVehicleMaintenanceItem(ctx, v.ID, "engine-oil", models.MaintenanceItemUpdate{IntervalKm: &zero})
	for _, item := range repo.VehicleMaintenanceItems(ctx, v.ID) {
		if item.ID == "engine-oil" && item.IntervalKm != 5000 {
			t.Errorf("expected zero interval rejected, got %d", item.IntervalKm)
		}
	}
}

func TestUpdateVehicleKmRejectsNegative(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	v := repo.AddVehicle(ctx, models.NewVehicle{Name: "Mi Carro", FuelType: models.FuelGasolina, CurrentKm: 45000})

	repo.UpdateVehicleKm(ctx, v.ID, -100)
	if got, _ := repo.VehicleByID(ctx, v.ID); got.CurrentKm != 45000 {
		t.Errorf("expected odometer unchanged, got %d", got.CurrentKm)
	}

	repo.UpdateVehicleKm(ctx, v.ID, 46000)
	if got, _ := repo.VehicleByID(ctx, v.ID); got.CurrentKm != 46000 {
		t.Errorf("expected odometer 46000, got %d", got.CurrentKm)
	}
}

func TestLegacyUpdateMaintenanceItemDropsInvalidNumerics(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	repo.InitializeMaintenanceItems(ctx, 30000)

	badInterval := -1
	repo.UpdateMaintenanceItem(ctx, "engine-oil", models.MaintenanceItemUpdate{IntervalKm: &badInterval})

	for _, item := range repo.MaintenanceItems(ctx) {
		if item.ID == "engine-oil" && item.IntervalKm <= 0 {
			t.Errorf("expected legacy interval kept positive, got %d", item.IntervalKm)
		}
	}
}

func TestVehiclesDegradeToEmptyOnPartialDecode(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	// The first element decodes fine, the second fails partway.
	raw := `[{"id":"vehicle_a","name":"A","currentKm":100,"maintenanceItems":[],"faults":[]},{"id":5}]`
	if err := store.Set(ctx, kvstore.KeyVehicles, raw); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if got := repo.Vehicles(ctx); len(got) != 0 {
		t.Errorf("expected no vehicles from a truncated decode, got %d", len(got))
	}
	if _, ok := repo.VehicleByID(ctx, "vehicle_a"); ok {
		t.Error("expected partially decoded vehicle to be discarded")
	}
}

func TestStoredDatesAcceptFullTimestamps(t *testing.T) {
	repo, _ := newTestRepo()

	// March 20 against the fixed clock of March 15.
	days, ok := repo.DaysRemaining(models.Document{
		ID:             models.DocLicencia,
		Name:           "Licencia",
		ExpirationDate: "2025-03-20T00:00:00Z",
	})
	if !ok || days != 5 {
		t.Errorf("expected 5 days from a timestamped expiry, got %d (ok=%v)", days, ok)
	}

	total := repo.CurrentMonthTotal([]models.Expense{
		{ID: "e1", Amount: 20, Date: "2025-03-10T15:04:05Z"},
		{ID: "e2", Amount: 7.5, Date: "2025-03-12"},
		{ID: "e3", Amount: 100, Date: "2025-02-28T10:00:00Z"},
	})
	if total != 27.5 {
		t.Errorf("expected 27.5 for the current month, got %f", total)
	}
}
