package catalog

import (
	"testing"

	"auto-pana/garaje/internal/models"
)

func TestManufacturerBySlug(t *testing.T) {
	c := New()

	m, ok := c.ManufacturerBySlug("toyota")
	if !ok {
		t.Fatal("expected toyota to exist")
	}
	if m.Name != "Toyota" {
		t.Errorf("expected name Toyota, got %s", m.Name)
	}

	if _, ok := c.ManufacturerBySlug("delorean"); ok {
		t.Error("expected unknown slug to report not found")
	}
}

func TestEveryBrandHasOtherOption(t *testing.T) {
	c := New()

	for _, m := range c.Manufacturers() {
		found := false
		for _, model := range m.Models {
			if model.IsOther {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("brand %s has no escape-hatch model", m.Slug)
		}
	}
}

func TestMaintenanceIntervalPriority(t *testing.T) {
	c := New()

	// Model override wins.
	if got := c.MaintenanceInterval("toyota", "hilux", ItemEngineOil); got != 10000 {
		t.Errorf("expected hilux override 10000, got %d", got)
	}
	// No override, manufacturer default wins.
	if got := c.MaintenanceInterval("toyota", "corolla", ItemEngineOil); got != 5000 {
		t.Errorf("expected toyota default 5000, got %d", got)
	}
	// Manufacturer silent on the item, global default wins.
	if got := c.MaintenanceInterval("toyota", "corolla", ItemBrakePads); got != 40000 {
		t.Errorf("expected global default 40000, got %d", got)
	}
	// Unknown brand and model fall all the way through.
	if got := c.MaintenanceInterval("delorean", "dmc12", ItemEngineOil); got != 5000 {
		t.Errorf("expected global default 5000, got %d", got)
	}
}

func TestAllMaintenanceIntervalsMergesLayers(t *testing.T) {
	c := New()

	intervals := c.AllMaintenanceIntervals("toyota", "hilux")
	if len(intervals) != len(defaultMaintenanceIntervals) {
		t.Fatalf("expected %d keys, got %d", len(defaultMaintenanceIntervals), len(intervals))
	}
	if intervals[ItemEngineOil] != 10000 {
		t.Errorf("expected model override 10000, got %d", intervals[ItemEngineOil])
	}
	if intervals[ItemTransmissionOil] != 80000 {
		t.Errorf("expected manufacturer default 80000, got %d", intervals[ItemTransmissionOil])
	}
	if intervals[ItemTires] != 50000 {
		t.Errorf("expected global default 50000, got %d", intervals[ItemTires])
	}

	// Memoized copy comes back on the second call.
	again := c.AllMaintenanceIntervals("toyota", "hilux")
	if again[ItemEngineOil] != 10000 {
		t.Errorf("cached lookup diverged, got %d", again[ItemEngineOil])
	}
}

func TestItemTemplatePerFuelType(t *testing.T) {
	c := New()

	tests := []struct {
		fuel  models.FuelType
		items int
		has   string
	}{
		{models.FuelGasolina, 9, ItemSparkPlugs},
		{models.FuelDiesel, 8, ItemDieselFilter},
		{models.FuelGNV, 11, ItemGNVTank},
		{models.FuelHibrido, 10, ItemHybridBattery},
	}

	for _, tt := range tests {
		tpl := c.ItemTemplate(tt.fuel)
		if len(tpl) != tt.items {
			t.Errorf("%s: expected %d items, got %d", tt.fuel, tt.items, len(tpl))
		}
		found := false
		for _, item := range tpl {
			if item.ID == tt.has {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: expected item %s in template", tt.fuel, tt.has)
		}
	}

	// Unknown fuel falls back to gasoline.
	if got := len(c.ItemTemplate(models.FuelType("vapor"))); got != 9 {
		t.Errorf("expected gasoline fallback with 9 items, got %d", got)
	}
}

func TestLubricantBySlug(t *testing.T) {
	c := New()

	l, ok := c.LubricantBySlug("pdvsa")
	if !ok {
		t.Fatal("expected pdvsa to exist")
	}
	if l.Country != "Venezuela" {
		t.Errorf("expected Venezuela, got %s", l.Country)
	}

	other, ok := c.LubricantBySlug("other")
	if !ok || !other.IsOther {
		t.Error("expected the escape-hatch brand to be flagged IsOther")
	}
}
