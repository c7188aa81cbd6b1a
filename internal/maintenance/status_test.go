package maintenance

import (
	"testing"

	"auto-pana/garaje/internal/models"
)

func item(lastKm, intervalKm int) models.MaintenanceItem {
	return models.MaintenanceItem{
		ID:            "engine-oil",
		Name:          "Aceite de Motor",
		Icon:          "droplet",
		LastServiceKm: lastKm,
		IntervalKm:    intervalKm,
	}
}

func TestComputeBuckets(t *testing.T) {
	tests := []struct {
		name      string
		currentKm int
		item      models.MaintenanceItem
		level     Level
		remaining int
	}{
		{"overdue clamps to zero", 56000, item(50000, 5000), LevelCritical, 0},
		{"exactly due", 55000, item(50000, 5000), LevelCritical, 0},
		{"one km past boundary stays critical", 54999, item(50000, 5000), LevelCritical, 1},
		{"critical upper edge", 54500, item(50000, 5000), LevelCritical, 500},
		{"warning just past critical edge", 54499, item(50000, 5000), LevelWarning, 501},
		{"warning upper edge", 54000, item(50000, 5000), LevelWarning, 1000},
		{"good just past warning edge", 53999, item(50000, 5000), LevelGood, 1001},
		{"comfortably good", 50000, item(50000, 5000), LevelGood, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.currentKm, tt.item)
			if got.Level != tt.level {
				t.Errorf("expected level %s, got %s", tt.level, got.Level)
			}
			if got.RemainingKm != tt.remaining {
				t.Errorf("expected remaining %d, got %d", tt.remaining, got.RemainingKm)
			}
		})
	}
}

func TestComputeUnknownHistoryShortCircuits(t *testing.T) {
	it := item(0, 5000)
	it.HistoryStatus = models.HistoryUnknown

	// currentKm would make a known item critical, but unknown wins.
	got := Compute(999999, it)
	if got.Level != LevelUnknown {
		t.Fatalf("expected unknown, got %s", got.Level)
	}
	if got.RemainingKm != 0 {
		t.Errorf("expected remaining 0, got %d", got.RemainingKm)
	}
	if got.StatusText != "Mosca!" || got.Message != "Sin historial" {
		t.Errorf("unexpected texts: %q %q", got.StatusText, got.Message)
	}
}

func TestComputeStatusTexts(t *testing.T) {
	critical := Compute(55000, item(50000, 5000))
	if critical.StatusText != "Ponte Pila!" || critical.Message != "Cambia esa vaina!" {
		t.Errorf("unexpected critical texts: %q %q", critical.StatusText, critical.Message)
	}

	warning := Compute(54200, item(50000, 5000))
	if warning.StatusText != "Mosca!" || warning.Message != "Ya casi toca" {
		t.Errorf("unexpected warning texts: %q %q", warning.StatusText, warning.Message)
	}

	good := Compute(50000, item(50000, 5000))
	if good.StatusText != "Todo Fino" || good.Message != "Sin problemas" {
		t.Errorf("unexpected good texts: %q %q", good.StatusText, good.Message)
	}
}
