package tracking

import (
	"math"
	"testing"
	"time"
)

func TestHaversineKm(t *testing.T) {
	// Caracas to Valencia, about 123 km.
	got := HaversineKm(10.4806, -66.9036, 10.1620, -68.0077)
	if math.Abs(got-123) > 3 {
		t.Errorf("expected about 123 km, got %f", got)
	}

	if got := HaversineKm(10.5, -66.9, 10.5, -66.9); got != 0 {
		t.Errorf("expected 0 for identical points, got %f", got)
	}
}

func TestSpeedToKmh(t *testing.T) {
	if got := SpeedToKmh(10); got != 36 {
		t.Errorf("expected 36, got %f", got)
	}
	if got := SpeedToKmh(-1); got != 0 {
		t.Errorf("expected unknown speed to read 0, got %f", got)
	}
}

func TestValidFixAccuracyUnknownPasses(t *testing.T) {
	settings := DefaultSettings()
	fix := Fix{Latitude: 10.5, Longitude: -66.9, Timestamp: time.Now(), SpeedMs: 10, AccuracyM: -1}
	if !validFix(fix, nil, settings) {
		t.Error("expected fix without accuracy to pass")
	}
}
