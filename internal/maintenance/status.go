// Package maintenance computes how due each service item is from the
// vehicle odometer and the item's last service record.
package maintenance

import "auto-pana/garaje/internal/models"

// Level buckets an item by urgency.
type Level string

const (
	LevelGood     Level = "good"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
	LevelUnknown  Level = "unknown"
)

// Urgency thresholds in remaining km.
const (
	criticalWithinKm = 500
	warningWithinKm  = 1000
)

// Status is the computed due state of one maintenance item. StatusText and
// Message carry the venezolano tone the UI shows verbatim.
type Status struct {
	RemainingKm int    `json:"remainingKm"`
	Level       Level  `json:"status"`
	StatusText  string `json:"statusText"`
	Message     string `json:"message"`
}

// Compute buckets an item against the current odometer reading. Items whose
// service history was never captured report unknown with remaining 0 and are
// not compared against the odometer at all. Overdue items clamp remaining to
// 0 rather than going negative.
func Compute(currentKm int, item models.MaintenanceItem) Status {
	if item.HistoryStatus == models.HistoryUnknown {
		return Status{
			RemainingKm: 0,
			Level:       LevelUnknown,
			StatusText:  "Mosca!",
			Message:     "Sin historial",
		}
	}

	remaining := item.LastServiceKm + item.IntervalKm - currentKm

	switch {
	case remaining <= 0:
		return Status{
			RemainingKm: 0,
			Level:       LevelCritical,
			StatusText:  "Ponte Pila!",
			Message:     "Cambia esa vaina!",
		}
	case remaining <= criticalWithinKm:
		return Status{
			RemainingKm: remaining,
			Level:       LevelCritical,
			StatusText:  "Ponte Pila!",
			Message:     "Cambia esa vaina!",
		}
	case remaining <= warningWithinKm:
		return Status{
			RemainingKm: remaining,
			Level:       LevelWarning,
			StatusText:  "Mosca!",
			Message:     "Ya casi toca",
		}
	default:
		return Status{
			RemainingKm: remaining,
			Level:       LevelGood,
			StatusText:  "Todo Fino",
			Message:     "Sin problemas",
		}
	}
}
