package api

import (
	"net/http"

	"auto-pana/garaje/internal/common"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/services"
)

// StatsResponse wraps the aggregate analytics snapshot.
type StatsResponse struct {
	Success bool        `json:"success"`
	Stats   interface{} `json:"stats"`
}

// StatsHandler handles GET /api/analytics/stats
func StatsHandler(svc *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Get(r.Context())
		if err != nil {
			logging.Error("stats aggregation failed", "error", err)
			common.RespondError(w, "stats aggregation failed")
			return
		}

		common.RespondJSON(w, http.StatusOK, StatsResponse{Success: true, Stats: stats})
	}
}
