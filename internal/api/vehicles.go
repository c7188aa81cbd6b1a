package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"auto-pana/garaje/internal/common"
	"auto-pana/garaje/internal/db/repositories"
	"auto-pana/garaje/internal/logging"
	gormModels "auto-pana/garaje/internal/models/gorm"
	"auto-pana/garaje/internal/services"
)

// VehicleSyncResponse reports the upserted server record.
type VehicleSyncResponse struct {
	Success bool                    `json:"success"`
	Vehicle *gormModels.UserVehicle `json:"vehicle"`
	IsNew   bool                    `json:"isNew"`
}

// SyncVehicleHandler handles POST /api/vehicles/sync
func SyncVehicleHandler(svc *services.VehicleSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.VehicleSyncInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			common.RespondError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result, err := svc.Sync(r.Context(), input)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				common.RespondError(w, "Usuario no encontrado", http.StatusNotFound)
			case input.UserID == "" || input.LocalVehicleID == "":
				common.RespondError(w, "userId and localVehicleId are required", http.StatusBadRequest)
			default:
				logging.Error("vehicle sync failed", "error", err)
				common.RespondError(w, "vehicle sync failed")
			}
			return
		}

		status := http.StatusOK
		if result.IsNew {
			status = http.StatusCreated
		}
		common.RespondJSON(w, status, VehicleSyncResponse{
			Success: true,
			Vehicle: result.Vehicle,
			IsNew:   result.IsNew,
		})
	}
}
