package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"auto-pana/garaje/internal/common"
	"auto-pana/garaje/internal/db/repositories"
	"auto-pana/garaje/internal/logging"
	gormModels "auto-pana/garaje/internal/models/gorm"
	"auto-pana/garaje/internal/services"
)

// RegisterResponse mirrors what the mobile client stores locally: the
// server-issued user record plus whether this email was new.
type RegisterResponse struct {
	Success bool                `json:"success"`
	User    *gormModels.AppUser `json:"user"`
	IsNew   bool                `json:"isNew"`
}

// UserResponse wraps a single user record.
type UserResponse struct {
	Success bool                `json:"success"`
	User    *gormModels.AppUser `json:"user"`
}

// UserVehiclesResponse lists everything a user has synced.
type UserVehiclesResponse struct {
	Success  bool                     `json:"success"`
	Vehicles []gormModels.UserVehicle `json:"vehicles"`
}

// RegisterUserHandler handles POST /api/users/register
func RegisterUserHandler(svc *services.RegistrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.RegisterInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			common.RespondError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		input.IPAddress = clientIP(r)

		result, err := svc.Register(r.Context(), input)
		if err != nil {
			if errors.Is(err, services.ErrInvalidEmail) {
				common.RespondError(w, "invalid email", http.StatusBadRequest)
				return
			}
			logging.Error("registration failed", "error", err)
			common.RespondError(w, "registration failed")
			return
		}

		status := http.StatusOK
		if result.IsNew {
			status = http.StatusCreated
		}
		common.RespondJSON(w, status, RegisterResponse{
			Success: true,
			User:    result.User,
			IsNew:   result.IsNew,
		})
	}
}

type consentRequest struct {
	UserID      string `json:"userId"`
	ConsentType string `json:"consentType"`
	Granted     bool   `json:"granted"`
}

// UpdateConsentHandler handles PATCH /api/users/consent
func UpdateConsentHandler(svc *services.RegistrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req consentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.UserID == "" || req.ConsentType == "" {
			common.RespondError(w, "userId and consentType are required", http.StatusBadRequest)
			return
		}

		user, err := svc.UpdateConsent(r.Context(), req.UserID, req.ConsentType, req.Granted, clientIP(r))
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				common.RespondError(w, "Usuario no encontrado", http.StatusNotFound)
			case errors.Is(err, services.ErrUnknownConsentType):
				common.RespondError(w, "unknown consent type", http.StatusBadRequest)
			default:
				logging.Error("consent update failed", "error", err)
				common.RespondError(w, "consent update failed")
			}
			return
		}

		common.RespondJSON(w, http.StatusOK, UserResponse{Success: true, User: user})
	}
}

// UserByEmailHandler handles GET /api/users/by-email/{email}
func UserByEmailHandler(svc *services.RegistrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")

		user, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, "Usuario no encontrado", http.StatusNotFound)
				return
			}
			logging.Error("user lookup failed", "error", err)
			common.RespondError(w, "user lookup failed")
			return
		}

		common.RespondJSON(w, http.StatusOK, UserResponse{Success: true, User: user})
	}
}

// UserVehiclesHandler handles GET /api/users/{userID}/vehicles
func UserVehiclesHandler(svc *services.VehicleSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		vehicles, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, "Usuario no encontrado", http.StatusNotFound)
				return
			}
			logging.Error("vehicle list failed", "error", err)
			common.RespondError(w, "vehicle list failed")
			return
		}

		if vehicles == nil {
			vehicles = []gormModels.UserVehicle{}
		}
		common.RespondJSON(w, http.StatusOK, UserVehiclesResponse{Success: true, Vehicles: vehicles})
	}
}

// clientIP extracts the caller address for the consent audit trail,
// honoring the first hop of X-Forwarded-For when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
