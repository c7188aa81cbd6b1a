package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"auto-pana/garaje/internal/common"
	"auto-pana/garaje/internal/db/repositories"
	"auto-pana/garaje/internal/metrics"
	gormModels "auto-pana/garaje/internal/models/gorm"
	"auto-pana/garaje/internal/services"
)

var testMetrics = metrics.NewMetricsRegistry()

// newTestRouter wires the API routes onto an in-memory database,
// without the middleware stack.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&gormModels.AppUser{},
		&gormModels.UserVehicle{},
		&gormModels.UserConsent{},
		&gormModels.ConsentEvent{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	users := repositories.NewAppUserRepositoryGORM(gdb)
	vehicles := repositories.NewUserVehicleRepositoryGORM(gdb)
	consents := repositories.NewConsentRepositoryGORM(gdb)

	registrationSvc := services.NewRegistrationService(users, consents, testMetrics)
	vehicleSyncSvc := services.NewVehicleSyncService(users, vehicles, testMetrics)
	statsSvc := services.NewStatsService(users, vehicles, common.NewCacheService(60, 120), time.Minute, testMetrics)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", RegisterUserHandler(registrationSvc))
			r.Patch("/consent", UpdateConsentHandler(registrationSvc))
			r.Get("/by-email/{email}", UserByEmailHandler(registrationSvc))
			r.Get("/{userID}/vehicles", UserVehiclesHandler(vehicleSyncSvc))
		})
		r.Post("/vehicles/sync", SyncVehicleHandler(vehicleSyncSvc))
		r.Get("/analytics/stats", StatsHandler(statsSvc))
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/users/register", map[string]interface{}{
		"email":            "ana@example.com",
		"analyticsConsent": true,
		"platform":         "android",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || !resp.IsNew || resp.User.ID == "" {
		t.Errorf("unexpected response: %+v", resp)
	}

	// Same email again: 200 and isNew false.
	rec = doJSON(t, router, "POST", "/api/users/register", map[string]interface{}{
		"email":            "ana@example.com",
		"analyticsConsent": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IsNew {
		t.Error("expected isNew false on repeat registration")
	}
}

func TestRegisterEndpointRejectsBadInput(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/users/register", map[string]interface{}{"email": "sin-arroba"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad email, got %d", rec.Code)
	}
}

func TestUserByEmailEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, "POST", "/api/users/register", map[string]interface{}{
		"email":            "ana@example.com",
		"analyticsConsent": true,
	})

	rec := doJSON(t, router, "GET", "/api/users/by-email/ana@example.com", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/users/by-email/nadie@example.com", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var errResp common.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if errResp.Error != "Usuario no encontrado" {
		t.Errorf("expected spanish not-found message, got %q", errResp.Error)
	}
}

func TestConsentEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/users/register", map[string]interface{}{
		"email":            "ana@example.com",
		"analyticsConsent": true,
	})
	var created RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = doJSON(t, router, "PATCH", "/api/users/consent", map[string]interface{}{
		"userId":      created.User.ID,
		"consentType": "analytics",
		"granted":     false,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User.AnalyticsConsent {
		t.Error("expected analytics consent revoked")
	}

	rec = doJSON(t, router, "PATCH", "/api/users/consent", map[string]interface{}{
		"userId":      created.User.ID,
		"consentType": "cookies",
		"granted":     true,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown consent type, got %d", rec.Code)
	}

	rec = doJSON(t, router, "PATCH", "/api/users/consent", map[string]interface{}{
		"userId":      "missing-user",
		"consentType": "marketing",
		"granted":     true,
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown user, got %d", rec.Code)
	}
}

func TestVehicleSyncEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/users/register", map[string]interface{}{
		"email":            "ana@example.com",
		"analyticsConsent": true,
	})
	var created RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	payload := map[string]interface{}{
		"userId":         created.User.ID,
		"localVehicleId": "vehicle_abc",
		"brand":          "toyota",
		"brandName":      "Toyota",
		"fuelType":       "gasolina",
		"currentKm":      45000,
	}
	rec = doJSON(t, router, "POST", "/api/vehicles/sync", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	payload["currentKm"] = 46200
	rec = doJSON(t, router, "POST", "/api/vehicles/sync", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", rec.Code)
	}
	var resp VehicleSyncResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IsNew || resp.Vehicle.CurrentKm != 46200 {
		t.Errorf("unexpected sync response: %+v", resp)
	}

	rec = doJSON(t, router, "GET", "/api/users/"+created.User.ID+"/vehicles", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list UserVehiclesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Vehicles) != 1 {
		t.Errorf("expected one vehicle, got %d", len(list.Vehicles))
	}
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, "POST", "/api/users/register", map[string]interface{}{
		"email":            "ana@example.com",
		"analyticsConsent": true,
	})

	rec := doJSON(t, router, "GET", "/api/analytics/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Stats   struct {
			TotalUsers    int64 `json:"totalUsers"`
			TotalVehicles int64 `json:"totalVehicles"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Stats.TotalUsers != 1 {
		t.Errorf("unexpected stats response: %+v", resp)
	}
}
