package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auto-pana/garaje/internal/catalog"
	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/models"
	"auto-pana/garaje/internal/repository"
)

func TestSyncService_PushRegistration_PersistsServerID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Success: true,
			User:    RemoteUser{ID: "srv-user-1", Email: "ana@example.com"},
			IsNew:   true,
		})
	}))
	defer server.Close()

	ctx := context.Background()
	repo := repository.New(kvstore.NewMemStore(), catalog.New())
	repo.SetUserRegistration(ctx, models.UserRegistration{
		Email:            "ana@example.com",
		AnalyticsConsent: true,
		RegisteredAt:     "2025-03-15",
	})

	svc := NewSyncService(repo, &SyncClient{BaseURL: server.URL, Client: &http.Client{}})

	if !svc.PushRegistration(ctx) {
		t.Fatal("expected push to succeed")
	}
	if got := repo.UserRegistrationID(ctx); got != "srv-user-1" {
		t.Errorf("expected server id persisted, got %q", got)
	}
}

func TestSyncService_PushRegistration_SwallowsServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx := context.Background()
	repo := repository.New(kvstore.NewMemStore(), catalog.New())
	repo.SetUserRegistration(ctx, models.UserRegistration{Email: "ana@example.com"})

	svc := NewSyncService(repo, &SyncClient{BaseURL: server.URL, Client: &http.Client{}})

	if svc.PushRegistration(ctx) {
		t.Error("expected push to report failure")
	}
	if got := repo.UserRegistrationID(ctx); got != "" {
		t.Errorf("expected no server id on failure, got %q", got)
	}
}

func TestSyncService_PushVehicles(t *testing.T) {
	var uploads []VehicleSyncRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req VehicleSyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode upload: %v", err)
		}
		uploads = append(uploads, req)

		w.WriteHeader(http.StatusCreated)
		resp := VehicleSyncResponse{Success: true, IsNew: true}
		resp.Vehicle.LocalVehicleID = req.LocalVehicleID
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	ctx := context.Background()
	repo := repository.New(kvstore.NewMemStore(), catalog.New())
	repo.SetUserRegistration(ctx, models.UserRegistration{
		UserID: "srv-user-1",
		Email:  "ana@example.com",
	})
	repo.AddVehicle(ctx, models.NewVehicle{
		Name:      "Mi Carro",
		Brand:     "Toyota",
		BrandSlug: "toyota",
		FuelType:  models.FuelGasolina,
		CurrentKm: 45000,
	})
	repo.AddVehicle(ctx, models.NewVehicle{
		Name:      "Camioneta",
		FuelType:  models.FuelDiesel,
		CurrentKm: 120000,
	})

	svc := NewSyncService(repo, &SyncClient{BaseURL: server.URL, Client: &http.Client{}})

	if synced := svc.PushVehicles(ctx); synced != 2 {
		t.Fatalf("expected 2 vehicles synced, got %d", synced)
	}
	if len(uploads) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(uploads))
	}
	if uploads[0].UserID != "srv-user-1" || uploads[0].Brand != "toyota" {
		t.Errorf("unexpected first upload: %+v", uploads[0])
	}
	if uploads[0].CurrentKm != 45000 {
		t.Errorf("expected odometer in upload, got %d", uploads[0].CurrentKm)
	}
}

func TestSyncService_PushVehicles_NeedsRegistration(t *testing.T) {
	repo := repository.New(kvstore.NewMemStore(), catalog.New())
	svc := NewSyncService(repo, NewSyncClient())

	if synced := svc.PushVehicles(context.Background()); synced != 0 {
		t.Errorf("expected nothing synced without a server user id, got %d", synced)
	}
}
