package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSyncClient_RegisterUser_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/users/register" {
			t.Errorf("Expected path /api/users/register, got %s", r.URL.Path)
		}

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Email != "ana@example.com" {
			t.Errorf("Expected email ana@example.com, got %s", req.Email)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Success: true,
			User:    RemoteUser{ID: "user-1", Email: "ana@example.com", AnalyticsConsent: true},
			IsNew:   true,
		})
	}))
	defer server.Close()

	client := &SyncClient{BaseURL: server.URL, Client: &http.Client{}}

	resp, err := client.RegisterUser(context.Background(), RegisterRequest{
		Email:            "ana@example.com",
		AnalyticsConsent: true,
		Platform:         "android",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !resp.IsNew {
		t.Error("Expected isNew true")
	}
	if resp.User.ID != "user-1" {
		t.Errorf("Expected user-1, got %s", resp.User.ID)
	}
}

func TestSyncClient_RegisterUser_EmptyEmail(t *testing.T) {
	client := NewSyncClient()
	if _, err := client.RegisterUser(context.Background(), RegisterRequest{}); err == nil {
		t.Error("Expected error for empty email")
	}
}

func TestSyncClient_SyncVehicle_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/vehicles/sync" {
			t.Errorf("Expected path /api/vehicles/sync, got %s", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		resp := VehicleSyncResponse{Success: true, IsNew: false}
		resp.Vehicle.ID = "veh-1"
		resp.Vehicle.LocalVehicleID = "vehicle_abc"
		resp.Vehicle.CurrentKm = 45000
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := &SyncClient{BaseURL: server.URL, Client: &http.Client{}}

	resp, err := client.SyncVehicle(context.Background(), VehicleSyncRequest{
		UserID:         "user-1",
		LocalVehicleID: "vehicle_abc",
		CurrentKm:      45000,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.IsNew {
		t.Error("Expected isNew false for repeated sync")
	}
	if resp.Vehicle.LocalVehicleID != "vehicle_abc" {
		t.Errorf("Expected vehicle_abc, got %s", resp.Vehicle.LocalVehicleID)
	}
}

func TestSyncClient_FetchUserByEmail_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Usuario no encontrado",
		})
	}))
	defer server.Close()

	client := &SyncClient{BaseURL: server.URL, Client: &http.Client{}}

	_, err := client.FetchUserByEmail(context.Background(), "nadie@example.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Usuario no encontrado" {
		t.Errorf("Expected server message, got %s", apiErr.Message)
	}
}
