package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// SyncClient is the device-side uplink to the analytics server. Every
// call is best effort: the app works fully offline and callers treat
// failures as retry-later.
type SyncClient struct {
	BaseURL string
	Client  *http.Client
}

// NewSyncClient creates a client against SYNC_API_BASE_URL.
func NewSyncClient() *SyncClient {
	baseURL := os.Getenv("SYNC_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &SyncClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError carries a non-2xx response from the sync server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sync api: %s (status %d)", e.Message, e.StatusCode)
}

// RemoteUser is the server-issued user record.
type RemoteUser struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	MarketingConsent bool   `json:"marketingConsent"`
	AnalyticsConsent bool   `json:"analyticsConsent"`
	LocationConsent  bool   `json:"locationConsent"`
}

// RegisterLocation is the coarse location sent when the user granted
// location consent.
type RegisterLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
}

// RegisterRequest is the registration upload payload.
type RegisterRequest struct {
	Email            string            `json:"email"`
	DeviceID         string            `json:"deviceId,omitempty"`
	MarketingConsent bool              `json:"marketingConsent"`
	AnalyticsConsent bool              `json:"analyticsConsent"`
	Location         *RegisterLocation `json:"location,omitempty"`
	AppVersion       string            `json:"appVersion,omitempty"`
	Platform         string            `json:"platform,omitempty"`
}

// RegisterResponse reports the upserted user.
type RegisterResponse struct {
	Success bool       `json:"success"`
	User    RemoteUser `json:"user"`
	IsNew   bool       `json:"isNew"`
}

// RegisterUser upserts the user on the server and returns the
// server-issued record.
func (c *SyncClient) RegisterUser(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	var resp RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConsentUpdateRequest flips one consent switch server-side.
type ConsentUpdateRequest struct {
	UserID      string `json:"userId"`
	ConsentType string `json:"consentType"`
	Granted     bool   `json:"granted"`
}

// UserResponse wraps a single user record.
type UserResponse struct {
	Success bool       `json:"success"`
	User    RemoteUser `json:"user"`
}

// UpdateConsent pushes a consent change.
func (c *SyncClient) UpdateConsent(ctx context.Context, req ConsentUpdateRequest) (*UserResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	var resp UserResponse
	if err := c.do(ctx, http.MethodPatch, "/api/users/consent", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VehicleSyncRequest is one vehicle snapshot upload.
type VehicleSyncRequest struct {
	UserID          string `json:"userId"`
	LocalVehicleID  string `json:"localVehicleId"`
	Brand           string `json:"brand,omitempty"`
	BrandName       string `json:"brandName,omitempty"`
	Model           string `json:"model,omitempty"`
	ModelName       string `json:"modelName,omitempty"`
	CustomModel     string `json:"customModel,omitempty"`
	Year            int    `json:"year,omitempty"`
	FuelType        string `json:"fuelType,omitempty"`
	OilViscosity    string `json:"oilViscosity,omitempty"`
	OilBase         string `json:"oilBase,omitempty"`
	LubricantBrand  string `json:"lubricantBrand,omitempty"`
	CustomLubricant string `json:"customLubricant,omitempty"`
	CurrentKm       int    `json:"currentKm"`
	MonthlyKm       int    `json:"monthlyKm,omitempty"`
}

// VehicleSyncResponse reports the upserted server record.
type VehicleSyncResponse struct {
	Success bool `json:"success"`
	Vehicle struct {
		ID             string `json:"id"`
		UserID         string `json:"userId"`
		LocalVehicleID string `json:"localVehicleId"`
		CurrentKm      int    `json:"currentKm"`
	} `json:"vehicle"`
	IsNew bool `json:"isNew"`
}

// SyncVehicle uploads one vehicle snapshot.
func (c *SyncClient) SyncVehicle(ctx context.Context, req VehicleSyncRequest) (*VehicleSyncResponse, error) {
	if req.UserID == "" || req.LocalVehicleID == "" {
		return nil, fmt.Errorf("user ID and local vehicle ID cannot be empty")
	}

	var resp VehicleSyncResponse
	if err := c.do(ctx, http.MethodPost, "/api/vehicles/sync", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchUserByEmail recovers the server record for an email, used when
// the local registration lost its server-issued ID.
func (c *SyncClient) FetchUserByEmail(ctx context.Context, email string) (*UserResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	var resp UserResponse
	endpoint := "/api/users/by-email/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one JSON request against the sync server.
func (c *SyncClient) do(ctx context.Context, method, endpoint string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
