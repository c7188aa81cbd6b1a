package kvstore

import "context"

// Storage keys, one per logical collection. The odd prefixes are historical:
// early releases wrote under @ponte_pila while the registration flow shipped
// later under @auto_pana, and stored installations still carry both.
const (
	KeyCarData            = "@ponte_pila:car_data"
	KeyMaintenanceItems   = "@ponte_pila:maintenance_items"
	KeyHasSetup           = "@ponte_pila:has_setup"
	KeyDocuments          = "@ponte_pila:documents"
	KeyExpenses           = "@ponte_pila:expenses"
	KeyFaults             = "@ponte_pila:faults"
	KeyVehicles           = "@ponte_pila:vehicles"
	KeySelectedVehicleID  = "@ponte_pila:selected_vehicle_id"
	KeyUserRegistrationID = "@ponte_pila:user_registration_id"
	KeyTrackingEnabled    = "@ponte_pila:tracking_enabled"
	KeyAccumulatedKm      = "@ponte_pila:accumulated_km"
	KeyUserRegistration   = "@auto_pana_user_registration"
	KeyRegistrationSkip   = "@auto_pana_registration_skipped"
)

// Store is the opaque string-keyed persistence every core record is
// serialized into as JSON. Get reports ok=false both for a missing key and
// for a read failure; callers degrade to their zero value either way.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
