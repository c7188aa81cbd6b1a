package models

// FuelType identifies the fuel system a vehicle runs on. It decides which
// maintenance item template the vehicle starts with.
type FuelType string

const (
	FuelGasolina FuelType = "gasolina"
	FuelDiesel   FuelType = "diesel"
	FuelGNV      FuelType = "gnv"
	FuelHibrido  FuelType = "hibrido"
)

// HistoryStatus tells whether the lastServiceKm of a maintenance item is
// trustworthy data or an unverified placeholder.
type HistoryStatus string

const (
	HistoryKnown   HistoryStatus = "known"
	HistoryUnknown HistoryStatus = "unknown"
)

// MaintenanceItem is one category of scheduled service (oil change, brake
// pads, ...) belonging to a vehicle. Fields with omitempty were added after
// the first release; their absence in stored JSON drives the migrations.
type MaintenanceItem struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	LastServiceKm int           `json:"lastServiceKm"`
	IntervalKm    int           `json:"intervalKm"`
	HistoryStatus HistoryStatus `json:"historyStatus,omitempty"`
}

// Fault is a free-text user-reported issue, newest first per vehicle.
type Fault struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Km          int    `json:"km"`
}

// Vehicle is one physical car owned by the user. The zero value of the
// optional fields (fuelType, monthlyKm, slugs) marks a record persisted by
// an older app version and is what the migration engine keys on.
type Vehicle struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Brand            string            `json:"brand"`
	Model            string            `json:"model"`
	Year             int               `json:"year"`
	OilViscosity     string            `json:"oilViscosity"`
	OilBase          string            `json:"oilBase"`
	FuelType         FuelType          `json:"fuelType,omitempty"`
	CurrentKm        int               `json:"currentKm"`
	MonthlyKm        int               `json:"monthlyKm,omitempty"`
	MaintenanceItems []MaintenanceItem `json:"maintenanceItems"`
	Faults           []Fault           `json:"faults"`
	BrandSlug        string            `json:"brandSlug,omitempty"`
	ModelSlug        string            `json:"modelSlug,omitempty"`
	CustomModel      string            `json:"customModel,omitempty"`
	LubricantBrand   string            `json:"lubricantBrand,omitempty"`
	CustomLubricant  string            `json:"customLubricant,omitempty"`
}

// NewVehicle carries the user-provided fields of a vehicle about to be
// created. ID, maintenance items and faults are filled in by the repository.
type NewVehicle struct {
	Name            string
	Brand           string
	Model           string
	Year            int
	OilViscosity    string
	OilBase         string
	FuelType        FuelType
	CurrentKm       int
	MonthlyKm       int
	BrandSlug       string
	ModelSlug       string
	CustomModel     string
	LubricantBrand  string
	CustomLubricant string
}

// VehicleUpdate is a partial update of a vehicle; nil fields are untouched.
type VehicleUpdate struct {
	Name             *string
	Brand            *string
	Model            *string
	Year             *int
	OilViscosity     *string
	OilBase          *string
	FuelType         *FuelType
	CurrentKm        *int
	MonthlyKm        *int
	MaintenanceItems *[]MaintenanceItem
	BrandSlug        *string
	ModelSlug        *string
	CustomModel      *string
	LubricantBrand   *string
	CustomLubricant  *string
}

// Apply copies the non-nil fields of the update onto the vehicle.
func (u VehicleUpdate) Apply(v *Vehicle) {
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.Brand != nil {
		v.Brand = *u.Brand
	}
	if u.Model != nil {
		v.Model = *u.Model
	}
	if u.Year != nil {
		v.Year = *u.Year
	}
	if u.OilViscosity != nil {
		v.OilViscosity = *u.OilViscosity
	}
	if u.OilBase != nil {
		v.OilBase = *u.OilBase
	}
	if u.FuelType != nil {
		v.FuelType = *u.FuelType
	}
	if u.CurrentKm != nil {
		v.CurrentKm = *u.CurrentKm
	}
	if u.MonthlyKm != nil {
		v.MonthlyKm = *u.MonthlyKm
	}
	if u.MaintenanceItems != nil {
		v.MaintenanceItems = *u.MaintenanceItems
	}
	if u.BrandSlug != nil {
		v.BrandSlug = *u.BrandSlug
	}
	if u.ModelSlug != nil {
		v.ModelSlug = *u.ModelSlug
	}
	if u.CustomModel != nil {
		v.CustomModel = *u.CustomModel
	}
	if u.LubricantBrand != nil {
		v.LubricantBrand = *u.LubricantBrand
	}
	if u.CustomLubricant != nil {
		v.CustomLubricant = *u.CustomLubricant
	}
}

// MaintenanceItemUpdate is a partial update of a maintenance item.
type MaintenanceItemUpdate struct {
	Name          *string
	Icon          *string
	LastServiceKm *int
	IntervalKm    *int
	HistoryStatus *HistoryStatus
}

// Apply copies the non-nil fields of the update onto the item.
func (u MaintenanceItemUpdate) Apply(item *MaintenanceItem) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Icon != nil {
		item.Icon = *u.Icon
	}
	if u.LastServiceKm != nil {
		item.LastServiceKm = *u.LastServiceKm
	}
	if u.IntervalKm != nil {
		item.IntervalKm = *u.IntervalKm
	}
	if u.HistoryStatus != nil {
		item.HistoryStatus = *u.HistoryStatus
	}
}

// CarData is the legacy single-car record from before multi-vehicle support.
// It survives only as migration source data.
type CarData struct {
	Name         string `json:"name"`
	CurrentKm    int    `json:"currentKm"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	OilViscosity string `json:"oilViscosity"`
	OilBase      string `json:"oilBase"`
}
