package catalog

// Item keys shared between the interval tables and the repository layer.
const (
	ItemEngineOil       = "engine-oil"
	ItemTransmissionOil = "transmission-oil"
	ItemAirFilter       = "air-filter"
	ItemFuelFilter      = "fuel-filter"
	ItemSparkPlugs      = "spark-plugs"
	ItemSparkPlugsGNV   = "spark-plugs-gnv"
	ItemBrakePads       = "brake-pads"
	ItemBrakeFluid      = "brake-fluid"
	ItemTires           = "tires"
	ItemBattery         = "battery"
	ItemCoolant         = "coolant"
	ItemTimingBelt      = "timing-belt"
	ItemGNVTank         = "gnv-tank"
	ItemGNVValves       = "gnv-valves"
	ItemGNVSparkPlugs   = "gnv-spark-plugs"
	ItemHybridBattery   = "hybrid-battery"
	ItemDieselFilter    = "diesel-filter"
)

// Global fallback intervals, used when neither the manufacturer nor the
// model says otherwise.
var defaultMaintenanceIntervals = map[string]int{
	ItemEngineOil:       5000,
	ItemTransmissionOil: 60000,
	ItemAirFilter:       15000,
	ItemFuelFilter:      30000,
	ItemSparkPlugs:      30000,
	ItemBrakePads:       40000,
	ItemBrakeFluid:      40000,
	ItemTires:           50000,
	ItemBattery:         40000,
	ItemCoolant:         60000,
	ItemTimingBelt:      100000,
	ItemGNVTank:         60000,
	ItemGNVValves:       30000,
	ItemGNVSparkPlugs:   20000,
	ItemHybridBattery:   100000,
	ItemDieselFilter:    20000,
}

var gasolineMaintenanceItems = []ItemTemplate{
	{ID: ItemEngineOil, Name: "Aceite de Motor", Icon: "droplet", IntervalKm: 5000},
	{ID: ItemTransmissionOil, Name: "Aceite de Caja", Icon: "settings", IntervalKm: 60000},
	{ID: ItemAirFilter, Name: "Filtro de Aire", Icon: "wind", IntervalKm: 15000},
	{ID: ItemFuelFilter, Name: "Filtro de Gasolina", Icon: "filter", IntervalKm: 30000},
	{ID: ItemSparkPlugs, Name: "Bujias", Icon: "zap", IntervalKm: 30000},
	{ID: ItemBrakePads, Name: "Frenos: Pastillas", Icon: "disc", IntervalKm: 40000},
	{ID: ItemBrakeFluid, Name: "Frenos: Liquido", Icon: "flask", IntervalKm: 40000},
	{ID: ItemTires, Name: "Cauchos", Icon: "circle", IntervalKm: 50000},
	{ID: ItemBattery, Name: "Bateria", Icon: "battery", IntervalKm: 40000},
}

var dieselMaintenanceItems = []ItemTemplate{
	{ID: ItemEngineOil, Name: "Aceite de Motor", Icon: "droplet", IntervalKm: 10000},
	{ID: ItemTransmissionOil, Name: "Aceite de Caja", Icon: "settings", IntervalKm: 60000},
	{ID: ItemAirFilter, Name: "Filtro de Aire", Icon: "wind", IntervalKm: 15000},
	{ID: ItemDieselFilter, Name: "Filtro de Diesel", Icon: "filter", IntervalKm: 20000},
	{ID: ItemBrakePads, Name: "Frenos: Pastillas", Icon: "disc", IntervalKm: 40000},
	{ID: ItemBrakeFluid, Name: "Frenos: Liquido", Icon: "flask", IntervalKm: 40000},
	{ID: ItemTires, Name: "Cauchos", Icon: "circle", IntervalKm: 50000},
	{ID: ItemBattery, Name: "Bateria", Icon: "battery", IntervalKm: 40000},
}

var gnvMaintenanceItems = []ItemTemplate{
	{ID: ItemEngineOil, Name: "Aceite de Motor", Icon: "droplet", IntervalKm: 5000},
	{ID: ItemTransmissionOil, Name: "Aceite de Caja", Icon: "settings", IntervalKm: 60000},
	{ID: ItemAirFilter, Name: "Filtro de Aire", Icon: "wind", IntervalKm: 15000},
	{ID: ItemFuelFilter, Name: "Filtro de Gasolina", Icon: "filter", IntervalKm: 30000},
	{ID: ItemSparkPlugsGNV, Name: "Bujias GNV", Icon: "zap", IntervalKm: 20000},
	{ID: ItemGNVTank, Name: "Bombona GNV", Icon: "cylinder", IntervalKm: 60000},
	{ID: ItemGNVValves, Name: "Valvulas GNV", Icon: "git-branch", IntervalKm: 30000},
	{ID: ItemBrakePads, Name: "Frenos: Pastillas", Icon: "disc", IntervalKm: 40000},
	{ID: ItemBrakeFluid, Name: "Frenos: Liquido", Icon: "flask", IntervalKm: 40000},
	{ID: ItemTires, Name: "Cauchos", Icon: "circle", IntervalKm: 50000},
	{ID: ItemBattery, Name: "Bateria", Icon: "battery", IntervalKm: 40000},
}

var hybridMaintenanceItems = []ItemTemplate{
	{ID: ItemEngineOil, Name: "Aceite de Motor", Icon: "droplet", IntervalKm: 5000},
	{ID: ItemTransmissionOil, Name: "Aceite de Caja", Icon: "settings", IntervalKm: 60000},
	{ID: ItemAirFilter, Name: "Filtro de Aire", Icon: "wind", IntervalKm: 15000},
	{ID: ItemFuelFilter, Name: "Filtro de Gasolina", Icon: "filter", IntervalKm: 30000},
	{ID: ItemSparkPlugs, Name: "Bujias", Icon: "zap", IntervalKm: 30000},
	{ID: ItemBrakePads, Name: "Frenos: Pastillas", Icon: "disc", IntervalKm: 40000},
	{ID: ItemBrakeFluid, Name: "Frenos: Liquido", Icon: "flask", IntervalKm: 40000},
	{ID: ItemTires, Name: "Cauchos", Icon: "circle", IntervalKm: 50000},
	{ID: ItemBattery, Name: "Bateria", Icon: "battery", IntervalKm: 40000},
	{ID: ItemHybridBattery, Name: "Bateria Hibrida", Icon: "battery-charging", IntervalKm: 100000},
}
