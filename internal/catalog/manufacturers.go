package catalog

// Manufacturers and models popular in the Venezuelan market. Intervals are
// in km, taken from manufacturer service schedules.
var manufacturers = []ManufacturerSpec{
	{
		Slug:    "chevrolet",
		Name:    "Chevrolet",
		Country: "USA",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "aveo", Name: "Aveo", Category: "sedan"},
			{Slug: "spark", Name: "Spark", Category: "hatchback"},
			{Slug: "cruze", Name: "Cruze", Category: "sedan"},
			{Slug: "optra", Name: "Optra", Category: "sedan"},
			{Slug: "corsa", Name: "Corsa", Category: "hatchback"},
			{Slug: "sail", Name: "Sail", Category: "sedan"},
			{Slug: "captiva", Name: "Captiva", Category: "suv"},
			{Slug: "tahoe", Name: "Tahoe", Category: "suv", MaintenanceOverrides: map[string]int{ItemEngineOil: 8000}},
			{Slug: "trailblazer", Name: "TrailBlazer", Category: "suv"},
			{Slug: "silverado", Name: "Silverado", Category: "pickup", MaintenanceOverrides: map[string]int{ItemEngineOil: 8000}},
			{Slug: "luv-dmax", Name: "LUV D-Max", Category: "pickup"},
			{Slug: "grand-vitara", Name: "Grand Vitara", Category: "suv"},
			{Slug: "tracker", Name: "Tracker", Category: "suv"},
			{Slug: "orlando", Name: "Orlando", Category: "van"},
			{Slug: "malibu", Name: "Malibu", Category: "sedan"},
			{Slug: "camaro", Name: "Camaro", Category: "coupe"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "toyota",
		Name:    "Toyota",
		Country: "Japon",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 80000,
			ItemTimingBelt:      150000,
		},
		Models: []ModelSpec{
			{Slug: "corolla", Name: "Corolla", Category: "sedan"},
			{Slug: "yaris", Name: "Yaris", Category: "hatchback"},
			{Slug: "camry", Name: "Camry", Category: "sedan"},
			{Slug: "hilux", Name: "Hilux", Category: "pickup", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "fortuner", Name: "Fortuner", Category: "suv"},
			{Slug: "land-cruiser", Name: "Land Cruiser", Category: "suv", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "prado", Name: "Prado", Category: "suv"},
			{Slug: "rav4", Name: "RAV4", Category: "suv"},
			{Slug: "4runner", Name: "4Runner", Category: "suv", MaintenanceOverrides: map[string]int{ItemEngineOil: 8000}},
			{Slug: "terios", Name: "Terios", Category: "suv"},
			{Slug: "starlet", Name: "Starlet", Category: "hatchback"},
			{Slug: "machito", Name: "Machito", Category: "suv"},
			{Slug: "autana", Name: "Autana", Category: "suv"},
			{Slug: "sienna", Name: "Sienna", Category: "van"},
			{Slug: "tacoma", Name: "Tacoma", Category: "pickup"},
			{Slug: "tundra", Name: "Tundra", Category: "pickup", MaintenanceOverrides: map[string]int{ItemEngineOil: 8000}},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "ford",
		Name:    "Ford",
		Country: "USA",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       8000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "fiesta", Name: "Fiesta", Category: "hatchback", MaintenanceOverrides: map[string]int{ItemEngineOil: 5000}},
			{Slug: "focus", Name: "Focus", Category: "sedan"},
			{Slug: "fusion", Name: "Fusion", Category: "sedan"},
			{Slug: "mustang", Name: "Mustang", Category: "coupe"},
			{Slug: "explorer", Name: "Explorer", Category: "suv"},
			{Slug: "escape", Name: "Escape", Category: "suv"},
			{Slug: "ecosport", Name: "EcoSport", Category: "suv", MaintenanceOverrides: map[string]int{ItemEngineOil: 5000}},
			{Slug: "ranger", Name: "Ranger", Category: "pickup"},
			{Slug: "f-150", Name: "F-150", Category: "pickup", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "f-250", Name: "F-250", Category: "pickup", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "f-350", Name: "F-350", Category: "pickup", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "expedition", Name: "Expedition", Category: "suv"},
			{Slug: "edge", Name: "Edge", Category: "suv"},
			{Slug: "ka", Name: "Ka", Category: "hatchback"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "hyundai",
		Name:    "Hyundai",
		Country: "Corea del Sur",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "accent", Name: "Accent", Category: "sedan"},
			{Slug: "elantra", Name: "Elantra", Category: "sedan"},
			{Slug: "sonata", Name: "Sonata", Category: "sedan"},
			{Slug: "tucson", Name: "Tucson", Category: "suv"},
			{Slug: "santa-fe", Name: "Santa Fe", Category: "suv"},
			{Slug: "creta", Name: "Creta", Category: "suv"},
			{Slug: "venue", Name: "Venue", Category: "suv"},
			{Slug: "kona", Name: "Kona", Category: "suv"},
			{Slug: "palisade", Name: "Palisade", Category: "suv"},
			{Slug: "i10", Name: "i10", Category: "hatchback"},
			{Slug: "i20", Name: "i20", Category: "hatchback"},
			{Slug: "i30", Name: "i30", Category: "hatchback"},
			{Slug: "getz", Name: "Getz", Category: "hatchback"},
			{Slug: "grand-i10", Name: "Grand i10", Category: "hatchback"},
			{Slug: "h1", Name: "H1", Category: "van"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "kia",
		Name:    "Kia",
		Country: "Corea del Sur",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "rio", Name: "Rio", Category: "sedan"},
			{Slug: "cerato", Name: "Cerato", Category: "sedan"},
			{Slug: "forte", Name: "Forte", Category: "sedan"},
			{Slug: "optima", Name: "Optima", Category: "sedan"},
			{Slug: "sportage", Name: "Sportage", Category: "suv"},
			{Slug: "sorento", Name: "Sorento", Category: "suv"},
			{Slug: "seltos", Name: "Seltos", Category: "suv"},
			{Slug: "soul", Name: "Soul", Category: "hatchback"},
			{Slug: "picanto", Name: "Picanto", Category: "hatchback"},
			{Slug: "carnival", Name: "Carnival", Category: "van"},
			{Slug: "telluride", Name: "Telluride", Category: "suv"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "nissan",
		Name:    "Nissan",
		Country: "Japon",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "sentra", Name: "Sentra", Category: "sedan"},
			{Slug: "versa", Name: "Versa", Category: "sedan"},
			{Slug: "altima", Name: "Altima", Category: "sedan"},
			{Slug: "tiida", Name: "Tiida", Category: "hatchback"},
			{Slug: "march", Name: "March", Category: "hatchback"},
			{Slug: "pathfinder", Name: "Pathfinder", Category: "suv"},
			{Slug: "xtrail", Name: "X-Trail", Category: "suv"},
			{Slug: "qashqai", Name: "Qashqai", Category: "suv"},
			{Slug: "murano", Name: "Murano", Category: "suv"},
			{Slug: "kicks", Name: "Kicks", Category: "suv"},
			{Slug: "frontier", Name: "Frontier", Category: "pickup"},
			{Slug: "navara", Name: "Navara", Category: "pickup"},
			{Slug: "patrol", Name: "Patrol", Category: "suv", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "np300", Name: "NP300", Category: "pickup"},
			{Slug: "titan", Name: "Titan", Category: "pickup"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "honda",
		Name:    "Honda",
		Country: "Japon",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
			ItemTimingBelt:      160000,
		},
		Models: []ModelSpec{
			{Slug: "civic", Name: "Civic", Category: "sedan"},
			{Slug: "accord", Name: "Accord", Category: "sedan"},
			{Slug: "city", Name: "City", Category: "sedan"},
			{Slug: "fit", Name: "Fit", Category: "hatchback"},
			{Slug: "crv", Name: "CR-V", Category: "suv"},
			{Slug: "hrv", Name: "HR-V", Category: "suv"},
			{Slug: "pilot", Name: "Pilot", Category: "suv"},
			{Slug: "odyssey", Name: "Odyssey", Category: "van"},
			{Slug: "ridgeline", Name: "Ridgeline", Category: "pickup"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "mazda",
		Name:    "Mazda",
		Country: "Japon",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "mazda2", Name: "Mazda 2", Category: "hatchback"},
			{Slug: "mazda3", Name: "Mazda 3", Category: "sedan"},
			{Slug: "mazda6", Name: "Mazda 6", Category: "sedan"},
			{Slug: "cx3", Name: "CX-3", Category: "suv"},
			{Slug: "cx5", Name: "CX-5", Category: "suv"},
			{Slug: "cx9", Name: "CX-9", Category: "suv"},
			{Slug: "bt50", Name: "BT-50", Category: "pickup"},
			{Slug: "allegro", Name: "Allegro", Category: "sedan"},
			{Slug: "323", Name: "323", Category: "sedan"},
			{Slug: "626", Name: "626", Category: "sedan"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "mitsubishi",
		Name:    "Mitsubishi",
		Country: "Japon",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "lancer", Name: "Lancer", Category: "sedan"},
			{Slug: "mirage", Name: "Mirage", Category: "hatchback"},
			{Slug: "outlander", Name: "Outlander", Category: "suv"},
			{Slug: "montero", Name: "Montero", Category: "suv", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "pajero", Name: "Pajero", Category: "suv", MaintenanceOverrides: map[string]int{ItemEngineOil: 10000}},
			{Slug: "nativa", Name: "Nativa", Category: "suv"},
			{Slug: "asx", Name: "ASX", Category: "suv"},
			{Slug: "l200", Name: "L200", Category: "pickup"},
			{Slug: "triton", Name: "Triton", Category: "pickup"},
			{Slug: "eclipse", Name: "Eclipse Cross", Category: "suv"},
			{Slug: "signo", Name: "Signo", Category: "sedan"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "volkswagen",
		Name:    "Volkswagen",
		Country: "Alemania",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       10000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "gol", Name: "Gol", Category: "hatchback", MaintenanceOverrides: map[string]int{ItemEngineOil: 5000}},
			{Slug: "polo", Name: "Polo", Category: "hatchback"},
			{Slug: "golf", Name: "Golf", Category: "hatchback"},
			{Slug: "jetta", Name: "Jetta", Category: "sedan"},
			{Slug: "passat", Name: "Passat", Category: "sedan"},
			{Slug: "tiguan", Name: "Tiguan", Category: "suv"},
			{Slug: "touareg", Name: "Touareg", Category: "suv"},
			{Slug: "amarok", Name: "Amarok", Category: "pickup"},
			{Slug: "fox", Name: "Fox", Category: "hatchback"},
			{Slug: "voyage", Name: "Voyage", Category: "sedan"},
			{Slug: "bora", Name: "Bora", Category: "sedan"},
			{Slug: "beetle", Name: "Beetle", Category: "coupe"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "renault",
		Name:    "Renault",
		Country: "Francia",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       10000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "logan", Name: "Logan", Category: "sedan"},
			{Slug: "sandero", Name: "Sandero", Category: "hatchback"},
			{Slug: "stepway", Name: "Sandero Stepway", Category: "hatchback"},
			{Slug: "duster", Name: "Duster", Category: "suv"},
			{Slug: "captur", Name: "Captur", Category: "suv"},
			{Slug: "koleos", Name: "Koleos", Category: "suv"},
			{Slug: "symbol", Name: "Symbol", Category: "sedan"},
			{Slug: "megane", Name: "Megane", Category: "hatchback"},
			{Slug: "fluence", Name: "Fluence", Category: "sedan"},
			{Slug: "kwid", Name: "Kwid", Category: "hatchback"},
			{Slug: "oroch", Name: "Oroch", Category: "pickup"},
			{Slug: "kangoo", Name: "Kangoo", Category: "van"},
			{Slug: "clio", Name: "Clio", Category: "hatchback"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "fiat",
		Name:    "Fiat",
		Country: "Italia",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       10000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "uno", Name: "Uno", Category: "hatchback"},
			{Slug: "palio", Name: "Palio", Category: "hatchback"},
			{Slug: "siena", Name: "Siena", Category: "sedan"},
			{Slug: "punto", Name: "Punto", Category: "hatchback"},
			{Slug: "cronos", Name: "Cronos", Category: "sedan"},
			{Slug: "argo", Name: "Argo", Category: "hatchback"},
			{Slug: "mobi", Name: "Mobi", Category: "hatchback"},
			{Slug: "toro", Name: "Toro", Category: "pickup"},
			{Slug: "strada", Name: "Strada", Category: "pickup"},
			{Slug: "ducato", Name: "Ducato", Category: "van"},
			{Slug: "500", Name: "500", Category: "hatchback"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "jeep",
		Name:    "Jeep",
		Country: "USA",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       8000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "wrangler", Name: "Wrangler", Category: "suv"},
			{Slug: "grand-cherokee", Name: "Grand Cherokee", Category: "suv"},
			{Slug: "cherokee", Name: "Cherokee", Category: "suv"},
			{Slug: "compass", Name: "Compass", Category: "suv"},
			{Slug: "renegade", Name: "Renegade", Category: "suv"},
			{Slug: "liberty", Name: "Liberty", Category: "suv"},
			{Slug: "patriot", Name: "Patriot", Category: "suv"},
			{Slug: "gladiator", Name: "Gladiator", Category: "pickup"},
			{Slug: "cj", Name: "CJ", Category: "suv"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "dodge",
		Name:    "Dodge",
		Country: "USA",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       8000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "charger", Name: "Charger", Category: "sedan"},
			{Slug: "challenger", Name: "Challenger", Category: "coupe"},
			{Slug: "durango", Name: "Durango", Category: "suv"},
			{Slug: "journey", Name: "Journey", Category: "suv"},
			{Slug: "ram", Name: "RAM 1500", Category: "pickup"},
			{Slug: "ram-2500", Name: "RAM 2500", Category: "pickup"},
			{Slug: "ram-3500", Name: "RAM 3500", Category: "pickup"},
			{Slug: "neon", Name: "Neon", Category: "sedan"},
			{Slug: "attitude", Name: "Attitude", Category: "sedan"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "suzuki",
		Name:    "Suzuki",
		Country: "Japon",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "swift", Name: "Swift", Category: "hatchback"},
			{Slug: "alto", Name: "Alto", Category: "hatchback"},
			{Slug: "vitara", Name: "Vitara", Category: "suv"},
			{Slug: "grand-vitara", Name: "Grand Vitara", Category: "suv"},
			{Slug: "jimny", Name: "Jimny", Category: "suv"},
			{Slug: "sx4", Name: "SX4", Category: "hatchback"},
			{Slug: "samurai", Name: "Samurai", Category: "suv"},
			{Slug: "ignis", Name: "Ignis", Category: "hatchback"},
			{Slug: "celerio", Name: "Celerio", Category: "hatchback"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "peugeot",
		Name:    "Peugeot",
		Country: "Francia",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       10000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "206", Name: "206", Category: "hatchback"},
			{Slug: "207", Name: "207", Category: "hatchback"},
			{Slug: "208", Name: "208", Category: "hatchback"},
			{Slug: "301", Name: "301", Category: "sedan"},
			{Slug: "307", Name: "307", Category: "hatchback"},
			{Slug: "308", Name: "308", Category: "hatchback"},
			{Slug: "408", Name: "408", Category: "sedan"},
			{Slug: "2008", Name: "2008", Category: "suv"},
			{Slug: "3008", Name: "3008", Category: "suv"},
			{Slug: "5008", Name: "5008", Category: "suv"},
			{Slug: "partner", Name: "Partner", Category: "van"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "chery",
		Name:    "Chery",
		Country: "China",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 50000,
		},
		Models: []ModelSpec{
			{Slug: "orinoco", Name: "Orinoco", Category: "sedan"},
			{Slug: "arauca", Name: "Arauca", Category: "hatchback"},
			{Slug: "x1", Name: "X1", Category: "hatchback"},
			{Slug: "tiggo", Name: "Tiggo", Category: "suv"},
			{Slug: "tiggo-2", Name: "Tiggo 2", Category: "suv"},
			{Slug: "tiggo-3", Name: "Tiggo 3", Category: "suv"},
			{Slug: "tiggo-4", Name: "Tiggo 4", Category: "suv"},
			{Slug: "tiggo-5", Name: "Tiggo 5", Category: "suv"},
			{Slug: "tiggo-7", Name: "Tiggo 7", Category: "suv"},
			{Slug: "tiggo-8", Name: "Tiggo 8", Category: "suv"},
			{Slug: "qq", Name: "QQ", Category: "hatchback"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "encava",
		Name:    "Encava",
		Country: "Venezuela",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       10000,
			ItemTransmissionOil: 80000,
		},
		Models: []ModelSpec{
			{Slug: "ent-610", Name: "ENT-610", Category: "bus"},
			{Slug: "ent-900", Name: "ENT-900", Category: "bus"},
			{Slug: "ent-3000", Name: "ENT-3000", Category: "bus"},
			{Slug: "isuzu-ent", Name: "Isuzu ENT", Category: "bus"},
			{Slug: "e-3000", Name: "E-3000", Category: "bus"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "jac",
		Name:    "JAC",
		Country: "China",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "s2", Name: "S2", Category: "suv"},
			{Slug: "s3", Name: "S3", Category: "suv"},
			{Slug: "s4", Name: "S4", Category: "suv"},
			{Slug: "s5", Name: "S5", Category: "suv"},
			{Slug: "s7", Name: "S7", Category: "suv"},
			{Slug: "t6", Name: "T6", Category: "pickup"},
			{Slug: "t8", Name: "T8", Category: "pickup"},
			{Slug: "j2", Name: "J2", Category: "hatchback"},
			{Slug: "j3", Name: "J3", Category: "sedan"},
			{Slug: "j4", Name: "J4", Category: "sedan"},
			{Slug: "refine", Name: "Refine", Category: "van"},
			{Slug: "sunray", Name: "Sunray", Category: "van"},
			{Slug: "n-series", Name: "N Series", Category: "truck"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "mack",
		Name:    "Mack",
		Country: "USA",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       15000,
			ItemTransmissionOil: 100000,
		},
		Models: []ModelSpec{
			{Slug: "anthem", Name: "Anthem", Category: "truck"},
			{Slug: "granite", Name: "Granite", Category: "truck"},
			{Slug: "pinnacle", Name: "Pinnacle", Category: "truck"},
			{Slug: "titan", Name: "Titan", Category: "truck"},
			{Slug: "lr", Name: "LR", Category: "truck"},
			{Slug: "md", Name: "MD", Category: "truck"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "gm",
		Name:    "GM",
		Country: "USA",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       8000,
			ItemTransmissionOil: 80000,
		},
		Models: []ModelSpec{
			{Slug: "kodiak", Name: "Kodiak", Category: "truck"},
			{Slug: "topkick", Name: "TopKick", Category: "truck"},
			{Slug: "c4500", Name: "C4500", Category: "truck"},
			{Slug: "c5500", Name: "C5500", Category: "truck"},
			{Slug: "c6500", Name: "C6500", Category: "truck"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "volvo",
		Name:    "Volvo",
		Country: "Suecia",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       15000,
			ItemTransmissionOil: 100000,
		},
		Models: []ModelSpec{
			{Slug: "fh", Name: "FH", Category: "truck"},
			{Slug: "fm", Name: "FM", Category: "truck"},
			{Slug: "fmx", Name: "FMX", Category: "truck"},
			{Slug: "vnl", Name: "VNL", Category: "truck"},
			{Slug: "vnr", Name: "VNR", Category: "truck"},
			{Slug: "xc40", Name: "XC40", Category: "suv"},
			{Slug: "xc60", Name: "XC60", Category: "suv"},
			{Slug: "xc90", Name: "XC90", Category: "suv"},
			{Slug: "s60", Name: "S60", Category: "sedan"},
			{Slug: "s90", Name: "S90", Category: "sedan"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "iveco",
		Name:    "Iveco",
		Country: "Italia",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       15000,
			ItemTransmissionOil: 80000,
		},
		Models: []ModelSpec{
			{Slug: "daily", Name: "Daily", Category: "van"},
			{Slug: "eurocargo", Name: "Eurocargo", Category: "truck"},
			{Slug: "trakker", Name: "Trakker", Category: "truck"},
			{Slug: "stralis", Name: "Stralis", Category: "truck"},
			{Slug: "s-way", Name: "S-Way", Category: "truck"},
			{Slug: "x-way", Name: "X-Way", Category: "truck"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "foton",
		Name:    "Foton",
		Country: "China",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       10000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "tunland", Name: "Tunland", Category: "pickup"},
			{Slug: "sauvana", Name: "Sauvana", Category: "suv"},
			{Slug: "gratour", Name: "Gratour", Category: "van"},
			{Slug: "view", Name: "View", Category: "van"},
			{Slug: "aumark", Name: "Aumark", Category: "truck"},
			{Slug: "auman", Name: "Auman", Category: "truck"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "scania",
		Name:    "Scania",
		Country: "Suecia",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       20000,
			ItemTransmissionOil: 120000,
		},
		Models: []ModelSpec{
			{Slug: "r-series", Name: "Serie R", Category: "truck"},
			{Slug: "s-series", Name: "Serie S", Category: "truck"},
			{Slug: "g-series", Name: "Serie G", Category: "truck"},
			{Slug: "p-series", Name: "Serie P", Category: "truck"},
			{Slug: "l-series", Name: "Serie L", Category: "truck"},
			{Slug: "xt", Name: "XT", Category: "truck"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "mercedes-benz",
		Name:    "Mercedes-Benz",
		Country: "Alemania",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       15000,
			ItemTransmissionOil: 80000,
		},
		Models: []ModelSpec{
			{Slug: "actros", Name: "Actros", Category: "truck"},
			{Slug: "atego", Name: "Atego", Category: "truck"},
			{Slug: "axor", Name: "Axor", Category: "truck"},
			{Slug: "arocs", Name: "Arocs", Category: "truck"},
			{Slug: "sprinter", Name: "Sprinter", Category: "van"},
			{Slug: "vito", Name: "Vito", Category: "van"},
			{Slug: "clase-a", Name: "Clase A", Category: "hatchback"},
			{Slug: "clase-c", Name: "Clase C", Category: "sedan"},
			{Slug: "clase-e", Name: "Clase E", Category: "sedan"},
			{Slug: "clase-s", Name: "Clase S", Category: "sedan"},
			{Slug: "gla", Name: "GLA", Category: "suv"},
			{Slug: "glb", Name: "GLB", Category: "suv"},
			{Slug: "glc", Name: "GLC", Category: "suv"},
			{Slug: "gle", Name: "GLE", Category: "suv"},
			{Slug: "gls", Name: "GLS", Category: "suv"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "daewoo",
		Name:    "Daewoo",
		Country: "Corea del Sur",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       5000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "matiz", Name: "Matiz", Category: "hatchback"},
			{Slug: "lanos", Name: "Lanos", Category: "sedan"},
			{Slug: "nubira", Name: "Nubira", Category: "sedan"},
			{Slug: "leganza", Name: "Leganza", Category: "sedan"},
			{Slug: "cielo", Name: "Cielo", Category: "sedan"},
			{Slug: "espero", Name: "Espero", Category: "sedan"},
			{Slug: "racer", Name: "Racer", Category: "sedan"},
			{Slug: "tico", Name: "Tico", Category: "hatchback"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "dongfeng",
		Name:    "Dongfeng",
		Country: "China",
		DefaultMaintenanceIntervals: map[string]int{
			ItemEngineOil:       10000,
			ItemTransmissionOil: 60000,
		},
		Models: []ModelSpec{
			{Slug: "ax7", Name: "AX7", Category: "suv"},
			{Slug: "ax4", Name: "AX4", Category: "suv"},
			{Slug: "s30", Name: "S30", Category: "sedan"},
			{Slug: "h30", Name: "H30", Category: "hatchback"},
			{Slug: "rich", Name: "Rich", Category: "pickup"},
			{Slug: "dfsk", Name: "DFSK", Category: "van"},
			{Slug: "captain", Name: "Captain", Category: "truck"},
			{Slug: "other", Name: "Otro", IsOther: true},
		},
	},
	{
		Slug:    "other",
		Name:    "Otra Marca",
		Country: "",
		Models: []ModelSpec{
			{Slug: "other", Name: "Escribir marca y modelo", IsOther: true},
		},
	},
}
