package catalog

// Lubricant brands commonly sold in Venezuela.
var lubricantBrands = []LubricantBrand{
	{Slug: "pdvsa", Name: "PDV (PDVSA)", Country: "Venezuela"},
	{Slug: "venoco", Name: "Venoco", Country: "Venezuela"},
	{Slug: "shell", Name: "Shell", Country: "Internacional"},
	{Slug: "mobil", Name: "Mobil 1", Country: "Internacional"},
	{Slug: "castrol", Name: "Castrol", Country: "Internacional"},
	{Slug: "valvoline", Name: "Valvoline", Country: "Internacional"},
	{Slug: "pennzoil", Name: "Pennzoil", Country: "Internacional"},
	{Slug: "havoline", Name: "Havoline (Texaco)", Country: "Internacional"},
	{Slug: "total", Name: "Total Quartz", Country: "Internacional"},
	{Slug: "motul", Name: "Motul", Country: "Internacional"},
	{Slug: "liquimoly", Name: "Liqui Moly", Country: "Alemania"},
	{Slug: "inca", Name: "Inca", Country: "Venezuela"},
	{Slug: "motorcraft", Name: "Motorcraft", Country: "USA"},
	{Slug: "roshfrans", Name: "Roshfrans", Country: "Mexico"},
	{Slug: "gonher", Name: "Gonher", Country: "Mexico"},
	{Slug: "gulf", Name: "Gulf", Country: "Internacional"},
	{Slug: "acdelco", Name: "ACDelco", Country: "USA"},
	{Slug: "mopar", Name: "Mopar", Country: "USA"},
	{Slug: "ultralub", Name: "UltraLub", Country: "Internacional"},
	{Slug: "sky", Name: "Sky", Country: "Venezuela"},
	{Slug: "other", Name: "Otro", Country: "", IsOther: true},
}
