// Package template ships starter project presets. Applying one seeds a new
// project with a plausible assumption set for its industry so users do not
// start from an empty model.
package template

// TemplateProduct is a revenue line preset. Prices are cents per unit.
type TemplateProduct struct {
	Name         string `json:"name"`
	AveragePrice int64  `json:"average_price"`
	Volume       int64  `json:"volume"`
	Unit         string `json:"unit"`
}

// TemplateCogs is a variable cost preset. Amount is cents per unit of total
// volume; GrowthRate is basis points per year.
type TemplateCogs struct {
	Name       string `json:"name"`
	Amount     int64  `json:"amount"`
	GrowthRate int64  `json:"growth_rate"`
}

// TemplateSalary is a position preset. StartMonth is 1-based from project
// start.
type TemplateSalary struct {
	Position    string `json:"position"`
	MonthlyCost int64  `json:"monthly_cost"`
	StartMonth  int    `json:"start_month"`
}

// Template is one industry preset.
type Template struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Industry       string            `json:"industry"`
	DurationMonths int               `json:"duration_months"`
	Products       []TemplateProduct `json:"products,omitempty"`
	CogsItems      []TemplateCogs    `json:"cogs_items,omitempty"`
	Salaries       []TemplateSalary  `json:"salaries,omitempty"`
}

// Templates is the built-in preset catalog.
var Templates = []Template{
	{
		ID:             "refinery",
		Name:           "Oil Refinery",
		Description:    "Financial model for a refinery with 180,000 barrels/day capacity",
		Industry:       "Energy and Petroleum",
		DurationMonths: 120,
		Products: []TemplateProduct{
			{Name: "Gasoline", AveragePrice: 850000, Volume: 50000, Unit: "bbl"},
			{Name: "Diesel", AveragePrice: 900000, Volume: 60000, Unit: "bbl"},
			{Name: "Jet Fuel", AveragePrice: 880000, Volume: 40000, Unit: "bbl"},
			{Name: "Fuel Oil", AveragePrice: 700000, Volume: 30000, Unit: "bbl"},
		},
		CogsItems: []TemplateCogs{
			{Name: "Crude", Amount: 650000, GrowthRate: 300},
			{Name: "Chemicals", Amount: 50000, GrowthRate: 200},
			{Name: "Energy", Amount: 30000, GrowthRate: 250},
		},
		Salaries: []TemplateSalary{
			{Position: "CEO", MonthlyCost: 5000000, StartMonth: 1},
			{Position: "CFO", MonthlyCost: 4000000, StartMonth: 1},
			{Position: "Operations Manager", MonthlyCost: 3500000, StartMonth: 1},
			{Position: "Process Engineer", MonthlyCost: 2500000, StartMonth: 3},
		},
	},
	{
		ID:             "chemical_plant",
		Name:           "Chemical Plant",
		Description:    "Financial model for an industrial chemical production plant",
		Industry:       "Chemicals",
		DurationMonths: 96,
		Products: []TemplateProduct{
			{Name: "Chemical Product A", AveragePrice: 1500000, Volume: 10000, Unit: "t"},
			{Name: "Chemical Product B", AveragePrice: 1200000, Volume: 15000, Unit: "t"},
			{Name: "Byproducts", AveragePrice: 500000, Volume: 5000, Unit: "t"},
		},
		CogsItems: []TemplateCogs{
			{Name: "Primary Feedstock", Amount: 800000, GrowthRate: 250},
			{Name: "Catalysts", Amount: 200000, GrowthRate: 200},
			{Name: "Utilities", Amount: 100000, GrowthRate: 300},
		},
		Salaries: []TemplateSalary{
			{Position: "General Director", MonthlyCost: 4500000, StartMonth: 1},
			{Position: "Production Manager", MonthlyCost: 3500000, StartMonth: 1},
			{Position: "Senior Chemist", MonthlyCost: 2800000, StartMonth: 2},
		},
	},
	{
		ID:             "solar_farm",
		Name:           "Solar Farm",
		Description:    "Financial model for a photovoltaic energy project",
		Industry:       "Renewable Energy",
		DurationMonths: 240,
		Products: []TemplateProduct{
			{Name: "Energy Sales", AveragePrice: 12000, Volume: 500000, Unit: "MWh"},
			{Name: "Green Certificates", AveragePrice: 5000, Volume: 100000, Unit: "cert"},
		},
		CogsItems: []TemplateCogs{
			{Name: "Panel Maintenance", Amount: 1000, GrowthRate: 150},
			{Name: "Operation and Monitoring", Amount: 500, GrowthRate: 200},
		},
		Salaries: []TemplateSalary{
			{Position: "Project Manager", MonthlyCost: 3000000, StartMonth: 1},
			{Position: "Maintenance Technician", MonthlyCost: 1800000, StartMonth: 6},
			{Position: "Electrical Engineer", MonthlyCost: 2500000, StartMonth: 3},
		},
	},
	{
		ID:             "blank",
		Name:           "Blank Project",
		Description:    "Start from scratch with a custom project",
		Industry:       "General",
		DurationMonths: 60,
	},
}

// ByID returns the template with the given ID, nil if unknown.
func ByID(id string) *Template {
	for i := range Templates {
		if Templates[i].ID == id {
			return &Templates[i]
		}
	}
	return nil
}
