package models

// Plan is a static subscription catalog entry. The catalog is fixed at build
// time; every signup step and the account surface read from this one table so
// prices and features cannot drift between screens.
type Plan struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MonthlyPrice int    `json:"monthlyPrice"` // whole rupees
	Currency     string `json:"currency"`
	Quality      string `json:"quality"`
	Resolution   string `json:"resolution"`
	Screens      int    `json:"screens"`
	Downloads    int    `json:"downloads"`
	Devices      string `json:"devices"`
	SpatialAudio bool   `json:"spatialAudio,omitempty"`
	Popular      bool   `json:"popular,omitempty"`
}

const (
	PlanMobile   = "mobile"
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"

	// DefaultPlanID is substituted whenever a stored plan id is missing or
	// unknown.
	DefaultPlanID = PlanBasic
)

var planCatalog = []Plan{
	{
		ID:           PlanMobile,
		Name:         "Mobile",
		MonthlyPrice: 149,
		Currency:     "INR",
		Quality:      "Fair",
		Resolution:   "480p",
		Screens:      1,
		Downloads:    1,
		Devices:      "Mobile phone, tablet",
	},
	{
		ID:           PlanBasic,
		Name:         "Basic",
		MonthlyPrice: 199,
		Currency:     "INR",
		Quality:      "Good",
		Resolution:   "720p (HD)",
		Screens:      1,
		Downloads:    1,
		Devices:      "TV, computer, mobile phone, tablet",
		Popular:      true,
	},
	{
		ID:           PlanStandard,
		Name:         "Standard",
		MonthlyPrice: 499,
		Currency:     "INR",
		Quality:      "Great",
		Resolution:   "1080p (Full HD)",
		Screens:      2,
		Downloads:    2,
		Devices:      "TV, computer, mobile phone, tablet",
	},
	{
		ID:           PlanPremium,
		Name:         "Premium",
		MonthlyPrice: 649,
		Currency:     "INR",
		Quality:      "Best",
		Resolution:   "4K (Ultra HD) + HDR",
		Screens:      4,
		Downloads:    6,
		Devices:      "TV, computer, mobile phone, tablet",
		SpatialAudio: true,
	},
}

// Plans returns the full catalog in display order.
func Plans() []Plan {
	out := make([]Plan, len(planCatalog))
	copy(out, planCatalog)
	return out
}

// IsKnownPlan reports whether id names a catalog plan.
func IsKnownPlan(id string) bool {
	for _, p := range planCatalog {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ResolvePlan returns the catalog entry for id, falling back to the default
// plan for a missing or unknown id. It never fails: an undefined plan must
// never reach a screen.
func ResolvePlan(id string) Plan {
	for _, p := range planCatalog {
		if p.ID == id {
			return p
		}
	}
	return ResolvePlan(DefaultPlanID)
}
