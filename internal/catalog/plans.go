package catalog

// PlanInfo describes one visibility tier for the pricing screen and the
// wizard's plan step.
type PlanInfo struct {
	Plan        Plan
	Name        string
	Price       float64
	Description string
	Features    []string
	Days        int
	Popular     bool
}

// Plans returns the three visibility tiers in ascending price order.
func Plans() []PlanInfo {
	return []PlanInfo{
		{
			Plan: PlanFree, Name: "Free", Price: 0,
			Description: "Standard listing for casual sellers",
			Features:    []string{"Standard listing", "Basic visibility", "30 days active"},
			Days:        30,
		},
		{
			Plan: PlanFeatured, Name: "Featured", Price: 9.99,
			Description: "Stand out in your category",
			Features:    []string{"Category top placement", "3x more visibility", "Featured badge", "45 days active"},
			Days:        45,
		},
		{
			Plan: PlanPremium, Name: "Premium", Price: 19.99,
			Description: "Maximum reach across the marketplace",
			Features:    []string{"Homepage spotlight", "10x more visibility", "Premium badge", "Highlighting", "60 days active"},
			Days:        60,
			Popular:     true,
		},
	}
}

// PlanByID returns the tier for the given plan, falling back to free.
func PlanByID(plan Plan) PlanInfo {
	for _, info := range Plans() {
		if info.Plan == plan {
			return info
		}
	}
	return Plans()[0]
}
