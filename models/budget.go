package models

// BudgetQuery carries the inputs of a budget planning request. It is never persisted.
type BudgetQuery struct {
	Budget       float64 `json:"budget"`
	Days         int     `json:"days"`
	TravelType   string  `json:"travelType"`
	ComfortLevel string  `json:"comfortLevel"`
}

// Breakdown is the per-day spending split across categories. Each category is
// independently rounded to the nearest whole currency unit.
type Breakdown struct {
	Stay   int `json:"stay"`
	Food   int `json:"food"`
	Travel int `json:"travel"`
	Misc   int `json:"misc"`
}

// CityEstimate annotates a candidate city with its estimated total trip cost.
type CityEstimate struct {
	City       City    `json:"city"`
	TotalCost  float64 `json:"estimatedCost"`
	Affordable bool    `json:"affordable"`
}

// BudgetPlan is the full response of the Budget Estimator.
type BudgetPlan struct {
	EligibleCities     []CityEstimate `json:"eligibleCities"`
	TotalBudget        float64        `json:"totalBudget"`
	Days               int            `json:"days"`
	DailyBudget        float64        `json:"dailyBudget"`
	AdjustedDaily      float64        `json:"adjustedDailyBudget"`
	Breakdown          Breakdown      `json:"breakdown"`
	EstimatedTransport float64        `json:"estimatedTransport"`
	TravelType         string         `json:"travelType"`
	ComfortLevel       string         `json:"comfortLevel"`
}
