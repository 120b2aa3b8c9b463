package budget

// split is the per-day category split for one comfort tier. The four fractions
// sum to 1.0 exactly for every tier.
type split struct {
	Stay   float64
	Food   float64
	Travel float64
	Misc   float64
}

// tier bundles the daily-budget multiplier with the category split.
type tier struct {
	Multiplier float64
	Split      split
}

// Comfort tier tags.
const (
	ComfortBudget   = "budget"
	ComfortMidRange = "mid-range"
	ComfortLuxury   = "luxury"
)

// comfortTiers is configuration data, keyed by the comfort tier tag. Unknown tags
// fall back to mid-range behavior.
var comfortTiers = map[string]tier{
	ComfortBudget:   {Multiplier: 0.7, Split: split{Stay: 0.35, Food: 0.35, Travel: 0.25, Misc: 0.05}},
	ComfortMidRange: {Multiplier: 1.0, Split: split{Stay: 0.40, Food: 0.30, Travel: 0.20, Misc: 0.10}},
	ComfortLuxury:   {Multiplier: 1.5, Split: split{Stay: 0.50, Food: 0.25, Travel: 0.15, Misc: 0.10}},
}

// Travel mode tags.
const (
	TravelFlight = "flight"
	TravelTrain  = "train"
	TravelBus    = "bus"
	TravelCar    = "car"
)

// transportEstimates maps a travel mode to a flat round-trip cost estimate in
// whole currency units. Unknown modes fall back to the train constant.
var transportEstimates = map[string]float64{
	TravelFlight: 5000,
	TravelTrain:  2000,
	TravelBus:    1000,
	TravelCar:    3000,
}

// maxCandidates caps the ranked city list.
const maxCandidates = 10
