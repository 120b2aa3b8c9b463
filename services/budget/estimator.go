package budget

import (
	"errors"
	"fmt"
	"math"
	"sort"

	cityRepo "tourmate/database/repository/city"
	"tourmate/models"
)

// ErrInvalidQuery reports a missing or non-positive budget or trip length.
var ErrInvalidQuery = errors.New("budget and days must be positive")

// BudgetService plans a trip budget against the candidate city set.
type BudgetService interface {
	Plan(q models.BudgetQuery) (*models.BudgetPlan, error)
}

// DefaultBudgetService is the production implementation. The city collection is
// the estimator's ranking universe; everything else is pure computation.
type DefaultBudgetService struct {
	Cities cityRepo.CityRepository
}

// Plan loads the candidate cities and scores them against the query.
func (s *DefaultBudgetService) Plan(q models.BudgetQuery) (*models.BudgetPlan, error) {
	if q.Budget <= 0 || q.Days <= 0 {
		return nil, ErrInvalidQuery
	}
	cities, err := s.Cities.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate cities: %w", err)
	}
	return Estimate(q, cities)
}

// Estimate is the budget heuristic: deterministic, no I/O, every candidate scored
// independently. The four breakdown categories are rounded independently, so their
// sum may drift from the adjusted daily budget by a few units; that drift is
// accepted, not corrected.
func Estimate(q models.BudgetQuery, cities []models.City) (*models.BudgetPlan, error) {
	if q.Budget <= 0 || q.Days <= 0 {
		return nil, ErrInvalidQuery
	}

	dailyBudget := q.Budget / float64(q.Days)

	t, ok := comfortTiers[q.ComfortLevel]
	if !ok {
		t = comfortTiers[ComfortMidRange]
	}
	adjustedDaily := dailyBudget * t.Multiplier

	breakdown := models.Breakdown{
		Stay:   int(math.Round(adjustedDaily * t.Split.Stay)),
		Food:   int(math.Round(adjustedDaily * t.Split.Food)),
		Travel: int(math.Round(adjustedDaily * t.Split.Travel)),
		Misc:   int(math.Round(adjustedDaily * t.Split.Misc)),
	}

	transport, ok := transportEstimates[q.TravelType]
	if !ok {
		transport = transportEstimates[TravelTrain]
	}

	totalCost := adjustedDaily*float64(q.Days) + transport
	estimates := make([]models.CityEstimate, 0, len(cities))
	for _, city := range cities {
		estimates = append(estimates, models.CityEstimate{
			City:       city,
			TotalCost:  totalCost,
			Affordable: totalCost <= q.Budget,
		})
	}

	// Affordable candidates first, then ascending cost within each group.
	sort.SliceStable(estimates, func(i, j int) bool {
		if estimates[i].Affordable != estimates[j].Affordable {
			return estimates[i].Affordable
		}
		return estimates[i].TotalCost < estimates[j].TotalCost
	})
	if len(estimates) > maxCandidates {
		estimates = estimates[:maxCandidates]
	}

	return &models.BudgetPlan{
		EligibleCities:     estimates,
		TotalBudget:        q.Budget,
		Days:               q.Days,
		DailyBudget:        dailyBudget,
		AdjustedDaily:      adjustedDaily,
		Breakdown:          breakdown,
		EstimatedTransport: transport,
		TravelType:         q.TravelType,
		ComfortLevel:       q.ComfortLevel,
	}, nil
}
