package budget

import (
	"fmt"
	"math"
	"testing"

	"tourmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCities(n int) []models.City {
	cities := make([]models.City, 0, n)
	for i := 0; i < n; i++ {
		cities = append(cities, models.City{
			ID:   fmt.Sprintf("city-%d", i),
			Name: fmt.Sprintf("City %d", i),
		})
	}
	return cities
}

func TestEstimateMidRangeTrain(t *testing.T) {
	plan, err := Estimate(models.BudgetQuery{
		Budget:       50000,
		Days:         7,
		TravelType:   TravelTrain,
		ComfortLevel: ComfortMidRange,
	}, testCities(3))
	require.NoError(t, err)

	assert.InDelta(t, 7142.86, plan.DailyBudget, 0.01)
	assert.InDelta(t, 7142.86, plan.AdjustedDaily, 0.01)
	assert.Equal(t, models.Breakdown{Stay: 2857, Food: 2143, Travel: 1429, Misc: 714}, plan.Breakdown)
	assert.Equal(t, float64(2000), plan.EstimatedTransport)

	// 7142.86/day over 7 days plus transport exceeds the budget.
	require.Len(t, plan.EligibleCities, 3)
	for _, est := range plan.EligibleCities {
		assert.False(t, est.Affordable)
		assert.InDelta(t, 52000, est.TotalCost, 0.01)
	}
}

func TestEstimateBudgetTierIsAffordable(t *testing.T) {
	plan, err := Estimate(models.BudgetQuery{
		Budget:       70000,
		Days:         7,
		TravelType:   TravelBus,
		ComfortLevel: ComfortBudget,
	}, testCities(2))
	require.NoError(t, err)

	assert.InDelta(t, 10000, plan.DailyBudget, 0.01)
	assert.InDelta(t, 7000, plan.AdjustedDaily, 0.01)
	assert.Equal(t, models.Breakdown{Stay: 2450, Food: 2450, Travel: 1750, Misc: 350}, plan.Breakdown)
	assert.Equal(t, float64(1000), plan.EstimatedTransport)

	for _, est := range plan.EligibleCities {
		assert.True(t, est.Affordable)
		assert.InDelta(t, 50000, est.TotalCost, 0.01)
	}
}

func TestEstimateLuxurySplit(t *testing.T) {
	plan, err := Estimate(models.BudgetQuery{
		Budget:       100000,
		Days:         4,
		TravelType:   TravelFlight,
		ComfortLevel: ComfortLuxury,
	}, testCities(1))
	require.NoError(t, err)

	// daily 25000, adjusted 37500, split 50/25/15/10.
	assert.InDelta(t, 37500, plan.AdjustedDaily, 0.01)
	assert.Equal(t, models.Breakdown{Stay: 18750, Food: 9375, Travel: 5625, Misc: 3750}, plan.Breakdown)
	assert.Equal(t, float64(5000), plan.EstimatedTransport)
}

func TestEstimateUnknownTierFallsBackToMidRange(t *testing.T) {
	known, err := Estimate(models.BudgetQuery{
		Budget: 21000, Days: 3, TravelType: TravelTrain, ComfortLevel: ComfortMidRange,
	}, nil)
	require.NoError(t, err)

	unknown, err := Estimate(models.BudgetQuery{
		Budget: 21000, Days: 3, TravelType: TravelTrain, ComfortLevel: "ultra-deluxe",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, known.AdjustedDaily, unknown.AdjustedDaily)
	assert.Equal(t, known.Breakdown, unknown.Breakdown)
}

func TestEstimateUnknownTravelModeFallsBackToTrain(t *testing.T) {
	plan, err := Estimate(models.BudgetQuery{
		Budget: 21000, Days: 3, TravelType: "zeppelin", ComfortLevel: ComfortMidRange,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2000), plan.EstimatedTransport)
}

func TestEstimateRejectsInvalidQuery(t *testing.T) {
	cases := []models.BudgetQuery{
		{Budget: 0, Days: 5},
		{Budget: -100, Days: 5},
		{Budget: 10000, Days: 0},
		{Budget: 10000, Days: -1},
	}
	for _, q := range cases {
		_, err := Estimate(q, nil)
		assert.ErrorIs(t, err, ErrInvalidQuery)
	}
}

func TestEstimateTruncatesToTopTen(t *testing.T) {
	plan, err := Estimate(models.BudgetQuery{
		Budget: 50000, Days: 5, TravelType: TravelTrain, ComfortLevel: ComfortMidRange,
	}, testCities(15))
	require.NoError(t, err)
	assert.Len(t, plan.EligibleCities, maxCandidates)
}

// The four categories are rounded independently, so their sum may drift from the
// adjusted daily budget, but never by more than half a unit per category.
func TestEstimateBreakdownDriftIsBounded(t *testing.T) {
	queries := []models.BudgetQuery{
		{Budget: 50000, Days: 7, ComfortLevel: ComfortMidRange},
		{Budget: 33333, Days: 6, ComfortLevel: ComfortBudget},
		{Budget: 99999, Days: 11, ComfortLevel: ComfortLuxury},
		{Budget: 12345, Days: 4, ComfortLevel: ComfortMidRange},
		{Budget: 7777, Days: 3, ComfortLevel: ComfortBudget},
	}
	for _, q := range queries {
		plan, err := Estimate(q, nil)
		require.NoError(t, err)

		sum := plan.Breakdown.Stay + plan.Breakdown.Food + plan.Breakdown.Travel + plan.Breakdown.Misc
		drift := math.Abs(float64(sum) - plan.AdjustedDaily)
		assert.LessOrEqualf(t, drift, 2.0, "budget %.0f over %d days drifted by %.2f", q.Budget, q.Days, drift)
	}
}
