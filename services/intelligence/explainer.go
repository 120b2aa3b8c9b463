package intelligence

import (
	"context"
	"fmt"

	"tourmate/models"
)

// ContentGenerator runs one prompt against a generative model.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ExplainerService produces a natural-language explanation of a computed budget plan.
type ExplainerService interface {
	ExplainPlan(ctx context.Context, plan *models.BudgetPlan) (string, error)
}

// DefaultExplainerService is the production implementation.
type DefaultExplainerService struct {
	Generator ContentGenerator
}

// ExplainPlan renders the plan into a prompt and asks the model for a short,
// traveler-facing explanation.
func (s *DefaultExplainerService) ExplainPlan(ctx context.Context, plan *models.BudgetPlan) (string, error) {
	prompt := fmt.Sprintf(
		"You are a travel budgeting assistant. Explain this trip budget to the traveler in a short, "+
			"friendly paragraph. Total budget: %.0f. Trip length: %d days. Daily budget: %.2f. "+
			"Comfort level: %s. Travel mode: %s. Estimated transport cost: %.0f. "+
			"Per-day split: stay %d, food %d, travel %d, misc %d. "+
			"Mention whether the plan looks tight or comfortable, without inventing numbers.",
		plan.TotalBudget, plan.Days, plan.DailyBudget,
		plan.ComfortLevel, plan.TravelType, plan.EstimatedTransport,
		plan.Breakdown.Stay, plan.Breakdown.Food, plan.Breakdown.Travel, plan.Breakdown.Misc,
	)

	explanation, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate plan explanation: %w", err)
	}
	return explanation, nil
}
