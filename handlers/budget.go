package handlers

import (
	"errors"
	"net/http"

	"tourmate/models"
	budgetService "tourmate/services/budget"
	"tourmate/services/intelligence"
	"tourmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BudgetHandler serves budget planning and explanation endpoints.
type BudgetHandler struct {
	Budget    budgetService.BudgetService
	Explainer intelligence.ExplainerService
}

// PlanHandler handles POST /api/budget/plan.
func (h *BudgetHandler) PlanHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var q models.BudgetQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	plan, err := h.Budget.Plan(q)
	if err != nil {
		if errors.Is(err, budgetService.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "budget and days must be positive"})
			return
		}
		logger.Error("Failed to compute budget plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute budget plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ExplainHandler handles POST /api/budget/explain. It recomputes the plan from
// the query and asks the model for a traveler-facing explanation.
func (h *BudgetHandler) ExplainHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if h.Explainer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Plan explanations are not available"})
		return
	}

	var q models.BudgetQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	plan, err := h.Budget.Plan(q)
	if err != nil {
		if errors.Is(err, budgetService.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "budget and days must be positive"})
			return
		}
		logger.Error("Failed to compute budget plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute budget plan"})
		return
	}

	explanation, err := h.Explainer.ExplainPlan(c.Request.Context(), plan)
	if err != nil {
		logger.Error("Failed to generate plan explanation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate explanation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "explanation": explanation})
}
