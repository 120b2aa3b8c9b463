package handlers

import (
	"errors"
	"net/http"

	"tourmate/models"
	reviewService "tourmate/services/review"
	"tourmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves review and safety-review endpoints.
type ReviewHandler struct {
	Service reviewService.ReviewService
}

func reviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reviewService.ErrTargetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Review target not found"})
	case reviewService.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Review operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// CreateReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Create(userID, review)
	if err != nil {
		reviewError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListReviewsHandler handles GET /api/reviews/:targetType/:targetId.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListByTarget(c.Param("targetType"), c.Param("targetId"))
	if err != nil {
		reviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateSafetyReviewHandler handles POST /api/safety-reviews.
func (h *ReviewHandler) CreateSafetyReviewHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var review models.SafetyReview
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateSafety(userID, review)
	if err != nil {
		reviewError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListSafetyReviewsHandler handles GET /api/safety-reviews/:destinationId.
func (h *ReviewHandler) ListSafetyReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListSafetyByDestination(c.Param("destinationId"))
	if err != nil {
		reviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
