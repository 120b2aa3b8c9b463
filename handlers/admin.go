package handlers

import (
	"net/http"

	adminService "tourmate/services/admin"
	"tourmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves admin-only endpoints. All routes run behind the admin
// middleware.
type AdminHandler struct {
	Service adminService.AdminService
}

// CreateMapPinHandler handles POST /api/admin/map-pin.
func (h *AdminHandler) CreateMapPinHandler(c *gin.Context) {
	var in adminService.MapPinInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.Service.CreateMapPin(in)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// HiddenGemsHandler handles GET /api/admin/hidden-gems.
func (h *AdminHandler) HiddenGemsHandler(c *gin.Context) {
	gems, err := h.Service.HiddenGems()
	if err != nil {
		utils.GetLogger().Error("Failed to list hidden gems", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gems)
}

// PendingReviewsHandler handles GET /api/admin/reviews/pending.
func (h *AdminHandler) PendingReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.PendingReviews()
	if err != nil {
		utils.GetLogger().Error("Failed to list pending reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
