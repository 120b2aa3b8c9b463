package handlers

import (
	"errors"
	"net/http"

	itineraryService "tourmate/services/itinerary"
	"tourmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItineraryHandler serves the itinerary aggregate endpoints. Every route runs
// behind auth middleware, so userID is always present in the context.
type ItineraryHandler struct {
	Service itineraryService.ItineraryService
}

// itineraryError maps service errors onto HTTP responses. Ownership violations
// and missing records get distinct statuses; duplicates and validation both
// surface as a client error.
func itineraryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itineraryService.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
	case errors.Is(err, itineraryService.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, itineraryService.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, itineraryService.ErrDuplicateItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This item is already in the itinerary"})
	case itineraryService.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Itinerary operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ListHandler handles GET /api/itineraries.
func (h *ItineraryHandler) ListHandler(c *gin.Context) {
	userID := c.GetString("userID")
	list, err := h.Service.ListForUser(userID)
	if err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetHandler handles GET /api/itineraries/:id.
func (h *ItineraryHandler) GetHandler(c *gin.Context) {
	userID := c.GetString("userID")
	it, err := h.Service.GetByID(userID, c.Param("id"))
	if err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// CreateHandler handles POST /api/itineraries.
func (h *ItineraryHandler) CreateHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var in itineraryService.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	it, err := h.Service.Create(userID, in)
	if err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// UpdateHandler handles PUT /api/itineraries/:id.
func (h *ItineraryHandler) UpdateHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var in itineraryService.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	it, err := h.Service.Update(userID, c.Param("id"), in)
	if err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// DeleteHandler handles DELETE /api/itineraries/:id.
func (h *ItineraryHandler) DeleteHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.Delete(userID, c.Param("id")); err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Itinerary deleted"})
}

// AddItemHandler handles POST /api/itineraries/:id/items.
func (h *ItineraryHandler) AddItemHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var in itineraryService.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	it, err := h.Service.AddItem(userID, c.Param("id"), in)
	if err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// UpdateItemHandler handles PUT /api/itineraries/:id/items/:itemId.
func (h *ItineraryHandler) UpdateItemHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var in itineraryService.ItemUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	it, err := h.Service.UpdateItem(userID, c.Param("id"), c.Param("itemId"), in)
	if err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// DeleteItemHandler handles DELETE /api/itineraries/:id/items/:itemId.
func (h *ItineraryHandler) DeleteItemHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.DeleteItem(userID, c.Param("id"), c.Param("itemId")); err != nil {
		itineraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from itinerary"})
}
