package handlers

import (
	"errors"
	"net/http"

	destinationRepo "tourmate/database/repository/destination"
	"tourmate/models"
	"tourmate/services/catalog"
	"tourmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves destination, hotel, city and state endpoints. Reads are
// public; writes run behind admin middleware.
type CatalogHandler struct {
	Destinations catalog.DestinationService
	Hotels       catalog.HotelService
	Cities       catalog.CityService
}

// catalogError maps catalog service errors onto HTTP responses.
func catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case catalog.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Catalog operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ListDestinationsHandler handles GET /api/destinations.
func (h *CatalogHandler) ListDestinationsHandler(c *gin.Context) {
	filter := destinationRepo.DestinationFilter{
		Category: c.Query("category"),
		CityID:   c.Query("cityId"),
	}
	dests, err := h.Destinations.List(filter)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dests)
}

// GetDestinationHandler handles GET /api/destinations/:id.
func (h *CatalogHandler) GetDestinationHandler(c *gin.Context) {
	dest, err := h.Destinations.GetByID(c.Param("id"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dest)
}

// CreateDestinationHandler handles POST /api/destinations.
func (h *CatalogHandler) CreateDestinationHandler(c *gin.Context) {
	var dest models.Destination
	if err := c.ShouldBindJSON(&dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Destinations.Create(dest)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDestinationHandler handles PUT /api/destinations/:id.
func (h *CatalogHandler) UpdateDestinationHandler(c *gin.Context) {
	var dest models.Destination
	if err := c.ShouldBindJSON(&dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.Destinations.Update(c.Param("id"), dest)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDestinationHandler handles DELETE /api/destinations/:id.
func (h *CatalogHandler) DeleteDestinationHandler(c *gin.Context) {
	if err := h.Destinations.Delete(c.Param("id")); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted"})
}

// ListHotelsHandler handles GET /api/hotels.
func (h *CatalogHandler) ListHotelsHandler(c *gin.Context) {
	hotels, err := h.Hotels.List(c.Query("cityId"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotelHandler handles GET /api/hotels/:id.
func (h *CatalogHandler) GetHotelHandler(c *gin.Context) {
	hotel, err := h.Hotels.GetByID(c.Param("id"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// CreateHotelHandler handles POST /api/hotels.
func (h *CatalogHandler) CreateHotelHandler(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Hotels.Create(hotel)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHotelHandler handles PUT /api/hotels/:id.
func (h *CatalogHandler) UpdateHotelHandler(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.Hotels.Update(c.Param("id"), hotel)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHotelHandler handles DELETE /api/hotels/:id.
func (h *CatalogHandler) DeleteHotelHandler(c *gin.Context) {
	if err := h.Hotels.Delete(c.Param("id")); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted"})
}

// ListCitiesHandler handles GET /api/cities.
func (h *CatalogHandler) ListCitiesHandler(c *gin.Context) {
	cities, err := h.Cities.ListCities()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GetCityHandler handles GET /api/cities/:id.
func (h *CatalogHandler) GetCityHandler(c *gin.Context) {
	city, err := h.Cities.GetCityByID(c.Param("id"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// CreateCityHandler handles POST /api/cities.
func (h *CatalogHandler) CreateCityHandler(c *gin.Context) {
	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Cities.CreateCity(city)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCityHandler handles PUT /api/cities/:id.
func (h *CatalogHandler) UpdateCityHandler(c *gin.Context) {
	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.Cities.UpdateCity(c.Param("id"), city)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCityHandler handles DELETE /api/cities/:id.
func (h *CatalogHandler) DeleteCityHandler(c *gin.Context) {
	if err := h.Cities.DeleteCity(c.Param("id")); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "City deleted"})
}

// ListStatesHandler handles GET /api/states.
func (h *CatalogHandler) ListStatesHandler(c *gin.Context) {
	states, err := h.Cities.ListStates()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, states)
}

// CreateStateHandler handles POST /api/states.
func (h *CatalogHandler) CreateStateHandler(c *gin.Context) {
	var state models.State
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Cities.CreateState(state)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
