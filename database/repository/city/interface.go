package cityRepo

import "tourmate/models"

// CityRepository defines methods for city data access.
type CityRepository interface {
	// GetByID retrieves a city by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.City, error)
	// GetAll retrieves all cities.
	GetAll() ([]models.City, error)
	// Create inserts a new city record.
	Create(city *models.City) error
	// Update modifies an existing city record.
	Update(city *models.City) error
	// Delete removes a city record by its ID.
	Delete(id string) error
}
