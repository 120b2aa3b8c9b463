package destinationRepo

import "tourmate/models"

// DestinationFilter narrows GetAll queries.
type DestinationFilter struct {
	// Category restricts results to "destination" or "hidden_gem" when non-empty.
	Category string
	// CityID restricts results to one city when non-empty.
	CityID string
}

// DestinationRepository defines methods for destination data access.
type DestinationRepository interface {
	// GetByID retrieves a destination by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Destination, error)
	// GetAll retrieves destinations matching the filter.
	GetAll(filter DestinationFilter) ([]models.Destination, error)
	// Create inserts a new destination record.
	Create(dest *models.Destination) error
	// Update modifies an existing destination record.
	Update(dest *models.Destination) error
	// Delete removes a destination record by its ID.
	Delete(id string) error
}
