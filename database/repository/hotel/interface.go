package hotelRepo

import "tourmate/models"

// HotelRepository defines methods for hotel data access.
type HotelRepository interface {
	// GetByID retrieves a hotel by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Hotel, error)
	// GetAll retrieves all hotels, optionally restricted to one city.
	GetAll(cityID string) ([]models.Hotel, error)
	// Create inserts a new hotel record.
	Create(hotel *models.Hotel) error
	// Update modifies an existing hotel record.
	Update(hotel *models.Hotel) error
	// Delete removes a hotel record by its ID.
	Delete(id string) error
	// SetAvgRating stores a recomputed average rating.
	SetAvgRating(id string, avg float64) error
}
