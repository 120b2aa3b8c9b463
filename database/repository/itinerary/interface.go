package itineraryRepo

import "tourmate/models"

// ItineraryRepository defines methods for itinerary data access. An itinerary is a
// single document; item mutations are persisted as one full-document update, so the
// backing store's single-document semantics are the only concurrency discipline.
type ItineraryRepository interface {
	// GetByID retrieves an itinerary by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Itinerary, error)
	// ListByUser retrieves all itineraries owned by a user, newest first.
	ListByUser(userID string) ([]models.Itinerary, error)
	// Create inserts a new itinerary document.
	Create(it *models.Itinerary) error
	// Update replaces the mutable fields of an existing itinerary document,
	// including the embedded item list.
	Update(it *models.Itinerary) error
	// Delete removes an itinerary document by its ID.
	Delete(id string) error
}
