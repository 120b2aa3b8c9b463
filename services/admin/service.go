package admin

import (
	"fmt"

	destinationRepo "tourmate/database/repository/destination"
	reviewRepo "tourmate/database/repository/review"
	"tourmate/models"
	"tourmate/services/catalog"
)

// MapPinInput is the payload of map-based record creation: an admin drops a pin and
// the type tag decides which backing collection receives the record.
type MapPinInput struct {
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	CityID      string             `json:"cityId"`
	Coordinates models.Coordinates `json:"coordinates"`
	Description string             `json:"description"`
	Highlights  []string           `json:"highlights"`
	Images      []string           `json:"images"`
	RoomTypes   []string           `json:"roomTypes"`
}

// AdminService defines admin-only operations.
type AdminService interface {
	// CreateMapPin creates a hotel, destination or hidden gem from a map pin.
	CreateMapPin(in MapPinInput) (interface{}, error)
	// HiddenGems lists destinations in the hidden_gem category.
	HiddenGems() ([]models.Destination, error)
	// PendingReviews lists reviews awaiting moderation.
	PendingReviews() ([]models.Review, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Destinations catalog.DestinationService
	Hotels       catalog.HotelService
	Reviews      reviewRepo.ReviewRepository
}

// CreateMapPin dispatches on the pin type to the matching catalog service.
func (s *DefaultAdminService) CreateMapPin(in MapPinInput) (interface{}, error) {
	switch in.Type {
	case "hotel":
		return s.Hotels.Create(models.Hotel{
			Name:        in.Name,
			CityID:      in.CityID,
			Coordinates: in.Coordinates,
			Description: in.Description,
			Images:      in.Images,
			RoomTypes:   in.RoomTypes,
		})
	case "destination", "hidden_gem":
		category := models.CategoryDestination
		if in.Type == "hidden_gem" {
			category = models.CategoryHiddenGem
		}
		return s.Destinations.Create(models.Destination{
			Name:        in.Name,
			CityID:      in.CityID,
			Coordinates: in.Coordinates,
			Category:    category,
			Description: in.Description,
			Highlights:  in.Highlights,
			Images:      in.Images,
		})
	default:
		return nil, catalog.ValidationError{Msg: "invalid map pin type"}
	}
}

// HiddenGems lists destinations in the hidden_gem category.
func (s *DefaultAdminService) HiddenGems() ([]models.Destination, error) {
	return s.Destinations.List(destinationRepo.DestinationFilter{Category: models.CategoryHiddenGem})
}

// PendingReviews lists reviews awaiting moderation. Reviews carry no status field
// yet, so moderation sees the full set.
func (s *DefaultAdminService) PendingReviews() ([]models.Review, error) {
	reviews, err := s.Reviews.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
