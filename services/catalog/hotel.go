package catalog

import (
	"fmt"

	cityRepo "tourmate/database/repository/city"
	hotelRepo "tourmate/database/repository/hotel"
	"tourmate/models"
	"tourmate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HotelService defines business logic for hotel records.
type HotelService interface {
	List(cityID string) ([]models.Hotel, error)
	GetByID(id string) (*models.Hotel, error)
	Create(hotel models.Hotel) (*models.Hotel, error)
	Update(id string, hotel models.Hotel) (*models.Hotel, error)
	Delete(id string) error
}

// DefaultHotelService is the production implementation.
type DefaultHotelService struct {
	Repo   hotelRepo.HotelRepository
	Cities cityRepo.CityRepository
}

// List returns hotels, optionally restricted to one city, with cities resolved.
func (s *DefaultHotelService) List(cityID string) ([]models.Hotel, error) {
	hotels, err := s.Repo.GetAll(cityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}
	for i := range hotels {
		s.resolveCity(&hotels[i])
	}
	return hotels, nil
}

// GetByID returns one hotel with its city resolved.
func (s *DefaultHotelService) GetByID(id string) (*models.Hotel, error) {
	hotel, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel: %w", err)
	}
	if hotel == nil {
		return nil, ErrNotFound
	}
	s.resolveCity(hotel)
	return hotel, nil
}

// Create validates and persists a new hotel.
func (s *DefaultHotelService) Create(hotel models.Hotel) (*models.Hotel, error) {
	if hotel.Name == "" {
		return nil, ValidationError{Msg: "hotel name is required"}
	}
	if hotel.CityID == "" {
		return nil, ValidationError{Msg: "cityId is required"}
	}
	hotel.ID = uuid.New().String()
	if hotel.Images == nil {
		hotel.Images = []string{}
	}
	if hotel.RoomTypes == nil {
		hotel.RoomTypes = []string{}
	}
	if err := s.Repo.Create(&hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &hotel, nil
}

// Update replaces a hotel's mutable fields, preserving its rating.
func (s *DefaultHotelService) Update(id string, hotel models.Hotel) (*models.Hotel, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if hotel.Name == "" {
		return nil, ValidationError{Msg: "hotel name is required"}
	}
	if hotel.CityID == "" {
		return nil, ValidationError{Msg: "cityId is required"}
	}
	hotel.ID = id
	hotel.AvgRating = existing.AvgRating
	hotel.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(&hotel); err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	return &hotel, nil
}

// Delete removes a hotel by id.
func (s *DefaultHotelService) Delete(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch hotel: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	return nil
}

func (s *DefaultHotelService) resolveCity(hotel *models.Hotel) {
	city, err := s.Cities.GetByID(hotel.CityID)
	if err != nil {
		utils.GetLogger().Warn("failed to resolve city", zap.String("cityId", hotel.CityID), zap.Error(err))
		return
	}
	hotel.City = city
}
