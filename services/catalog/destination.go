package catalog

import (
	"fmt"

	cityRepo "tourmate/database/repository/city"
	destinationRepo "tourmate/database/repository/destination"
	"tourmate/models"
	"tourmate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DestinationService defines business logic for destination records.
type DestinationService interface {
	List(filter destinationRepo.DestinationFilter) ([]models.Destination, error)
	GetByID(id string) (*models.Destination, error)
	Create(dest models.Destination) (*models.Destination, error)
	Update(id string, dest models.Destination) (*models.Destination, error)
	Delete(id string) error
}

// DefaultDestinationService is the production implementation.
type DefaultDestinationService struct {
	Repo   destinationRepo.DestinationRepository
	Cities cityRepo.CityRepository
}

// List returns destinations matching the filter, with cities resolved.
func (s *DefaultDestinationService) List(filter destinationRepo.DestinationFilter) ([]models.Destination, error) {
	dests, err := s.Repo.GetAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	if dests == nil {
		dests = []models.Destination{}
	}
	for i := range dests {
		s.resolveCity(&dests[i])
	}
	return dests, nil
}

// GetByID returns one destination with its city resolved.
func (s *DefaultDestinationService) GetByID(id string) (*models.Destination, error) {
	dest, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch destination: %w", err)
	}
	if dest == nil {
		return nil, ErrNotFound
	}
	s.resolveCity(dest)
	return dest, nil
}

// Create validates and persists a new destination.
func (s *DefaultDestinationService) Create(dest models.Destination) (*models.Destination, error) {
	if err := validateDestination(&dest); err != nil {
		return nil, err
	}
	dest.ID = uuid.New().String()
	if dest.Highlights == nil {
		dest.Highlights = []string{}
	}
	if dest.Images == nil {
		dest.Images = []string{}
	}
	if err := s.Repo.Create(&dest); err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}
	return &dest, nil
}

// Update replaces a destination's mutable fields.
func (s *DefaultDestinationService) Update(id string, dest models.Destination) (*models.Destination, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch destination: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := validateDestination(&dest); err != nil {
		return nil, err
	}
	dest.ID = id
	dest.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(&dest); err != nil {
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}
	return &dest, nil
}

// Delete removes a destination by id.
func (s *DefaultDestinationService) Delete(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch destination: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete destination: %w", err)
	}
	return nil
}

func (s *DefaultDestinationService) resolveCity(dest *models.Destination) {
	city, err := s.Cities.GetByID(dest.CityID)
	if err != nil {
		utils.GetLogger().Warn("failed to resolve city", zap.String("cityId", dest.CityID), zap.Error(err))
		return
	}
	dest.City = city
}

func validateDestination(dest *models.Destination) error {
	if dest.Name == "" {
		return ValidationError{Msg: "destination name is required"}
	}
	if dest.CityID == "" {
		return ValidationError{Msg: "cityId is required"}
	}
	if dest.Category != models.CategoryDestination && dest.Category != models.CategoryHiddenGem {
		return ValidationError{Msg: "category must be 'destination' or 'hidden_gem'"}
	}
	return nil
}
