package catalog

import (
	"fmt"

	cityRepo "tourmate/database/repository/city"
	stateRepo "tourmate/database/repository/state"
	"tourmate/models"

	"github.com/google/uuid"
)

// CityService defines business logic for city and state reference records.
type CityService interface {
	ListCities() ([]models.City, error)
	GetCityByID(id string) (*models.City, error)
	CreateCity(city models.City) (*models.City, error)
	UpdateCity(id string, city models.City) (*models.City, error)
	DeleteCity(id string) error

	ListStates() ([]models.State, error)
	CreateState(state models.State) (*models.State, error)
}

// DefaultCityService is the production implementation.
type DefaultCityService struct {
	Cities cityRepo.CityRepository
	States stateRepo.StateRepository
}

// ListCities returns every city.
func (s *DefaultCityService) ListCities() ([]models.City, error) {
	cities, err := s.Cities.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	if cities == nil {
		cities = []models.City{}
	}
	return cities, nil
}

// GetCityByID returns one city.
func (s *DefaultCityService) GetCityByID(id string) (*models.City, error) {
	city, err := s.Cities.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch city: %w", err)
	}
	if city == nil {
		return nil, ErrNotFound
	}
	return city, nil
}

// CreateCity validates and persists a new city.
func (s *DefaultCityService) CreateCity(city models.City) (*models.City, error) {
	if city.Name == "" || city.State == "" {
		return nil, ValidationError{Msg: "city name and state are required"}
	}
	city.ID = uuid.New().String()
	if err := s.Cities.Create(&city); err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	return &city, nil
}

// UpdateCity replaces a city's mutable fields.
func (s *DefaultCityService) UpdateCity(id string, city models.City) (*models.City, error) {
	existing, err := s.Cities.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch city: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if city.Name == "" || city.State == "" {
		return nil, ValidationError{Msg: "city name and state are required"}
	}
	city.ID = id
	city.CreatedAt = existing.CreatedAt
	if err := s.Cities.Update(&city); err != nil {
		return nil, fmt.Errorf("failed to update city: %w", err)
	}
	return &city, nil
}

// DeleteCity removes a city by id.
func (s *DefaultCityService) DeleteCity(id string) error {
	existing, err := s.Cities.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch city: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.Cities.Delete(id); err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}
	return nil
}

// ListStates returns every state.
func (s *DefaultCityService) ListStates() ([]models.State, error) {
	states, err := s.States.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	if states == nil {
		states = []models.State{}
	}
	return states, nil
}

// CreateState validates and persists a new state.
func (s *DefaultCityService) CreateState(state models.State) (*models.State, error) {
	if state.Name == "" || state.Code == "" {
		return nil, ValidationError{Msg: "state name and code are required"}
	}
	if state.Country == "" {
		state.Country = "India"
	}
	existing, err := s.States.GetByCode(state.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing state: %w", err)
	}
	if existing != nil {
		return nil, ValidationError{Msg: fmt.Sprintf("state with code %s already exists", state.Code)}
	}
	state.ID = uuid.New().String()
	if err := s.States.Create(&state); err != nil {
		return nil, fmt.Errorf("failed to create state: %w", err)
	}
	return &state, nil
}
