package itinerary

import (
	"fmt"

	destinationRepo "tourmate/database/repository/destination"
	hotelRepo "tourmate/database/repository/hotel"
	itineraryRepo "tourmate/database/repository/itinerary"
	"tourmate/models"
	"tourmate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultItineraryService is the production implementation.
type DefaultItineraryService struct {
	Repo         itineraryRepo.ItineraryRepository
	Destinations destinationRepo.DestinationRepository
	Hotels       hotelRepo.HotelRepository
}

// ListForUser returns all itineraries owned by the user, newest first.
func (s *DefaultItineraryService) ListForUser(userID string) ([]models.Itinerary, error) {
	itineraries, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}
	return itineraries, nil
}

// GetByID returns one itinerary with item references resolved for display.
func (s *DefaultItineraryService) GetByID(userID, id string) (*models.Itinerary, error) {
	it, err := s.ownedItinerary(userID, id)
	if err != nil {
		return nil, err
	}
	s.populate(it)
	return it, nil
}

// Create validates any pre-populated item list as a whole, then persists the new
// itinerary. Optional fields are stored as explicit nulls, never left missing.
func (s *DefaultItineraryService) Create(userID string, in CreateInput) (*models.Itinerary, error) {
	if in.Name == "" {
		return nil, ValidationError{Msg: "itinerary name is required"}
	}

	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	it := &models.Itinerary{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Items:     items,
	}

	if err := s.Repo.Create(it); err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}
	return it, nil
}

// Update applies a partial itinerary update. A supplied items list goes through the
// same validity and uniqueness checks as single-item add, evaluated over the whole
// incoming list before any persistence.
func (s *DefaultItineraryService) Update(userID, id string, in UpdateInput) (*models.Itinerary, error) {
	it, err := s.ownedItinerary(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Items != nil {
		items, err := buildItems(*in.Items)
		if err != nil {
			return nil, err
		}
		it.Items = items
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, ValidationError{Msg: "itinerary name is required"}
		}
		it.Name = *in.Name
	}
	if in.StartDate != nil {
		it.StartDate = emptyToNil(in.StartDate)
	}
	if in.EndDate != nil {
		it.EndDate = emptyToNil(in.EndDate)
	}

	if err := s.Repo.Update(it); err != nil {
		return nil, fmt.Errorf("failed to update itinerary: %w", err)
	}
	return it, nil
}

// Delete removes the itinerary after an ownership check.
func (s *DefaultItineraryService) Delete(userID, id string) error {
	if _, err := s.ownedItinerary(userID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	return nil
}

// AddItem appends one item to the itinerary. A case-insensitive (type, refId) match
// against the existing list fails with ErrDuplicateItem and performs no write.
func (s *DefaultItineraryService) AddItem(userID, itineraryID string, in ItemInput) (*models.Itinerary, error) {
	item, err := buildItem(in)
	if err != nil {
		return nil, err
	}

	it, err := s.ownedItinerary(userID, itineraryID)
	if err != nil {
		return nil, err
	}

	for _, existing := range it.Items {
		if existing.Key() == item.Key() {
			return nil, ErrDuplicateItem
		}
	}

	it.Items = append(it.Items, item)
	if err := s.Repo.Update(it); err != nil {
		return nil, fmt.Errorf("failed to persist item: %w", err)
	}

	s.populate(it)
	return it, nil
}

// UpdateItem applies only the supplied fields to one item. Type and refId are
// immutable; omitted fields retain their prior values.
func (s *DefaultItineraryService) UpdateItem(userID, itineraryID, itemID string, in ItemUpdate) (*models.Itinerary, error) {
	it, err := s.ownedItinerary(userID, itineraryID)
	if err != nil {
		return nil, err
	}

	idx := findItem(it.Items, itemID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	item := &it.Items[idx]

	if in.Day != nil {
		if *in.Day < 1 {
			return nil, ValidationError{Msg: "day must be a positive integer"}
		}
		item.Day = *in.Day
	}
	if in.StartTime != nil {
		item.StartTime = emptyToNil(in.StartTime)
	}
	if in.EndTime != nil {
		item.EndTime = emptyToNil(in.EndTime)
	}
	if in.Note != nil {
		item.Note = *in.Note
	}
	if in.Coordinates != nil {
		item.Coordinates = in.Coordinates
	}

	if err := s.Repo.Update(it); err != nil {
		return nil, fmt.Errorf("failed to persist item update: %w", err)
	}

	s.populate(it)
	return it, nil
}

// DeleteItem removes one item by its id. Sibling items keep their ids, ordering and
// day assignments.
func (s *DefaultItineraryService) DeleteItem(userID, itineraryID, itemID string) error {
	it, err := s.ownedItinerary(userID, itineraryID)
	if err != nil {
		return err
	}

	idx := findItem(it.Items, itemID)
	if idx < 0 {
		return ErrItemNotFound
	}

	it.Items = append(it.Items[:idx], it.Items[idx+1:]...)
	if err := s.Repo.Update(it); err != nil {
		return fmt.Errorf("failed to persist item removal: %w", err)
	}
	return nil
}

// ownedItinerary fetches an itinerary and verifies the caller owns it.
func (s *DefaultItineraryService) ownedItinerary(userID, id string) (*models.Itinerary, error) {
	it, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary: %w", err)
	}
	if it == nil {
		return nil, ErrNotFound
	}
	if it.UserID != userID {
		return nil, ErrAccessDenied
	}
	if it.Items == nil {
		it.Items = []models.ItineraryItem{}
	}
	return it, nil
}

// buildItem validates one item input and materializes it with a generated id.
func buildItem(in ItemInput) (models.ItineraryItem, error) {
	normalized := models.NormalizeItemType(in.Type)
	if !models.IsValidItemType(normalized) {
		return models.ItineraryItem{}, ValidationError{Msg: "valid type (Destination or Hotel) is required"}
	}
	if in.RefID == "" {
		return models.ItineraryItem{}, ValidationError{Msg: "refId is required"}
	}
	if in.Day < 1 {
		return models.ItineraryItem{}, ValidationError{Msg: "day must be a positive integer"}
	}

	return models.ItineraryItem{
		ItemID:      uuid.New().String(),
		Type:        normalized,
		RefID:       in.RefID,
		Day:         in.Day,
		StartTime:   emptyToNil(in.StartTime),
		EndTime:     emptyToNil(in.EndTime),
		Note:        in.Note,
		Coordinates: in.Coordinates,
	}, nil
}

// buildItems validates a whole incoming list, including intra-list uniqueness,
// before anything is persisted.
func buildItems(inputs []ItemInput) ([]models.ItineraryItem, error) {
	items := make([]models.ItineraryItem, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		item, err := buildItem(in)
		if err != nil {
			return nil, err
		}
		if seen[item.Key()] {
			return nil, ErrDuplicateItem
		}
		seen[item.Key()] = true
		items = append(items, item)
	}
	return items, nil
}

// findItem returns the index of the item with the given id, or -1.
func findItem(items []models.ItineraryItem, itemID string) int {
	for i := range items {
		if items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// populate resolves each item's referenced destination or hotel into a display
// snapshot. A dangling reference leaves the snapshot null rather than failing the
// whole read.
func (s *DefaultItineraryService) populate(it *models.Itinerary) {
	logger := utils.GetLogger()
	for i := range it.Items {
		item := &it.Items[i]
		switch item.Type {
		case models.ItemTypeDestination:
			dest, err := s.Destinations.GetByID(item.RefID)
			if err != nil {
				logger.Warn("failed to resolve destination ref", zap.String("refId", item.RefID), zap.Error(err))
				continue
			}
			if dest != nil {
				item.Ref = &models.ItemRef{
					Name:        dest.Name,
					Description: dest.Description,
					Images:      dest.Images,
					Coordinates: dest.Coordinates,
				}
			}
		case models.ItemTypeHotel:
			hotel, err := s.Hotels.GetByID(item.RefID)
			if err != nil {
				logger.Warn("failed to resolve hotel ref", zap.String("refId", item.RefID), zap.Error(err))
				continue
			}
			if hotel != nil {
				item.Ref = &models.ItemRef{
					Name:        hotel.Name,
					Description: hotel.Description,
					Images:      hotel.Images,
					Coordinates: hotel.Coordinates,
				}
			}
		}
	}
}

// emptyToNil maps an explicitly supplied empty string to the stored null
// representation.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
