package itinerary

import "tourmate/models"

// ItemInput carries the fields of a new itinerary item. Type is normalized
// case-insensitively; optional fields default to explicit null/empty values.
type ItemInput struct {
	Type        string              `json:"type"`
	RefID       string              `json:"refId"`
	Day         int                 `json:"day"`
	StartTime   *string             `json:"startTime"`
	EndTime     *string             `json:"endTime"`
	Note        string              `json:"note"`
	Coordinates *models.Coordinates `json:"coordinates"`
}

// ItemUpdate carries a partial item update. Nil fields retain their prior values;
// an empty string clears an optional text field. Type and refId are immutable.
type ItemUpdate struct {
	Day         *int                `json:"day"`
	StartTime   *string             `json:"startTime"`
	EndTime     *string             `json:"endTime"`
	Note        *string             `json:"note"`
	Coordinates *models.Coordinates `json:"coordinates"`
}

// CreateInput carries the fields of a new itinerary. Items may pre-populate the
// list; the whole list is validated before anything is persisted.
type CreateInput struct {
	Name      string      `json:"name"`
	StartDate *string     `json:"startDate"`
	EndDate   *string     `json:"endDate"`
	Items     []ItemInput `json:"items"`
}

// UpdateInput carries a partial itinerary update. A non-nil Items replaces the
// whole list after the same validity and uniqueness checks as single-item add.
type UpdateInput struct {
	Name      *string      `json:"name"`
	StartDate *string      `json:"startDate"`
	EndDate   *string      `json:"endDate"`
	Items     *[]ItemInput `json:"items"`
}

// ItineraryService defines business logic for the itinerary aggregate. Every
// operation takes the calling user's id and enforces ownership before mutating.
type ItineraryService interface {
	ListForUser(userID string) ([]models.Itinerary, error)
	// GetByID returns the itinerary with item references resolved for display.
	GetByID(userID, id string) (*models.Itinerary, error)
	Create(userID string, in CreateInput) (*models.Itinerary, error)
	Update(userID, id string, in UpdateInput) (*models.Itinerary, error)
	Delete(userID, id string) error

	// AddItem appends a new item, rejecting (type, refId) duplicates. The returned
	// itinerary has references resolved for immediate display.
	AddItem(userID, itineraryID string, in ItemInput) (*models.Itinerary, error)
	// UpdateItem applies a partial update to one item. Supplying no fields is a
	// successful no-op.
	UpdateItem(userID, itineraryID, itemID string, in ItemUpdate) (*models.Itinerary, error)
	// DeleteItem removes one item without disturbing its siblings.
	DeleteItem(userID, itineraryID, itemID string) error
}
