package models

import (
	"strings"
	"time"
)

// Itinerary item types. Input is normalized case-insensitively to these canonical tags.
const (
	ItemTypeDestination = "Destination"
	ItemTypeHotel       = "Hotel"
)

// ItemRef is the denormalized snapshot of the referenced destination or hotel,
// resolved at read time for display. Never persisted with the itinerary.
type ItemRef struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Images      []string    `json:"images"`
	Coordinates Coordinates `json:"coordinates"`
}

// ItineraryItem is a destination or hotel placed on a specific day of an itinerary.
// Items are embedded in the itinerary document and addressed by their own generated id,
// distinct from the referenced record's id.
type ItineraryItem struct {
	ItemID      string       `json:"itemId" bson:"item_id"`
	Type        string       `json:"type" bson:"type"`
	RefID       string       `json:"refId" bson:"ref_id"`
	Day         int          `json:"day" bson:"day"`
	StartTime   *string      `json:"startTime" bson:"start_time"`
	EndTime     *string      `json:"endTime" bson:"end_time"`
	Note        string       `json:"note" bson:"note"`
	Coordinates *Coordinates `json:"coordinates" bson:"coordinates"`

	Ref *ItemRef `json:"ref,omitempty" bson:"-"`
}

// Key returns the case-normalized identity used for duplicate detection.
func (it ItineraryItem) Key() string {
	return NormalizeItemType(it.Type) + ":" + it.RefID
}

// Itinerary is a named, user-owned trip plan containing zero or more day-tagged items.
type Itinerary struct {
	ID        string          `json:"id" bson:"id"`
	UserID    string          `json:"userId" bson:"user_id"`
	Name      string          `json:"name" bson:"name"`
	StartDate *string         `json:"startDate" bson:"start_date"`
	EndDate   *string         `json:"endDate" bson:"end_date"`
	Items     []ItineraryItem `json:"items" bson:"items"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

// NormalizeItemType maps case-insensitive input to the canonical item type tag.
// Unknown input is returned unchanged so validation can reject it.
func NormalizeItemType(t string) string {
	switch {
	case strings.EqualFold(t, ItemTypeDestination):
		return ItemTypeDestination
	case strings.EqualFold(t, ItemTypeHotel):
		return ItemTypeHotel
	default:
		return t
	}
}

// IsValidItemType reports whether t is one of the canonical item type tags.
func IsValidItemType(t string) bool {
	return t == ItemTypeDestination || t == ItemTypeHotel
}
