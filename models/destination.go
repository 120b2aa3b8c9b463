package models

import "time"

// Destination categories.
const (
	CategoryDestination = "destination"
	CategoryHiddenGem   = "hidden_gem"
)

// Destination is a visitable place tied to a city.
type Destination struct {
	ID          string      `json:"id" bson:"id"`
	CityID      string      `json:"cityId" bson:"city_id"`
	Name        string      `json:"name" bson:"name"`
	Category    string      `json:"category" bson:"category"`
	Description string      `json:"description" bson:"description"`
	Highlights  []string    `json:"highlights" bson:"highlights"`
	Images      []string    `json:"images" bson:"images"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`

	// City is resolved at read time and never persisted.
	City *City `json:"city,omitempty" bson:"-"`
}

// Hotel is a bookable stay tied to a city.
type Hotel struct {
	ID          string      `json:"id" bson:"id"`
	CityID      string      `json:"cityId" bson:"city_id"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Images      []string    `json:"images" bson:"images"`
	RoomTypes   []string    `json:"roomTypes" bson:"room_types"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	AvgRating   float64     `json:"avgRating" bson:"avg_rating"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`

	City *City `json:"city,omitempty" bson:"-"`
}
