package models

// Coordinates is a latitude/longitude pair used across catalog records and map pins.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}
