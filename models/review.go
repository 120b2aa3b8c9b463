package models

import "time"

// Review target types.
const (
	TargetDestination = "destination"
	TargetHotel       = "hotel"
)

// Review is a user rating of a destination or hotel.
type Review struct {
	ID         string    `json:"id" bson:"id"`
	UserID     string    `json:"userId" bson:"user_id"`
	TargetType string    `json:"targetType" bson:"target_type"`
	TargetID   string    `json:"targetId" bson:"target_id"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment" bson:"comment"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// SafetyReview is a user's safety rating of a destination.
type SafetyReview struct {
	ID            string    `json:"id" bson:"id"`
	UserID        string    `json:"userId" bson:"user_id"`
	DestinationID string    `json:"destinationId" bson:"destination_id"`
	SafetyRating  int       `json:"safetyRating" bson:"safety_rating"`
	Comment       string    `json:"comment" bson:"comment"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
