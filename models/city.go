package models

import "time"

// City is a seeded reference record; cities form the Budget Estimator's ranking universe.
type City struct {
	ID          string      `json:"id" bson:"id"`
	Name        string      `json:"name" bson:"name"`
	State       string      `json:"state" bson:"state"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// State is a reference record for the state/region picker.
type State struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Code      string    `json:"code" bson:"code"`
	Country   string    `json:"country" bson:"country"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
