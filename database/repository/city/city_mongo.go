package cityRepo

import (
	"context"
	"fmt"
	"time"

	"tourmate/database"
	"tourmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCityRepo implements CityRepository using MongoDB.
type MongoCityRepo struct {
	coll *mongo.Collection
}

// NewMongoCityRepo creates a new instance of CityRepository using MongoDB.
func NewMongoCityRepo() CityRepository {
	repo := &MongoCityRepo{coll: database.Collection("cities")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "state", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a city by its unique ID.
func (r *MongoCityRepo) GetByID(id string) (*models.City, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var city models.City
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&city); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch city with id %s: %w", id, err)
	}
	return &city, nil
}

// GetAll retrieves all cities.
func (r *MongoCityRepo) GetAll() ([]models.City, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cities: %w", err)
	}
	defer cursor.Close(ctx)

	var cities []models.City
	for cursor.Next(ctx) {
		var c models.City
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode city: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, nil
}

// Create inserts a new city document.
func (r *MongoCityRepo) Create(city *models.City) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	city.CreatedAt = now
	city.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, city); err != nil {
		return fmt.Errorf("failed to create city: %w", err)
	}
	return nil
}

// Update modifies an existing city document.
func (r *MongoCityRepo) Update(city *models.City) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	city.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": city.ID}, bson.M{"$set": city})
	if err != nil {
		return fmt.Errorf("failed to update city with id %s: %w", city.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("city with id %s not found", city.ID)
	}
	return nil
}

// Delete removes a city document by its ID.
func (r *MongoCityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete city with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("city with id %s not found", id)
	}
	return nil
}
