package destinationRepo

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

// MongoDestinationRepo implements DestinationRepository using MongoDB.
type MongoDestinationRepo struct {
	coll *mongo.Collection
}

// NewMongoDestinationRepo creates a new instance of DestinationRepository using MongoDB.
func NewMongoDestinationRepo() DestinationRepository {
	repo := &MongoDestinationRepo{coll: database.Collection("destinations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDestinationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "city_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a destination by its unique ID.
func (r *MongoDestinationRepo) GetByID(id string) (*models.Destination, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var dest models.Destination
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&dest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch destination with id %s: %w", id, err)
	}
	return &dest, nil
}

// GetAll retrieves destinations matching the filter.
func (r *MongoDestinationRepo) GetAll(filter DestinationFilter) ([]models.Destination, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.CityID != "" {
		query["city_id"] = filter.CityID
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var dests []models.Destination
	for cursor.Next(ctx) {
		var d models.Destination
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode destination: %w", err)
		}
		dests = append(dests, d)
	}
	return dests, nil
}

// Create inserts a new destination document.
func (r *MongoDestinationRepo) Create(dest *models.Destination) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	dest.CreatedAt = now
	dest.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dest); err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	return nil
}

// Update modifies an existing destination document.
func (r *MongoDestinationRepo) Update(dest *models.Destination) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	dest.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": dest.ID}, bson.M{"$set": dest})
	if err != nil {
		return fmt.Errorf("failed to update destination with id %s: %w", dest.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("destination with id %s not found", dest.ID)
	}
	return nil
}

// Delete removes a destination document by its ID.
func (r *MongoDestinationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete destination with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("destination with id %s not found", id)
	}
	return nil
}
