package itineraryRepo

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

// MongoItineraryRepo implements ItineraryRepository using MongoDB.
type MongoItineraryRepo struct {
	coll *mongo.Collection
}

// NewMongoItineraryRepo creates a new instance of ItineraryRepository using MongoDB.
func NewMongoItineraryRepo() ItineraryRepository {
	repo := &MongoItineraryRepo{coll: database.Collection("itineraries")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoItineraryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an itinerary by its unique ID.
func (r *MongoItineraryRepo) GetByID(id string) (*models.Itinerary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var it models.Itinerary
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&it); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch itinerary with id %s: %w", id, err)
	}
	return &it, nil
}

// ListByUser retrieves all itineraries owned by a user, newest first.
func (r *MongoItineraryRepo) ListByUser(userID string) ([]models.Itinerary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve itineraries: %w", err)
	}
	defer cursor.Close(ctx)

	var itineraries []models.Itinerary
	for cursor.Next(ctx) {
		var it models.Itinerary
		if err := cursor.Decode(&it); err != nil {
			return nil, fmt.Errorf("failed to decode itinerary: %w", err)
		}
		itineraries = append(itineraries, it)
	}
	return itineraries, nil
}

// Create inserts a new itinerary document.
func (r *MongoItineraryRepo) Create(it *models.Itinerary) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, it); err != nil {
		return fmt.Errorf("failed to create itinerary: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an itinerary document in a single write.
func (r *MongoItineraryRepo) Update(it *models.Itinerary) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	it.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":       it.Name,
		"start_date": it.StartDate,
		"end_date":   it.EndDate,
		"items":      it.Items,
		"updated_at": it.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": it.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update itinerary with id %s: %w", it.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("itinerary with id %s not found", it.ID)
	}
	return nil
}

// Delete removes an itinerary document by its ID.
func (r *MongoItineraryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete itinerary with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("itinerary with id %s not found", id)
	}
	return nil
}
