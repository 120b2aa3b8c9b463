package safetyRepo

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

// SafetyReviewRepository defines methods for safety review data access.
type SafetyReviewRepository interface {
	Create(review *models.SafetyReview) error
	// ListByDestination retrieves all safety reviews for one destination, newest first.
	ListByDestination(destinationID string) ([]models.SafetyReview, error)
}

// MongoSafetyReviewRepo implements SafetyReviewRepository using MongoDB.
type MongoSafetyReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoSafetyReviewRepo creates a new instance of SafetyReviewRepository using MongoDB.
func NewMongoSafetyReviewRepo() SafetyReviewRepository {
	repo := &MongoSafetyReviewRepo{coll: database.Collection("safety_reviews")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSafetyReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "destination_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new safety review document.
func (r *MongoSafetyReviewRepo) Create(review *models.SafetyReview) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create safety review: %w", err)
	}
	return nil
}

// ListByDestination retrieves all safety reviews for one destination, newest first.
func (r *MongoSafetyReviewRepo) ListByDestination(destinationID string) ([]models.SafetyReview, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"destination_id": destinationID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve safety reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.SafetyReview
	for cursor.Next(ctx) {
		var rev models.SafetyReview
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode safety review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}
