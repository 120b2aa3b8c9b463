package stateRepo

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

// StateRepository defines methods for state data access.
type StateRepository interface {
	GetAll() ([]models.State, error)
	GetByCode(code string) (*models.State, error)
	Create(state *models.State) error
	Delete(id string) error
}

// MongoStateRepo implements StateRepository using MongoDB.
type MongoStateRepo struct {
	coll *mongo.Collection
}

// NewMongoStateRepo creates a new instance of StateRepository using MongoDB.
func NewMongoStateRepo() StateRepository {
	repo := &MongoStateRepo{coll: database.Collection("states")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStateRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves all states.
func (r *MongoStateRepo) GetAll() ([]models.State, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve states: %w", err)
	}
	defer cursor.Close(ctx)

	var states []models.State
	for cursor.Next(ctx) {
		var s models.State
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode state: %w", err)
		}
		states = append(states, s)
	}
	return states, nil
}

// GetByCode retrieves a state by its unique code.
func (r *MongoStateRepo) GetByCode(code string) (*models.State, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var state models.State
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&state); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch state with code %s: %w", code, err)
	}
	return &state, nil
}

// Create inserts a new state document.
func (r *MongoStateRepo) Create(state *models.State) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	state.CreatedAt = now
	state.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, state); err != nil {
		return fmt.Errorf("failed to create state: %w", err)
	}
	return nil
}

// Delete removes a state document by its ID.
func (r *MongoStateRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete state with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("state with id %s not found", id)
	}
	return nil
}
