package hotelRepo

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

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	repo := &MongoHotelRepo{coll: database.Collection("hotels")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a hotel by its unique ID.
func (r *MongoHotelRepo) GetByID(id string) (*models.Hotel, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

// GetAll retrieves all hotels, optionally restricted to one city.
func (r *MongoHotelRepo) GetAll(cityID string) ([]models.Hotel, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if cityID != "" {
		query["city_id"] = cityID
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	for cursor.Next(ctx) {
		var h models.Hotel
		if err := cursor.Decode(&h); err != nil {
			return nil, fmt.Errorf("failed to decode hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

// Create inserts a new hotel document.
func (r *MongoHotelRepo) Create(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// Update modifies an existing hotel document.
func (r *MongoHotelRepo) Update(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	hotel.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": hotel.ID}, bson.M{"$set": hotel})
	if err != nil {
		return fmt.Errorf("failed to update hotel with id %s: %w", hotel.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("hotel with id %s not found", hotel.ID)
	}
	return nil
}

// Delete removes a hotel document by its ID.
func (r *MongoHotelRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete hotel with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("hotel with id %s not found", id)
	}
	return nil
}

// SetAvgRating stores a recomputed average rating.
func (r *MongoHotelRepo) SetAvgRating(id string, avg float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"avg_rating": avg, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for hotel %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("hotel with id %s not found", id)
	}
	return nil
}
