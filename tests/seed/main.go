// Seeds the super-admin account and the India city reference set. Run once
// against a fresh database:
//
//	go run ./tests/seed
package main

import (
	"context"
	"log"
	"os"
	"time"

	"tourmate/config"
	"tourmate/database"
	"tourmate/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// indiaCities is the default Budget Estimator ranking universe.
var indiaCities = []struct {
	Name  string
	State string
	Lat   float64
	Lng   float64
}{
	{"Jaipur", "Rajasthan", 26.9124, 75.7873},
	{"Udaipur", "Rajasthan", 24.5854, 73.7125},
	{"Goa", "Goa", 15.2993, 74.1240},
	{"Manali", "Himachal Pradesh", 32.2396, 77.1887},
	{"Shimla", "Himachal Pradesh", 31.1048, 77.1734},
	{"Rishikesh", "Uttarakhand", 30.0869, 78.2676},
	{"Varanasi", "Uttar Pradesh", 25.3176, 82.9739},
	{"Agra", "Uttar Pradesh", 27.1767, 78.0081},
	{"Mumbai", "Maharashtra", 19.0760, 72.8777},
	{"Kochi", "Kerala", 9.9312, 76.2673},
	{"Munnar", "Kerala", 10.0889, 77.0595},
	{"Darjeeling", "West Bengal", 27.0360, 88.2627},
	{"Leh", "Ladakh", 34.1526, 77.5771},
	{"Hampi", "Karnataka", 15.3350, 76.4600},
	{"Pondicherry", "Puducherry", 11.9416, 79.8083},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedSuperAdmin(ctx)
	seedCities(ctx)
}

// seedSuperAdmin creates the admin account unless one already exists for the
// configured email.
func seedSuperAdmin(ctx context.Context) {
	email := os.Getenv("SUPER_ADMIN_EMAIL")
	if email == "" {
		email = "admin@tourmate.in"
	}
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SUPER_ADMIN_PASSWORD must be set")
	}

	users := database.Collection("users")
	n, err := users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}
	if n > 0 {
		log.Printf("Super admin %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now().UTC()
	admin := models.User{
		ID:           uuid.New().String(),
		Name:         "TourMate Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := users.InsertOne(ctx, admin); err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}
	log.Printf("Created super admin %s", email)
}

// seedCities inserts the India city set, skipping names that already exist.
func seedCities(ctx context.Context) {
	cities := database.Collection("cities")

	inserted := 0
	for _, c := range indiaCities {
		n, err := cities.CountDocuments(ctx, bson.M{"name": c.Name, "state": c.State})
		if err != nil {
			log.Fatalf("Failed to check for existing city %s: %v", c.Name, err)
		}
		if n > 0 {
			continue
		}

		now := time.Now().UTC()
		city := models.City{
			ID:          uuid.New().String(),
			Name:        c.Name,
			State:       c.State,
			Coordinates: models.Coordinates{Lat: c.Lat, Lng: c.Lng},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := cities.InsertOne(ctx, city); err != nil {
			log.Fatalf("Failed to insert city %s: %v", c.Name, err)
		}
		inserted++
	}
	log.Printf("Seeded %d cities (%d already present)", inserted, len(indiaCities)-inserted)
}
