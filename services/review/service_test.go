package review

import (
	"testing"

	destinationRepo "tourmate/database/repository/destination"
	"tourmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews []models.Review
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) ListByTarget(targetType, targetID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.TargetType == targetType && rev.TargetID == targetID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) GetAll() ([]models.Review, error) { return r.reviews, nil }
func (r *fakeReviewRepo) Delete(string) error              { return nil }

type fakeSafetyRepo struct {
	reviews []models.SafetyReview
}

func (r *fakeSafetyRepo) Create(review *models.SafetyReview) error {
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeSafetyRepo) ListByDestination(destinationID string) ([]models.SafetyReview, error) {
	var out []models.SafetyReview
	for _, rev := range r.reviews {
		if rev.DestinationID == destinationID {
			out = append(out, rev)
		}
	}
	return out, nil
}

type fakeDestRepo struct {
	known map[string]*models.Destination
}

func (r *fakeDestRepo) GetByID(id string) (*models.Destination, error) { return r.known[id], nil }
func (r *fakeDestRepo) GetAll(destinationRepo.DestinationFilter) ([]models.Destination, error) {
	return nil, nil
}
func (r *fakeDestRepo) Create(*models.Destination) error { return nil }
func (r *fakeDestRepo) Update(*models.Destination) error { return nil }
func (r *fakeDestRepo) Delete(string) error              { return nil }

type fakeHotelRatingRepo struct {
	known   map[string]*models.Hotel
	ratings map[string]float64
}

func (r *fakeHotelRatingRepo) GetByID(id string) (*models.Hotel, error) { return r.known[id], nil }
func (r *fakeHotelRatingRepo) GetAll(string) ([]models.Hotel, error)    { return nil, nil }
func (r *fakeHotelRatingRepo) Create(*models.Hotel) error               { return nil }
func (r *fakeHotelRatingRepo) Update(*models.Hotel) error               { return nil }
func (r *fakeHotelRatingRepo) Delete(string) error                      { return nil }
func (r *fakeHotelRatingRepo) SetAvgRating(id string, avg float64) error {
	r.ratings[id] = avg
	return nil
}

func newTestReviewService() (*DefaultReviewService, *fakeHotelRatingRepo) {
	hotels := &fakeHotelRatingRepo{
		known: map[string]*models.Hotel{
			"oberoi": {ID: "oberoi", Name: "The Oberoi"},
		},
		ratings: make(map[string]float64),
	}
	svc := &DefaultReviewService{
		Reviews: &fakeReviewRepo{},
		Safety:  &fakeSafetyRepo{},
		Destinations: &fakeDestRepo{known: map[string]*models.Destination{
			"taj-mahal": {ID: "taj-mahal", Name: "Taj Mahal"},
		}},
		Hotels: hotels,
	}
	return svc, hotels
}

func TestCreateHotelReviewRecomputesRating(t *testing.T) {
	svc, hotels := newTestReviewService()

	_, err := svc.Create("u1", models.Review{TargetType: models.TargetHotel, TargetID: "oberoi", Rating: 4})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, hotels.ratings["oberoi"], 0.001)

	_, err = svc.Create("u2", models.Review{TargetType: models.TargetHotel, TargetID: "oberoi", Rating: 5})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, hotels.ratings["oberoi"], 0.001)
}

func TestCreateDestinationReviewSkipsRatingRecompute(t *testing.T) {
	svc, hotels := newTestReviewService()

	created, err := svc.Create("u1", models.Review{TargetType: models.TargetDestination, TargetID: "taj-mahal", Rating: 5, Comment: "breathtaking"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)
	assert.Empty(t, hotels.ratings)
}

func TestCreateReviewValidation(t *testing.T) {
	svc, _ := newTestReviewService()

	_, err := svc.Create("u1", models.Review{TargetType: models.TargetHotel, TargetID: "oberoi", Rating: 0})
	assert.True(t, IsValidation(err))

	_, err = svc.Create("u1", models.Review{TargetType: models.TargetHotel, TargetID: "oberoi", Rating: 6})
	assert.True(t, IsValidation(err))

	_, err = svc.Create("u1", models.Review{TargetType: "restaurant", TargetID: "x", Rating: 3})
	assert.True(t, IsValidation(err))

	_, err = svc.Create("u1", models.Review{TargetType: models.TargetHotel, TargetID: "ghost", Rating: 3})
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestSafetyReviewFlow(t *testing.T) {
	svc, _ := newTestReviewService()

	_, err := svc.CreateSafety("u1", models.SafetyReview{DestinationID: "taj-mahal", SafetyRating: 4, Comment: "well patrolled"})
	require.NoError(t, err)

	_, err = svc.CreateSafety("u1", models.SafetyReview{DestinationID: "ghost", SafetyRating: 4})
	assert.ErrorIs(t, err, ErrTargetNotFound)

	_, err = svc.CreateSafety("u1", models.SafetyReview{DestinationID: "taj-mahal", SafetyRating: 9})
	assert.True(t, IsValidation(err))

	list, err := svc.ListSafetyByDestination("taj-mahal")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListByTargetValidatesType(t *testing.T) {
	svc, _ := newTestReviewService()

	_, err := svc.ListByTarget("restaurant", "x")
	assert.True(t, IsValidation(err))

	list, err := svc.ListByTarget(models.TargetDestination, "taj-mahal")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
