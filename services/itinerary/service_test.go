package itinerary

import (
	"testing"

	destinationRepo "tourmate/database/repository/destination"
	"tourmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeItineraryRepo is an in-memory ItineraryRepository.
type fakeItineraryRepo struct {
	byID map[string]*models.Itinerary
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{byID: make(map[string]*models.Itinerary)}
}

func (r *fakeItineraryRepo) GetByID(id string) (*models.Itinerary, error) {
	it, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *it
	copied.Items = append([]models.ItineraryItem(nil), it.Items...)
	return &copied, nil
}

func (r *fakeItineraryRepo) ListByUser(userID string) ([]models.Itinerary, error) {
	var out []models.Itinerary
	for _, it := range r.byID {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeItineraryRepo) Create(it *models.Itinerary) error {
	copied := *it
	r.byID[it.ID] = &copied
	return nil
}

func (r *fakeItineraryRepo) Update(it *models.Itinerary) error {
	copied := *it
	r.byID[it.ID] = &copied
	return nil
}

func (r *fakeItineraryRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeDestinationRepo resolves every id to a fixed destination.
type fakeDestinationRepo struct {
	known map[string]*models.Destination
}

func (r *fakeDestinationRepo) GetByID(id string) (*models.Destination, error) {
	return r.known[id], nil
}
func (r *fakeDestinationRepo) GetAll(destinationRepo.DestinationFilter) ([]models.Destination, error) {
	return nil, nil
}
func (r *fakeDestinationRepo) Create(*models.Destination) error { return nil }
func (r *fakeDestinationRepo) Update(*models.Destination) error { return nil }
func (r *fakeDestinationRepo) Delete(string) error              { return nil }

// fakeHotelRepo resolves every id to a fixed hotel.
type fakeHotelRepo struct {
	known map[string]*models.Hotel
}

func (r *fakeHotelRepo) GetByID(id string) (*models.Hotel, error) { return r.known[id], nil }
func (r *fakeHotelRepo) GetAll(string) ([]models.Hotel, error)    { return nil, nil }
func (r *fakeHotelRepo) Create(*models.Hotel) error               { return nil }
func (r *fakeHotelRepo) Update(*models.Hotel) error               { return nil }
func (r *fakeHotelRepo) Delete(string) error                      { return nil }
func (r *fakeHotelRepo) SetAvgRating(string, float64) error       { return nil }

func newTestService() (*DefaultItineraryService, *fakeItineraryRepo) {
	repo := newFakeItineraryRepo()
	svc := &DefaultItineraryService{
		Repo: repo,
		Destinations: &fakeDestinationRepo{known: map[string]*models.Destination{
			"taj-mahal": {ID: "taj-mahal", Name: "Taj Mahal"},
		}},
		Hotels: &fakeHotelRepo{known: map[string]*models.Hotel{
			"oberoi": {ID: "oberoi", Name: "The Oberoi"},
		}},
	}
	return svc, repo
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Create("u1", CreateInput{})
	assert.True(t, IsValidation(err))
}

func TestCreateWithItemsValidatesWholeList(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create("u1", CreateInput{
		Name: "Golden Triangle",
		Items: []ItemInput{
			{Type: "Destination", RefID: "taj-mahal", Day: 1},
			{Type: "Hotel", RefID: "", Day: 1},
		},
	})
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.byID, "nothing should be persisted when any item is invalid")
}

func TestAddItemRejectsCaseInsensitiveDuplicate(t *testing.T) {
	svc, _ := newTestService()

	it, err := svc.Create("u1", CreateInput{
		Name:  "Agra Trip",
		Items: []ItemInput{{Type: "destination", RefID: "taj-mahal", Day: 1}},
	})
	require.NoError(t, err)

	_, err = svc.AddItem("u1", it.ID, ItemInput{Type: "DESTINATION", RefID: "taj-mahal", Day: 2})
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestAddItemNormalizesTypeAndPopulatesRef(t *testing.T) {
	svc, _ := newTestService()

	it, err := svc.Create("u1", CreateInput{Name: "Agra Trip"})
	require.NoError(t, err)

	updated, err := svc.AddItem("u1", it.ID, ItemInput{Type: "hotel", RefID: "oberoi", Day: 1})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)

	item := updated.Items[0]
	assert.Equal(t, models.ItemTypeHotel, item.Type)
	assert.NotEmpty(t, item.ItemID)
	require.NotNil(t, item.Ref)
	assert.Equal(t, "The Oberoi", item.Ref.Name)
}

func TestAddItemDanglingRefLeavesSnapshotNil(t *testing.T) {
	svc, _ := newTestService()

	it, err := svc.Create("u1", CreateInput{Name: "Mystery Trip"})
	require.NoError(t, err)

	updated, err := svc.AddItem("u1", it.ID, ItemInput{Type: "Destination", RefID: "nowhere", Day: 1})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Nil(t, updated.Items[0].Ref)
}

func TestOwnershipDistinctFromNotFound(t *testing.T) {
	svc, _ := newTestService()

	it, err := svc.Create("owner", CreateInput{Name: "Private Trip"})
	require.NoError(t, err)

	_, err = svc.GetByID("intruder", it.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID("owner", "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete("intruder", it.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateItemPartial(t *testing.T) {
	svc, _ := newTestService()

	start := "09:00"
	it, err := svc.Create("u1", CreateInput{
		Name: "Agra Trip",
		Items: []ItemInput{
			{Type: "Destination", RefID: "taj-mahal", Day: 1, StartTime: &start, Note: "sunrise visit"},
		},
	})
	require.NoError(t, err)
	itemID := it.Items[0].ItemID

	// Only day changes; start time and note survive.
	newDay := 3
	updated, err := svc.UpdateItem("u1", it.ID, itemID, ItemUpdate{Day: &newDay})
	require.NoError(t, err)
	item := updated.Items[0]
	assert.Equal(t, 3, item.Day)
	require.NotNil(t, item.StartTime)
	assert.Equal(t, "09:00", *item.StartTime)
	assert.Equal(t, "sunrise visit", item.Note)

	// An explicit empty string clears the optional field.
	empty := ""
	updated, err = svc.UpdateItem("u1", it.ID, itemID, ItemUpdate{StartTime: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.Items[0].StartTime)

	// An empty update is a successful no-op.
	updated, err = svc.UpdateItem("u1", it.ID, itemID, ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Items[0].Day)
}

func TestUpdateItemUnknownItem(t *testing.T) {
	svc, _ := newTestService()

	it, err := svc.Create("u1", CreateInput{Name: "Agra Trip"})
	require.NoError(t, err)

	_, err = svc.UpdateItem("u1", it.ID, "ghost-item", ItemUpdate{})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteItemPreservesSiblings(t *testing.T) {
	svc, _ := newTestService()

	it, err := svc.Create("u1", CreateInput{
		Name: "Multi Stop",
		Items: []ItemInput{
			{Type: "Destination", RefID: "taj-mahal", Day: 1},
			{Type: "Hotel", RefID: "oberoi", Day: 1},
			{Type: "Destination", RefID: "red-fort", Day: 2},
		},
	})
	require.NoError(t, err)
	victim := it.Items[1]

	err = svc.DeleteItem("u1", it.ID, victim.ItemID)
	require.NoError(t, err)

	got, err := svc.GetByID("u1", it.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, it.Items[0].ItemID, got.Items[0].ItemID)
	assert.Equal(t, it.Items[2].ItemID, got.Items[1].ItemID)
	assert.Equal(t, 1, got.Items[0].Day)
	assert.Equal(t, 2, got.Items[1].Day)
}

func TestUpdateReplacesItemListAtomically(t *testing.T) {
	svc, _ := newTestService()

	it, err := svc.Create("u1", CreateInput{
		Name:  "Agra Trip",
		Items: []ItemInput{{Type: "Destination", RefID: "taj-mahal", Day: 1}},
	})
	require.NoError(t, err)

	// Replacement list with an internal duplicate is rejected wholesale.
	dup := []ItemInput{
		{Type: "Hotel", RefID: "oberoi", Day: 1},
		{Type: "HOTEL", RefID: "oberoi", Day: 2},
	}
	_, err = svc.Update("u1", it.ID, UpdateInput{Items: &dup})
	assert.ErrorIs(t, err, ErrDuplicateItem)

	got, err := svc.GetByID("u1", it.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1, "failed replacement must not disturb the stored list")
	assert.Equal(t, "taj-mahal", got.Items[0].RefID)
}

func TestUpdateClearsDatesWithEmptyString(t *testing.T) {
	svc, _ := newTestService()

	start := "2026-10-01"
	it, err := svc.Create("u1", CreateInput{Name: "Autumn Trip", StartDate: &start})
	require.NoError(t, err)

	empty := ""
	updated, err := svc.Update("u1", it.ID, UpdateInput{StartDate: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.StartDate)
}

func TestListForUserEmpty(t *testing.T) {
	svc, _ := newTestService()
	list, err := svc.ListForUser("nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
