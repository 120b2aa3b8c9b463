package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeItemType(t *testing.T) {
	assert.Equal(t, ItemTypeDestination, NormalizeItemType("destination"))
	assert.Equal(t, ItemTypeDestination, NormalizeItemType("DESTINATION"))
	assert.Equal(t, ItemTypeHotel, NormalizeItemType("hotel"))
	assert.Equal(t, ItemTypeHotel, NormalizeItemType("HoTeL"))
	assert.Equal(t, "museum", NormalizeItemType("museum"))

	assert.True(t, IsValidItemType(ItemTypeDestination))
	assert.True(t, IsValidItemType(ItemTypeHotel))
	assert.False(t, IsValidItemType("museum"))
}

func TestItemKeyIsCaseInsensitiveOnType(t *testing.T) {
	a := ItineraryItem{Type: "Destination", RefID: "taj-mahal"}
	b := ItineraryItem{Type: "DESTINATION", RefID: "taj-mahal"}
	c := ItineraryItem{Type: "Hotel", RefID: "taj-mahal"}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
