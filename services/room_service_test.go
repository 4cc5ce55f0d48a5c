package services

import (
	"testing"

	"stay/models"

	"github.com/stretchr/testify/assert"
)

func testRooms() []models.Room {
	return []models.Room{
		{RoomNumber: 101, Type: "Single", PricePerNight: 100, Available: true},
		{RoomNumber: 102, Type: "Double", PricePerNight: 150, Available: true},
		{RoomNumber: 103, Type: "Single", PricePerNight: 100, Available: false},
	}
}

func TestFilterRooms(t *testing.T) {
	// Tìm "single" không phân biệt hoa thường, chỉ trả về phòng còn trống
	matched := FilterRooms(testRooms(), "single")
	assert.Len(t, matched, 1)
	assert.Equal(t, 101, matched[0].RoomNumber)
}

func TestFilterRoomsNoMatch(t *testing.T) {
	assert.Empty(t, FilterRooms(testRooms(), "Suite"))
}

func TestFilterRoomsSkipsUnavailable(t *testing.T) {
	rooms := testRooms()
	rooms[0].SetAvailable(false)
	assert.Empty(t, FilterRooms(rooms, "Single"))
}

func TestKnownRoomTypes(t *testing.T) {
	types := KnownRoomTypes(testRooms())
	assert.Equal(t, []string{"Single", "Double"}, types)
}

func TestSuggestRoomType(t *testing.T) {
	knownTypes := []string{"Single", "Double", "Suite"}

	assert.Equal(t, "Single", SuggestRoomType("Sngle", knownTypes))
	assert.Equal(t, "Suite", SuggestRoomType("suite ", knownTypes))
	assert.Equal(t, "", SuggestRoomType("apartment", knownTypes))
	assert.Equal(t, "", SuggestRoomType("x", nil))
}
