package services

import (
	"testing"

	apperrors "stay/errors"
	"stay/models"

	"github.com/stretchr/testify/assert"
)

func TestEnsureBookableRejectsOccupiedRoom(t *testing.T) {
	room := &models.Room{RoomNumber: 101, Type: "Single", PricePerNight: 100, Available: false}

	err := ensureBookable(room)

	assert.ErrorIs(t, err, apperrors.ErrRoomNotAvailable)
}

func TestEnsureBookableAllowsFreeRoom(t *testing.T) {
	room := &models.Room{RoomNumber: 102, Type: "Double", PricePerNight: 150, Available: true}

	assert.NoError(t, ensureBookable(room))
}

func TestEnsureBookableAfterCancellation(t *testing.T) {
	// Phòng bị chiếm không đặt được, sau khi hủy booking thì đặt lại được
	room := models.Room{RoomNumber: 101, Type: "Single", PricePerNight: 100, Available: false}
	assert.ErrorIs(t, ensureBookable(&room), apperrors.ErrRoomNotAvailable)

	room.SetAvailable(true)
	assert.NoError(t, ensureBookable(&room))
}
