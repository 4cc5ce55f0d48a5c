package builders

import (
	"testing"
	"time"

	"stay/models"

	"github.com/stretchr/testify/assert"
)

func TestBookingBuilder(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	booking := NewBookingBuilder().
		WithGuest(7).
		WithRoom(101).
		WithStay(checkIn, checkOut).
		WithStatus(models.BookingStatusConfirmed).
		Build()

	assert.Equal(t, uint(7), booking.GuestID)
	assert.Equal(t, 101, booking.RoomNumber)
	assert.Equal(t, checkIn, booking.CheckInDate)
	assert.Equal(t, checkOut, booking.CheckOutDate)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}
