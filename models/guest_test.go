package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddReservationKeepsOrder(t *testing.T) {
	guest := Guest{Name: "Bob", Email: "bob@example.com"}

	b1 := Booking{RoomNumber: 101, Status: BookingStatusConfirmed}
	b2 := Booking{RoomNumber: 102, Status: BookingStatusConfirmed}

	guest.AddReservation(b1)
	guest.AddReservation(b2)

	reservations := guest.GetReservations()
	assert.Len(t, reservations, 2)
	assert.Equal(t, 101, reservations[0].RoomNumber)
	assert.Equal(t, 102, reservations[1].RoomNumber)
}
