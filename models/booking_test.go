package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func newTestRoom() Room {
	return Room{
		RoomNumber:    101,
		Type:          "Single",
		Amenities:     []string{"WiFi", "TV"},
		PricePerNight: 100,
		Available:     true,
	}
}

func TestRoomAvailability(t *testing.T) {
	room := newTestRoom()
	assert.True(t, room.IsAvailable())

	room.SetAvailable(false)
	assert.False(t, room.IsAvailable())

	room.SetAvailable(true)
	assert.True(t, room.IsAvailable())
}

func TestGenerateInvoice(t *testing.T) {
	guest := Guest{Name: "Alice"}
	booking := Booking{
		Guest:        &guest,
		Room:         newTestRoom(),
		RoomNumber:   101,
		CheckInDate:  date("2024-01-01"),
		CheckOutDate: date("2024-01-04"),
		Status:       BookingStatusConfirmed,
	}

	invoice := booking.GenerateInvoice()
	assert.Equal(t, 3, invoice.Nights)
	assert.Equal(t, float64(300), invoice.TotalAmount)
	assert.Equal(t, float64(100), invoice.PricePerNight)
	assert.Equal(t, "Alice", invoice.GuestName)
	assert.Equal(t, 101, invoice.RoomNumber)
}

func TestGenerateInvoiceAfterCancellation(t *testing.T) {
	booking := Booking{
		Room:         newTestRoom(),
		RoomNumber:   101,
		CheckInDate:  date("2024-01-01"),
		CheckOutDate: date("2024-01-04"),
		Status:       BookingStatusConfirmed,
	}
	booking.Room.SetAvailable(false)

	_, err := booking.Cancel()
	assert.NoError(t, err)

	// Hủy xong vẫn tính được hóa đơn
	invoice := booking.GenerateInvoice()
	assert.Equal(t, float64(300), invoice.TotalAmount)
}

func TestCancelBooking(t *testing.T) {
	booking := Booking{
		Room:         newTestRoom(),
		RoomNumber:   101,
		CheckInDate:  date("2024-03-01"),
		CheckOutDate: date("2024-03-03"),
		Status:       BookingStatusConfirmed,
	}
	booking.Room.SetAvailable(false)

	assert.Equal(t, "Confirmed", booking.GetStatus())

	message, err := booking.Cancel()
	assert.NoError(t, err)
	assert.Equal(t, "Booking for room 101 cancelled.", message)
	assert.Equal(t, "Cancelled", booking.GetStatus())
	assert.True(t, booking.Room.IsAvailable())
}

func TestCancelBookingTwice(t *testing.T) {
	booking := Booking{
		Room:         newTestRoom(),
		RoomNumber:   101,
		CheckInDate:  date("2024-03-01"),
		CheckOutDate: date("2024-03-03"),
		Status:       BookingStatusConfirmed,
	}
	booking.Room.SetAvailable(false)

	_, err := booking.Cancel()
	assert.NoError(t, err)

	// Hủy lần hai báo lỗi nhưng trạng thái không đổi
	_, err = booking.Cancel()
	assert.Error(t, err)
	assert.Equal(t, "Cancelled", booking.GetStatus())
	assert.True(t, booking.Room.IsAvailable())
}

func TestBookingStateTransitions(t *testing.T) {
	booking := &Booking{Status: BookingStatusConfirmed}

	state := GetBookingState(booking.Status)
	assert.NoError(t, state.Cancel(booking))
	assert.Equal(t, BookingStatusCancelled, booking.Status)

	state = GetBookingState(booking.Status)
	assert.Error(t, state.Cancel(booking))
}

func TestBookingStatusText(t *testing.T) {
	assert.Equal(t, "Confirmed", BookingStatusText(BookingStatusConfirmed))
	assert.Equal(t, "Cancelled", BookingStatusText(BookingStatusCancelled))
	assert.Equal(t, "Unknown", BookingStatusText(99))
}

func TestBookingScenario(t *testing.T) {
	room := Room{
		RoomNumber:    101,
		Type:          "Single",
		Amenities:     []string{"WiFi"},
		PricePerNight: 100,
		Available:     true,
	}
	guest := Guest{Name: "Alice", Email: "alice@example.com"}

	booking := Booking{
		Guest:        &guest,
		Room:         room,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  date("2024-03-01"),
		CheckOutDate: date("2024-03-03"),
		Status:       BookingStatusConfirmed,
	}

	room.SetAvailable(false)
	guest.AddReservation(booking)

	assert.Len(t, guest.GetReservations(), 1)
	assert.False(t, room.IsAvailable())

	invoice := booking.GenerateInvoice()
	assert.Equal(t, 2, invoice.Nights)
	assert.Equal(t, float64(200), invoice.TotalAmount)
}
