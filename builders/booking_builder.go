package builders

import (
	"time"

	"stay/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithGuest thêm thông tin khách
func (b *BookingBuilder) WithGuest(guestID uint) *BookingBuilder {
	b.booking.GuestID = guestID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomNumber int) *BookingBuilder {
	b.booking.RoomNumber = roomNumber
	return b
}

// WithStay thêm khoảng thời gian lưu trú
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
