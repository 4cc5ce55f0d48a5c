package models

import (
	"fmt"
	"time"
)

// Booking status constants
const (
	BookingStatusConfirmed = 0
	BookingStatusCancelled = 1
)

type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	GuestID      uint      `json:"guestId"`
	Guest        *Guest    `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	RoomNumber   int       `json:"roomNumber"`
	Room         Room      `json:"room" gorm:"foreignKey:RoomNumber;references:RoomNumber"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights tính số đêm lưu trú (số ngày nguyên giữa check-out và check-in)
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// GenerateInvoice tính hóa đơn từ booking: tổng tiền = số đêm x giá mỗi đêm.
// Không kiểm tra trạng thái, gọi được cả sau khi hủy
func (b *Booking) GenerateInvoice() Invoice {
	nights := b.Nights()
	guestName := ""
	if b.Guest != nil {
		guestName = b.Guest.Name
	}
	return Invoice{
		BookingID:     b.ID,
		GuestName:     guestName,
		RoomNumber:    b.RoomNumber,
		Nights:        nights,
		PricePerNight: b.Room.PricePerNight,
		TotalAmount:   float64(nights) * b.Room.PricePerNight,
	}
}

// Cancel hủy booking theo state machine và trả phòng về trạng thái trống.
// Booking đã hủy thì không hủy lại được
func (b *Booking) Cancel() (string, error) {
	state := GetBookingState(b.Status)
	if err := state.Cancel(b); err != nil {
		return "", err
	}
	b.Room.SetAvailable(true)
	return fmt.Sprintf("Booking for room %d cancelled.", b.RoomNumber), nil
}

func (b *Booking) GetStatus() string {
	return BookingStatusText(b.Status)
}

// BookingStatusText trả về tên trạng thái của booking
func BookingStatusText(status int) string {
	switch status {
	case BookingStatusConfirmed:
		return "Confirmed"
	case BookingStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
