package models

import (
	"time"
)

type Guest struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Email         string    `json:"email" gorm:"unique"`
	ContactNumber string    `json:"contactNumber"`
	LoyaltyStatus string    `json:"loyaltyStatus"`
	Reservations  []Booking `json:"reservations,omitempty" gorm:"foreignKey:GuestID"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// AddReservation thêm booking vào cuối danh sách đặt phòng của khách,
// thứ tự chèn được giữ nguyên
func (g *Guest) AddReservation(booking Booking) {
	g.Reservations = append(g.Reservations, booking)
}

func (g *Guest) GetReservations() []Booking {
	return g.Reservations
}
