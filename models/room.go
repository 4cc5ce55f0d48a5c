package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomNumber    int            `json:"roomNumber" gorm:"primaryKey;autoIncrement:false"`
	Type          string         `json:"type" gorm:"index"`
	Amenities     pq.StringArray `json:"amenities" gorm:"type:text[]"`
	PricePerNight float64        `json:"pricePerNight"`
	Available     bool           `json:"available" gorm:"default:true"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsAvailable kiểm tra phòng còn trống hay không
func (r *Room) IsAvailable() bool {
	return r.Available
}

// SetAvailable cập nhật trạng thái trống của phòng
func (r *Room) SetAvailable(status bool) {
	r.Available = status
}

func (r *Room) ValidatePrice() error {
	if r.PricePerNight < 0 {
		return fmt.Errorf("invalid price: %.2f, must not be negative", r.PricePerNight)
	}
	return nil
}
