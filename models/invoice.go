package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Invoice status constants
const (
	InvoiceStatusUnpaid = 0
	InvoiceStatusPaid   = 1
)

type Invoice struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	InvoiceCode   string     `json:"invoiceCode" gorm:"unique;size:20"` // Mã hóa đơn duy nhất
	BookingID     uint       `json:"bookingId"`
	Booking       Booking    `json:"booking" gorm:"foreignKey:BookingID"`
	GuestName     string     `json:"guestName"`
	RoomNumber    int        `json:"roomNumber"`
	Nights        int        `json:"nights"`
	PricePerNight float64    `json:"pricePerNight"`
	TotalAmount   float64    `json:"totalAmount"`
	PaidAmount    float64    `json:"paidAmount"`
	Status        int        `json:"status"` // 0: Chưa thanh toán, 1: Đã thanh toán
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	invoice.InvoiceCode = fmt.Sprintf("STY%d", time.Now().Unix())

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("InvoiceCode đã tồn tại, hãy thử lại")
	}
	return nil
}
