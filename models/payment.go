package models

import "time"

type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	InvoiceID uint      `json:"invoiceId"`
	Invoice   Invoice   `json:"invoice" gorm:"foreignKey:InvoiceID"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"` // credit card / mobile wallet
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
