package dto

import "time"

// CreateGuestRequest là DTO cho request tạo tài khoản khách
type CreateGuestRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	LoyaltyStatus string `json:"loyaltyStatus"`
}

// GuestResponse là DTO cho response thông tin khách
type GuestResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber"`
	LoyaltyStatus string    `json:"loyaltyStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
