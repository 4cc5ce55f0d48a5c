package dto

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	GuestID      uint   `json:"guestId" binding:"required"`
	RoomNumber   int    `json:"roomNumber" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`  // YYYY-MM-DD
	CheckOutDate string `json:"checkOutDate" binding:"required"` // YYYY-MM-DD
}

// BookingResponse là DTO cho response thông tin booking
type BookingResponse struct {
	ID           uint    `json:"id"`
	GuestID      uint    `json:"guestId"`
	GuestName    string  `json:"guestName"`
	RoomNumber   int     `json:"roomNumber"`
	RoomType     string  `json:"roomType"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Status       string  `json:"status"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"totalPrice"`
}

// CancelBookingResponse là DTO cho response hủy booking
type CancelBookingResponse struct {
	ID      uint   `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
