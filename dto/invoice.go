package dto

// InvoiceResponse là DTO cho response của invoice
type InvoiceResponse struct {
	ID            uint    `json:"id"`
	InvoiceCode   string  `json:"invoiceCode"`
	BookingID     uint    `json:"bookingId"`
	Guest         string  `json:"guest"`
	Room          int     `json:"room"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	Total         float64 `json:"total"`
	Status        int     `json:"status"`
	PaymentDate   *string `json:"paymentDate,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}
