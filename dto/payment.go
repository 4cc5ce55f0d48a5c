package dto

// CreatePaymentRequest là DTO cho request thanh toán hóa đơn
type CreatePaymentRequest struct {
	InvoiceCode string `json:"invoiceCode" binding:"required"`
	Method      string `json:"method" binding:"required"` // Credit Card / Mobile Wallet
}

// PaymentResponse là DTO cho response thanh toán
type PaymentResponse struct {
	InvoiceCode string  `json:"invoiceCode"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Message     string  `json:"message"`
}
