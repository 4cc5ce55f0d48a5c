package controllers

import (
	"strconv"
	"time"

	"stay/config"
	"stay/dto"
	"stay/models"
	"stay/response"
	"stay/services"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	facade *services.BookingFacade
}

func NewInvoiceController(facade *services.BookingFacade) *InvoiceController {
	return &InvoiceController{facade: facade}
}

func convertToInvoiceResponse(invoice *models.Invoice) dto.InvoiceResponse {
	var paymentDate *string
	if invoice.PaymentDate != nil {
		formatted := invoice.PaymentDate.Format(time.RFC3339)
		paymentDate = &formatted
	}
	return dto.InvoiceResponse{
		ID:            invoice.ID,
		InvoiceCode:   invoice.InvoiceCode,
		BookingID:     invoice.BookingID,
		Guest:         invoice.GuestName,
		Room:          invoice.RoomNumber,
		Nights:        invoice.Nights,
		PricePerNight: invoice.PricePerNight,
		Total:         invoice.TotalAmount,
		Status:        invoice.Status,
		PaymentDate:   paymentDate,
		CreatedAt:     invoice.CreatedAt.Format(time.RFC3339),
	}
}

// GenerateInvoice xuất hóa đơn cho booking. Gọi lại trả về hóa đơn đã xuất
// @Summary Xuất hóa đơn
// @Tags invoices
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Router /bookings/{id}/invoice [post]
func (ctrl *InvoiceController) GenerateInvoice(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID <= 0 {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	invoice, err := ctrl.facade.GenerateInvoice(uint(bookingID), config.AllowInvoiceAfterCancellation())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, convertToInvoiceResponse(invoice))
}
