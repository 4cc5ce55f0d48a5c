package controllers

import (
	"fmt"

	"stay/dto"
	"stay/response"
	"stay/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	facade *services.BookingFacade
}

func NewPaymentController(facade *services.BookingFacade) *PaymentController {
	return &PaymentController{facade: facade}
}

// CreatePayment thanh toán hóa đơn bằng Credit Card hoặc Mobile Wallet
// @Summary Thanh toán hóa đơn
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Thông tin thanh toán"
// @Success 200 {object} response.Response
// @Router /payments [post]
func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payment, err := ctrl.facade.PayInvoice(req.InvoiceCode, req.Method)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.PaymentResponse{
		InvoiceCode: req.InvoiceCode,
		Amount:      payment.Amount,
		Method:      payment.Method,
		Message:     fmt.Sprintf("Payment of $%.2f received via %s.", payment.Amount, payment.Method),
	})
}
