package services

import (
	"errors"
	"time"

	apperrors "stay/errors"
	"stay/models"
	"stay/validator"

	"gorm.io/gorm"
)

// Pay thanh toán toàn bộ hóa đơn theo mã hóa đơn.
// Phương thức thanh toán được chuẩn hóa và kiểm tra theo danh sách cho phép
func (s *PaymentService) Pay(invoiceCode, method string) (*models.Payment, error) {
	normalized, err := validator.NormalizePaymentMethod(method)
	if err != nil {
		return nil, err
	}

	var payment models.Payment

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.Where("invoice_code = ?", invoiceCode).First(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvoiceNotFound
			}
			return err
		}

		if invoice.Status == models.InvoiceStatusPaid {
			return apperrors.ErrInvoiceAlreadyPaid
		}

		payment = models.Payment{
			InvoiceID: invoice.ID,
			Amount:    invoice.TotalAmount,
			Method:    normalized,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		now := time.Now()
		invoice.PaidAmount = invoice.TotalAmount
		invoice.Status = models.InvoiceStatusPaid
		invoice.PaymentDate = &now
		return tx.Save(&invoice).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
