package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Guest errors
	ErrCodeInvalidGuestID ErrorCode = "INVALID_GUEST_ID"
	ErrCodeGuestNotFound  ErrorCode = "GUEST_NOT_FOUND"
	ErrCodeGuestExists    ErrorCode = "GUEST_EXISTS"
	ErrCodeInvalidEmail   ErrorCode = "INVALID_EMAIL"

	// Room errors
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomNotAvailable ErrorCode = "ROOM_NOT_AVAILABLE"
	ErrCodeInvalidRoomType  ErrorCode = "INVALID_ROOM_TYPE"

	// Booking errors
	ErrCodeBookingNotFound  ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeBookingCancelled ErrorCode = "BOOKING_CANCELLED"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"

	// Payment errors
	ErrCodeInvalidPayment  ErrorCode = "INVALID_PAYMENT_METHOD"
	ErrCodeInvoicePaid     ErrorCode = "INVOICE_PAID"
	ErrCodeInvoiceNotFound ErrorCode = "INVOICE_NOT_FOUND"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Guest errors
	ErrGuestNotFound      = errors.New("guest not found")
	ErrGuestAlreadyExists = errors.New("guest already exists")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking already cancelled")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Payment errors
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
)
