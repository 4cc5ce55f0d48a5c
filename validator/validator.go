package validator

import (
	"regexp"
	"strings"
	"time"

	"stay/constants"
	"stay/errors"
	"stay/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct validate struct theo các tag `validate`
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ValidateGuest validate thông tin khách
func ValidateGuest(guest *models.Guest) error {
	if guest.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if guest.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if guest.ContactNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	// Hạng thành viên để trống thì mặc định là None
	if guest.LoyaltyStatus != "" && !isKnownLoyaltyStatus(guest.LoyaltyStatus) {
		return errors.NewAppError(errors.ErrCodeValidation, "Hạng thành viên không hợp lệ: "+guest.LoyaltyStatus, nil)
	}

	return nil
}

func isKnownLoyaltyStatus(status string) bool {
	for _, known := range constants.LoyaltyStatuses {
		if strings.EqualFold(status, known) {
			return true
		}
	}
	return false
}

// ValidateDateRange kiểm tra ngày check-out phải sau ngày check-in.
// Hai ngày bằng nhau cũng không hợp lệ (0 đêm)
func ValidateDateRange(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày check-out phải sau ngày check-in", nil)
	}
	return nil
}

// NormalizePaymentMethod chuẩn hóa và kiểm tra phương thức thanh toán.
// Trả về phương thức ở dạng chữ thường đã trim nếu hợp lệ
func NormalizePaymentMethod(method string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(method))
	for _, allowed := range constants.AllowedPaymentMethods {
		if normalized == allowed {
			return normalized, nil
		}
	}
	return "", errors.NewAppError(errors.ErrCodeInvalidPayment,
		"Phương thức thanh toán không hợp lệ, chỉ chấp nhận Credit Card hoặc Mobile Wallet", nil)
}

// ValidateRoomType kiểm tra loại phòng có nằm trong danh sách loại đã biết không
func ValidateRoomType(roomType string, knownTypes []string) error {
	if roomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}
	for _, known := range knownTypes {
		if strings.EqualFold(roomType, known) {
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeInvalidRoomType, "Loại phòng không hợp lệ: "+roomType, nil)
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
