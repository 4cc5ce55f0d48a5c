package validator

import (
	"testing"
	"time"

	"stay/models"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange(date("2024-01-01"), date("2024-01-04")))

	// check-in == check-out: 0 đêm, không hợp lệ
	assert.Error(t, ValidateDateRange(date("2024-01-01"), date("2024-01-01")))

	assert.Error(t, ValidateDateRange(date("2024-01-04"), date("2024-01-01")))
}

func TestNormalizePaymentMethod(t *testing.T) {
	method, err := NormalizePaymentMethod("  Credit Card  ")
	assert.NoError(t, err)
	assert.Equal(t, "credit card", method)

	method, err = NormalizePaymentMethod("MOBILE WALLET")
	assert.NoError(t, err)
	assert.Equal(t, "mobile wallet", method)

	_, err = NormalizePaymentMethod("bitcoin")
	assert.Error(t, err)

	_, err = NormalizePaymentMethod("")
	assert.Error(t, err)
}

func TestValidateGuest(t *testing.T) {
	guest := &models.Guest{
		Name:          "Alice",
		Email:         "alice@example.com",
		ContactNumber: "0123456789",
		LoyaltyStatus: "Gold",
	}
	assert.NoError(t, ValidateGuest(guest))

	assert.Error(t, ValidateGuest(&models.Guest{Email: "alice@example.com", ContactNumber: "0123456789"}))
	assert.Error(t, ValidateGuest(&models.Guest{Name: "Alice", ContactNumber: "0123456789"}))
	assert.Error(t, ValidateGuest(&models.Guest{Name: "Alice", Email: "not-an-email", ContactNumber: "0123456789"}))
	assert.Error(t, ValidateGuest(&models.Guest{Name: "Alice", Email: "alice@example.com"}))

	guest.LoyaltyStatus = "VIP"
	assert.Error(t, ValidateGuest(guest))

	guest.LoyaltyStatus = "gold"
	assert.NoError(t, ValidateGuest(guest))
}

func TestValidateRoomType(t *testing.T) {
	knownTypes := []string{"Single", "Double", "Suite"}

	assert.NoError(t, ValidateRoomType("Single", knownTypes))
	assert.NoError(t, ValidateRoomType("single", knownTypes))
	assert.Error(t, ValidateRoomType("Penthouse", knownTypes))
	assert.Error(t, ValidateRoomType("", knownTypes))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	assert.NoError(t, ValidateStruct(payload{Email: "alice@example.com"}))
	assert.Error(t, ValidateStruct(payload{Email: "not-an-email"}))
}
