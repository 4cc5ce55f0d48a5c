package services

import (
	"testing"

	"stay/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGuestEmail(t *testing.T) {
	// Email được chuẩn hóa trước khi so trùng, nên "  alice@example.com  "
	// và "alice@example.com" là cùng một tài khoản
	guest := &models.Guest{Name: "Alice", Email: "  alice@example.com  "}

	normalizeGuestEmail(guest)

	assert.Equal(t, "alice@example.com", guest.Email)
}

func TestNormalizeGuestEmailNoop(t *testing.T) {
	guest := &models.Guest{Name: "Bob", Email: "bob@example.com"}

	normalizeGuestEmail(guest)

	assert.Equal(t, "bob@example.com", guest.Email)
}
