package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")

	assert.Equal(t, "localhost:6379", GetEnv("REDIS_ADDR"))
	assert.Equal(t, "", GetEnv("REDIS_KHONG_TON_TAI"))
}

func TestAllowInvoiceAfterCancellation(t *testing.T) {
	// Mặc định cho phép khi biến môi trường không được đặt
	t.Setenv("ALLOW_INVOICE_AFTER_CANCELLATION", "")
	assert.True(t, AllowInvoiceAfterCancellation())

	t.Setenv("ALLOW_INVOICE_AFTER_CANCELLATION", "false")
	assert.False(t, AllowInvoiceAfterCancellation())

	t.Setenv("ALLOW_INVOICE_AFTER_CANCELLATION", "true")
	assert.True(t, AllowInvoiceAfterCancellation())

	// Giá trị không hợp lệ rơi về mặc định
	t.Setenv("ALLOW_INVOICE_AFTER_CANCELLATION", "maybe")
	assert.True(t, AllowInvoiceAfterCancellation())
}
