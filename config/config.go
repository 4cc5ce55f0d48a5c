package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// AllowInvoiceAfterCancellation cho biết có được xuất hóa đơn cho booking
// đã hủy hay không. Mặc định cho phép (phục vụ tra cứu hóa đơn cũ)
func AllowInvoiceAfterCancellation() bool {
	value := os.Getenv("ALLOW_INVOICE_AFTER_CANCELLATION")
	if value == "" {
		return true
	}
	allowed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: giá trị ALLOW_INVOICE_AFTER_CANCELLATION không hợp lệ: %q", value)
		return true
	}
	return allowed
}
