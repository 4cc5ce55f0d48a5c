package constants

// Payment methods
const (
	PaymentMethodCreditCard   = "credit card"
	PaymentMethodMobileWallet = "mobile wallet"
)

// AllowedPaymentMethods danh sách phương thức thanh toán được chấp nhận
var AllowedPaymentMethods = []string{
	PaymentMethodCreditCard,
	PaymentMethodMobileWallet,
}

// LoyaltyStatuses danh sách hạng thành viên hợp lệ
var LoyaltyStatuses = []string{"None", "Silver", "Gold", "Platinum"}
