package store

// Conversion ENUMs
const (
	ConversionStatusPending  = "pending"
	ConversionStatusApproved = "approved"
	ConversionStatusRejected = "rejected"
)

// Withdrawal Request ENUMs
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusPaid     = "paid"
	WithdrawalStatusRejected = "rejected"
)

const (
	PaymentMethodBank   = "bank"
	PaymentMethodCrypto = "crypto"
	PaymentMethodPaypal = "paypal"
)
