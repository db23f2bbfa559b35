package ports

// PaymentLogger records a payment message.
type PaymentLogger interface {
	Log(message string)
}
