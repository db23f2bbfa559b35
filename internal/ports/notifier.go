package ports

// Notifier delivers a message through one channel (email, SMS, ...).
// Variants must accept any message the others accept.
type Notifier interface {
	Send(message string)
}
