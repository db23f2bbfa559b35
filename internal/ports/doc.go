// Package ports defines the capabilities the payment core depends on.
//
// Each capability is a small interface; concrete variants live in
// internal/adapters. The application layer (internal/app) only ever sees
// these interfaces, and receives implementations through its constructor.
//
// # Port Interfaces
//
//   - [DiscountPolicy]: adjusts an amount before payment
//   - [Payable]: performs a payment
//   - [OnlinePayable]: validates a card; only card-based methods provide it
//   - [Notifier]: delivers a message over one channel
//   - [PaymentLogger]: records a payment message
//   - [Logger]: structured diagnostics
package ports
