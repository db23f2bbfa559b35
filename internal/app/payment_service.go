// Package app contains the payment use cases. It depends only on
// internal/ports; every collaborator is handed in by the caller.
package app

import (
	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

// PaymentService charges an amount through a payment method, announces it
// through a notifier and records it with a payment logger.
//
// Collaborators are fixed at construction and never replaced.
type PaymentService struct {
	method   ports.Payable
	notifier ports.Notifier
	record   ports.PaymentLogger
	logger   ports.Logger
}

// Option configures optional behavior of a PaymentService.
type Option func(*PaymentService)

// WithLogger sets the structured diagnostics logger. Defaults to a no-op.
func WithLogger(logger ports.Logger) Option {
	return func(s *PaymentService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewPaymentService wires a PaymentService from its collaborators.
// It panics if any of them is nil: a missing collaborator is a wiring bug.
func NewPaymentService(method ports.Payable, notifier ports.Notifier, record ports.PaymentLogger, opts ...Option) *PaymentService {
	if method == nil {
		panic("app: NewPaymentService called with nil payment method")
	}
	if notifier == nil {
		panic("app: NewPaymentService called with nil notifier")
	}
	if record == nil {
		panic("app: NewPaymentService called with nil payment logger")
	}

	s := &PaymentService{
		method:   method,
		notifier: notifier,
		record:   record,
		logger:   ports.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExecutePayment applies discount to amount, pays the result, sends the
// confirmation and logs it, in that order and exactly once each.
func (s *PaymentService) ExecutePayment(amount decimal.Decimal, discount ports.DiscountPolicy) domain.Receipt {
	if discount == nil {
		panic("app: ExecutePayment called with nil discount policy")
	}

	final := discount.Apply(amount)
	receipt := domain.NewReceipt(amount, final)

	s.method.Pay(final)
	s.notifier.Send("Payment of " + domain.FormatAmount(final) + " successful")
	s.record.Log("Payment executed: " + domain.FormatAmount(final))

	s.logger.Debug("payment executed",
		ports.String("payment_id", receipt.ID.String()),
		ports.Amount("amount", amount),
		ports.Amount("final_amount", final))

	return receipt
}
