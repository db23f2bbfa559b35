package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt is the outcome of one executed payment.
type Receipt struct {
	// ID identifies the execution in logs and notifications.
	ID uuid.UUID

	// Amount is the amount requested before any discount.
	Amount decimal.Decimal

	// FinalAmount is the amount actually paid.
	FinalAmount decimal.Decimal
}

// NewReceipt creates a receipt with a fresh ID.
func NewReceipt(amount, finalAmount decimal.Decimal) Receipt {
	return Receipt{
		ID:          uuid.New(),
		Amount:      amount,
		FinalAmount: finalAmount,
	}
}

// Discounted returns the amount taken off by the discount policy.
func (r Receipt) Discounted() decimal.Decimal {
	return r.Amount.Sub(r.FinalAmount)
}
