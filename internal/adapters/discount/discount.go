// Package discount provides the DiscountPolicy variants.
//
// Each variant lives in its own type; adding one never touches the others or
// the payment service.
package discount

import (
	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

var (
	// DefaultFactor is the multiplier applied by a zero PercentageDiscount.
	DefaultFactor = decimal.RequireFromString("0.9")

	// DefaultOff is the amount subtracted by a zero FixedDiscount.
	DefaultOff = decimal.NewFromInt(10)
)

var (
	_ ports.DiscountPolicy = NoDiscount{}
	_ ports.DiscountPolicy = PercentageDiscount{}
	_ ports.DiscountPolicy = FixedDiscount{}
)

// NoDiscount returns every amount unchanged.
type NoDiscount struct{}

// Apply returns amount.
func (NoDiscount) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount
}

// PercentageDiscount scales the amount by a factor in (0, 1].
// The zero value uses DefaultFactor.
type PercentageDiscount struct {
	factor decimal.Decimal
}

// NewPercentageDiscount returns a PercentageDiscount for factor.
func NewPercentageDiscount(factor decimal.Decimal) (PercentageDiscount, error) {
	if err := checkFactor(factor); err != nil {
		return PercentageDiscount{}, err
	}
	return PercentageDiscount{factor: factor}, nil
}

// Apply returns amount * factor.
func (d PercentageDiscount) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(d.Factor())
}

// Factor returns the effective multiplier.
func (d PercentageDiscount) Factor() decimal.Decimal {
	if d.factor.IsZero() {
		return DefaultFactor
	}
	return d.factor
}

// FixedDiscount subtracts a fixed amount, never going below zero.
// The zero value uses DefaultOff.
type FixedDiscount struct {
	off decimal.Decimal
}

// NewFixedDiscount returns a FixedDiscount taking off the given amount.
func NewFixedDiscount(off decimal.Decimal) (FixedDiscount, error) {
	if err := checkOff(off); err != nil {
		return FixedDiscount{}, err
	}
	return FixedDiscount{off: off}, nil
}

// Apply returns max(amount - off, 0).
func (d FixedDiscount) Apply(amount decimal.Decimal) decimal.Decimal {
	final := amount.Sub(d.Off())
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// Off returns the effective amount subtracted.
func (d FixedDiscount) Off() decimal.Decimal {
	if d.off.IsZero() {
		return DefaultOff
	}
	return d.off
}
