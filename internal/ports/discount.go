package ports

import "github.com/shopspring/decimal"

// DiscountPolicy adjusts an amount before it is paid.
// Apply must be deterministic, free of side effects and, for a non-negative
// input, return a non-negative result.
type DiscountPolicy interface {
	Apply(amount decimal.Decimal) decimal.Decimal
}

// DiscountFunc adapts an ordinary function to DiscountPolicy.
type DiscountFunc func(amount decimal.Decimal) decimal.Decimal

// Apply calls f(amount).
func (f DiscountFunc) Apply(amount decimal.Decimal) decimal.Decimal {
	return f(amount)
}
