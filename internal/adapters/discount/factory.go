package discount

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

// Params carries the tunables of the parameterised variants.
// Zero fields select the variant defaults.
type Params struct {
	// Factor is the PercentageDiscount multiplier.
	Factor decimal.Decimal

	// Off is the FixedDiscount amount.
	Off decimal.Decimal
}

// New builds the DiscountPolicy named by kind.
func New(kind domain.DiscountKind, p Params) (ports.DiscountPolicy, error) {
	switch kind {
	case domain.DiscountNone:
		return NoDiscount{}, nil
	case domain.DiscountPercentage:
		if p.Factor.IsZero() {
			return PercentageDiscount{}, nil
		}
		return NewPercentageDiscount(p.Factor)
	case domain.DiscountFixed:
		if p.Off.IsZero() {
			return FixedDiscount{}, nil
		}
		return NewFixedDiscount(p.Off)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDiscount, kind.String())
	}
}

func checkFactor(factor decimal.Decimal) error {
	if !factor.IsPositive() || factor.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: percentage factor %s not in (0, 1]", domain.ErrInvalidDiscount, factor.String())
	}
	return nil
}

func checkOff(off decimal.Decimal) error {
	if !off.IsPositive() {
		return fmt.Errorf("%w: fixed discount %s must be positive", domain.ErrInvalidDiscount, off.String())
	}
	return nil
}
