package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/adapters/discount"
	"github.com/yousefAhmed-22/SOLID/internal/domain"
)

// Config selects the collaborators a Checkout is built from.
type Config struct {
	// Discount is the policy applied by Pay. Default: DiscountNone.
	Discount DiscountKind

	// Percentage is the multiplier of DiscountPercentage, in (0, 1].
	// A zero value means unset and becomes the default, so a factor of 0
	// cannot be configured here; use PayWith for a free payment.
	// Default: 0.9
	Percentage decimal.Decimal

	// FixedOff is the amount DiscountFixed takes off. A zero value means
	// unset and becomes the default; use DiscountNone for no discount.
	// Default: 10
	FixedOff decimal.Decimal

	// Method is the payment method. Default: MethodCreditCard.
	Method MethodKind

	// Channel is the notification channel. Default: ChannelEmail.
	Channel ChannelKind
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero fields with their defaults. Zero Percentage and
// FixedOff count as unset.
func (c *Config) SetDefaults() {
	if c.Discount == "" {
		c.Discount = DiscountNone
	}
	if c.Percentage.IsZero() {
		c.Percentage = discount.DefaultFactor
	}
	if c.FixedOff.IsZero() {
		c.FixedOff = discount.DefaultOff
	}
	if c.Method == "" {
		c.Method = MethodCreditCard
	}
	if c.Channel == "" {
		c.Channel = ChannelEmail
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := domain.ParseDiscountKind(c.Discount.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := domain.ParseMethodKind(c.Method.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := domain.ParseChannelKind(c.Channel.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := discount.New(c.Discount, c.discountParams()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) discountParams() discount.Params {
	return discount.Params{Factor: c.Percentage, Off: c.FixedOff}
}
