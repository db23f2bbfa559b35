package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
)

// Payment log sinks.
const (
	PaymentLogConsole    = "console"
	PaymentLogStructured = "structured"
)

// Config holds CLI configuration for solid.
type Config struct {
	Discount   string
	Percentage float64
	FixedOff   float64

	Method     string
	Channel    string
	CardNumber string

	LogLevel   string
	PaymentLog string
	Metrics    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Discount:   domain.DiscountNone.String(),
		Percentage: 0.9,
		FixedOff:   10,
		Method:     domain.MethodCreditCard.String(),
		Channel:    domain.ChannelEmail.String(),
		LogLevel:   zerolog.InfoLevel.String(),
		PaymentLog: PaymentLogConsole,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := domain.ParseDiscountKind(c.Discount); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if _, err := domain.ParseMethodKind(c.Method); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if _, err := domain.ParseChannelKind(c.Channel); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	if c.Percentage <= 0 || c.Percentage > 1 {
		return fmt.Errorf("%w: percentage must be in (0, 1], got %v", domain.ErrInvalidConfig, c.Percentage)
	}
	if c.FixedOff <= 0 {
		return fmt.Errorf("%w: fixed-off must be positive, got %v", domain.ErrInvalidConfig, c.FixedOff)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", domain.ErrInvalidConfig, err)
	}

	switch c.PaymentLog {
	case PaymentLogConsole, PaymentLogStructured:
	default:
		return fmt.Errorf("%w: payment-log must be %q or %q, got %q",
			domain.ErrInvalidConfig, PaymentLogConsole, PaymentLogStructured, c.PaymentLog)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value from a pointer if not nil and flag not changed.
// Out-of-range values are kept so Validate reports them.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
