package cliconfig

import "os"

// ApplyEnvConfig applies configuration from SOLID_* environment variables.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("discount", os.Getenv("SOLID_DISCOUNT"), &cfg.Discount)
	s.setString("method", os.Getenv("SOLID_METHOD"), &cfg.Method)
	s.setString("channel", os.Getenv("SOLID_CHANNEL"), &cfg.Channel)
	s.setString("card", os.Getenv("SOLID_CARD_NUMBER"), &cfg.CardNumber)
	s.setString("log-level", os.Getenv("SOLID_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("payment-log", os.Getenv("SOLID_PAYMENT_LOG"), &cfg.PaymentLog)

	if err := s.setFloatFromString("percentage", os.Getenv("SOLID_PERCENTAGE"), &cfg.Percentage); err != nil {
		return err
	}
	if err := s.setFloatFromString("fixed-off", os.Getenv("SOLID_FIXED_OFF"), &cfg.FixedOff); err != nil {
		return err
	}

	s.setBoolFromString("metrics", os.Getenv("SOLID_METRICS"), &cfg.Metrics)

	return nil
}
