package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML shape of Config.
type FileConfig struct {
	Discount   string   `toml:"discount"`
	Percentage *float64 `toml:"percentage"`
	FixedOff   *float64 `toml:"fixed_off"`
	Method     string   `toml:"method"`
	Channel    string   `toml:"channel"`
	CardNumber string   `toml:"card_number"`
	LogLevel   string   `toml:"log_level"`
	PaymentLog string   `toml:"payment_log"`
	Metrics    *bool    `toml:"metrics"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.solid/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".solid", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("discount", fc.Discount, &cfg.Discount)
	s.setString("method", fc.Method, &cfg.Method)
	s.setString("channel", fc.Channel, &cfg.Channel)
	s.setString("card", fc.CardNumber, &cfg.CardNumber)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("payment-log", fc.PaymentLog, &cfg.PaymentLog)

	s.setFloat("percentage", fc.Percentage, &cfg.Percentage)
	s.setFloat("fixed-off", fc.FixedOff, &cfg.FixedOff)

	s.setBool("metrics", fc.Metrics, &cfg.Metrics)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
