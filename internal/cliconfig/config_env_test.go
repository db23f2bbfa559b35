package cliconfig

import (
	"errors"
	"testing"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"SOLID_DISCOUNT":    "fixed",
				"SOLID_FIXED_OFF":   "15",
				"SOLID_PERCENTAGE":  "0.5",
				"SOLID_METHOD":      "cash",
				"SOLID_CHANNEL":     "sms",
				"SOLID_CARD_NUMBER": "4000",
				"SOLID_LOG_LEVEL":   "warn",
				"SOLID_PAYMENT_LOG": "structured",
				"SOLID_METRICS":     "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Discount:   "fixed",
				FixedOff:   15,
				Percentage: 0.5,
				Method:     "cash",
				Channel:    "sms",
				CardNumber: "4000",
				LogLevel:   "warn",
				PaymentLog: "structured",
				Metrics:    true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SOLID_METHOD":  "cash",
				"SOLID_CHANNEL": "sms",
			},
			changed: map[string]bool{"method": true},
			initial: Config{Method: "credit_card"},
			expected: Config{
				Method:  "credit_card",
				Channel: "sms",
			},
		},
		{
			name: "keeps explicit zero for validation",
			envVars: map[string]string{
				"SOLID_PERCENTAGE": "0",
			},
			changed:  map[string]bool{},
			initial:  Config{Percentage: 0.9},
			expected: Config{Percentage: 0},
		},
		{
			name: "returns error for invalid float",
			envVars: map[string]string{
				"SOLID_PERCENTAGE": "ninety",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestApplyEnvConfig_ZeroPercentageFailsValidation(t *testing.T) {
	t.Setenv("SOLID_PERCENTAGE", "0")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want %v", err, domain.ErrInvalidConfig)
	}
}
