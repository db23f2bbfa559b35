package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"integer", "100", "100", false},
		{"decimal", "12.34", "12.34", false},
		{"dollar prefix", "$100", "100", false},
		{"surrounding space", "  7.5 ", "7.5", false},
		{"zero", "0", "0", false},
		{"negative", "-1", "", true},
		{"empty", "", "", true},
		{"garbage", "ten", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAmount), "error %v should wrap ErrInvalidAmount", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$90.00", FormatAmount(decimal.NewFromInt(90)))
	assert.Equal(t, "$0.05", FormatAmount(decimal.RequireFromString("0.045")))
}

func TestParseKinds(t *testing.T) {
	d, err := ParseDiscountKind("percentage")
	require.NoError(t, err)
	assert.Equal(t, DiscountPercentage, d)

	m, err := ParseMethodKind("cash")
	require.NoError(t, err)
	assert.Equal(t, MethodCash, m)

	c, err := ParseChannelKind("sms")
	require.NoError(t, err)
	assert.Equal(t, ChannelSMS, c)

	_, err = ParseDiscountKind("bogus")
	assert.ErrorIs(t, err, ErrUnknownDiscount)
	_, err = ParseMethodKind("cheque")
	assert.ErrorIs(t, err, ErrUnknownMethod)
	_, err = ParseChannelKind("pigeon")
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestReceipt(t *testing.T) {
	r1 := NewReceipt(decimal.NewFromInt(100), decimal.NewFromInt(90))
	r2 := NewReceipt(decimal.NewFromInt(100), decimal.NewFromInt(90))

	assert.NotEqual(t, r1.ID, r2.ID)
	assert.True(t, r1.Discounted().Equal(decimal.NewFromInt(10)))
}
