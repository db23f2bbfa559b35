package payment

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

func TestCreditCardPayment_Pay(t *testing.T) {
	var buf bytes.Buffer
	NewCreditCardPayment(&buf).Pay(decimal.NewFromInt(90))

	assert.Equal(t, "Paid $90.00 using Credit Card\n", buf.String())
}

func TestCreditCardPayment_ValidateCard(t *testing.T) {
	var buf bytes.Buffer
	NewCreditCardPayment(&buf).ValidateCard("4111 1111 1111 1234")

	assert.Equal(t, "Validating card ************1234\n", buf.String())
}

func TestCashPayment_Pay(t *testing.T) {
	var buf bytes.Buffer
	NewCashPayment(&buf).Pay(decimal.RequireFromString("12.5"))

	assert.Equal(t, "Paid $12.50 in Cash\n", buf.String())
}

func TestCashPayment_HasNoCardCapability(t *testing.T) {
	var p ports.Payable = NewCashPayment(nil)
	_, ok := p.(ports.OnlinePayable)
	assert.False(t, ok, "cash must not implement OnlinePayable")

	p = NewCreditCardPayment(nil)
	_, ok = p.(ports.OnlinePayable)
	assert.True(t, ok, "credit card must implement OnlinePayable")
}

func TestNew(t *testing.T) {
	p, err := New(domain.MethodCreditCard, nil)
	require.NoError(t, err)
	assert.IsType(t, &CreditCardPayment{}, p)

	p, err = New(domain.MethodCash, nil)
	require.NoError(t, err)
	assert.IsType(t, &CashPayment{}, p)

	_, err = New(domain.MethodKind("barter"), nil)
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)
}

func TestMaskCard(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4111111111111234", "************1234"},
		{"4111-1111-1111-1234", "************1234"},
		{"1234", "1234"},
		{"12", "12"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskCard(tt.in), "MaskCard(%q)", tt.in)
	}
}
