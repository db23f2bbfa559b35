// Package payment provides the Payable variants.
//
// Output goes to the writer supplied at construction; a nil writer means
// stdout.
package payment

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

var (
	_ ports.Payable       = (*CreditCardPayment)(nil)
	_ ports.OnlinePayable = (*CreditCardPayment)(nil)
	_ ports.Payable       = (*CashPayment)(nil)
)

// CreditCardPayment charges a credit card. It can also validate a card
// number before charging.
type CreditCardPayment struct {
	out io.Writer
}

// NewCreditCardPayment creates a credit card method writing to w.
func NewCreditCardPayment(w io.Writer) *CreditCardPayment {
	return &CreditCardPayment{out: orStdout(w)}
}

// Pay reports the charge.
func (p *CreditCardPayment) Pay(amount decimal.Decimal) {
	fmt.Fprintf(p.out, "Paid %s using Credit Card\n", domain.FormatAmount(amount))
}

// ValidateCard reports the card being validated. Only the last four
// characters of the number are shown.
func (p *CreditCardPayment) ValidateCard(cardNumber string) {
	fmt.Fprintf(p.out, "Validating card %s\n", MaskCard(cardNumber))
}

// CashPayment takes cash. It has no card capability.
type CashPayment struct {
	out io.Writer
}

// NewCashPayment creates a cash method writing to w.
func NewCashPayment(w io.Writer) *CashPayment {
	return &CashPayment{out: orStdout(w)}
}

// Pay reports the cash payment.
func (p *CashPayment) Pay(amount decimal.Decimal) {
	fmt.Fprintf(p.out, "Paid %s in Cash\n", domain.FormatAmount(amount))
}

// New builds the Payable named by kind.
func New(kind domain.MethodKind, w io.Writer) (ports.Payable, error) {
	switch kind {
	case domain.MethodCreditCard:
		return NewCreditCardPayment(w), nil
	case domain.MethodCash:
		return NewCashPayment(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMethod, kind.String())
	}
}

// MaskCard hides all but the last four characters of a card number.
// Spaces and dashes are dropped first.
func MaskCard(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, cardNumber)

	n := len([]rune(digits))
	if n <= 4 {
		return digits
	}
	return strings.Repeat("*", n-4) + string([]rune(digits)[n-4:])
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
