package app

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
)

// PaymentProcessor announces that a payment is being processed. Recording
// the payment is left to a PaymentLogger.
type PaymentProcessor struct {
	out io.Writer
}

// NewPaymentProcessor creates a processor writing to w (stdout if nil).
func NewPaymentProcessor(w io.Writer) *PaymentProcessor {
	if w == nil {
		w = os.Stdout
	}
	return &PaymentProcessor{out: w}
}

// Process prints "Processing payment of $<amount>".
func (p *PaymentProcessor) Process(amount decimal.Decimal) {
	fmt.Fprintf(p.out, "Processing payment of %s\n", domain.FormatAmount(amount))
}
