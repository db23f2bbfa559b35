// Package log provides the PaymentLogger implementations.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

var (
	_ ports.PaymentLogger = (*ConsolePaymentLogger)(nil)
	_ ports.PaymentLogger = (*StructuredPaymentLogger)(nil)
)

// ConsolePaymentLogger prints "Log: <message>" lines.
type ConsolePaymentLogger struct {
	out io.Writer
}

// NewConsolePaymentLogger creates a console payment logger writing to w
// (stdout if nil).
func NewConsolePaymentLogger(w io.Writer) *ConsolePaymentLogger {
	if w == nil {
		w = os.Stdout
	}
	return &ConsolePaymentLogger{out: w}
}

// Log prints the message.
func (l *ConsolePaymentLogger) Log(message string) {
	fmt.Fprintf(l.out, "Log: %s\n", message)
}

// StructuredPaymentLogger forwards payment messages to a structured logger at
// info level.
type StructuredPaymentLogger struct {
	logger ports.Logger
}

// NewStructuredPaymentLogger wraps logger. A nil logger discards messages.
func NewStructuredPaymentLogger(logger ports.Logger) *StructuredPaymentLogger {
	if logger == nil {
		logger = ports.NoopLogger{}
	}
	return &StructuredPaymentLogger{logger: logger}
}

// Log records the message.
func (l *StructuredPaymentLogger) Log(message string) {
	l.logger.Info(message, ports.String("component", "payment"))
}
