package checkout

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yousefAhmed-22/SOLID/pkg/log"
)

// Option configures optional behavior of a Checkout.
type Option func(*options)

type options struct {
	output        io.Writer
	logger        log.Logger
	paymentLogger PaymentLogger
	method        Payable
	notifier      Notifier
	registerer    prometheus.Registerer
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithOutput sets where the built-in collaborators print. Default: stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithLogger sets the structured diagnostics logger.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPaymentLogger replaces the console payment logger.
func WithPaymentLogger(l PaymentLogger) Option {
	return func(o *options) {
		o.paymentLogger = l
	}
}

// WithPaymentMethod replaces the method selected by Config.Method.
func WithPaymentMethod(p Payable) Option {
	return func(o *options) {
		o.method = p
	}
}

// WithNotifier replaces the notifier selected by Config.Channel.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithMetrics instruments the collaborators and registers the collectors
// with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
