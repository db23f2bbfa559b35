package checkout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/adapters/discount"
	logAdapter "github.com/yousefAhmed-22/SOLID/internal/adapters/log"
	"github.com/yousefAhmed-22/SOLID/internal/adapters/notify"
	"github.com/yousefAhmed-22/SOLID/internal/adapters/payment"
	"github.com/yousefAhmed-22/SOLID/internal/app"
	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/internal/metrics"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
	"github.com/yousefAhmed-22/SOLID/pkg/log"
)

// Checkout runs payments through a fixed set of collaborators.
type Checkout struct {
	config    Config
	discount  DiscountPolicy
	method    Payable
	label     labels
	service   *app.PaymentService
	processor *app.PaymentProcessor
	logger    log.Logger
}

// New builds a Checkout from cfg. Zero fields take their defaults.
func New(cfg Config, opts ...Option) (*Checkout, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	policy, err := discount.New(cfg.Discount, cfg.discountParams())
	if err != nil {
		return nil, err
	}

	label := labels{
		discount: cfg.Discount.String(),
		method:   cfg.Method.String(),
		channel:  cfg.Channel.String(),
	}

	method := o.method
	if method != nil {
		label.method = methodLabel(method)
	} else if method, err = payment.New(cfg.Method, o.output); err != nil {
		return nil, err
	}

	notifier := o.notifier
	if notifier != nil {
		label.channel = channelLabel(notifier)
	} else if notifier, err = notify.New(cfg.Channel, o.output); err != nil {
		return nil, err
	}

	var record ports.PaymentLogger = o.paymentLogger
	if record == nil {
		record = logAdapter.NewConsolePaymentLogger(o.output)
	}

	if o.registerer != nil {
		m, err := metrics.New(o.registerer)
		if err != nil {
			return nil, err
		}
		policy = m.Discount(policy, label.discount)
		method = m.Payable(method, label.method)
		notifier = m.Notifier(notifier, label.channel)
	}

	o.logger.Debug("checkout ready",
		log.String("discount", label.discount),
		log.String("method", label.method),
		log.String("channel", label.channel),
		log.Bool("metrics", o.registerer != nil))

	return &Checkout{
		config:    cfg,
		discount:  policy,
		method:    method,
		label:     label,
		service:   app.NewPaymentService(method, notifier, record, app.WithLogger(o.logger)),
		processor: app.NewPaymentProcessor(o.output),
		logger:    o.logger,
	}, nil
}

// Config returns the effective configuration.
func (c *Checkout) Config() Config {
	return c.config
}

// Pay charges amount after the configured discount.
func (c *Checkout) Pay(amount decimal.Decimal) (Receipt, error) {
	return c.PayWith(amount, c.discount)
}

// PayWith charges amount after applying policy instead of the configured
// discount.
func (c *Checkout) PayWith(amount decimal.Decimal, policy DiscountPolicy) (Receipt, error) {
	if err := domain.CheckAmount(amount); err != nil {
		c.logger.Warn("payment rejected", log.Amount("amount", amount), log.Err(err))
		return Receipt{}, err
	}
	if policy == nil {
		return Receipt{}, fmt.Errorf("%w: nil discount policy", ErrInvalidDiscount)
	}
	return c.service.ExecutePayment(amount, policy), nil
}

// ValidateCard validates cardNumber with the configured method.
// Methods without card support return ErrUnsupportedOperation.
func (c *Checkout) ValidateCard(cardNumber string) error {
	online, ok := c.method.(OnlinePayable)
	if !ok {
		return fmt.Errorf("%w: %s cannot validate cards", ErrUnsupportedOperation, c.label.method)
	}
	if strings.TrimSpace(cardNumber) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidCard)
	}
	online.ValidateCard(cardNumber)
	return nil
}

// Process announces a payment being processed without charging it.
func (c *Checkout) Process(amount decimal.Decimal) error {
	if err := domain.CheckAmount(amount); err != nil {
		return err
	}
	c.processor.Process(amount)
	return nil
}

// customLabel names collaborators supplied through options that are not one
// of the built-in variants.
const customLabel = "custom"

// labels name the collaborators actually in use, for metrics and errors.
type labels struct {
	discount string
	method   string
	channel  string
}

func methodLabel(p Payable) string {
	switch p.(type) {
	case *payment.CreditCardPayment:
		return MethodCreditCard.String()
	case *payment.CashPayment:
		return MethodCash.String()
	default:
		return customLabel
	}
}

func channelLabel(n Notifier) string {
	switch n.(type) {
	case *notify.EmailNotification:
		return ChannelEmail.String()
	case *notify.SMSNotification:
		return ChannelSMS.String()
	default:
		return customLabel
	}
}
