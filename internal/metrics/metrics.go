// Package metrics instruments payment collaborators with prometheus
// counters. Instrumentation wraps the ports, so the payment service itself
// is unchanged.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

const namespace = "solid"

// Metrics holds the payment collectors.
type Metrics struct {
	Payments      *prometheus.CounterVec
	PaidAmount    *prometheus.HistogramVec
	Discounts     *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	Validations   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg uses
// the prometheus default registerer. Collectors already registered with reg
// by an earlier New are reused, so instances sharing reg count into the same
// series.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Total number of payments made.",
		}, []string{"method"}),
		PaidAmount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_amount",
			Help:      "Amounts paid, after discount.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}, []string{"method"}),
		Discounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discounts_applied_total",
			Help:      "Total number of discount policy applications.",
		}, []string{"kind"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Total number of notifications sent.",
		}, []string{"channel"}),
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "card_validations_total",
			Help:      "Total number of card validations.",
		}, []string{"method"}),
	}

	var err error
	if m.Payments, err = register(reg, m.Payments); err != nil {
		return nil, err
	}
	if m.PaidAmount, err = register(reg, m.PaidAmount); err != nil {
		return nil, err
	}
	if m.Discounts, err = register(reg, m.Discounts); err != nil {
		return nil, err
	}
	if m.Notifications, err = register(reg, m.Notifications); err != nil {
		return nil, err
	}
	if m.Validations, err = register(reg, m.Validations); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("metrics: register: %w", err)
}

// Payable wraps p so every Pay is counted under method. If p also
// implements ports.OnlinePayable, so does the result.
func (m *Metrics) Payable(p ports.Payable, method string) ports.Payable {
	base := &payable{next: p, m: m, method: method}
	if online, ok := p.(ports.OnlinePayable); ok {
		return &onlinePayable{payable: base, online: online}
	}
	return base
}

// Notifier wraps n so every Send is counted under channel.
func (m *Metrics) Notifier(n ports.Notifier, channel string) ports.Notifier {
	return &notifier{next: n, m: m, channel: channel}
}

// Discount wraps d so every Apply is counted under kind.
func (m *Metrics) Discount(d ports.DiscountPolicy, kind string) ports.DiscountPolicy {
	return ports.DiscountFunc(func(amount decimal.Decimal) decimal.Decimal {
		m.Discounts.WithLabelValues(kind).Inc()
		return d.Apply(amount)
	})
}

type payable struct {
	next   ports.Payable
	m      *Metrics
	method string
}

func (p *payable) Pay(amount decimal.Decimal) {
	p.next.Pay(amount)
	p.m.Payments.WithLabelValues(p.method).Inc()
	f, _ := amount.Float64()
	p.m.PaidAmount.WithLabelValues(p.method).Observe(f)
}

type onlinePayable struct {
	*payable
	online ports.OnlinePayable
}

func (p *onlinePayable) ValidateCard(cardNumber string) {
	p.online.ValidateCard(cardNumber)
	p.m.Validations.WithLabelValues(p.method).Inc()
}

type notifier struct {
	next    ports.Notifier
	m       *Metrics
	channel string
}

func (n *notifier) Send(message string) {
	n.next.Send(message)
	n.m.Notifications.WithLabelValues(n.channel).Inc()
}
