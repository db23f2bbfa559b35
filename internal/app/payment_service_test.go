package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yousefAhmed-22/SOLID/internal/adapters/discount"
	"github.com/yousefAhmed-22/SOLID/internal/adapters/notify"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

// call is one observed collaborator invocation.
type call struct {
	op  string
	arg string
}

// journal records calls from every spy in order.
type journal struct {
	calls []call
}

func (j *journal) add(op, arg string) {
	j.calls = append(j.calls, call{op, arg})
}

type spyPayable struct{ j *journal }

func (s spyPayable) Pay(amount decimal.Decimal) { s.j.add("pay", amount.String()) }

type spyNotifier struct{ j *journal }

func (s spyNotifier) Send(message string) { s.j.add("send", message) }

type spyPaymentLogger struct{ j *journal }

func (s spyPaymentLogger) Log(message string) { s.j.add("log", message) }

// debugLogger counts debug entries.
type debugLogger struct {
	ports.NoopLogger
	debugs []string
}

func (d *debugLogger) Debug(msg string, fields ...ports.Field) { d.debugs = append(d.debugs, msg) }

func newSpyService(opts ...Option) (*PaymentService, *journal) {
	j := &journal{}
	return NewPaymentService(spyPayable{j}, spyNotifier{j}, spyPaymentLogger{j}, opts...), j
}

func TestExecutePayment_OrderAndCount(t *testing.T) {
	svc, j := newSpyService()

	svc.ExecutePayment(decimal.NewFromInt(100), discount.PercentageDiscount{})

	require.Len(t, j.calls, 3)
	assert.Equal(t, "pay", j.calls[0].op)
	assert.Equal(t, "90", j.calls[0].arg)
	assert.Equal(t, "send", j.calls[1].op)
	assert.Contains(t, j.calls[1].arg, "90")
	assert.Equal(t, "log", j.calls[2].op)
	assert.Contains(t, j.calls[2].arg, "90")
}

func TestExecutePayment_Messages(t *testing.T) {
	svc, j := newSpyService()

	svc.ExecutePayment(decimal.NewFromInt(100), discount.PercentageDiscount{})

	assert.Equal(t, "Payment of $90.00 successful", j.calls[1].arg)
	assert.Equal(t, "Payment executed: $90.00", j.calls[2].arg)
}

func TestExecutePayment_Receipt(t *testing.T) {
	svc, _ := newSpyService()

	r := svc.ExecutePayment(decimal.NewFromInt(100), discount.FixedDiscount{})

	assert.True(t, r.Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, r.FinalAmount.Equal(decimal.NewFromInt(90)))
	assert.NotEmpty(t, r.ID.String())
}

func TestExecutePayment_NoDiscount(t *testing.T) {
	svc, j := newSpyService()

	svc.ExecutePayment(decimal.RequireFromString("42.5"), discount.NoDiscount{})

	assert.Equal(t, "42.5", j.calls[0].arg)
}

func TestExecutePayment_CallerDefinedPolicy(t *testing.T) {
	svc, j := newSpyService()
	half := ports.DiscountFunc(func(a decimal.Decimal) decimal.Decimal {
		return a.Div(decimal.NewFromInt(2))
	})

	svc.ExecutePayment(decimal.NewFromInt(100), half)

	assert.Equal(t, "50", j.calls[0].arg)
}

func TestExecutePayment_NotifierSubstitution(t *testing.T) {
	// Swapping channels only changes the channel-specific text.
	var email, sms bytes.Buffer
	j := &journal{}

	a := NewPaymentService(spyPayable{j}, notify.NewEmailNotification(&email), spyPaymentLogger{j})
	b := NewPaymentService(spyPayable{j}, notify.NewSMSNotification(&sms), spyPaymentLogger{j})

	a.ExecutePayment(decimal.NewFromInt(100), discount.PercentageDiscount{})
	b.ExecutePayment(decimal.NewFromInt(100), discount.PercentageDiscount{})

	require.Len(t, j.calls, 4)
	assert.Equal(t, j.calls[:2], j.calls[2:])
	assert.Equal(t,
		strings.TrimPrefix(email.String(), "Sending Email: "),
		strings.TrimPrefix(sms.String(), "Sending SMS: "))
}

func TestExecutePayment_DebugLogging(t *testing.T) {
	dl := &debugLogger{}
	svc, j := newSpyService(WithLogger(dl))

	svc.ExecutePayment(decimal.NewFromInt(10), discount.NoDiscount{})

	assert.Len(t, j.calls, 3)
	assert.Equal(t, []string{"payment executed"}, dl.debugs)
}

func TestNewPaymentService_NilCollaboratorsPanic(t *testing.T) {
	j := &journal{}

	assert.Panics(t, func() { NewPaymentService(nil, spyNotifier{j}, spyPaymentLogger{j}) })
	assert.Panics(t, func() { NewPaymentService(spyPayable{j}, nil, spyPaymentLogger{j}) })
	assert.Panics(t, func() { NewPaymentService(spyPayable{j}, spyNotifier{j}, nil) })
}

func TestExecutePayment_NilDiscountPanics(t *testing.T) {
	svc, j := newSpyService()

	assert.Panics(t, func() { svc.ExecutePayment(decimal.NewFromInt(1), nil) })
	assert.Empty(t, j.calls)
}

func TestPaymentProcessor(t *testing.T) {
	var buf bytes.Buffer
	NewPaymentProcessor(&buf).Process(decimal.NewFromInt(100))

	assert.Equal(t, "Processing payment of $100.00\n", buf.String())
}
