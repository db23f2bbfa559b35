package checkout

import (
	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

// Capability interfaces. Implement these to plug in custom collaborators.
type (
	DiscountPolicy = ports.DiscountPolicy
	DiscountFunc   = ports.DiscountFunc
	Payable        = ports.Payable
	OnlinePayable  = ports.OnlinePayable
	Notifier       = ports.Notifier
	PaymentLogger  = ports.PaymentLogger
)

// Receipt is the outcome of one executed payment.
type Receipt = domain.Receipt

// Variant names.
type (
	DiscountKind = domain.DiscountKind
	MethodKind   = domain.MethodKind
	ChannelKind  = domain.ChannelKind
)

const (
	DiscountNone       = domain.DiscountNone
	DiscountPercentage = domain.DiscountPercentage
	DiscountFixed      = domain.DiscountFixed

	MethodCreditCard = domain.MethodCreditCard
	MethodCash       = domain.MethodCash

	ChannelEmail = domain.ChannelEmail
	ChannelSMS   = domain.ChannelSMS
)

// Errors returned by this package. Check them with errors.Is.
var (
	ErrInvalidConfig        = domain.ErrInvalidConfig
	ErrInvalidAmount        = domain.ErrInvalidAmount
	ErrInvalidDiscount      = domain.ErrInvalidDiscount
	ErrUnknownDiscount      = domain.ErrUnknownDiscount
	ErrUnknownMethod        = domain.ErrUnknownMethod
	ErrUnknownChannel       = domain.ErrUnknownChannel
	ErrInvalidCard          = domain.ErrInvalidCard
	ErrUnsupportedOperation = domain.ErrUnsupportedOperation
)
