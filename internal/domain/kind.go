package domain

import "fmt"

// DiscountKind names a discount policy variant.
type DiscountKind string

const (
	DiscountNone       DiscountKind = "none"
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

var allDiscountKinds = map[string]DiscountKind{
	DiscountNone.String():       DiscountNone,
	DiscountPercentage.String(): DiscountPercentage,
	DiscountFixed.String():      DiscountFixed,
}

// ParseDiscountKind returns the DiscountKind named by value.
func ParseDiscountKind(value string) (DiscountKind, error) {
	if k, ok := allDiscountKinds[value]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDiscount, value)
}

func (k DiscountKind) String() string {
	return string(k)
}

// MethodKind names a payment method variant.
type MethodKind string

const (
	MethodCreditCard MethodKind = "credit_card"
	MethodCash       MethodKind = "cash"
)

var allMethodKinds = map[string]MethodKind{
	MethodCreditCard.String(): MethodCreditCard,
	MethodCash.String():       MethodCash,
}

// ParseMethodKind returns the MethodKind named by value.
func ParseMethodKind(value string) (MethodKind, error) {
	if k, ok := allMethodKinds[value]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, value)
}

func (k MethodKind) String() string {
	return string(k)
}

// ChannelKind names a notification channel variant.
type ChannelKind string

const (
	ChannelEmail ChannelKind = "email"
	ChannelSMS   ChannelKind = "sms"
)

var allChannelKinds = map[string]ChannelKind{
	ChannelEmail.String(): ChannelEmail,
	ChannelSMS.String():   ChannelSMS,
}

// ParseChannelKind returns the ChannelKind named by value.
func ParseChannelKind(value string) (ChannelKind, error) {
	if k, ok := allChannelKinds[value]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChannel, value)
}

func (k ChannelKind) String() string {
	return string(k)
}
