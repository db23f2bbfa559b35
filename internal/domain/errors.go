package domain

import "errors"

// Domain errors returned by the public API. Check them with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("solid: invalid configuration")

	// ErrInvalidAmount is returned for negative or unparsable amounts.
	ErrInvalidAmount = errors.New("solid: invalid amount")

	// ErrInvalidDiscount is returned when discount parameters are out of range.
	ErrInvalidDiscount = errors.New("solid: invalid discount parameters")

	// ErrUnknownDiscount is returned for an unrecognised discount kind.
	ErrUnknownDiscount = errors.New("solid: unknown discount kind")

	// ErrUnknownMethod is returned for an unrecognised payment method kind.
	ErrUnknownMethod = errors.New("solid: unknown payment method")

	// ErrUnknownChannel is returned for an unrecognised notification channel.
	ErrUnknownChannel = errors.New("solid: unknown notification channel")

	// ErrInvalidCard is returned when a card number is empty.
	ErrInvalidCard = errors.New("solid: invalid card number")

	// ErrUnsupportedOperation is returned when a capability is requested from a
	// variant that does not provide it, e.g. card validation on cash.
	ErrUnsupportedOperation = errors.New("solid: unsupported operation")
)
