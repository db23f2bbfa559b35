// Package notify provides the Notifier variants.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/internal/ports"
)

var (
	_ ports.Notifier = (*EmailNotification)(nil)
	_ ports.Notifier = (*SMSNotification)(nil)
)

// EmailNotification delivers messages by email.
type EmailNotification struct {
	out io.Writer
}

// NewEmailNotification creates an email notifier writing to w (stdout if nil).
func NewEmailNotification(w io.Writer) *EmailNotification {
	if w == nil {
		w = os.Stdout
	}
	return &EmailNotification{out: w}
}

// Send reports the email.
func (n *EmailNotification) Send(message string) {
	fmt.Fprintf(n.out, "Sending Email: %s\n", message)
}

// SMSNotification delivers messages by SMS.
type SMSNotification struct {
	out io.Writer
}

// NewSMSNotification creates an SMS notifier writing to w (stdout if nil).
func NewSMSNotification(w io.Writer) *SMSNotification {
	if w == nil {
		w = os.Stdout
	}
	return &SMSNotification{out: w}
}

// Send reports the SMS.
func (n *SMSNotification) Send(message string) {
	fmt.Fprintf(n.out, "Sending SMS: %s\n", message)
}

// New builds the Notifier named by kind.
func New(kind domain.ChannelKind, w io.Writer) (ports.Notifier, error) {
	switch kind {
	case domain.ChannelEmail:
		return NewEmailNotification(w), nil
	case domain.ChannelSMS:
		return NewSMSNotification(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownChannel, kind.String())
	}
}
