package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yousefAhmed-22/SOLID/internal/domain"
)

func TestNotifiers(t *testing.T) {
	tests := []struct {
		kind domain.ChannelKind
		want string
	}{
		{domain.ChannelEmail, "Sending Email: Payment of $90.00 successful\n"},
		{domain.ChannelSMS, "Sending SMS: Payment of $90.00 successful\n"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			n, err := New(tt.kind, &buf)
			require.NoError(t, err)

			n.Send("Payment of $90.00 successful")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNotifiers_AcceptAnyMessage(t *testing.T) {
	messages := []string{"", "plain", "unicode ✓", strings.Repeat("x", 4096)}
	for _, kind := range []domain.ChannelKind{domain.ChannelEmail, domain.ChannelSMS} {
		var buf bytes.Buffer
		n, err := New(kind, &buf)
		require.NoError(t, err)

		for _, m := range messages {
			assert.NotPanics(t, func() { n.Send(m) })
		}
		assert.Equal(t, len(messages), strings.Count(buf.String(), "\n"))
	}
}

func TestNew_UnknownChannel(t *testing.T) {
	_, err := New(domain.ChannelKind("fax"), nil)
	assert.ErrorIs(t, err, domain.ErrUnknownChannel)
}
