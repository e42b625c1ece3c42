package mailer

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSend_UnreachableHostIsTransportError(t *testing.T) {
	// Reserve a port and close it so the dial fails fast.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().(*net.TCPAddr)
	require.NoError(t, l.Close())

	sender := NewSMTPSender(SMTPConfig{
		Host: "127.0.0.1",
		Port: addr.Port,
	})

	err = sender.Send(context.Background(), testMessage())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "smtp", transportErr.Provider)
}

func TestSMTPSend_ContextDeadlineBoundsAttempt(t *testing.T) {
	// A listener that accepts but never speaks SMTP keeps the dialer
	// waiting; the context deadline must end the attempt.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	sender := NewSMTPSender(SMTPConfig{
		Host: "127.0.0.1",
		Port: l.Addr().(*net.TCPAddr).Port,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = sender.Send(ctx, testMessage())
	elapsed := time.Since(start)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestDisabledSender_AlwaysFails(t *testing.T) {
	err := Disabled{}.Send(context.Background(), testMessage())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
