package smtp

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/herald"
)

// closedPort returns a local TCP port that nothing is listening on.
func closedPort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return port
}

func TestSender_Send_ConnectionRefused(t *testing.T) {
	t.Parallel()

	sender := New(Config{
		Host:       "127.0.0.1",
		Port:       closedPort(t),
		Encryption: EncryptionNone,
		From:       "etl@example.com",
		Timeout:    2 * time.Second,
	})

	err := sender.Send(context.Background(), &herald.Email{
		To:      []string{"ops@example.com"},
		Subject: "Test",
		Text:    "hello",
	})
	require.ErrorIs(t, err, herald.ErrConnectionFailed)
}

func TestSender_CheckConnection_Unreachable(t *testing.T) {
	t.Parallel()

	sender := New(Config{
		Host:       "127.0.0.1",
		Port:       closedPort(t),
		Encryption: EncryptionNone,
		Timeout:    2 * time.Second,
	})

	err := sender.CheckConnection(context.Background())
	require.ErrorIs(t, err, herald.ErrConnectionFailed)
}

func TestSender_Send_InvalidConfig(t *testing.T) {
	t.Parallel()

	sender := New(Config{Port: 587})

	err := sender.Send(context.Background(), &herald.Email{
		To:      []string{"ops@example.com"},
		Subject: "Test",
		Text:    "hello",
	})
	require.ErrorIs(t, err, herald.ErrInvalidConfig)
}

func TestSender_Send_InvalidAddress(t *testing.T) {
	t.Parallel()

	sender := New(Config{
		Host: "mail.example.com",
		Port: 587,
		From: "etl@example.com",
	})

	// Address validation fails before any connection is attempted.
	err := sender.Send(context.Background(), &herald.Email{
		To:      []string{"not an address"},
		Subject: "Test",
		Text:    "hello",
	})
	require.ErrorIs(t, err, herald.ErrInvalidAddress)
}

func TestSender_Send_InvalidFrom(t *testing.T) {
	t.Parallel()

	sender := New(Config{
		Host: "mail.example.com",
		Port: 587,
	})

	// No from address configured and none on the email.
	err := sender.Send(context.Background(), &herald.Email{
		To:      []string{"ops@example.com"},
		Subject: "Test",
		Text:    "hello",
	})
	require.ErrorIs(t, err, herald.ErrInvalidAddress)
}
