package notification

import (
	"context"
	"errors"
	"io"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoria-hub/mentoria-platform/config"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
	"github.com/mentoria-hub/mentoria-platform/pkg/retry"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard, Level: logger.LevelError})
}

func testMailer(send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) *Mailer {
	m := NewMailer(config.SMTPConfig{
		Host: "relay.example.com",
		Port: 587,
		From: "noreply@example.com",
	}, testLogger())
	m.retrier = retry.New(retry.WithMaxAttempts(3), retry.WithInitialDelay(time.Millisecond))
	m.send = send
	return m
}

func TestMailer_MatchProposed(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
	)
	m := testMailer(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	})

	err := m.MatchProposed(context.Background(), "ana@example.com", "Ana", "Bia", 9)
	require.NoError(t, err)

	assert.Equal(t, "relay.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"ana@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Nova proposta de mentoria")
	assert.Contains(t, string(gotMsg), "Ana")
	assert.Contains(t, string(gotMsg), "Bia")
	assert.Contains(t, string(gotMsg), "9 pontos")
}

func TestMailer_RetriesTransientFailures(t *testing.T) {
	attempts := 0
	m := testMailer(func(string, smtp.Auth, string, []string, []byte) error {
		attempts++
		if attempts < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	err := m.MatchProposed(context.Background(), "ana@example.com", "Ana", "Bia", 9)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestMailer_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	attempts := 0
	m := testMailer(func(string, smtp.Auth, string, []string, []byte) error {
		attempts++
		return errors.New("relay down")
	})

	// Breaker opens after 3 consecutive failed deliveries.
	for i := 0; i < 3; i++ {
		err := m.MatchProposed(context.Background(), "ana@example.com", "Ana", "Bia", 9)
		require.Error(t, err)
	}

	before := attempts
	err := m.MatchProposed(context.Background(), "ana@example.com", "Ana", "Bia", 9)
	require.Error(t, err)
	assert.Equal(t, before, attempts, "open breaker must short-circuit the relay")
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer(testLogger())
	assert.NoError(t, m.MatchProposed(context.Background(), "ana@example.com", "Ana", "Bia", 9))
}
