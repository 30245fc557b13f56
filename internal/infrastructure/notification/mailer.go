// Package notification delivers outgoing mail for matching activity.
// Delivery is best-effort: callers log failures and never fail the
// triggering command.
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mentoria-hub/mentoria-platform/config"
	"github.com/mentoria-hub/mentoria-platform/pkg/circuitbreaker"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
	"github.com/mentoria-hub/mentoria-platform/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// SMTP MAILER
// ══════════════════════════════════════════════════════════════════════════════

// Mailer sends match notifications through an SMTP relay. Deliveries
// are retried with backoff and guarded by a circuit breaker so a dead
// relay cannot stall the matching pipeline.
type Mailer struct {
	cfg     config.SMTPConfig
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	log     *logger.Logger

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer creates a Mailer from SMTP settings.
func NewMailer(cfg config.SMTPConfig, log *logger.Logger) *Mailer {
	componentLog := log.With(logger.Component("notification.mailer"))

	breaker := circuitbreaker.MailerBreaker(func(name string, from, to circuitbreaker.State) {
		componentLog.Warn("circuit breaker state changed",
			logger.String("breaker", name),
			logger.String("from", from.String()),
			logger.String("to", to.String()),
		)
	})

	return &Mailer{
		cfg:     cfg,
		retrier: retry.MailerRetrier(),
		breaker: breaker,
		log:     componentLog,
		send:    smtp.SendMail,
	}
}

// MatchProposed notifies the mentor that a pairing was proposed.
func (m *Mailer) MatchProposed(ctx context.Context, mentorEmail, mentorName, menteeName string, score int) error {
	subject := "Nova proposta de mentoria"
	body := fmt.Sprintf(
		"Olá, %s!\n\n"+
			"Você recebeu uma nova proposta de mentoria com %s "+
			"(compatibilidade: %d pontos).\n\n"+
			"Acesse a plataforma para aceitar ou recusar a proposta.\n",
		mentorName, menteeName, score,
	)

	err := m.deliver(ctx, mentorEmail, subject, body)
	if err != nil {
		return err
	}

	m.log.Info("match notification sent",
		logger.Email(mentorEmail),
		logger.Score(score),
	)
	return nil
}

// deliver sends one message through the breaker, retrying transient
// failures.
func (m *Mailer) deliver(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.cfg.From, to, subject, body)

	return m.breaker.Execute(ctx, func(ctx context.Context) error {
		return m.retrier.Do(ctx, func(ctx context.Context) error {
			var auth smtp.Auth
			if m.cfg.Username != "" {
				auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
			}

			if err := m.send(m.cfg.Addr(), auth, m.cfg.From, []string{to}, msg); err != nil {
				return retry.Retryable(fmt.Errorf("smtp send to %s: %w", to, err))
			}
			return nil
		})
	})
}

// buildMessage assembles an RFC 5322 message with UTF-8 headers.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// ══════════════════════════════════════════════════════════════════════════════
// LOG MAILER
// ══════════════════════════════════════════════════════════════════════════════

// LogMailer writes notifications to the log instead of sending mail.
// Used in development and when SMTP is disabled.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.With(logger.Component("notification.logmailer"))}
}

// MatchProposed logs the notification instead of delivering it.
func (m *LogMailer) MatchProposed(_ context.Context, mentorEmail, mentorName, menteeName string, score int) error {
	m.log.Info("match notification (mail disabled)",
		logger.Email(mentorEmail),
		logger.String("mentor", mentorName),
		logger.String("mentee", menteeName),
		logger.Score(score),
	)
	return nil
}
