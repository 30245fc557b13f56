// Package retry re-runs an operation after transient failures, with
// exponential backoff and jitter between attempts. Only errors marked
// with Retryable are tried again; everything else returns immediately.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// TransientError marks an error as worth another attempt.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsRetryable reports whether err is marked transient.
func IsRetryable(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// Retrier runs operations with a bounded number of attempts.
type Retrier struct {
	maxAttempts int
	initial     time.Duration
	max         time.Duration
	multiplier  float64
	jitter      float64
}

// Option adjusts a Retrier.
type Option func(*Retrier)

// WithMaxAttempts bounds the total attempts, the first one included.
func WithMaxAttempts(n int) Option {
	return func(r *Retrier) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithInitialDelay sets the delay before the first re-attempt.
func WithInitialDelay(d time.Duration) Option {
	return func(r *Retrier) {
		if d > 0 {
			r.initial = d
		}
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(r *Retrier) {
		if d > 0 {
			r.max = d
		}
	}
}

// WithMultiplier sets the backoff growth factor.
func WithMultiplier(m float64) Option {
	return func(r *Retrier) {
		if m >= 1 {
			r.multiplier = m
		}
	}
}

// WithJitter spreads delays by up to the given fraction either way.
func WithJitter(j float64) Option {
	return func(r *Retrier) {
		if j >= 0 && j <= 1 {
			r.jitter = j
		}
	}
}

// New builds a Retrier. Defaults: 3 attempts, 100ms initial delay
// doubling up to 30s, 10% jitter.
func New(opts ...Option) *Retrier {
	r := &Retrier{
		maxAttempts: 3,
		initial:     100 * time.Millisecond,
		max:         30 * time.Second,
		multiplier:  2,
		jitter:      0.1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do runs op until it succeeds, returns a non-transient error, or the
// attempts are exhausted. The transient wrapper is stripped from the
// error the caller finally sees.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	delay := r.initial

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		if attempt >= r.maxAttempts {
			return unwrapTransient(err)
		}

		select {
		case <-ctx.Done():
			return unwrapTransient(err)
		case <-time.After(r.spread(delay)):
		}

		delay = time.Duration(float64(delay) * r.multiplier)
		if delay > r.max {
			delay = r.max
		}
	}
}

// spread applies jitter to a delay.
func (r *Retrier) spread(delay time.Duration) time.Duration {
	if r.jitter <= 0 {
		return delay
	}
	offset := float64(delay) * r.jitter * (rand.Float64()*2 - 1)
	jittered := time.Duration(float64(delay) + offset)
	if jittered < 0 {
		return 0
	}
	return jittered
}

func unwrapTransient(err error) error {
	var transient *TransientError
	if errors.As(err, &transient) {
		return transient.Err
	}
	return err
}

// MailerRetrier is tuned for SMTP delivery: conservative pacing so a
// struggling relay is not hammered.
func MailerRetrier() *Retrier {
	return New(
		WithMaxAttempts(3),
		WithInitialDelay(500*time.Millisecond),
		WithMaxDelay(10*time.Second),
		WithJitter(0.2),
	)
}
