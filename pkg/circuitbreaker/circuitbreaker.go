// Package circuitbreaker short-circuits calls to a failing dependency.
// After enough consecutive failures the breaker opens and callers fail
// fast; once the cool-off passes, a single probe at a time is let
// through until the dependency proves healthy again.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State of a breaker.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota
	// StateOpen fails every call without touching the dependency.
	StateOpen
	// StateHalfOpen lets one probe through at a time.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrOpen is returned when the breaker refuses a call.
var ErrOpen = errors.New("circuit breaker open")

// Config for a breaker. Zero fields take the documented defaults.
type Config struct {
	// Name identifies the breaker in state-change notifications.
	Name string

	// FailureThreshold is the run of consecutive failures that opens
	// the breaker. Default 5.
	FailureThreshold int

	// SuccessThreshold is the run of successful probes that closes a
	// half-open breaker. Default 2.
	SuccessThreshold int

	// CoolOff is how long an open breaker waits before probing.
	// Default 30s.
	CoolOff time.Duration

	// OnStateChange is notified after every transition.
	OnStateChange func(name string, from, to State)
}

// CircuitBreaker tracks consecutive outcomes of a guarded call.
type CircuitBreaker struct {
	cfg Config

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
	probing   bool
}

// New builds a breaker in the closed state.
func New(cfg Config) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.CoolOff <= 0 {
		cfg.CoolOff = 30 * time.Second
	}
	return &CircuitBreaker{cfg: cfg, state: StateClosed}
}

// Execute runs fn if the breaker allows it and records the outcome.
// Refused calls return ErrOpen without invoking fn.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.allow(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.record(err)
	return err
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return nil
	case StateOpen:
		if time.Since(cb.openedAt) < cb.cfg.CoolOff {
			return ErrOpen
		}
		cb.transition(StateHalfOpen)
		cb.probing = true
		return nil
	default: // StateHalfOpen
		if cb.probing {
			return ErrOpen
		}
		cb.probing = true
		return nil
	}
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false

	if err != nil {
		cb.failures++
		cb.successes = 0
		switch cb.state {
		case StateClosed:
			if cb.failures >= cb.cfg.FailureThreshold {
				cb.open()
			}
		case StateHalfOpen:
			// A failed probe sends the breaker straight back to open.
			cb.open()
		}
		return
	}

	cb.failures = 0
	if cb.state == StateHalfOpen {
		cb.successes++
		if cb.successes >= cb.cfg.SuccessThreshold {
			cb.transition(StateClosed)
		}
	}
}

func (cb *CircuitBreaker) open() {
	cb.openedAt = time.Now()
	cb.transition(StateOpen)
}

// transition must run with the mutex held.
func (cb *CircuitBreaker) transition(to State) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	cb.successes = 0
	if cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(cb.cfg.Name, from, to)
	}
}

// MailerBreaker guards the SMTP relay. Notification mail is
// best-effort, so it trips early and recovers slowly.
func MailerBreaker(onStateChange func(name string, from, to State)) *CircuitBreaker {
	return New(Config{
		Name:             "mailer",
		FailureThreshold: 3,
		SuccessThreshold: 2,
		CoolOff:          time.Minute,
		OnStateChange:    onStateChange,
	})
}
