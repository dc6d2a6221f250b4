// Package breaker wraps sony/gobreaker with the settings used for outbound API calls.
package breaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker guards calls to an unreliable dependency.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// Settings controls when the breaker trips and how long it stays open.
type Settings struct {
	ConsecutiveFailures uint32        // trip after this many failures in a row
	Interval            time.Duration // closed-state counter reset period
	OpenTimeout         time.Duration // time spent open before probing again
}

// DefaultSettings trips after 3 consecutive failures and probes again after 30s.
func DefaultSettings() Settings {
	return Settings{ConsecutiveFailures: 3, Interval: time.Minute, OpenTimeout: 30 * time.Second}
}

// New creates a named Breaker.
func New(name string, s Settings) *Breaker {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = DefaultSettings().ConsecutiveFailures
	}
	st := gobreaker.Settings{
		Name:     name,
		Interval: s.Interval,
		Timeout:  s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker(st)}
}

// Execute runs fn unless the breaker is open, in which case gobreaker.ErrOpenState is returned.
func (b *Breaker) Execute(fn func() (any, error)) (any, error) {
	return b.cb.Execute(fn)
}

// State reports the current breaker state ("closed", "half-open", "open").
func (b *Breaker) State() string {
	return b.cb.State().String()
}
