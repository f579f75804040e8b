package gemini

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"readingsoundtrack/internal/logging"
	"readingsoundtrack/internal/metrics"
)

const breakerName = "gemini"

// Generator produces model text for a system instruction and a prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// BreakerSettings tunes the circuit breaker around a Generator.
type BreakerSettings struct {
	// ConsecutiveFailures opens the circuit.
	ConsecutiveFailures uint32
	// Timeout is how long the circuit stays open before probing again.
	Timeout time.Duration
}

// DefaultBreakerSettings opens after 5 consecutive failures and probes again after 30s.
var DefaultBreakerSettings = BreakerSettings{ConsecutiveFailures: 5, Timeout: 30 * time.Second}

// BreakerClient guards a Generator with a circuit breaker. While open,
// Generate returns gobreaker.ErrOpenState without calling the model.
type BreakerClient struct {
	next Generator
	cb   *gobreaker.CircuitBreaker[string]
}

func NewBreakerClient(next Generator, s BreakerSettings) *BreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		// a caller giving up is not a model failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &BreakerClient{next: next, cb: cb}
}

func (b *BreakerClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	return b.cb.Execute(func() (string, error) {
		return b.next.Generate(ctx, system, prompt)
	})
}

// State reports the current breaker state.
func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

// IsRejected reports whether err came from the breaker rather than the model.
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
