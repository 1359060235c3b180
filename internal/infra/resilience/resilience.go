// Package resilience wraps calls to external services with a timeout,
// a circuit breaker and bounded retries.
package resilience

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"github.com/sony/gobreaker"
)

const (
	defaultMaxRequests  = 3
	defaultInterval     = 30 * time.Second
	defaultOpenTimeout  = 10 * time.Second
	defaultMinRequests  = 5
	defaultFailureRatio = 0.6
)

// Breaker guards one external dependency.
type Breaker struct {
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

// NewBreaker builds a breaker named after the dependency it guards. Calls are
// bounded by timeout. Errors for which isSuccessful returns true (caller
// mistakes such as an invalid token) do not count towards tripping.
func NewBreaker(name string, cfg *config.BreakerConfig, timeout time.Duration, logger *slog.Logger, isSuccessful func(error) bool) *Breaker {
	settings := settingsFrom(name, cfg)
	settings.IsSuccessful = func(err error) bool {
		if err == nil {
			return true
		}
		if isSuccessful != nil {
			return isSuccessful(err)
		}

		return false
	}
	if logger != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		}
	}

	return &Breaker{
		cb:      gobreaker.NewCircuitBreaker(settings),
		timeout: timeout,
	}
}

func settingsFrom(name string, cfg *config.BreakerConfig) gobreaker.Settings {
	maxRequests := uint32(defaultMaxRequests)
	interval := defaultInterval
	openTimeout := defaultOpenTimeout
	minRequests := uint32(defaultMinRequests)
	failureRatio := defaultFailureRatio

	if cfg != nil {
		if cfg.MaxRequests > 0 {
			maxRequests = cfg.MaxRequests
		}
		if cfg.Interval > 0 {
			interval = cfg.Interval
		}
		if cfg.Timeout > 0 {
			openTimeout = cfg.Timeout
		}
		if cfg.MinRequests > 0 {
			minRequests = cfg.MinRequests
		}
		if cfg.FailureRatio > 0 {
			failureRatio = cfg.FailureRatio
		}
	}

	return gobreaker.Settings{
		Name:        name,
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= failureRatio
		},
	}
}

// Name returns the breaker name.
func (b *Breaker) Name() string {
	return b.cb.Name()
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Do runs fn through the breaker with the breaker's timeout applied to ctx.
func Do[T any](ctx context.Context, b *Breaker, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	callCtx := ctx
	if b.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	result, err := b.cb.Execute(func() (any, error) {
		return fn(callCtx)
	})
	if err != nil {
		return zero, err
	}

	typed, _ := result.(T)

	return typed, nil
}

// Run is Do for calls without a result.
func Run(ctx context.Context, b *Breaker, fn func(ctx context.Context) error) error {
	_, err := Do(ctx, b, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})

	return err
}

// IsOpen reports whether err was produced by a breaker refusing the call.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// RetryConfig holds retry parameters.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
}

// RetryWithBackoff executes fn with exponential backoff and jitter until it
// succeeds, retryable returns false, or the retries run out.
func RetryWithBackoff(ctx context.Context, cfg RetryConfig, retryable func(error) bool, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}

		if attempt < cfg.MaxRetries && cfg.InitialBackoff > 0 {
			backoff := cfg.InitialBackoff << attempt
			wait := backoff + rand.N(backoff/2+1)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}

	return lastErr
}
