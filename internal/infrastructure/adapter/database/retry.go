package database

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	domainErr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// Retrier re-runs operations that failed with a transient storage error
type Retrier struct {
	config RetryConfig
	logger coreport.Logger
}

var _ persistence.RetryPolicy = (*Retrier)(nil)

// NewRetrier creates a retry policy. A non-positive MaxRetries runs the
// operation exactly once.
func NewRetrier(config RetryConfig, logger coreport.Logger) *Retrier {
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	return &Retrier{config: config, logger: logger}
}

// Do runs operation until it succeeds, fails with a non-transient error or
// the attempts are exhausted
func (r *Retrier) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	var err error
	var attempt int

	for attempt = 0; attempt < r.config.MaxRetries; attempt++ {
		err = operation(ctx)
		if err == nil {
			return nil
		}

		if !IsTransientError(err) {
			return err
		}

		if attempt == r.config.MaxRetries-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, r.config)
		r.logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": r.config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			r.logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts":    attempt + 1,
				"max_retries": r.config.MaxRetries,
				"error":       ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	r.logger.Error("All retry attempts failed", map[string]any{
		"attempts":    attempt + 1,
		"max_retries": r.config.MaxRetries,
		"error":       err.Error(),
	})

	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if backoff > config.MaxInterval || backoff <= 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}

// IsTransientError checks if an error is transient and can be retried.
// Business and validation errors are never transient.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, domainErr.ErrCommitOutcomeUnknown) {
		return false
	}

	if errors.Is(err, domainErr.ErrConcurrentUpdate) {
		return true
	}

	if domainErr.KindOf(err) != domainErr.KindInternal {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "eof")
}
