package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainErr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/logger"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
		JitterFactor:  0.2,
	}
}

func TestIsTransientError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Nil", nil, false},
		{"ConcurrentUpdate", fmt.Errorf("%w: commit", domainErr.ErrConcurrentUpdate), true},
		{"Deadlock", errors.New("ERROR: deadlock detected"), true},
		{"ConnectionReset", fmt.Errorf("%w: read: connection reset by peer", domainErr.ErrDatabaseConnection), true},
		{"UnexpectedEOF", errors.New("unexpected EOF"), true},
		{"CommitOutcomeUnknown", fmt.Errorf("%w: unexpected EOF", domainErr.ErrCommitOutcomeUnknown), false},
		{"InsufficientFunds", domainErr.NewInsufficientFundsError(1, "AAPL", "100.00", "10.00"), false},
		{"UnknownSymbol", domainErr.ErrUnknownSymbol, false},
		{"UserNotFound", domainErr.ErrUserNotFound, false},
		{"Other", errors.New("syntax error at or near"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsTransientError(tc.err))
		})
	}
}

func TestRetrier_SucceedsAfterTransientFailures(t *testing.T) {
	retrier := NewRetrier(fastRetryConfig(5), logger.NewNoopLogger())

	calls := 0
	err := retrier.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return domainErr.ErrConcurrentUpdate
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_DoesNotRetryBusinessErrors(t *testing.T) {
	retrier := NewRetrier(fastRetryConfig(5), logger.NewNoopLogger())

	calls := 0
	err := retrier.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return domainErr.NewInsufficientSharesError(1, "IBM", 3, 1)
	})

	assert.ErrorIs(t, err, domainErr.ErrInsufficientShares)
	assert.Equal(t, 1, calls)
}

func TestRetrier_DoesNotReplayUnknownCommit(t *testing.T) {
	retrier := NewRetrier(fastRetryConfig(5), logger.NewNoopLogger())
	commitErr := NewErrorMapper().MapCommitError(errors.New("unexpected EOF"))

	calls := 0
	err := retrier.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return commitErr
	})

	assert.ErrorIs(t, err, domainErr.ErrCommitOutcomeUnknown)
	assert.Equal(t, 1, calls)
}

func TestRetrier_GivesUpAfterMaxRetries(t *testing.T) {
	retrier := NewRetrier(fastRetryConfig(3), logger.NewNoopLogger())

	calls := 0
	err := retrier.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return domainErr.ErrConcurrentUpdate
	})

	assert.ErrorIs(t, err, domainErr.ErrConcurrentUpdate)
	assert.Equal(t, 3, calls)
}

func TestRetrier_StopsOnCanceledContext(t *testing.T) {
	config := fastRetryConfig(10)
	config.RetryInterval = time.Second
	config.MaxInterval = time.Second
	retrier := NewRetrier(config, logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retrier.Do(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return domainErr.ErrConcurrentUpdate
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestNewRetrier_RunsAtLeastOnce(t *testing.T) {
	retrier := NewRetrier(RetryConfig{}, logger.NewNoopLogger())

	calls := 0
	err := retrier.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return domainErr.ErrConcurrentUpdate
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   time.Second,
		JitterFactor:  0.5,
	}

	first := calculateBackoffWithJitter(0, config)
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 150*time.Millisecond)

	capped := calculateBackoffWithJitter(10, config)
	assert.GreaterOrEqual(t, capped, time.Second)
	assert.LessOrEqual(t, capped, 1500*time.Millisecond)
}
