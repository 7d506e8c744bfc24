package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockcore "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/persistence"
)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestScheduler_RunsIntervalJob(t *testing.T) {
	s, err := New(quietLogger(t))
	require.NoError(t, err)

	var runs atomic.Int32
	err = s.NewIntervalJob("counter", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}, 20*time.Millisecond, true)
	require.NoError(t, err)
	assert.Equal(t, 1, s.JobCount())

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Stop())
}

func TestScheduler_RecoversPanics(t *testing.T) {
	logger := mockcore.NewMockLogger(t)
	panicked := make(chan struct{}, 1)
	logger.EXPECT().Error("Panic recovered in scheduler job", mock.Anything).Run(func(string, map[string]interface{}) {
		select {
		case panicked <- struct{}{}:
		default:
		}
	}).Maybe()

	s, err := New(logger)
	require.NoError(t, err)
	require.NoError(t, s.NewIntervalJob("boom", func(ctx context.Context) error {
		panic("boom")
	}, time.Hour, true))

	s.Start()
	select {
	case <-panicked:
	case <-time.After(2 * time.Second):
		t.Fatal("panic was not recovered and logged")
	}
	require.NoError(t, s.Stop())
}

func TestQuoteWarmTask(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes held symbols", func(t *testing.T) {
		uow := mockpersistence.NewMockUnitOfWork(t)
		holdings := mockpersistence.NewMockHoldingRepository(t)
		refresher := mockgateway.NewMockQuoteRefresher(t)

		uow.EXPECT().GetHoldingRepository(mock.Anything).Return(holdings)
		holdings.EXPECT().HeldSymbols(mock.Anything).Return([]string{"AAPL", "MSFT"}, nil)
		refresher.EXPECT().Refresh(mock.Anything, []string{"AAPL", "MSFT"}).Return(nil).Once()

		assert.NoError(t, QuoteWarmTask(uow, refresher)(ctx))
	})

	t.Run("skips refresh when nothing is held", func(t *testing.T) {
		uow := mockpersistence.NewMockUnitOfWork(t)
		holdings := mockpersistence.NewMockHoldingRepository(t)
		refresher := mockgateway.NewMockQuoteRefresher(t)

		uow.EXPECT().GetHoldingRepository(mock.Anything).Return(holdings)
		holdings.EXPECT().HeldSymbols(mock.Anything).Return(nil, nil)

		assert.NoError(t, QuoteWarmTask(uow, refresher)(ctx))
	})

	t.Run("returns storage errors", func(t *testing.T) {
		uow := mockpersistence.NewMockUnitOfWork(t)
		holdings := mockpersistence.NewMockHoldingRepository(t)
		refresher := mockgateway.NewMockQuoteRefresher(t)

		uow.EXPECT().GetHoldingRepository(mock.Anything).Return(holdings)
		holdings.EXPECT().HeldSymbols(mock.Anything).Return(nil, errors.New("db down"))

		assert.Error(t, QuoteWarmTask(uow, refresher)(ctx))
	})
}
