package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	domainErr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/quote"
)

func setupIntegration(t *testing.T) (*TestDBManager, *UnitOfWork) {
	t.Helper()

	m := NewTestDBManager(t, logger.NewNoopLogger())
	m.Connect(t)
	return m, m.Manager.CreateUnitOfWork()
}

func TestIntegration_MigrationsAreIdempotent(t *testing.T) {
	m, _ := setupIntegration(t)
	ctx := context.Background()

	require.NoError(t, m.Manager.Migrate(ctx))

	version, err := latestMigrationVersion(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, "1.0.2", version)
	assert.NoError(t, m.Manager.Ping(ctx))
}

func TestIntegration_UnitOfWorkRollback(t *testing.T) {
	m, uow := setupIntegration(t)
	ctx := context.Background()
	userID := m.CreateTestUser(t, "alice", "10000")

	err := persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
		if err := uow.GetUserRepository(txCtx).UpdateCash(txCtx, userID, decimal.NewFromInt(1)); err != nil {
			return err
		}
		return domainErr.ErrInsufficientFunds
	})
	require.ErrorIs(t, err, domainErr.ErrInsufficientFunds)

	user, err := uow.GetUserRepository(ctx).GetByID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, user.Cash().Equal(decimal.NewFromInt(10000)))
}

func TestIntegration_HoldingsFIFOAndPositions(t *testing.T) {
	m, uow := setupIntegration(t)
	ctx := context.Background()
	userID := m.CreateTestUser(t, "bob", "10000")
	holdings := uow.GetHoldingRepository(ctx)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, price := range []string{"50", "55"} {
		lot, err := entity.NewHolding(userID, entity.Quote{
			Symbol: "NFLX",
			Name:   "Netflix, Inc.",
			Price:  decimal.RequireFromString(price),
		}, 3, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		require.NoError(t, holdings.Create(ctx, lot))
	}

	positions, err := holdings.Positions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, int64(6), positions[0].Shares)
	assert.True(t, positions[0].LastPrice.Equal(decimal.NewFromInt(55)))

	err = persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
		return uow.GetHoldingRepository(txCtx).Reduce(txCtx, userID, "NFLX", 4)
	})
	require.NoError(t, err)

	owned, err := holdings.SumShares(ctx, userID, "NFLX")
	require.NoError(t, err)
	assert.Equal(t, int64(2), owned)

	var remaining []struct {
		Shares int64
		Price  decimal.Decimal
	}
	require.NoError(t, m.Manager.DB().Table("owned").Select("shares, price").Scan(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(2), remaining[0].Shares)
	assert.True(t, remaining[0].Price.Equal(decimal.NewFromInt(55)))

	err = persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
		return uow.GetHoldingRepository(txCtx).Reduce(txCtx, userID, "NFLX", 3)
	})
	assert.ErrorIs(t, err, domainErr.ErrInsufficientShares)

	symbols, err := holdings.HeldSymbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"NFLX"}, symbols)
}

func TestIntegration_DuplicateUsername(t *testing.T) {
	m, uow := setupIntegration(t)
	ctx := context.Background()
	m.CreateTestUser(t, "carol", "10000")

	user, err := entity.NewUser("carol", "hash", decimal.NewFromInt(10000), m.TimeProvider)
	require.NoError(t, err)
	assert.ErrorIs(t, uow.GetUserRepository(ctx).Create(ctx, user), domainErr.ErrDuplicateKey)
}

func TestIntegration_ConcurrentBuysNeverOverdraw(t *testing.T) {
	m, uow := setupIntegration(t)
	ctx := context.Background()
	userID := m.CreateTestUser(t, "dave", "1000")

	quotes := quote.NewSimulatedProvider()
	quotes.SetPrice("IBM", "International Business Machines", decimal.NewFromInt(100))

	// Two sequencers stand in for two service instances sharing the database
	noop := logger.NewNoopLogger()
	retrier := NewRetrier(DefaultRetryConfig(), noop)
	services := make([]*ledger.Service, 2)
	for i := range services {
		sequencer := ledger.NewSequencer(noop, 100, time.Minute)
		t.Cleanup(sequencer.Shutdown)
		services[i] = ledger.NewService(uow, quotes, sequencer, retrier, m.TimeProvider, noop)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := services[i%2].Buy(ctx, userID, "IBM", 1); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)

	user, err := uow.GetUserRepository(ctx).GetByID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, user.Cash().IsZero())

	entries, err := uow.GetHistoryRepository(ctx).ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

// latestMigrationVersion reads the most recently recorded schema version
func latestMigrationVersion(ctx context.Context, m *TestDBManager) (string, error) {
	var version string
	err := m.Manager.DB().WithContext(ctx).
		Table("migration_versions").
		Select("version").
		Order("id desc").
		Limit(1).
		Scan(&version).Error
	return version, err
}
