package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/repository/memory"
	mockcore "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/persistence"
)

type ledgerFixture struct {
	service *Service
	store   *memory.Store
	quotes  *mockgateway.MockQuoteProvider
	userID  uint64
	now     time.Time
}

func newLedgerFixture(t *testing.T, startingCash string) *ledgerFixture {
	t.Helper()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	logger := newQuietLogger(t)
	timeProvider := mockcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(now).Maybe()

	store := memory.NewStore(timeProvider, logger)
	user, err := entity.NewUser("alice", "hash", decimal.RequireFromString(startingCash), timeProvider)
	require.NoError(t, err)
	require.NoError(t, store.GetUserRepository(context.Background()).Create(context.Background(), user))

	quotes := mockgateway.NewMockQuoteProvider(t)
	sequencer := NewSequencer(logger, 100, time.Minute)
	t.Cleanup(sequencer.Shutdown)

	return &ledgerFixture{
		service: NewService(store, quotes, sequencer, nil, timeProvider, logger),
		store:   store,
		quotes:  quotes,
		userID:  user.ID,
		now:     now,
	}
}

func (f *ledgerFixture) quote(symbol, name, price string) {
	f.quotes.EXPECT().Lookup(mock.Anything, symbol).Return(entity.SomeQuote(entity.Quote{
		Symbol: symbol,
		Name:   name,
		Price:  decimal.RequireFromString(price),
	}), nil).Once()
}

func (f *ledgerFixture) cash(t *testing.T) decimal.Decimal {
	t.Helper()
	user, err := f.store.GetUserRepository(context.Background()).GetByID(context.Background(), f.userID)
	require.NoError(t, err)
	return user.Cash()
}

func (f *ledgerFixture) history(t *testing.T) []entity.HistoryEntry {
	t.Helper()
	entries, err := f.store.GetHistoryRepository(context.Background()).ListByUser(context.Background(), f.userID)
	require.NoError(t, err)
	return entries
}

func (f *ledgerFixture) owned(t *testing.T, symbol string) int64 {
	t.Helper()
	shares, err := f.store.GetHoldingRepository(context.Background()).SumShares(context.Background(), f.userID, symbol)
	require.NoError(t, err)
	return shares
}

func (f *ledgerFixture) positions(t *testing.T) []entity.Position {
	t.Helper()
	positions, err := f.store.GetHoldingRepository(context.Background()).Positions(context.Background(), f.userID)
	require.NoError(t, err)
	return positions
}

func TestService_Buy(t *testing.T) {
	t.Run("should debit cash, add a lot and record history", func(t *testing.T) {
		// Arrange
		f := newLedgerFixture(t, "10000")
		f.quote("AAPL", "Apple Inc.", "50.00")

		// Act
		receipt, err := f.service.Buy(context.Background(), f.userID, "aapl", 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.ActionBuy, receipt.Action)
		assert.Equal(t, "AAPL", receipt.Symbol)
		assert.Equal(t, "Apple Inc.", receipt.Name)
		assert.Equal(t, "500.00", entity.FormatAmount(receipt.Total))
		assert.Equal(t, "9500.00", entity.FormatAmount(receipt.CashAfter))
		assert.Equal(t, "9500.00", entity.FormatAmount(f.cash(t)))
		positions := f.positions(t)
		require.Len(t, positions, 1)
		assert.Equal(t, "AAPL", positions[0].Symbol)
		assert.Equal(t, "Apple Inc.", positions[0].Name)
		assert.Equal(t, int64(10), positions[0].Shares)
		assert.Equal(t, "50.00", entity.FormatAmount(positions[0].LastPrice))

		history := f.history(t)
		require.Len(t, history, 1)
		assert.Equal(t, entity.ActionBuy, history[0].Action)
		assert.Equal(t, int64(10), history[0].Shares)
		assert.Equal(t, "50.00", entity.FormatAmount(history[0].Price))
		assert.Equal(t, f.now, history[0].Date)
	})

	t.Run("should allow spending the exact balance", func(t *testing.T) {
		f := newLedgerFixture(t, "100")
		f.quote("IBM", "IBM", "25.00")

		receipt, err := f.service.Buy(context.Background(), f.userID, "IBM", 4)

		require.NoError(t, err)
		assert.True(t, receipt.CashAfter.IsZero())
	})

	t.Run("should reject insufficient funds without changing state", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quote("BRK", "Berkshire", "600000.00")

		_, err := f.service.Buy(context.Background(), f.userID, "BRK", 1)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		var detailed *errs.InsufficientFundsError
		require.True(t, errors.As(err, &detailed))
		assert.Equal(t, "600000.00", detailed.Required)
		assert.Equal(t, "10000.00", detailed.Available)

		assert.Equal(t, "10000.00", entity.FormatAmount(f.cash(t)))
		assert.Equal(t, int64(0), f.owned(t, "BRK"))
		assert.Empty(t, f.history(t))
	})

	t.Run("should reject an unknown symbol", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quotes.EXPECT().Lookup(mock.Anything, "ZZZZ").Return(entity.NoQuote(), nil).Once()

		_, err := f.service.Buy(context.Background(), f.userID, "zzzz", 1)

		assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
		assert.Empty(t, f.history(t))
	})

	t.Run("should report an unavailable quote source", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quotes.EXPECT().Lookup(mock.Anything, "AAPL").Return(entity.NoQuote(), errors.New("dial tcp: timeout")).Once()

		_, err := f.service.Buy(context.Background(), f.userID, "AAPL", 1)

		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
		assert.Equal(t, errs.KindUnavailable, errs.KindOf(err))
	})

	t.Run("should validate input before looking up a quote", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")

		_, err := f.service.Buy(context.Background(), f.userID, "", 1)
		assert.ErrorIs(t, err, errs.ErrMissingField)

		_, err = f.service.Buy(context.Background(), f.userID, "AAPL", 0)
		assert.ErrorIs(t, err, errs.ErrInvalidShares)

		_, err = f.service.Buy(context.Background(), 0, "AAPL", 1)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should trade at the quote rounded to four places", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quote("IBM", "IBM", "10.123456")

		receipt, err := f.service.Buy(context.Background(), f.userID, "IBM", 100)

		require.NoError(t, err)
		assert.Equal(t, "10.1235", receipt.Price.String())
		assert.Equal(t, "1012.35", receipt.Total.String())
		assert.Equal(t, "8987.65", f.cash(t).String())

		positions := f.positions(t)
		require.Len(t, positions, 1)
		assert.Equal(t, "10.1235", positions[0].LastPrice.String())

		history := f.history(t)
		require.Len(t, history, 1)
		assert.Equal(t, "10.1235", history[0].Price.String())
	})

	t.Run("should keep separate lots for repeated purchases", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quote("AAPL", "Apple Inc.", "50.00")
		f.quote("AAPL", "Apple Inc.", "55.00")

		_, err := f.service.Buy(context.Background(), f.userID, "AAPL", 2)
		require.NoError(t, err)
		_, err = f.service.Buy(context.Background(), f.userID, "AAPL", 3)
		require.NoError(t, err)

		positions := f.positions(t)
		require.Len(t, positions, 1)
		assert.Equal(t, int64(5), positions[0].Shares)
		assert.Equal(t, "55.00", entity.FormatAmount(positions[0].LastPrice))
		assert.Equal(t, "9735.00", entity.FormatAmount(f.cash(t)))
	})
}

func TestService_Sell(t *testing.T) {
	t.Run("should credit proceeds and remove the position", func(t *testing.T) {
		// Arrange
		f := newLedgerFixture(t, "10000")
		f.quote("AAPL", "Apple Inc.", "50.00")
		_, err := f.service.Buy(context.Background(), f.userID, "AAPL", 10)
		require.NoError(t, err)
		f.quote("AAPL", "Apple Inc.", "60.00")

		// Act
		receipt, err := f.service.Sell(context.Background(), f.userID, "AAPL", 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.ActionSell, receipt.Action)
		assert.Equal(t, "600.00", entity.FormatAmount(receipt.Total))
		assert.Equal(t, "10100.00", entity.FormatAmount(f.cash(t)))
		assert.Equal(t, int64(0), f.owned(t, "AAPL"))
		assert.Empty(t, f.positions(t))

		history := f.history(t)
		require.Len(t, history, 2, "a sell must record exactly one entry")
		sells := 0
		for _, entry := range history {
			if entry.Action == entity.ActionSell {
				sells++
				assert.Equal(t, int64(10), entry.Shares)
				assert.Equal(t, "60.00", entity.FormatAmount(entry.Price))
			}
		}
		assert.Equal(t, 1, sells)
	})

	t.Run("should consume lots oldest first on a partial sell", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quote("MSFT", "Microsoft", "10.00")
		f.quote("MSFT", "Microsoft", "20.00")
		_, err := f.service.Buy(context.Background(), f.userID, "MSFT", 3)
		require.NoError(t, err)
		_, err = f.service.Buy(context.Background(), f.userID, "MSFT", 4)
		require.NoError(t, err)
		f.quote("MSFT", "Microsoft", "30.00")

		_, err = f.service.Sell(context.Background(), f.userID, "MSFT", 5)

		require.NoError(t, err)
		assert.Equal(t, int64(2), f.owned(t, "MSFT"))
		positions := f.positions(t)
		require.Len(t, positions, 1)
		assert.Equal(t, int64(2), positions[0].Shares)
		assert.Equal(t, "20.00", entity.FormatAmount(positions[0].LastPrice))
		// 10000 - 30 - 80 + 150
		assert.Equal(t, "10040.00", entity.FormatAmount(f.cash(t)))
	})

	t.Run("should reject selling more than owned without changing state", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quote("AAPL", "Apple Inc.", "50.00")
		_, err := f.service.Buy(context.Background(), f.userID, "AAPL", 10)
		require.NoError(t, err)
		f.quote("AAPL", "Apple Inc.", "60.00")

		_, err = f.service.Sell(context.Background(), f.userID, "AAPL", 11)

		assert.ErrorIs(t, err, errs.ErrInsufficientShares)
		assert.Equal(t, "9500.00", entity.FormatAmount(f.cash(t)))
		assert.Equal(t, int64(10), f.owned(t, "AAPL"))
		assert.Len(t, f.history(t), 1)
	})

	t.Run("should reject a symbol that is not owned", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")

		_, err := f.service.Sell(context.Background(), f.userID, "NFLX", 1)

		assert.ErrorIs(t, err, errs.ErrSymbolNotOwned)
		assert.Equal(t, "10000.00", entity.FormatAmount(f.cash(t)))
		f.quotes.AssertNotCalled(t, "Lookup", mock.Anything, "NFLX")
	})

	t.Run("should report not owned even when quotes are down", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quotes.EXPECT().Lookup(mock.Anything, "NFLX").Return(entity.NoQuote(), errs.ErrQuoteUnavailable).Maybe()

		_, err := f.service.Sell(context.Background(), f.userID, "nflx", 1)

		assert.ErrorIs(t, err, errs.ErrSymbolNotOwned)
		assert.NotErrorIs(t, err, errs.ErrQuoteUnavailable)
		assert.Equal(t, errs.KindBusinessRule, errs.KindOf(err))
	})

	t.Run("should reject an owned symbol that no longer quotes", func(t *testing.T) {
		f := newLedgerFixture(t, "10000")
		f.quote("GONE", "Delisted", "5.00")
		_, err := f.service.Buy(context.Background(), f.userID, "GONE", 2)
		require.NoError(t, err)
		f.quotes.EXPECT().Lookup(mock.Anything, "GONE").Return(entity.NoQuote(), nil).Once()

		_, err = f.service.Sell(context.Background(), f.userID, "GONE", 1)

		assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
		assert.Equal(t, int64(2), f.owned(t, "GONE"))
	})
}

func TestService_ConcurrentBuys(t *testing.T) {
	// Arrange
	f := newLedgerFixture(t, "1000")
	f.quotes.EXPECT().Lookup(mock.Anything, "AAPL").Return(entity.SomeQuote(entity.Quote{
		Symbol: "AAPL",
		Name:   "Apple Inc.",
		Price:  decimal.NewFromInt(100),
	}), nil)

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	// Act
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Buy(context.Background(), f.userID, "AAPL", 1)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errs.ErrInsufficientFunds):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, rejected)
	assert.True(t, f.cash(t).IsZero())
	assert.Equal(t, int64(10), f.owned(t, "AAPL"))
	assert.Len(t, f.history(t), 10)
}

func TestService_RetriesThroughPolicy(t *testing.T) {
	// Arrange
	f := newLedgerFixture(t, "10000")
	f.quote("AAPL", "Apple Inc.", "50.00")

	retry := mockpersistence.NewMockRetryPolicy(t)
	attempts := 0
	retry.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, op func(context.Context) error) error {
		for {
			attempts++
			err := op(ctx)
			if !errors.Is(err, errs.ErrConcurrentUpdate) {
				return err
			}
		}
	}).Once()
	f.service.retry = retry

	// Act
	receipt, err := f.service.Buy(context.Background(), f.userID, "AAPL", 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, "9950.00", entity.FormatAmount(receipt.CashAfter))
}
