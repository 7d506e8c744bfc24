package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/core"
)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestHTTPProvider_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/stock/AAPL/quote":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"symbol":"AAPL","companyName":"Apple Inc.","latestPrice":189.84}`))
		case "/stock/PENNY/quote":
			_, _ = w.Write([]byte(`{"symbol":"PENNY","companyName":"Penny Corp","latestPrice":0.123456}`))
		case "/stock/BAD/quote":
			_, _ = w.Write([]byte(`{not json`))
		case "/stock/DOWN/quote":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, "test-key", 2*time.Second, quietLogger(t))
	ctx := context.Background()

	t.Run("known symbol", func(t *testing.T) {
		result, err := provider.Lookup(ctx, "AAPL")
		require.NoError(t, err)

		q, ok := result.Get()
		require.True(t, ok)
		assert.Equal(t, "Apple Inc.", q.Name)
		assert.Equal(t, "189.84", entity.FormatAmount(q.Price))
	})

	t.Run("price is rounded to four places", func(t *testing.T) {
		result, err := provider.Lookup(ctx, "PENNY")
		require.NoError(t, err)

		q, ok := result.Get()
		require.True(t, ok)
		assert.True(t, decimal.RequireFromString("0.1235").Equal(q.Price), q.Price.String())
	})

	t.Run("unknown symbol is None", func(t *testing.T) {
		result, err := provider.Lookup(ctx, "ZZZZ")
		require.NoError(t, err)
		assert.False(t, result.IsSome())
	})

	t.Run("malformed body is unavailable", func(t *testing.T) {
		_, err := provider.Lookup(ctx, "BAD")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("server errors are unavailable", func(t *testing.T) {
		_, err := provider.Lookup(ctx, "DOWN")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("wrong key is unavailable", func(t *testing.T) {
		bad := NewHTTPProvider(server.URL, "nope", 2*time.Second, quietLogger(t))
		_, err := bad.Lookup(ctx, "AAPL")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})
}

func TestSimulatedProvider(t *testing.T) {
	provider := NewSimulatedProvider()
	ctx := context.Background()

	result, err := provider.Lookup(ctx, "AAPL")
	require.NoError(t, err)
	assert.True(t, result.IsSome())

	provider.SetPrice("AAPL", "", decimal.RequireFromString("50"))
	result, _ = provider.Lookup(ctx, "AAPL")
	q, _ := result.Get()
	assert.Equal(t, "Apple Inc.", q.Name)
	assert.Equal(t, "50.00", entity.FormatAmount(q.Price))

	provider.Delist("AAPL")
	result, err = provider.Lookup(ctx, "AAPL")
	require.NoError(t, err)
	assert.False(t, result.IsSome())
}
