package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	zc, logs := observer.New(zap.DebugLevel)
	log := NewWithCore(zc, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("Buy executed", map[string]any{"symbol": "AAPL", "shares": int64(10)})
	log.Warn("Sell rejected", map[string]any{"error": errors.New("insufficient shares")})

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0]
	assert.Equal(t, "Buy executed", first.Message)
	assert.Equal(t, "AAPL", first.ContextMap()["symbol"])
	assert.Equal(t, "insufficient shares", logs.All()[1].ContextMap()["error"])

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.Warn("dropped", nil)
	assert.Equal(t, 2, logs.Len())
}

func TestZapLogger_With(t *testing.T) {
	zc, logs := observer.New(zap.DebugLevel)
	log := NewWithCore(zc, core.LogLevelDebug).With(map[string]any{"request_id": "req-1"})

	log.Info("Request processed", map[string]any{"status": 200})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()

	log.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}
