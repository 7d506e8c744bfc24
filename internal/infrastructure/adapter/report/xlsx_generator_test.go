package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	mockcore "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/core"
)

func TestXLSXGenerator_Generate(t *testing.T) {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

	date := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	entries := []entity.HistoryEntry{
		{ID: 2, Action: entity.ActionSell, Symbol: "AAPL", Shares: 10, Price: decimal.RequireFromString("60"), Date: date},
		{ID: 1, Action: entity.ActionBuy, Symbol: "AAPL", Shares: 10, Price: decimal.RequireFromString("50"), Date: date.Add(-time.Hour)},
	}

	content, ext, ctype, err := NewXLSXGenerator(logger).Generate(context.Background(), "alice", entries)
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", ext)
	assert.Equal(t, contentType, ctype)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Transaction history: alice", title)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, headers, rows[1])
	assert.Equal(t, "01/03/2024 14:05:09", rows[2][0])
	assert.Equal(t, "sell", rows[2][1])
	assert.Equal(t, "buy", rows[3][1])
}
