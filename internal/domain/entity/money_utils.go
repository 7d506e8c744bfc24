package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxSymbolLength bounds accepted ticker symbols
const MaxSymbolLength = 10

// DisplayDateLayout renders dates as day/month/year hour:minute:second
const DisplayDateLayout = "02/01/2006 15:04:05"

// CurrencyCode is the single currency the ledger works in
const CurrencyCode = "USD"

// ParseShareCount validates a share count from a form field.
// Only plain decimal digits are accepted and the value must be at least 1.
func ParseShareCount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errs.MissingField("shares")
	}

	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, errs.NewValidationError("shares", errs.ErrInvalidShares)
		}
	}

	shares, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || shares < 1 {
		return 0, errs.NewValidationError("shares", errs.ErrInvalidShares)
	}

	return shares, nil
}

// NormalizeSymbol trims and upper-cases a ticker symbol.
// Symbols containing anything but letters, digits, dots or dashes never resolve.
func NormalizeSymbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return "", errs.MissingField("symbol")
	}

	if len(symbol) > MaxSymbolLength {
		return "", errs.NewValidationError("symbol", errs.ErrUnknownSymbol)
	}
	for _, r := range symbol {
		isLetter := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit && r != '.' && r != '-' {
			return "", errs.NewValidationError("symbol", errs.ErrUnknownSymbol)
		}
	}

	return symbol, nil
}

// FormatUSD renders an amount as dollars, e.g. $1,234.56
func FormatUSD(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return money.New(cents, CurrencyCode).Display()
}

// FormatAmount renders an amount with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatDate renders a timestamp in the display layout
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}
