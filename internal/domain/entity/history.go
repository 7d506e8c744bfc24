package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Action is the kind of ledger operation recorded in history
type Action string

// Ledger actions
const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// IsValid checks if the action is one of the supported values
func (a Action) IsValid() bool {
	return a == ActionBuy || a == ActionSell
}

// HistoryEntry is an append-only record of one buy or sell
type HistoryEntry struct {
	ID     uint64
	UserID uint64
	Action Action
	Symbol string
	Shares int64
	Price  decimal.Decimal
	Date   time.Time
}

// NewHistoryEntry validates and creates a history entry
func NewHistoryEntry(userID uint64, action Action, symbol string, shares int64, price decimal.Decimal, date time.Time) (*HistoryEntry, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: unsupported action %q", errs.ErrConstraintViolation, action)
	}
	if shares < 1 {
		return nil, errs.NewValidationError("shares", errs.ErrInvalidShares)
	}

	return &HistoryEntry{
		UserID: userID,
		Action: action,
		Symbol: symbol,
		Shares: shares,
		Price:  price,
		Date:   date,
	}, nil
}

// Total returns shares x price
func (h *HistoryEntry) Total() decimal.Decimal {
	return h.Price.Mul(decimal.NewFromInt(h.Shares))
}

// HistoryReport is a rendered history download
type HistoryReport struct {
	Filename    string
	ContentType string
	Content     []byte
}
