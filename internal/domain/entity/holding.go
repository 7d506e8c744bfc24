package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Holding is one purchase lot. Lots of the same symbol are never merged.
type Holding struct {
	ID     uint64
	UserID uint64
	Symbol string
	Name   string
	Shares int64
	Price  decimal.Decimal // price at purchase
	Date   time.Time
}

// NewHolding creates a lot for shares bought at the quoted price
func NewHolding(userID uint64, quote Quote, shares int64, date time.Time) (*Holding, error) {
	if shares < 1 {
		return nil, errs.NewValidationError("shares", errs.ErrInvalidShares)
	}

	return &Holding{
		UserID: userID,
		Symbol: quote.Symbol,
		Name:   quote.Name,
		Shares: shares,
		Price:  quote.Price,
		Date:   date,
	}, nil
}

// Position is the aggregate of all lots a user holds in one symbol
type Position struct {
	Symbol string
	Name   string
	Shares int64
	// LastPrice is the purchase price of the most recent lot
	LastPrice decimal.Decimal
}
