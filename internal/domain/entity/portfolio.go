package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioLine is one symbol row of the portfolio view
type PortfolioLine struct {
	Symbol string
	Name   string
	Shares int64
	Price  decimal.Decimal
	Total  decimal.Decimal
	// Stale is true when the current quote could not be resolved and Price is the stored one
	Stale bool
}

// Portfolio is the valuation of a user's holdings plus cash
type Portfolio struct {
	UserID        uint64
	Username      string
	Lines         []PortfolioLine
	Cash          decimal.Decimal
	HoldingsValue decimal.Decimal
	GrandTotal    decimal.Decimal
}

// NewPortfolio values each position at the given price and totals the result
func NewPortfolio(user *User, positions []Position, prices map[string]QuoteResult) *Portfolio {
	p := &Portfolio{
		UserID:        user.ID,
		Username:      user.Username,
		Lines:         make([]PortfolioLine, 0, len(positions)),
		Cash:          user.Cash(),
		HoldingsValue: decimal.Zero,
	}

	for _, pos := range positions {
		result := prices[pos.Symbol]
		price := result.PriceOr(pos.LastPrice)
		name := pos.Name
		if q, ok := result.Get(); ok && q.Name != "" {
			name = q.Name
		}

		total := price.Mul(decimal.NewFromInt(pos.Shares))
		p.Lines = append(p.Lines, PortfolioLine{
			Symbol: pos.Symbol,
			Name:   name,
			Shares: pos.Shares,
			Price:  price,
			Total:  total,
			Stale:  !result.IsSome(),
		})
		p.HoldingsValue = p.HoldingsValue.Add(total)
	}

	p.GrandTotal = p.HoldingsValue.Add(p.Cash)
	return p
}

// TradeReceipt describes an executed buy or sell
type TradeReceipt struct {
	Action     Action
	Symbol     string
	Name       string
	Shares     int64
	Price      decimal.Decimal
	Total      decimal.Decimal
	CashAfter  decimal.Decimal
	ExecutedAt time.Time
}
