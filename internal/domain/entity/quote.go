package entity

import "github.com/shopspring/decimal"

// PricePlaces is the precision of stored share prices
const PricePlaces = 4

// Quote is a resolved price for a symbol at a point in time
type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

// QuoteResult is the outcome of a lookup: either Some(quote) or None
type QuoteResult struct {
	quote Quote
	ok    bool
}

// SomeQuote wraps a resolved quote
func SomeQuote(q Quote) QuoteResult {
	return QuoteResult{quote: q, ok: true}
}

// NoQuote is the result for a symbol that does not resolve
func NoQuote() QuoteResult {
	return QuoteResult{}
}

// Get returns the quote and whether it is present
func (r QuoteResult) Get() (Quote, bool) {
	return r.quote, r.ok
}

// IsSome reports whether the lookup resolved
func (r QuoteResult) IsSome() bool {
	return r.ok
}

// PriceOr returns the quoted price, or fallback when absent
func (r QuoteResult) PriceOr(fallback decimal.Decimal) decimal.Decimal {
	if !r.ok {
		return fallback
	}
	return r.quote.Price
}
