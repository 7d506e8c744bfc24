package gateway

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// QuoteProvider resolves ticker symbols to current prices
type QuoteProvider interface {
	// Lookup resolves a normalized symbol.
	// An unknown symbol is NoQuote with a nil error; an error means the
	// provider itself failed and wraps ErrQuoteUnavailable.
	Lookup(ctx context.Context, symbol string) (entity.QuoteResult, error)
}

// QuoteRefresher re-fetches quotes ahead of demand
type QuoteRefresher interface {
	// Refresh fetches the given symbols from the upstream provider and
	// replaces any cached values
	Refresh(ctx context.Context, symbols []string) error
}
