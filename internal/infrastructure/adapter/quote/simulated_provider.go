package quote

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
)

// defaultCatalog seeds the simulated market
var defaultCatalog = []entity.Quote{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("189.84")},
	{Symbol: "AMZN", Name: "Amazon.com, Inc.", Price: decimal.RequireFromString("178.22")},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: decimal.RequireFromString("141.80")},
	{Symbol: "IBM", Name: "International Business Machines Corporation", Price: decimal.RequireFromString("166.27")},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Price: decimal.RequireFromString("415.50")},
	{Symbol: "NFLX", Name: "Netflix, Inc.", Price: decimal.RequireFromString("605.88")},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: decimal.RequireFromString("903.56")},
	{Symbol: "TSLA", Name: "Tesla, Inc.", Price: decimal.RequireFromString("175.79")},
}

// SimulatedProvider serves quotes from an in-process price table
type SimulatedProvider struct {
	mu     sync.RWMutex
	quotes map[string]entity.Quote
}

var _ gateway.QuoteProvider = (*SimulatedProvider)(nil)

// NewSimulatedProvider creates a provider seeded with the default catalog
func NewSimulatedProvider() *SimulatedProvider {
	p := &SimulatedProvider{quotes: make(map[string]entity.Quote, len(defaultCatalog))}
	for _, q := range defaultCatalog {
		p.quotes[q.Symbol] = q
	}
	return p
}

// Lookup returns the listed quote, or None for an unlisted symbol
func (p *SimulatedProvider) Lookup(ctx context.Context, symbol string) (entity.QuoteResult, error) {
	if err := ctx.Err(); err != nil {
		return entity.NoQuote(), err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	q, ok := p.quotes[symbol]
	if !ok {
		return entity.NoQuote(), nil
	}
	return entity.SomeQuote(q), nil
}

// SetPrice lists symbol or changes its price
func (p *SimulatedProvider) SetPrice(symbol, name string, price decimal.Decimal) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if name == "" {
		name = p.quotes[symbol].Name
	}
	p.quotes[symbol] = entity.Quote{Symbol: symbol, Name: name, Price: price}
}

// Delist removes symbol so later lookups return None
func (p *SimulatedProvider) Delist(symbol string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.quotes, symbol)
}
