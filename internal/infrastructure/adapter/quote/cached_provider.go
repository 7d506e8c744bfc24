package quote

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
)

const cacheKeyPrefix = "quote:"

// cachedQuote is the JSON value stored per symbol
type cachedQuote struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// CachedProvider puts a Redis read-through cache in front of another provider.
// Cache failures degrade to direct lookups.
type CachedProvider struct {
	next          gateway.QuoteProvider
	redis         *redis.Client
	ttl           time.Duration
	maxConcurrent int
	logger        coreport.Logger
}

var (
	_ gateway.QuoteProvider  = (*CachedProvider)(nil)
	_ gateway.QuoteRefresher = (*CachedProvider)(nil)
)

// NewCachedProvider wraps next with a cache of the given TTL
func NewCachedProvider(next gateway.QuoteProvider, client *redis.Client, ttl time.Duration, maxConcurrent int, logger coreport.Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &CachedProvider{
		next:          next,
		redis:         client,
		ttl:           ttl,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// Lookup serves from cache when possible
func (p *CachedProvider) Lookup(ctx context.Context, symbol string) (entity.QuoteResult, error) {
	if q, ok := p.get(ctx, symbol); ok {
		return entity.SomeQuote(q), nil
	}

	result, err := p.next.Lookup(ctx, symbol)
	if err != nil {
		return result, err
	}

	if q, ok := result.Get(); ok {
		p.set(ctx, q)
	}
	return result, nil
}

// Refresh re-fetches symbols from the wrapped provider and rewrites the cache
func (p *CachedProvider) Refresh(ctx context.Context, symbols []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrent)

	var (
		mu     sync.Mutex
		fresh  = make([]entity.Quote, 0, len(symbols))
		failed int
	)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			result, err := p.next.Lookup(gctx, symbol)
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			if q, ok := result.Get(); ok {
				mu.Lock()
				fresh = append(fresh, q)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(fresh) > 0 {
		pipe := p.redis.Pipeline()
		for _, q := range fresh {
			payload, err := json.Marshal(toCached(q))
			if err != nil {
				return err
			}
			pipe.Set(ctx, cacheKeyPrefix+q.Symbol, payload, p.ttl)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			p.logger.Error("failed on pipe.Exec", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	p.logger.Info("Quote cache refreshed", map[string]any{
		"symbols": len(symbols),
		"cached":  len(fresh),
		"failed":  failed,
	})
	return nil
}

func (p *CachedProvider) get(ctx context.Context, symbol string) (entity.Quote, bool) {
	raw, err := p.redis.Get(ctx, cacheKeyPrefix+symbol).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger.Warn("Quote cache read failed", map[string]any{
				"symbol": symbol,
				"error":  err.Error(),
			})
		}
		return entity.Quote{}, false
	}

	var c cachedQuote
	if err := json.Unmarshal(raw, &c); err != nil {
		return entity.Quote{}, false
	}
	q, err := c.toQuote()
	if err != nil {
		return entity.Quote{}, false
	}
	return q, true
}

func (p *CachedProvider) set(ctx context.Context, q entity.Quote) {
	payload, err := json.Marshal(toCached(q))
	if err != nil {
		return
	}
	if err := p.redis.Set(ctx, cacheKeyPrefix+q.Symbol, payload, p.ttl).Err(); err != nil {
		p.logger.Warn("Quote cache write failed", map[string]any{
			"symbol": q.Symbol,
			"error":  err.Error(),
		})
	}
}

func toCached(q entity.Quote) cachedQuote {
	return cachedQuote{Symbol: q.Symbol, Name: q.Name, Price: q.Price.String()}
}

func (c cachedQuote) toQuote() (entity.Quote, error) {
	price, err := decimal.NewFromString(c.Price)
	if err != nil {
		return entity.Quote{}, err
	}
	return entity.Quote{Symbol: c.Symbol, Name: c.Name, Price: price}, nil
}
