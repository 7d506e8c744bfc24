package portfolio

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
)

// DefaultMaxConcurrentLookups bounds the quote fan-out of one portfolio read
const DefaultMaxConcurrentLookups = 8

// Reader serves the read side of a user's account
type Reader struct {
	uow           persistence.UnitOfWork
	quotes        gateway.QuoteProvider
	reports       gateway.HistoryReportGenerator
	maxConcurrent int
	logger        coreport.Logger
}

var _ usecase.PortfolioUseCase = (*Reader)(nil)

// NewReader creates a portfolio reader
func NewReader(
	uow persistence.UnitOfWork,
	quotes gateway.QuoteProvider,
	reports gateway.HistoryReportGenerator,
	maxConcurrent int,
	logger coreport.Logger,
) *Reader {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentLookups
	}
	return &Reader{
		uow:           uow,
		quotes:        quotes,
		reports:       reports,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// Portfolio aggregates holdings and values them at current prices.
// A symbol without a current quote is valued at its last purchase price.
func (r *Reader) Portfolio(ctx context.Context, userID uint64) (*entity.Portfolio, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}

	user, err := r.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	positions, err := r.uow.GetHoldingRepository(ctx).Positions(ctx, userID)
	if err != nil {
		return nil, err
	}

	prices := r.lookupAll(ctx, positions)
	return entity.NewPortfolio(user, positions, prices), nil
}

// lookupAll fetches current quotes with bounded concurrency. Failures are
// logged and left out of the result.
func (r *Reader) lookupAll(ctx context.Context, positions []entity.Position) map[string]entity.QuoteResult {
	var (
		mu     sync.Mutex
		prices = make(map[string]entity.QuoteResult, len(positions))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrent)

	for _, pos := range positions {
		symbol := pos.Symbol
		g.Go(func() error {
			result, err := r.quotes.Lookup(gctx, symbol)
			if err != nil {
				r.logger.Warn("Using stale price for symbol", map[string]any{
					"symbol": symbol,
					"error":  err.Error(),
				})
				return nil
			}

			mu.Lock()
			prices[symbol] = result
			mu.Unlock()
			return nil
		})
	}

	// lookups never return an error
	_ = g.Wait()
	return prices
}

// History returns the user's entries newest first
func (r *Reader) History(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}
	return r.uow.GetHistoryRepository(ctx).ListByUser(ctx, userID)
}

// Quote looks up a single symbol
func (r *Reader) Quote(ctx context.Context, symbol string) (*entity.Quote, error) {
	normalized, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	result, err := r.quotes.Lookup(ctx, normalized)
	if err != nil {
		r.logger.Warn("Quote lookup failed", map[string]any{
			"symbol": normalized,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, normalized)
	}

	quote, ok := result.Get()
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownSymbol, normalized)
	}
	return &quote, nil
}

// OwnedSymbols lists the symbols the user can sell
func (r *Reader) OwnedSymbols(ctx context.Context, userID uint64) ([]string, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}

	positions, err := r.uow.GetHoldingRepository(ctx).Positions(ctx, userID)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(positions))
	for _, pos := range positions {
		if pos.Shares > 0 {
			symbols = append(symbols, pos.Symbol)
		}
	}
	return symbols, nil
}

// ExportHistory renders the user's full history through the report generator
func (r *Reader) ExportHistory(ctx context.Context, userID uint64) (*entity.HistoryReport, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}

	user, err := r.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := r.uow.GetHistoryRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	content, ext, contentType, err := r.reports.Generate(ctx, user.Username, entries)
	if err != nil {
		r.logger.Error("History export failed", map[string]any{
			"user_id": userID,
			"entries": len(entries),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: history export: %v", errs.ErrInternalServer, err)
	}

	return &entity.HistoryReport{
		Filename:    "history-" + user.Username + ext,
		ContentType: contentType,
		Content:     content,
	}, nil
}
