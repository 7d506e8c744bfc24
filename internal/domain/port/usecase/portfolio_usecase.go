package usecase

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// PortfolioUseCase serves read-only views of a user's account
type PortfolioUseCase interface {
	// Portfolio values current holdings plus cash.
	// Symbols whose quote cannot be resolved keep their stored price.
	Portfolio(ctx context.Context, userID uint64) (*entity.Portfolio, error)

	// History lists the user's ledger entries, newest first
	History(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error)

	// Quote resolves a symbol or fails with ErrUnknownSymbol
	Quote(ctx context.Context, symbol string) (*entity.Quote, error)

	// OwnedSymbols lists symbols the user can sell
	OwnedSymbols(ctx context.Context, userID uint64) ([]string, error)

	// ExportHistory renders the user's history as a downloadable spreadsheet
	ExportHistory(ctx context.Context, userID uint64) (*entity.HistoryReport, error)
}
