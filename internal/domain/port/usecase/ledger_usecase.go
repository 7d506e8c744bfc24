package usecase

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// LedgerUseCase applies cash-changing operations
type LedgerUseCase interface {
	// Buy purchases shares of symbol at the current quote.
	// Cash debit, new lot and history entry are applied atomically.
	Buy(ctx context.Context, userID uint64, symbol string, shares int64) (*entity.TradeReceipt, error)

	// Sell disposes of shares of symbol at the current quote.
	// Cash credit, lot reduction and a single history entry are applied atomically.
	Sell(ctx context.Context, userID uint64, symbol string, shares int64) (*entity.TradeReceipt, error)
}
