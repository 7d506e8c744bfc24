package persistence

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// HoldingRepository manages purchase lots
type HoldingRepository interface {
	// Create inserts a new lot and assigns its ID
	Create(ctx context.Context, lot *entity.Holding) error

	// SumShares returns the aggregate shares a user holds in symbol (0 when none)
	SumShares(ctx context.Context, userID uint64, symbol string) (int64, error)

	// Positions aggregates lots by symbol, ordered by symbol
	Positions(ctx context.Context, userID uint64) ([]entity.Position, error)

	// Reduce removes shares from the user's lots in symbol, oldest lot first.
	// Fully consumed lots are deleted and a partially consumed lot is decremented.
	//
	// Possible errors:
	// - ErrInsufficientShares: If the lots hold fewer than shares
	// - ErrDatabaseConnection: If database connection fails
	Reduce(ctx context.Context, userID uint64, symbol string, shares int64) error

	// HeldSymbols lists every symbol held by any user, used for cache warm-up
	HeldSymbols(ctx context.Context) ([]string, error)
}
