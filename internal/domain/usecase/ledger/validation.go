package ledger

import (
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
)

// validateTrade checks the trade input and returns the normalized symbol
func validateTrade(userID uint64, symbol string, shares int64) (string, error) {
	if userID == 0 {
		return "", errs.ErrUnauthenticated
	}

	normalized, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return "", err
	}

	if shares < 1 {
		return "", errs.NewValidationError("shares", errs.ErrInvalidShares)
	}

	return normalized, nil
}
