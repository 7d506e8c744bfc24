package scheduler

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
)

// QuoteWarmJobName identifies the cache warm job
const QuoteWarmJobName = "quote-cache-warm"

// QuoteWarmTask refreshes cached quotes for every symbol anyone holds
func QuoteWarmTask(uow persistence.UnitOfWork, refresher gateway.QuoteRefresher) TaskFunc {
	return func(ctx context.Context) error {
		symbols, err := uow.GetHoldingRepository(ctx).HeldSymbols(ctx)
		if err != nil {
			return err
		}
		if len(symbols) == 0 {
			return nil
		}
		return refresher.Refresh(ctx, symbols)
	}
}
