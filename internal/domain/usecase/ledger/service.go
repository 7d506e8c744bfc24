package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Service implements the LedgerUseCase interface.
// Every buy and sell runs on the user's sequencer worker inside one
// database transaction that starts by locking the user row.
type Service struct {
	uow          persistence.UnitOfWork
	quotes       gateway.QuoteProvider
	sequencer    *Sequencer
	retry        persistence.RetryPolicy
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger service. retry may be nil to run each
// operation exactly once.
func NewService(
	uow persistence.UnitOfWork,
	quotes gateway.QuoteProvider,
	sequencer *Sequencer,
	retry persistence.RetryPolicy,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		quotes:       quotes,
		sequencer:    sequencer,
		retry:        retry,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Buy purchases shares at the current quote
func (s *Service) Buy(ctx context.Context, userID uint64, symbol string, shares int64) (*entity.TradeReceipt, error) {
	symbol, err := validateTrade(userID, symbol, shares)
	if err != nil {
		return nil, err
	}

	quote, err := s.resolveQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	receipt, err := s.sequencer.Submit(ctx, userID, func(ctx context.Context) (*entity.TradeReceipt, error) {
		return s.withRetry(ctx, func(ctx context.Context) (*entity.TradeReceipt, error) {
			return s.applyBuy(ctx, userID, quote, shares)
		})
	})
	if err != nil {
		s.logRejection("Buy rejected", userID, symbol, shares, err)
		return nil, err
	}

	s.logger.Info("Buy executed", map[string]any{
		"user_id":    userID,
		"symbol":     receipt.Symbol,
		"shares":     receipt.Shares,
		"price":      entity.FormatAmount(receipt.Price),
		"total":      entity.FormatAmount(receipt.Total),
		"cash_after": entity.FormatAmount(receipt.CashAfter),
	})
	return receipt, nil
}

// Sell disposes of shares at the current quote
func (s *Service) Sell(ctx context.Context, userID uint64, symbol string, shares int64) (*entity.TradeReceipt, error) {
	symbol, err := validateTrade(userID, symbol, shares)
	if err != nil {
		return nil, err
	}

	// Rechecked under the user lock in applySell.
	owned, err := s.uow.GetHoldingRepository(ctx).SumShares(ctx, userID, symbol)
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		err = fmt.Errorf("%w: %s", errs.ErrSymbolNotOwned, symbol)
		s.logRejection("Sell rejected", userID, symbol, shares, err)
		return nil, err
	}

	quote, err := s.resolveQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	receipt, err := s.sequencer.Submit(ctx, userID, func(ctx context.Context) (*entity.TradeReceipt, error) {
		return s.withRetry(ctx, func(ctx context.Context) (*entity.TradeReceipt, error) {
			return s.applySell(ctx, userID, quote, shares)
		})
	})
	if err != nil {
		s.logRejection("Sell rejected", userID, symbol, shares, err)
		return nil, err
	}

	s.logger.Info("Sell executed", map[string]any{
		"user_id":    userID,
		"symbol":     receipt.Symbol,
		"shares":     receipt.Shares,
		"price":      entity.FormatAmount(receipt.Price),
		"total":      entity.FormatAmount(receipt.Total),
		"cash_after": entity.FormatAmount(receipt.CashAfter),
	})
	return receipt, nil
}

// applyBuy debits cash, inserts the lot and appends history in one transaction
func (s *Service) applyBuy(ctx context.Context, userID uint64, quote entity.Quote, shares int64) (*entity.TradeReceipt, error) {
	var receipt *entity.TradeReceipt

	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		cost := quote.Price.Mul(decimal.NewFromInt(shares))
		if !user.CanAfford(cost) {
			return errs.NewInsufficientFundsError(userID, quote.Symbol,
				entity.FormatAmount(cost), entity.FormatAmount(user.Cash()))
		}

		if err := user.Debit(cost, s.timeProvider); err != nil {
			return err
		}
		if err := users.UpdateCash(txCtx, userID, user.Cash()); err != nil {
			return err
		}

		now := s.timeProvider.Now()
		lot, err := entity.NewHolding(userID, quote, shares, now)
		if err != nil {
			return err
		}
		if err := s.uow.GetHoldingRepository(txCtx).Create(txCtx, lot); err != nil {
			return err
		}

		if err := s.appendHistory(txCtx, userID, entity.ActionBuy, quote, shares); err != nil {
			return err
		}

		receipt = &entity.TradeReceipt{
			Action:     entity.ActionBuy,
			Symbol:     quote.Symbol,
			Name:       quote.Name,
			Shares:     shares,
			Price:      quote.Price,
			Total:      cost,
			CashAfter:  user.Cash(),
			ExecutedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// applySell credits cash, reduces lots and appends a single history entry in one transaction
func (s *Service) applySell(ctx context.Context, userID uint64, quote entity.Quote, shares int64) (*entity.TradeReceipt, error) {
	var receipt *entity.TradeReceipt

	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)
		holdings := s.uow.GetHoldingRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		owned, err := holdings.SumShares(txCtx, userID, quote.Symbol)
		if err != nil {
			return err
		}
		if owned == 0 {
			return fmt.Errorf("%w: %s", errs.ErrSymbolNotOwned, quote.Symbol)
		}
		if shares > owned {
			return errs.NewInsufficientSharesError(userID, quote.Symbol, shares, owned)
		}

		proceeds := quote.Price.Mul(decimal.NewFromInt(shares))
		if err := user.Credit(proceeds, s.timeProvider); err != nil {
			return err
		}
		if err := users.UpdateCash(txCtx, userID, user.Cash()); err != nil {
			return err
		}

		if err := holdings.Reduce(txCtx, userID, quote.Symbol, shares); err != nil {
			return err
		}

		if err := s.appendHistory(txCtx, userID, entity.ActionSell, quote, shares); err != nil {
			return err
		}

		receipt = &entity.TradeReceipt{
			Action:     entity.ActionSell,
			Symbol:     quote.Symbol,
			Name:       quote.Name,
			Shares:     shares,
			Price:      quote.Price,
			Total:      proceeds,
			CashAfter:  user.Cash(),
			ExecutedAt: s.timeProvider.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func (s *Service) appendHistory(ctx context.Context, userID uint64, action entity.Action, quote entity.Quote, shares int64) error {
	entry, err := entity.NewHistoryEntry(userID, action, quote.Symbol, shares, quote.Price, s.timeProvider.Now())
	if err != nil {
		return err
	}
	return s.uow.GetHistoryRepository(ctx).Append(ctx, entry)
}

// resolveQuote turns the optional lookup result into a quote or a domain error
func (s *Service) resolveQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	result, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		s.logger.Warn("Quote lookup failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
		if !errors.Is(err, errs.ErrQuoteUnavailable) {
			err = fmt.Errorf("%w: %v", errs.ErrQuoteUnavailable, err)
		}
		return entity.Quote{}, err
	}

	quote, ok := result.Get()
	if !ok {
		return entity.Quote{}, fmt.Errorf("%w: %s", errs.ErrUnknownSymbol, symbol)
	}
	quote.Price = quote.Price.Round(entity.PricePlaces)
	return quote, nil
}

func (s *Service) withRetry(ctx context.Context, op func(ctx context.Context) (*entity.TradeReceipt, error)) (*entity.TradeReceipt, error) {
	if s.retry == nil {
		return op(ctx)
	}

	var receipt *entity.TradeReceipt
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var opErr error
		receipt, opErr = op(ctx)
		return opErr
	})
	return receipt, err
}

func (s *Service) logRejection(message string, userID uint64, symbol string, shares int64, err error) {
	fields := errs.LogFields(err)
	fields["user_id"] = userID
	fields["symbol"] = symbol
	fields["shares"] = shares

	switch errs.KindOf(err) {
	case errs.KindInternal, errs.KindUnavailable:
		s.logger.Error(message, fields)
	default:
		s.logger.Warn(message, fields)
	}
}
