package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/model"
)

// HoldingRepository implements HoldingRepository interface using GORM
type HoldingRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.HoldingRepository = (*HoldingRepository)(nil)

// NewHoldingRepository creates a new HoldingRepository instance
func NewHoldingRepository(db *gorm.DB, logger coreport.Logger) *HoldingRepository {
	return &HoldingRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *HoldingRepository) handleDatabaseError(operation string, err error, userID uint64, symbol string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"symbol":  symbol,
		"error":   err.Error(),
	})
	return r.errorClassifier.translate(err, errs.ErrNotFound)
}

// Create inserts a new lot
func (r *HoldingRepository) Create(ctx context.Context, lot *entity.Holding) error {
	m := model.Holding{
		UserID: lot.UserID,
		Symbol: lot.Symbol,
		Name:   lot.Name,
		Shares: lot.Shares,
		Price:  lot.Price,
		Date:   lot.Date,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating lot", err, lot.UserID, lot.Symbol)
	}
	lot.ID = m.ID
	return nil
}

// SumShares returns the aggregate shares of a user in symbol
func (r *HoldingRepository) SumShares(ctx context.Context, userID uint64, symbol string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Holding{}).
		Select("COALESCE(SUM(shares), 0)").
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing shares", err, userID, symbol)
	}
	return total, nil
}

type positionRow struct {
	Symbol string
	Shares int64
}

type latestLotRow struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

// Positions aggregates lots by symbol. Name and LastPrice come from the most recent lot.
func (r *HoldingRepository) Positions(ctx context.Context, userID uint64) ([]entity.Position, error) {
	var sums []positionRow
	err := r.db.WithContext(ctx).Model(&model.Holding{}).
		Select("symbol, SUM(shares) AS shares").
		Where("user_id = ?", userID).
		Group("symbol").
		Having("SUM(shares) > 0").
		Order("symbol").
		Scan(&sums).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating positions", err, userID, "")
	}
	if len(sums) == 0 {
		return []entity.Position{}, nil
	}

	var latest []latestLotRow
	err = r.db.WithContext(ctx).Raw(
		`SELECT DISTINCT ON (symbol) symbol, name, price
		   FROM owned
		  WHERE user_id = ?
		  ORDER BY symbol, date DESC, id DESC`, userID).
		Scan(&latest).Error
	if err != nil {
		return nil, r.handleDatabaseError("loading latest lots", err, userID, "")
	}

	bySymbol := make(map[string]latestLotRow, len(latest))
	for _, row := range latest {
		bySymbol[row.Symbol] = row
	}

	positions := make([]entity.Position, 0, len(sums))
	for _, s := range sums {
		lot := bySymbol[s.Symbol]
		positions = append(positions, entity.Position{
			Symbol:    s.Symbol,
			Name:      lot.Name,
			Shares:    s.Shares,
			LastPrice: lot.Price,
		})
	}
	return positions, nil
}

// Reduce consumes lots oldest first, deleting fully consumed lots and
// decrementing a partially consumed one
func (r *HoldingRepository) Reduce(ctx context.Context, userID uint64, symbol string, shares int64) error {
	var lots []model.Holding
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Order("date ASC, id ASC").
		Find(&lots).Error
	if err != nil {
		return r.handleDatabaseError("locking lots", err, userID, symbol)
	}

	var owned int64
	for _, lot := range lots {
		owned += lot.Shares
	}
	if shares > owned {
		return errs.NewInsufficientSharesError(userID, symbol, shares, owned)
	}

	remaining := shares
	var consumed []uint64
	for _, lot := range lots {
		if remaining == 0 {
			break
		}
		if lot.Shares <= remaining {
			remaining -= lot.Shares
			consumed = append(consumed, lot.ID)
			continue
		}

		err := r.db.WithContext(ctx).Model(&model.Holding{}).
			Where("id = ?", lot.ID).
			Update("shares", lot.Shares-remaining).Error
		if err != nil {
			return r.handleDatabaseError("decrementing lot", err, userID, symbol)
		}
		remaining = 0
	}

	if len(consumed) > 0 {
		if err := r.db.WithContext(ctx).Delete(&model.Holding{}, consumed).Error; err != nil {
			return r.handleDatabaseError("deleting lots", err, userID, symbol)
		}
	}

	r.logger.Debug("Lots reduced", map[string]any{
		"user_id":  userID,
		"symbol":   symbol,
		"shares":   shares,
		"consumed": len(consumed),
	})
	return nil
}

// HeldSymbols lists distinct symbols across all users
func (r *HoldingRepository) HeldSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	err := r.db.WithContext(ctx).Model(&model.Holding{}).
		Distinct("symbol").
		Order("symbol").
		Pluck("symbol", &symbols).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing held symbols", err, 0, "")
	}
	return symbols, nil
}
