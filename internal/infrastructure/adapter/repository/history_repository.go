package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/model"
)

// HistoryRepository implements HistoryRepository interface using GORM
type HistoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.HistoryRepository = (*HistoryRepository)(nil)

// NewHistoryRepository creates a new HistoryRepository instance
func NewHistoryRepository(db *gorm.DB, logger coreport.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Append inserts a history entry
func (r *HistoryRepository) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	m := model.History{
		UserID: entry.UserID,
		Action: string(entry.Action),
		Symbol: entry.Symbol,
		Shares: entry.Shares,
		Price:  entry.Price,
		Date:   entry.Date,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		r.logger.Error("Database error when appending history", map[string]any{
			"user_id": entry.UserID,
			"action":  entry.Action,
			"error":   err.Error(),
		})
		return r.errorClassifier.translate(err, errs.ErrNotFound)
	}
	entry.ID = m.ID
	return nil
}

// ListByUser returns every entry of the user, newest first
func (r *HistoryRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error) {
	var rows []model.History
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Database error when listing history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.translate(err, errs.ErrNotFound)
	}

	entries := make([]entity.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.HistoryEntry{
			ID:     row.ID,
			UserID: row.UserID,
			Action: entity.Action(row.Action),
			Symbol: row.Symbol,
			Shares: row.Shares,
			Price:  row.Price,
			Date:   row.Date,
		})
	}
	return entries, nil
}
