package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
)

// AddLotOrderingIndex adds the index that serves oldest-first lot consumption
// and the latest-lot lookup of the portfolio view
type AddLotOrderingIndex struct {
	logger coreport.Logger
}

// NewAddLotOrderingIndex creates a new migration instance
func NewAddLotOrderingIndex(logger coreport.Logger) *AddLotOrderingIndex {
	return &AddLotOrderingIndex{logger: logger}
}

// Run executes the migration
func (m *AddLotOrderingIndex) Run(ctx context.Context, tx *gorm.DB) error {
	m.logger.Info("Adding lot ordering index to owned table", nil)

	exists, err := m.indexExists(ctx, tx)
	if err != nil {
		return err
	}
	if exists {
		m.logger.Info("Lot ordering index already present", nil)
		return nil
	}

	if err := tx.WithContext(ctx).Exec(`
		CREATE INDEX idx_owned_user_symbol_date
		ON owned (user_id, symbol, date, id)
	`).Error; err != nil {
		m.logger.Error("Failed to create lot ordering index", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Successfully added lot ordering index", nil)
	return nil
}

func (m *AddLotOrderingIndex) indexExists(ctx context.Context, tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM pg_indexes
		WHERE tablename = 'owned' AND indexname = 'idx_owned_user_symbol_date'
	`).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check index existence", map[string]any{"error": err.Error()})
		return false, err
	}
	return count > 0, nil
}
