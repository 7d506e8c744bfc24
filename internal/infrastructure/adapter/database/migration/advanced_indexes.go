package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{logger: logger}
}

// Run creates the indexes and applies the table tweaks
func (m *AdvancedIndexManager) Run(ctx context.Context, tx *gorm.DB) error {
	if err := m.CreateAdvancedIndexes(ctx, tx); err != nil {
		return err
	}
	m.CreatePerformanceTweaks(ctx, tx)
	return nil
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context, tx *gorm.DB) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		sql  string
	}{
		{
			name: "held symbols",
			sql:  `CREATE INDEX IF NOT EXISTS idx_owned_symbol ON owned (symbol)`,
		},
		{
			name: "history by user and action",
			sql:  `CREATE INDEX IF NOT EXISTS idx_history_user_action ON history (user_id, action)`,
		},
		{
			// Append-only and time ordered
			name: "history date brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_history_date_brin
				ON history USING BRIN (date)
				WITH (pages_per_range = 32)`,
		},
	}

	for _, stmt := range statements {
		if err := tx.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL table settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context, tx *gorm.DB) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// users and owned rows are updated in place on every trade
	// A failed statement would abort the surrounding transaction
	for _, table := range []string{"users", "owned"} {
		tx.SavePoint("tweak")
		if err := tx.WithContext(ctx).Exec("ALTER TABLE " + table + " SET (fillfactor = 90)").Error; err != nil {
			tx.RollbackTo("tweak")
			m.logger.Warn("Failed to set fillfactor", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}
}
