package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/model"
)

// Step is one versioned schema change
type Step struct {
	Version string
	Name    string
	Up      func(ctx context.Context, tx *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []Step
}

// NewMigrationManager creates a new migration manager with the built-in steps
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	m.steps = []Step{
		{Version: "1.0.0", Name: "base schema", Up: m.createBaseSchema},
		{Version: "1.0.1", Name: "lot ordering index", Up: NewAddLotOrderingIndex(logger).Run},
		{Version: "1.0.2", Name: "advanced indexes", Up: NewAdvancedIndexManager(logger).Run},
	}
	return m
}

// CurrentSchemaVersion is the version of the last built-in step
func (m *MigrationManager) CurrentSchemaVersion() string {
	return m.steps[len(m.steps)-1].Version
}

// MigrateAll applies every step newer than the recorded version.
// Each step runs in its own transaction together with its version row.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": m.CurrentSchemaVersion(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	for _, step := range m.steps {
		if applied[step.Version] {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version": step.Version,
			"name":    step.Name,
		})

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := step.Up(ctx, tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:   step.Version,
				Name:      step.Name,
				AppliedAt: m.timeProvider.Now(),
			}).Error
		})
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": step.Version,
				"name":    step.Name,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s (%s): %w", step.Version, step.Name, err)
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": m.CurrentSchemaVersion(),
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func (m *MigrationManager) createBaseSchema(ctx context.Context, tx *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	return tx.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Holding{},
		&model.History{},
	)
}
