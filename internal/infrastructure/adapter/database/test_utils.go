package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/time"
)

// TestDatabaseEnv enables database integration tests when set to a non-empty value
const TestDatabaseEnv = "PT_TEST_DATABASE"

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a new test database manager. The test is skipped
// unless PT_TEST_DATABASE is set.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	if os.Getenv(TestDatabaseEnv) == "" {
		t.Skipf("%s not set, skipping database integration test", TestDatabaseEnv)
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Host = getEnvOrDefault("PT_TEST_DB_HOST", "localhost")
	config.Port = getEnvIntOrDefault("PT_TEST_DB_PORT", 5432)
	config.Username = getEnvOrDefault("PT_TEST_DB_USERNAME", "postgres")
	config.Password = getEnvOrDefault("PT_TEST_DB_PASSWORD", "postgres")
	config.Database = getEnvOrDefault("PT_TEST_DB_NAME", "portfolio_tracker_test")
	config.MaxOpenConns = 10
	config.MaxIdleConns = 5
	config.QueryTimeout = 5 * time.Second
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and resets the schema
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	if _, err := m.Manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := m.Manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { m.Close(t) })
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// TruncateAllTables truncates the application tables
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`TRUNCATE TABLE history, owned, users RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestUser inserts a user with the given cash and returns its ID
func (m *TestDBManager) CreateTestUser(t *testing.T, username string, cash string) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		Username:     username,
		PasswordHash: "x",
		Cash:         decimal.RequireFromString(cash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
