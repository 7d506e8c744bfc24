package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/usecase/portfolio"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/quote"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/report"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/repository/memory"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/scheduler"
	hasher "github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/security"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/session"
	timeProvider "github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/config"
)

// storage is the unit of work plus whatever must be closed on shutdown
type storage struct {
	uow     persistence.UnitOfWork
	checker handler.HealthChecker
	close   func() error
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(cfg.Logger.Format != "console", coreport.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Storage
	store, err := openStorage(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open storage", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := store.close(); err != nil {
			appLogger.Error("Failed to close storage", map[string]any{"error": err.Error()})
		}
	}()

	// Redis is optional; without it quotes are never cached and sessions stay in memory
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cache.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, appLogger)
		if err != nil {
			appLogger.Error("Failed to connect to redis", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer func() {
			_ = redisClient.Close()
		}()
	}

	// Quotes
	quotes, refresher := buildQuoteProvider(cfg.Quote, redisClient, appLogger)

	// Use cases
	retrier := database.NewRetrier(database.RetryConfig{
		MaxRetries:    cfg.Ledger.MaxRetries,
		RetryInterval: cfg.Ledger.RetryInterval,
		MaxInterval:   cfg.Ledger.MaxRetryInterval,
		JitterFactor:  database.DefaultRetryConfig().JitterFactor,
	}, appLogger)

	sequencer := ledger.NewSequencer(appLogger, cfg.Ledger.QueueSize, cfg.Ledger.IdleWorkerTimeout)
	ledgerService := ledger.NewService(store.uow, quotes, sequencer, retrier, tp, appLogger)

	portfolioReader := portfolio.NewReader(store.uow, quotes, report.NewXLSXGenerator(appLogger),
		cfg.Quote.MaxConcurrentLookups, appLogger)

	startingCash, err := decimal.NewFromString(cfg.Ledger.StartingCash)
	if err != nil {
		appLogger.Error("Invalid starting cash", map[string]any{
			"value": cfg.Ledger.StartingCash,
			"error": err.Error(),
		})
		os.Exit(1)
	}
	accountService := account.NewService(store.uow.GetUserRepository(ctx),
		hasher.NewBcryptHasher(cfg.Ledger.BcryptCost), startingCash, tp, appLogger)

	// Sessions
	var sessionStore security.SessionStore = session.NewMemoryStore(tp)
	if cfg.Session.Store == "redis" {
		if redisClient == nil {
			appLogger.Error("Redis session store requires redis.enabled", nil)
			os.Exit(1)
		}
		sessionStore = session.NewRedisStore(redisClient, tp, appLogger)
	}
	sessions, err := session.NewJWTManager(cfg.Session.Secret, cfg.Session.TTL, sessionStore, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to create session manager", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Background jobs
	jobs, err := scheduler.New(appLogger)
	if err != nil {
		appLogger.Error("Failed to create scheduler", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if refresher != nil && cfg.Quote.RefreshInterval > 0 {
		if err := jobs.NewIntervalJob(scheduler.QuoteWarmJobName,
			scheduler.QuoteWarmTask(store.uow, refresher), cfg.Quote.RefreshInterval, false); err != nil {
			appLogger.Error("Failed to schedule quote warm job", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}
	jobs.Start()

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	if err := routes.SetupMiddlewares(router, appLogger, tp); err != nil {
		appLogger.Error("Failed to load templates", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Setup routes
	cookie := handler.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	}
	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handler.NewAuthHandler(accountService, sessions, cookie, appLogger),
		Portfolio: handler.NewPortfolioHandler(portfolioReader, ledgerService, appLogger),
		Health:    handler.NewHealthHandler(store.checker, appLogger),
	}, sessions, cookie, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"driver":   cfg.Database.Driver,
			"quotes":   cfg.Quote.Provider,
			"sessions": cfg.Session.Store,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests before draining the trade queues
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := jobs.Stop(); err != nil {
		appLogger.Warn("Scheduler did not stop cleanly", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Shutting down trade sequencer...", map[string]any{
		"active_workers": sequencer.ActiveWorkers(),
	})
	sequencer.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// openStorage connects the configured backend and migrates it
func openStorage(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (*storage, error) {
	dbConfig := database.CreateConfigFromAppConfig(cfg.Database)
	if err := dbConfig.Validate(); err != nil {
		return nil, err
	}

	if dbConfig.Driver == database.DriverMemory {
		appLogger.Warn("Using in-memory storage; data is lost on restart", nil)
		store := memory.NewStore(tp, appLogger)
		return &storage{
			uow:     store,
			checker: store,
			close:   func() error { return nil },
		}, nil
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, err
	}

	// Run migrations
	if err := dbManager.Migrate(ctx); err != nil {
		_ = dbManager.Close()
		return nil, err
	}

	return &storage{
		uow:     dbManager.CreateUnitOfWork(),
		checker: dbManager,
		close:   dbManager.Close,
	}, nil
}

// buildQuoteProvider picks the quote source and wraps it with the redis cache when available.
// The refresher is nil when there is no cache to warm.
func buildQuoteProvider(cfg config.QuoteConfig, client *redis.Client, appLogger coreport.Logger) (gateway.QuoteProvider, gateway.QuoteRefresher) {
	var source gateway.QuoteProvider
	switch cfg.Provider {
	case "simulated":
		source = quote.NewSimulatedProvider()
	default:
		source = quote.NewHTTPProvider(cfg.BaseURL, cfg.APIKey, cfg.Timeout, appLogger)
	}

	if client == nil {
		return source, nil
	}

	cached := quote.NewCachedProvider(source, client, cfg.CacheTTL, cfg.MaxConcurrentLookups, appLogger)
	return cached, cached
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Driver != database.DriverMemory {
		required := map[string]string{
			"database.host":     cfg.Database.Host,
			"database.username": cfg.Database.Username,
			"database.password": cfg.Database.Password,
			"database.database": cfg.Database.Database,
		}
		for _, key := range []string{"database.host", "database.username", "database.password", "database.database"} {
			if required[key] == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
		if cfg.Database.Port == 0 {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	// Validate ledger configuration
	if cfg.Ledger.StartingCash == "" {
		missingConfigs = append(missingConfigs, "ledger.startingCash")
	}

	if cfg.Ledger.QueueSize == 0 {
		missingConfigs = append(missingConfigs, "ledger.queueSize")
	}

	if cfg.Ledger.MaxRetries == 0 {
		missingConfigs = append(missingConfigs, "ledger.maxRetries")
	}

	// Quotes
	if cfg.Quote.Provider == "http" && cfg.Quote.BaseURL == "" {
		missingConfigs = append(missingConfigs, "quote.baseURL")
	}

	// Sessions
	if cfg.Session.Secret == "" {
		missingConfigs = append(missingConfigs, "session.secret (or PT_SESSION_SECRET environment variable)")
	}

	if cfg.Session.CookieName == "" {
		missingConfigs = append(missingConfigs, "session.cookieName")
	}

	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		missingConfigs = append(missingConfigs, "redis.address")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != database.DriverMemory &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Database.Driver == database.DriverMemory {
			warnings = append(warnings, "database.driver 'memory' loses all accounts on restart")
		}

		if len(cfg.Session.Secret) < 32 {
			warnings = append(warnings, "session.secret should be at least 32 bytes in production")
		}

		if !cfg.Session.Secure {
			warnings = append(warnings, "session.secure should be true in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
