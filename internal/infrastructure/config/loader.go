package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Missing .env is normal outside development
	_ = loadDotEnvFile()

	return LoadFrom(getEnvironment(), ConfigPaths...)
}

// LoadFrom reads <env>.yaml from the given paths and applies PT_ overrides
func LoadFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	return &config, nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.slowThreshold", "200ms")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "1s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("ledger.startingCash", "10000")
	v.SetDefault("ledger.queueSize", 100)
	v.SetDefault("ledger.idleWorkerTimeout", "1m")
	v.SetDefault("ledger.maxRetries", 3)
	v.SetDefault("ledger.retryInterval", "50ms")
	v.SetDefault("ledger.maxRetryInterval", "1s")
	v.SetDefault("ledger.bcryptCost", 10)

	v.SetDefault("quote.provider", "http")
	v.SetDefault("quote.timeout", "5s")
	v.SetDefault("quote.cacheTTL", "1m")
	v.SetDefault("quote.refreshInterval", "5m")
	v.SetDefault("quote.maxConcurrentLookups", 8)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.cookieName", "session")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.store", "memory")
}

// getEnvironment determines the environment from PT_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies the explicit overrides whose env names do not
// follow the key path
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"PT_DB_DRIVER":      "database.driver",
		"PT_DB_HOST":        "database.host",
		"PT_DB_PORT":        "database.port",
		"PT_DB_USERNAME":    "database.username",
		"PT_DB_PASSWORD":    "database.password",
		"PT_DB_NAME":        "database.database",
		"PT_DB_SSL_MODE":    "database.sslMode",
		"PT_SERVER_PORT":    "server.port",
		"PT_LOGGER_LEVEL":   "logger.level",
		"PT_QUOTE_PROVIDER": "quote.provider",
		"PT_QUOTE_BASE_URL": "quote.baseURL",
		"PT_QUOTE_API_KEY":  "quote.apiKey",
		"PT_REDIS_ADDRESS":  "redis.address",
		"PT_REDIS_PASSWORD": "redis.password",
		"PT_SESSION_SECRET": "session.secret",
	}

	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}
}
