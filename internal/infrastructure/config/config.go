package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Quote       QuoteConfig    `mapstructure:"quote"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Session     SessionConfig  `mapstructure:"session"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres | memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

// LedgerConfig contains trade processing settings
type LedgerConfig struct {
	StartingCash      string        `mapstructure:"startingCash"`
	QueueSize         int           `mapstructure:"queueSize"`
	IdleWorkerTimeout time.Duration `mapstructure:"idleWorkerTimeout"`
	MaxRetries        int           `mapstructure:"maxRetries"`
	RetryInterval     time.Duration `mapstructure:"retryInterval"`
	MaxRetryInterval  time.Duration `mapstructure:"maxRetryInterval"`
	BcryptCost        int           `mapstructure:"bcryptCost"`
}

// QuoteConfig contains quote source settings
type QuoteConfig struct {
	Provider             string        `mapstructure:"provider"` // http | simulated
	BaseURL              string        `mapstructure:"baseURL"`
	APIKey               string        `mapstructure:"apiKey"`
	Timeout              time.Duration `mapstructure:"timeout"`
	CacheTTL             time.Duration `mapstructure:"cacheTTL"`
	RefreshInterval      time.Duration `mapstructure:"refreshInterval"`
	MaxConcurrentLookups int           `mapstructure:"maxConcurrentLookups"`
}

// RedisConfig contains the shared cache settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig contains login session settings
type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookieName"`
	Secure     bool          `mapstructure:"secure"`
	Store      string        `mapstructure:"store"` // memory | redis
}
