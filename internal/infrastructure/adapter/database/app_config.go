package database

import "github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/config"

// CreateConfigFromAppConfig adapts the application configuration to database
// configuration, keeping defaults for unset values
func CreateConfigFromAppConfig(conf config.DatabaseConfig) *Config {
	dbConf := DefaultConfig()

	if conf.Driver != "" {
		dbConf.Driver = conf.Driver
	}
	dbConf.Host = conf.Host
	dbConf.Username = conf.Username
	dbConf.Password = conf.Password
	dbConf.Database = conf.Database

	if conf.Port > 0 {
		dbConf.Port = conf.Port
	}
	if conf.SSLMode != "" {
		dbConf.SSLMode = conf.SSLMode
	}
	if conf.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.MaxOpenConns
	}
	if conf.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.MaxIdleConns
	}
	if conf.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.ConnMaxLifetime
	}
	if conf.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = conf.ConnMaxIdleTime
	}
	if conf.QueryTimeout > 0 {
		dbConf.QueryTimeout = conf.QueryTimeout
	}
	if conf.SlowThreshold > 0 {
		dbConf.SlowThreshold = conf.SlowThreshold
	}
	if conf.LogLevel != "" {
		dbConf.LogLevel = conf.LogLevel
	}
	if conf.RetryAttempts > 0 {
		dbConf.RetryAttempts = conf.RetryAttempts
	}
	if conf.RetryDelay > 0 {
		dbConf.RetryDelay = conf.RetryDelay
	}

	return dbConf
}
