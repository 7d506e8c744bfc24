package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/config"
)

func validPostgresConfig() *Config {
	c := DefaultConfig()
	c.Host = "localhost"
	c.Username = "portfolio"
	c.Password = "secret"
	c.Database = "portfolio"
	return c
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validPostgresConfig().Validate())

	memory := &Config{Driver: DriverMemory}
	assert.NoError(t, memory.Validate())

	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"UnknownDriver", func(c *Config) { c.Driver = "sqlite" }},
		{"MissingHost", func(c *Config) { c.Host = "" }},
		{"BadPort", func(c *Config) { c.Port = 70000 }},
		{"MissingPassword", func(c *Config) { c.Password = "" }},
		{"BadSSLMode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"NoRetries", func(c *Config) { c.RetryAttempts = 0 }},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validPostgresConfig()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := validPostgresConfig()
	assert.Equal(t, "host=localhost port=5432 user=portfolio password=secret dbname=portfolio sslmode=disable", c.DSN())
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	c := CreateConfigFromAppConfig(config.DatabaseConfig{
		Host:          "db",
		Username:      "u",
		Password:      "p",
		Database:      "d",
		MaxOpenConns:  40,
		RetryAttempts: 0,
	})

	assert.Equal(t, DriverPostgres, c.Driver)
	assert.Equal(t, 5432, c.Port)
	assert.Equal(t, 40, c.MaxOpenConns)
	assert.Equal(t, 3, c.RetryAttempts)
	assert.NoError(t, c.Validate())
}
