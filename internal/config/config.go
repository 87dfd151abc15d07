package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the MCP server configuration.
type Config struct {
	// Server
	Port             int  `env:"PORT" envDefault:"8000"`
	HTTPTransport    bool `env:"MCP_HTTP_TRANSPORT" envDefault:"false"`
	RequestTimeoutMS int  `env:"REQUEST_TIMEOUT_MS" envDefault:"25000"`

	// Polygon upstream. The API key is deliberately not validated here:
	// a missing credential fails the first tool invocation, not startup.
	PolygonAPIKey  string `env:"POLYGON_API_KEY"`
	PolygonBaseURL string `env:"POLYGON_BASE_URL" envDefault:"https://api.polygon.io"`

	// Ticker index. Empty REDIS_URL means the built-in catalog only.
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Observability
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	PrometheusPort int    `env:"PROMETHEUS_PORT" envDefault:"0"`
}

// RequestTimeout returns the HTTP request timeout as a time.Duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	opts := env.Options{
		Prefix: "",
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.RequestTimeoutMS < 1 {
		return fmt.Errorf("request timeout must be at least 1ms, got %dms", c.RequestTimeoutMS)
	}

	if c.PrometheusPort != 0 && (c.PrometheusPort < 1 || c.PrometheusPort > 65535) {
		return fmt.Errorf("invalid prometheus port: %d", c.PrometheusPort)
	}

	if c.PolygonBaseURL == "" {
		return fmt.Errorf("polygon base URL must not be empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
