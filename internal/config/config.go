// Package config provides environment-driven configuration for futbolpath.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Supported entity store backends.
const (
	DataSourceSQLite   = "sqlite"
	DataSourcePostgres = "postgres"
)

// Config holds all application configuration values.
type Config struct {
	DataSource      string
	SQLitePath      string
	DatabaseURL     Secret
	DBMaxConns      int
	RunMigrations   bool
	Port            string
	MetricsPort     string
	ListenHost      string
	CORSOrigins     []string
	LogLevel        string
	LogFormat       string
	MaxSearchDepth  int
	SearchTimeout   time.Duration
	SelfLoopPolicy  string
	EagerGraphBuild bool
	WatchDataFile   bool
	EnablePprof     bool
	EnableHSTS      bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DataSource:      envOrDefault("DATA_SOURCE", DataSourceSQLite),
		SQLitePath:      envOrDefault("SQLITE_PATH", "data/processed/futbol.db"),
		DatabaseURL:     Secret(envOrDefault("DATABASE_URL", "")),
		RunMigrations:   envOrDefault("RUN_MIGRATIONS", "true") == "true",
		Port:            envOrDefault("PORT", "3040"),
		MetricsPort:     envOrDefault("METRICS_PORT", "9092"),
		ListenHost:      envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		SelfLoopPolicy:  envOrDefault("SELF_LOOP_POLICY", "skip"),
		EagerGraphBuild: envOrDefault("EAGER_GRAPH_BUILD", "true") == "true",
		WatchDataFile:   envOrDefault("WATCH_DATA_FILE", "false") == "true",
		EnablePprof:     envOrDefault("ENABLE_PPROF", "false") == "true",
		EnableHSTS:      envOrDefault("ENABLE_HSTS", "false") == "true",
	}

	maxConns, err := strconv.Atoi(envOrDefault("DB_MAX_CONNS", "10"))
	if err != nil || maxConns < 2 || maxConns > 200 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be an integer between 2 and 200")
	}
	cfg.DBMaxConns = maxConns

	depth, err := strconv.Atoi(envOrDefault("MAX_SEARCH_DEPTH", "10"))
	if err != nil || depth < 1 || depth > 64 {
		return nil, fmt.Errorf("MAX_SEARCH_DEPTH must be an integer between 1 and 64")
	}
	cfg.MaxSearchDepth = depth

	timeout, err := time.ParseDuration(envOrDefault("SEARCH_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 || timeout > 5*time.Minute {
		return nil, fmt.Errorf("SEARCH_TIMEOUT must be a duration between 1ns and 5m (e.g. 10s)")
	}
	cfg.SearchTimeout = timeout

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// MetricsAddr returns the metrics listen address in host:port format.
func (c *Config) MetricsAddr() string {
	return c.ListenHost + ":" + c.MetricsPort
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
