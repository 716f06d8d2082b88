// Package dbpool manages the pgx pool behind the Postgres entity store.
package dbpool

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// The workload is one long edge scan per graph build followed by many short
// point lookups, so the statement timeout is sized for the scan.
const (
	statementTimeout  = 5 * time.Minute
	maxConnLifetime   = 30 * time.Minute
	maxConnIdleTime   = 5 * time.Minute
	healthCheckPeriod = 30 * time.Second
	applicationName   = "futbolpath"
)

// Pool wraps a pgxpool.Pool. The underlying pool is unexported so callers go
// through the store's timeout helpers.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool connects to databaseURL and verifies the connection.
func NewPool(ctx context.Context, databaseURL string, maxConns int) (*Pool, error) {
	cfg, err := configure(databaseURL, maxConns)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Pool{pool: pool}, nil
}

func configure(databaseURL string, maxConns int) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	params := cfg.ConnConfig.RuntimeParams
	params["statement_timeout"] = strconv.FormatInt(statementTimeout.Milliseconds(), 10)

	if params["application_name"] == "" {
		params["application_name"] = applicationName
	}

	cfg.MaxConns = int32(maxConns) //nolint:gosec // validated to 2..200 by config.
	cfg.MinConns = 1
	cfg.MaxConnLifetime = maxConnLifetime
	cfg.MaxConnIdleTime = maxConnIdleTime
	cfg.HealthCheckPeriod = healthCheckPeriod

	return cfg, nil
}

// Exec executes a query that doesn't return rows.
func (p *Pool) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, arguments...)
}

// Query executes a query that returns rows.
func (p *Pool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return p.pool.Query(ctx, sql, args...)
}

// QueryRow executes a query that returns at most one row.
func (p *Pool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return p.pool.QueryRow(ctx, sql, args...)
}

// BeginTx starts a transaction with the given options.
func (p *Pool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) { //nolint:gocritic // matching pgxpool.Pool signature.
	return p.pool.BeginTx(ctx, txOptions)
}

// HealthCheck round-trips a trivial query.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var one int
	if err := p.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("health check query: %w", err)
	}

	return nil
}

// ConnString returns the connection string used to create the pool.
func (p *Pool) ConnString() string {
	return p.pool.Config().ConnString()
}

// RegisterMetrics exposes pool occupancy as gauges on reg.
func (p *Pool) RegisterMetrics(reg prometheus.Registerer) error {
	gauge := func(name, help string, read func(*pgxpool.Stat) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: "futbolpath_db_pool_" + name, Help: help},
			func() float64 { return float64(read(p.pool.Stat())) },
		)
	}

	collectors := []prometheus.Collector{
		gauge("total_conns", "Open connections in the Postgres pool", (*pgxpool.Stat).TotalConns),
		gauge("acquired_conns", "Connections currently checked out", (*pgxpool.Stat).AcquiredConns),
		gauge("idle_conns", "Idle connections in the Postgres pool", (*pgxpool.Stat).IdleConns),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("registering pool metrics: %w", err)
		}
	}

	return nil
}

// Close closes the connection pool.
func (p *Pool) Close() {
	p.pool.Close()
}
