// Package db applies the PostgreSQL schema for the entity store.
//
// Migration files live in internal/db/migrations/ and are embedded via
// //go:embed. goose tracks applied versions in goose_db_version.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/dbpool"
)

// ErrSchemaAhead means the database was migrated by a newer build than this one.
var ErrSchemaAhead = errors.New("database schema is newer than this binary")

// RunMigrations brings the players/teammates schema up to date. It refuses
// to touch a database whose recorded version is ahead of the embedded files.
func RunMigrations(ctx context.Context, pool *dbpool.Pool, log *logrus.Logger, fsys fs.FS) error {
	sqlDB, err := sql.Open("pgx", pool.ConnString())
	if err != nil {
		return fmt.Errorf("opening sql.DB for migrations: %w", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("creating goose provider: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	sources := provider.ListSources()

	var latest int64
	if len(sources) > 0 {
		latest = sources[len(sources)-1].Version
	}

	if current > latest {
		return fmt.Errorf("%w: database at %d, binary knows %d", ErrSchemaAhead, current, latest)
	}

	if current == latest {
		log.WithField("version", current).Debug("schema already current")
		return nil
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	for _, r := range results {
		if r.Error != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", r.Source.Version, r.Source.Path, r.Error)
		}

		log.WithFields(logrus.Fields{
			"version":  r.Source.Version,
			"file":     r.Source.Path,
			"duration": r.Duration,
		}).Info("migration applied")
	}

	log.WithFields(logrus.Fields{"from": current, "to": latest}).Info("schema migrated")

	return nil
}
