package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // register the pure-Go sqlite driver

	"github.com/futbolpath/futbolpath/internal/models"
)

// Idle connections kept open against the data file.
const sqliteIdleConns = 4

// SQLiteStore reads the preprocessed futbol.db produced by the ingestion pipeline.
type SQLiteStore struct {
	db  *sql.DB
	log *logrus.Logger
}

// OpenSQLite opens the database at path read-only and verifies the schema.
func OpenSQLite(ctx context.Context, path string, log *logrus.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}

	db.SetMaxIdleConns(sqliteIdleConns)

	s := &SQLiteStore{db: db, log: log}

	if err := s.HealthCheck(ctx); err != nil {
		db.Close()

		return nil, err
	}

	return s, nil
}

// DropIdleConns closes pooled connections so the next query reopens the data
// file. Used after the file is replaced on disk.
func (s *SQLiteStore) DropIdleConns() {
	s.db.SetMaxIdleConns(0)
	s.db.SetMaxIdleConns(sqliteIdleConns)
	s.log.Debug("sqlite idle connections dropped")
}

// HealthCheck verifies the players and teammates tables are readable.
func (s *SQLiteStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM (SELECT 1 FROM players LIMIT 1) JOIN (SELECT 1 FROM teammates LIMIT 1)`).Scan(&n); err != nil {
		return fmt.Errorf("sqlite schema check: %w", err)
	}

	return nil
}

// AllTeammates returns every teammate record. Each row is one direction of a
// relation; the graph builder collapses reversed duplicates.
func (s *SQLiteStore) AllTeammates(ctx context.Context) ([]models.Edge, error) {
	ctx, cancel := withBulkTimeout(ctx)
	defer cancel()

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teammates`).Scan(&count); err != nil {
		return nil, fmt.Errorf("counting teammates: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT player_id, teammate_id FROM teammates`)
	if err != nil {
		return nil, fmt.Errorf("querying teammates: %w", err)
	}
	defer rows.Close()

	edges := make([]models.Edge, 0, count)

	for rows.Next() {
		var e models.Edge
		if err := rows.Scan(&e.A, &e.B); err != nil {
			return nil, fmt.Errorf("scanning teammate: %w", err)
		}

		edges = append(edges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teammates: %w", err)
	}

	return edges, nil
}

// GetPlayer returns one player's display attributes.
func (s *SQLiteStore) GetPlayer(ctx context.Context, id models.PlayerID) (*models.Player, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE player_id = ?`, id)

	p, err := scanPlayer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPlayerNotFound
		}

		return nil, fmt.Errorf("getting player %d: %w", id, err)
	}

	return p, nil
}

// SearchPlayers matches normalized names by substring, ranking prefix
// matches first and shorter names before longer ones.
func (s *SQLiteStore) SearchPlayers(ctx context.Context, normalized string, limit int) ([]models.Player, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	contains, prefix := likePatterns(normalized)

	rows, err := s.db.QueryContext(ctx, `SELECT `+playerColumns+`
		FROM players
		WHERE name_normalized LIKE ? ESCAPE '\'
		ORDER BY
			CASE WHEN name_normalized LIKE ? ESCAPE '\' THEN 0 ELSE 1 END,
			LENGTH(name),
			player_id
		LIMIT ?`, contains, prefix, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0, clampLimit(limit))

	for rows.Next() {
		p, err := scanPlayer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}

		players = append(players, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating players: %w", err)
	}

	return players, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
