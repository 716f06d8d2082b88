package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/dbpool"
	"github.com/futbolpath/futbolpath/internal/models"
)

// PostgresStore serves the entity store from PostgreSQL.
type PostgresStore struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

// NewPostgresStore creates a PostgresStore over an open pool.
func NewPostgresStore(pool *dbpool.Pool, log *logrus.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, log: log}
}

// HealthCheck verifies database connectivity.
func (s *PostgresStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.pool.HealthCheck(ctx)
}

// AllTeammates returns every teammate record in a read-only transaction.
func (s *PostgresStore) AllTeammates(ctx context.Context) ([]models.Edge, error) {
	ctx, cancel := withBulkTimeout(ctx)
	defer cancel()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("beginning read transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM teammates`).Scan(&count); err != nil {
		return nil, fmt.Errorf("counting teammates: %w", err)
	}

	rows, err := tx.Query(ctx, `SELECT player_id, teammate_id FROM teammates`)
	if err != nil {
		return nil, fmt.Errorf("querying teammates: %w", err)
	}

	edges := make([]models.Edge, 0, count)

	for rows.Next() {
		var a, b int64
		if err := rows.Scan(&a, &b); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning teammate: %w", err)
		}

		edges = append(edges, models.Edge{A: models.PlayerID(a), B: models.PlayerID(b)})
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teammates: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing teammates read: %w", err)
	}

	return edges, nil
}

// GetPlayer returns one player's display attributes.
func (s *PostgresStore) GetPlayer(ctx context.Context, id models.PlayerID) (*models.Player, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE player_id = $1`, int64(id))

	p, err := scanPlayer(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPlayerNotFound
		}

		return nil, fmt.Errorf("getting player %d: %w", id, err)
	}

	return p, nil
}

// SearchPlayers matches normalized names by substring, ranking prefix
// matches first and shorter names before longer ones.
func (s *PostgresStore) SearchPlayers(ctx context.Context, normalized string, limit int) ([]models.Player, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	contains, prefix := likePatterns(normalized)

	rows, err := s.pool.Query(ctx, `SELECT `+playerColumns+`
		FROM players
		WHERE name_normalized LIKE $1
		ORDER BY
			CASE WHEN name_normalized LIKE $2 THEN 0 ELSE 1 END,
			LENGTH(name),
			player_id
		LIMIT $3`, contains, prefix, clampLimit(limit))
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
