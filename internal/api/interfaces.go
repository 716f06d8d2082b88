package api

import (
	"context"

	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/models"
)

// PathFinder answers shortest path queries.
type PathFinder interface {
	FindShortestPath(ctx context.Context, source, target models.PlayerID) (*models.PathResult, error)
}

// PlayerSearcher resolves free text to player candidates.
type PlayerSearcher interface {
	SearchPlayers(ctx context.Context, query string, limit int) (*models.PlayerSearchResult, error)
}

// GraphStatter reports the state of the cached teammate graph.
type GraphStatter interface {
	Stats() graph.Stats
}

// HealthChecker verifies connectivity to the entity store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
