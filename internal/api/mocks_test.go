package api_test

import (
	"context"

	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/models"
)

// mockPathFinder implements api.PathFinder for testing.
type mockPathFinder struct {
	findFn func(ctx context.Context, source, target models.PlayerID) (*models.PathResult, error)
}

func (m *mockPathFinder) FindShortestPath(ctx context.Context, source, target models.PlayerID) (*models.PathResult, error) {
	return m.findFn(ctx, source, target)
}

// mockSearcher implements api.PlayerSearcher for testing.
type mockSearcher struct {
	searchFn func(ctx context.Context, query string, limit int) (*models.PlayerSearchResult, error)
}

func (m *mockSearcher) SearchPlayers(ctx context.Context, query string, limit int) (*models.PlayerSearchResult, error) {
	return m.searchFn(ctx, query, limit)
}

// mockGraph implements api.GraphStatter for testing.
type mockGraph struct {
	stats graph.Stats
}

func (m *mockGraph) Stats() graph.Stats { return m.stats }

// mockChecker implements api.HealthChecker for testing.
type mockChecker struct {
	err error
}

func (m *mockChecker) HealthCheck(_ context.Context) error { return m.err }
