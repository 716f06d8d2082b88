package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/models"
)

// mockEntityStore records calls and returns configured responses.
type mockEntityStore struct {
	mu    sync.Mutex
	calls []string

	allTeammates  func(ctx context.Context) ([]models.Edge, error)
	getPlayer     func(ctx context.Context, id models.PlayerID) (*models.Player, error)
	searchPlayers func(ctx context.Context, query string, limit int) ([]models.Player, error)
}

func (m *mockEntityStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockEntityStore) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}

	return n
}

func (m *mockEntityStore) AllTeammates(ctx context.Context) ([]models.Edge, error) {
	m.record("AllTeammates")
	return m.allTeammates(ctx)
}

func (m *mockEntityStore) GetPlayer(ctx context.Context, id models.PlayerID) (*models.Player, error) {
	m.record("GetPlayer")
	return m.getPlayer(ctx, id)
}

func (m *mockEntityStore) SearchPlayers(ctx context.Context, query string, limit int) ([]models.Player, error) {
	m.record("SearchPlayers")
	return m.searchPlayers(ctx, query, limit)
}

// mockGraphSource returns a fixed graph or error.
type mockGraphSource struct {
	g   *graph.Graph
	err error
}

func (m *mockGraphSource) Get(_ context.Context) (*graph.Graph, error) {
	return m.g, m.err
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

// storeFor returns a store whose edges are the given pairs and which
// resolves every player id except those listed in missing.
func storeFor(pairs [][2]models.PlayerID, missing ...models.PlayerID) *mockEntityStore {
	absent := make(map[models.PlayerID]bool, len(missing))
	for _, id := range missing {
		absent[id] = true
	}

	return &mockEntityStore{
		allTeammates: func(_ context.Context) ([]models.Edge, error) {
			out := make([]models.Edge, 0, len(pairs))
			for _, p := range pairs {
				out = append(out, models.Edge{A: p[0], B: p[1]})
			}

			return out, nil
		},
		getPlayer: func(_ context.Context, id models.PlayerID) (*models.Player, error) {
			if absent[id] {
				return nil, models.ErrPlayerNotFound
			}

			return &models.Player{ID: id, Name: fmt.Sprintf("Player %d", id)}, nil
		},
	}
}
