package service

import (
	"context"

	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/models"
)

// EntityStore is the read-only entity store the services depend on.
type EntityStore interface {
	AllTeammates(ctx context.Context) ([]models.Edge, error)
	GetPlayer(ctx context.Context, id models.PlayerID) (*models.Player, error)
	SearchPlayers(ctx context.Context, normalizedQuery string, limit int) ([]models.Player, error)
}

// GraphSource hands out the shared teammate graph. *graph.Cache satisfies it.
type GraphSource interface {
	Get(ctx context.Context) (*graph.Graph, error)
}
