package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/metrics"
	"github.com/futbolpath/futbolpath/internal/models"
)

// PathService answers shortest teammate path queries.
type PathService struct {
	graphs GraphSource
	store  EntityStore
	limits graph.Limits
	log    *logrus.Logger
}

// NewPathService creates a PathService. Zero limits fall back to graph.DefaultLimits.
func NewPathService(graphs GraphSource, store EntityStore, limits graph.Limits, log *logrus.Logger) *PathService {
	if limits.MaxDepth <= 0 {
		limits = graph.DefaultLimits()
	}

	return &PathService{graphs: graphs, store: store, limits: limits, log: log}
}

// FindShortestPath returns the shortest teammate path between two players.
// Unknown ids, disconnected pairs and exhausted bounds all produce a result
// with Found false. Errors are returned only when the graph cannot be built
// or the caller's context ends.
func (s *PathService) FindShortestPath(ctx context.Context, source, target models.PlayerID) (*models.PathResult, error) {
	started := time.Now()

	var (
		out graph.Outcome
		err error
	)

	if source == target {
		out = graph.Outcome{Path: []models.PlayerID{source}, Explored: 1, Reason: graph.StopSameNode}
	} else {
		out, err = s.search(ctx, source, target)
		if err != nil {
			return nil, err
		}
	}

	res, err := s.enrich(ctx, out)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(started)
	res.Stats.ExecutionTimeMs = elapsed.Milliseconds()

	metrics.PathQueriesTotal.WithLabelValues(string(out.Reason)).Inc()
	metrics.PathNodesExplored.Observe(float64(out.Explored))
	metrics.PathQueryDuration.Observe(elapsed.Seconds())

	s.log.WithFields(logrus.Fields{
		"source":   source,
		"target":   target,
		"found":    res.Found,
		"degrees":  res.Degrees,
		"explored": out.Explored,
		"reason":   out.Reason,
		"duration": elapsed.String(),
	}).Debug("path query finished")

	return res, nil
}

// search runs the bounded search. The time budget starts once the graph is
// available so a first-query build does not eat into it.
func (s *PathService) search(ctx context.Context, source, target models.PlayerID) (graph.Outcome, error) {
	g, err := s.graphs.Get(ctx)
	if err != nil {
		return graph.Outcome{}, fmt.Errorf("loading teammate graph: %w", err)
	}

	return graph.BidirectionalSearch(g, source, target, s.limits, time.Now()), nil
}

// enrich resolves every id on the raw path. Ids the store cannot resolve are
// dropped from the output; a same-node query whose only id is dropped is
// reported as not found.
func (s *PathService) enrich(ctx context.Context, out graph.Outcome) (*models.PathResult, error) {
	stats := models.SearchStats{
		NodesExplored: out.Explored,
		StopReason:    string(out.Reason),
	}

	if !out.Found() {
		return models.NotFound(stats), nil
	}

	steps := make([]models.ConnectionStep, 0, len(out.Path))

	for _, id := range out.Path {
		p, err := s.store.GetPlayer(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("resolving player %d: %w", id, ctxErr)
			}

			s.logMiss(id, err)
			stats.UnresolvedNodes++

			continue
		}

		step := models.ConnectionStep{Player: *p}
		if len(steps) > 0 {
			step.Connection = &models.Connection{Club: models.TeammatesLabel}
		}

		steps = append(steps, step)
	}

	if len(steps) == 0 {
		return models.NotFound(stats), nil
	}

	return &models.PathResult{
		Found:   true,
		Degrees: out.Hops(),
		Path:    steps,
		Stats:   stats,
	}, nil
}

func (s *PathService) logMiss(id models.PlayerID, err error) {
	metrics.EnrichmentMissesTotal.Inc()

	entry := s.log.WithField("player_id", id)
	if !errors.Is(err, models.ErrPlayerNotFound) {
		entry = entry.WithError(err)
	}

	entry.Warn("path node could not be resolved, dropping it from the result")
}
