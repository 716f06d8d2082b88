package graph

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/futbolpath/futbolpath/internal/metrics"
	"github.com/futbolpath/futbolpath/internal/models"
)

const buildKey = "graph"

// EdgeSource is the bulk edge accessor the cache builds from.
type EdgeSource interface {
	AllTeammates(ctx context.Context) ([]models.Edge, error)
}

// Stats describes the cache for readiness and diagnostics.
type Stats struct {
	Loaded          bool      `json:"loaded"`
	NodeCount       int       `json:"nodeCount"`
	EdgeCount       int       `json:"edgeCount"`
	SkippedEdges    int       `json:"skippedEdges"`
	BuildDurationMs int64     `json:"buildDurationMs"`
	BuiltAt         time.Time `json:"builtAt,omitzero"`
	Builds          int64     `json:"builds"`
}

// Cache owns the process-wide graph. The first Get builds it; concurrent
// callers during that window wait for the same build. Nothing is cached when
// a build fails.
type Cache struct {
	source EdgeSource
	policy SelfLoopPolicy
	log    *logrus.Logger

	mu       sync.RWMutex
	graph    *Graph
	builtAt  time.Time
	buildDur time.Duration
	gen      uint64

	group  singleflight.Group
	builds atomic.Int64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithSelfLoopPolicy sets how malformed edges are handled during builds.
func WithSelfLoopPolicy(p SelfLoopPolicy) CacheOption {
	return func(c *Cache) { c.policy = p }
}

// WithLogger sets the cache logger.
func WithLogger(log *logrus.Logger) CacheOption {
	return func(c *Cache) { c.log = log }
}

// NewCache creates an empty cache over the given edge source.
func NewCache(source EdgeSource, opts ...CacheOption) *Cache {
	c := &Cache{source: source, policy: SelfLoopSkip}
	for _, o := range opts {
		o(c)
	}

	if c.log == nil {
		c.log = logrus.New()
	}

	return c
}

// Get returns the cached graph, building it first if needed. If ctx ends
// while waiting, Get returns ctx.Err() but the build keeps running for the
// other waiters.
func (c *Cache) Get(ctx context.Context) (*Graph, error) {
	if g := c.cached(); g != nil {
		return g, nil
	}

	ch := c.group.DoChan(buildKey, func() (any, error) {
		if g := c.cached(); g != nil {
			return g, nil
		}

		return c.build(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		g, ok := res.Val.(*Graph)
		if !ok {
			return nil, fmt.Errorf("graph: unexpected singleflight result type %T", res.Val)
		}

		return g, nil
	}
}

// Invalidate drops the cached graph so the next Get rebuilds it. A build
// already in flight still completes for its waiters but is not cached.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.graph = nil
	c.builtAt = time.Time{}
	c.buildDur = 0
	c.gen++
	c.mu.Unlock()

	c.group.Forget(buildKey)
	metrics.GraphNodes.Set(0)
	metrics.GraphEdges.Set(0)
	c.log.Info("graph cache invalidated")
}

// Stats reports whether the graph is loaded and its size.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{Builds: c.builds.Load()}
	if c.graph == nil {
		return s
	}

	s.Loaded = true
	s.NodeCount = c.graph.NodeCount()
	s.EdgeCount = c.graph.EdgeCount()
	s.SkippedEdges = c.graph.SkippedEdges()
	s.BuildDurationMs = c.buildDur.Milliseconds()
	s.BuiltAt = c.builtAt

	return s
}

func (c *Cache) cached() *Graph {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.graph
}

func (c *Cache) build(ctx context.Context) (*Graph, error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	c.builds.Add(1)
	c.log.WithField("policy", c.policy.String()).Info("building teammate graph")
	start := time.Now()

	edges, err := c.source.AllTeammates(ctx)
	if err != nil {
		metrics.GraphBuildsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("loading teammate edges: %w", err)
	}

	c.log.WithField("records", len(edges)).Debug("teammate edges loaded")

	g, err := Build(edges, c.policy)
	if err != nil {
		metrics.GraphBuildsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("building teammate graph: %w", err)
	}

	elapsed := time.Since(start)

	c.mu.Lock()
	if c.gen == gen {
		c.graph = g
		c.builtAt = time.Now()
		c.buildDur = elapsed
	}
	c.mu.Unlock()

	metrics.GraphBuildsTotal.WithLabelValues("ok").Inc()
	metrics.GraphBuildDuration.Observe(elapsed.Seconds())
	metrics.GraphNodes.Set(float64(g.NodeCount()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))

	fields := logrus.Fields{
		"nodes":    g.NodeCount(),
		"edges":    g.EdgeCount(),
		"records":  len(edges),
		"duration": elapsed.String(),
	}
	if g.SkippedEdges() > 0 {
		fields["skipped"] = g.SkippedEdges()
	}

	c.log.WithFields(fields).Info("teammate graph built")

	return g, nil
}
