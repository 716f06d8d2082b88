// Package api provides the HTTP handlers for futbolpath.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness endpoints.
type HealthHandler struct {
	store     HealthChecker
	graph     GraphStatter
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. store may be nil.
func NewHealthHandler(store HealthChecker, graph GraphStatter, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		store:     store,
		graph:     graph,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Store         string  `json:"store"`
	Graph         string  `json:"graph"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /api/v1/health. It always returns 200 while the
// process is serving; store and graph state are informational.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Store:         "connected",
		Graph:         "loading",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if err := h.checkStore(c.Request.Context()); err != nil {
		resp.Store = "disconnected"
	} else if h.store == nil {
		resp.Store = "not_configured"
	}

	if h.graph.Stats().Loaded {
		resp.Graph = "loaded"
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. It returns 503 until the teammate
// graph is built and the store answers.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{"store": "ok", "graph": "ok"}
	ready := true

	if err := h.checkStore(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("readiness: store health check failed")
		checks["store"] = "error"
		ready = false
	}

	if !h.graph.Stats().Loaded {
		checks["graph"] = "loading"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, readinessResponse{Status: "not_ready", Checks: checks})

		return
	}

	c.JSON(http.StatusOK, readinessResponse{Status: "ready", Checks: checks})
}

func (h *HealthHandler) checkStore(ctx context.Context) error {
	if h.store == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	return h.store.HealthCheck(ctx)
}
