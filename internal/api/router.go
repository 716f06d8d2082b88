package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Paths       PathFinder
	Search      PlayerSearcher
	Graph       GraphStatter
	Store       HealthChecker
	CORSOrigins []string
	Version     string
	EnableHSTS  bool
}

// Router-level limits.
const (
	rateLimit = 50      // requests per second per IP
	rateBurst = 100     // token bucket burst size
	maxBody   = 1 << 10 // request body cap in bytes
)

const (
	healthRoute = "/api/v1/health"
	readyRoute  = "/api/v1/ready"
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log, healthRoute, readyRoute))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders(deps.EnableHSTS))
	r.Use(middleware.MaxBodySize(maxBody))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware(healthRoute, readyRoute))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Store, deps.Graph, log, deps.Version)
	paths := NewPathHandler(deps.Paths, log)
	search := NewSearchHandler(deps.Search, log)
	graph := NewGraphHandler(deps.Graph)

	api.Use(middleware.CacheControl("no-store"))

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	api.GET("/path", paths.Find)
	api.GET("/search", search.Players)
	api.GET("/graph/stats", graph.Stats)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})

	return r
}

// NewDiagnosticsRouter serves /metrics and, when enabled, the pprof
// endpoints. It is meant for a listener separate from the public API.
func NewDiagnosticsRouter(enablePprof bool) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if enablePprof {
		pprof.Register(r)
	}

	return r
}
