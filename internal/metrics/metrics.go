// Package metrics defines Prometheus metrics for futbolpath.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "futbolpath_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futbolpath_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futbolpath_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	GraphNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "futbolpath_graph_nodes",
			Help: "Players in the cached teammate graph",
		},
	)

	GraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "futbolpath_graph_edges",
			Help: "Distinct teammate edges in the cached graph",
		},
	)

	GraphBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "futbolpath_graph_build_duration_seconds",
			Help:    "Time to load edges and build the teammate graph",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	GraphBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futbolpath_graph_builds_total",
			Help: "Graph builds by result",
		},
		[]string{"result"},
	)

	PathQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futbolpath_path_queries_total",
			Help: "Path queries by stop reason",
		},
		[]string{"reason"},
	)

	PathNodesExplored = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "futbolpath_path_nodes_explored",
			Help:    "Search nodes discovered per path query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	PathQueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "futbolpath_path_query_duration_seconds",
			Help:    "Path query duration including entity resolution",
			Buckets: prometheus.DefBuckets,
		},
	)

	EnrichmentMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "futbolpath_enrichment_misses_total",
			Help: "Path nodes dropped because the entity store could not resolve them",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		GraphNodes, GraphEdges, GraphBuildDuration, GraphBuildsTotal,
		PathQueriesTotal, PathNodesExplored, PathQueryDuration,
		EnrichmentMissesTotal,
	)
}
