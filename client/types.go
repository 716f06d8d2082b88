package client

import "time"

// Player holds the display attributes of a player.
type Player struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Position    string `json:"position,omitempty"`
	Country     string `json:"country,omitempty"`
	CurrentClub string `json:"currentClub,omitempty"`
}

// Connection describes how a path step links to the previous one.
type Connection struct {
	Club   string `json:"club"`
	Season string `json:"season"`
}

// ConnectionStep is one player on a path. Connection is nil for the first step.
type ConnectionStep struct {
	Player     Player      `json:"player"`
	Connection *Connection `json:"connection"`
}

// SearchStats holds path query diagnostics.
type SearchStats struct {
	NodesExplored   int    `json:"nodesExplored"`
	ExecutionTimeMs int64  `json:"executionTimeMs"`
	StopReason      string `json:"stopReason,omitempty"`
	UnresolvedNodes int    `json:"unresolvedNodes,omitempty"`
}

// PathResult is the response of the path endpoint.
type PathResult struct {
	Found   bool             `json:"found"`
	Degrees int              `json:"degrees"`
	Path    []ConnectionStep `json:"path"`
	Stats   SearchStats      `json:"stats"`
}

// PlayerSearchResult is the response of the search endpoint.
type PlayerSearchResult struct {
	Players []Player `json:"players"`
	Total   int      `json:"total"`
}

// GraphStats describes the server's cached teammate graph.
type GraphStats struct {
	Loaded          bool      `json:"loaded"`
	NodeCount       int       `json:"nodeCount"`
	EdgeCount       int       `json:"edgeCount"`
	SkippedEdges    int       `json:"skippedEdges"`
	BuildDurationMs int64     `json:"buildDurationMs"`
	BuiltAt         time.Time `json:"builtAt,omitzero"`
	Builds          int64     `json:"builds"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Store         string  `json:"store"`
	Graph         string  `json:"graph"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessResponse is the readiness payload.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
