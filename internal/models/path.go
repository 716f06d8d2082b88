package models

// TeammatesLabel is the connection label used for every hop. The graph has no
// per-edge club or season data, so every hop is a plain teammate relation.
const TeammatesLabel = "Teammates"

// Connection describes how a path step is linked to the previous one.
type Connection struct {
	Club   string `json:"club"`
	Season string `json:"season"`
}

// ConnectionStep is one resolved player on a path plus the connection that
// leads to it. Connection is nil for the first step.
type ConnectionStep struct {
	Player     Player      `json:"player"`
	Connection *Connection `json:"connection"`
}

// SearchStats holds diagnostics about one path query.
type SearchStats struct {
	NodesExplored   int    `json:"nodesExplored"`
	ExecutionTimeMs int64  `json:"executionTimeMs"`
	StopReason      string `json:"stopReason,omitempty"`
	UnresolvedNodes int    `json:"unresolvedNodes,omitempty"`
}

// PathResult is the answer to a path query. When Found is false, Path is empty
// and Degrees is zero regardless of why the search stopped.
type PathResult struct {
	Found   bool             `json:"found"`
	Degrees int              `json:"degrees"`
	Path    []ConnectionStep `json:"path"`
	Stats   SearchStats      `json:"stats"`
}

// NotFound returns an empty result carrying the given stats.
func NotFound(stats SearchStats) *PathResult {
	return &PathResult{Path: []ConnectionStep{}, Stats: stats}
}
