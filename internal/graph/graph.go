// Package graph holds the in-memory teammate graph: construction from raw
// edge records, a build-once cache handle, and the bounded bidirectional
// search used to answer path queries.
//
// A *Graph is immutable once Build returns. It is safe to share across any
// number of concurrent searches without locking.
package graph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/futbolpath/futbolpath/internal/models"
)

// SelfLoopPolicy decides what Build does with edges that cannot represent a
// relation: self loops and edges with a negative endpoint.
type SelfLoopPolicy int

const (
	// SelfLoopSkip drops malformed edges and counts them.
	SelfLoopSkip SelfLoopPolicy = iota
	// SelfLoopReject aborts the build on the first malformed edge.
	SelfLoopReject
)

// String implements fmt.Stringer.
func (p SelfLoopPolicy) String() string {
	switch p {
	case SelfLoopSkip:
		return "skip"
	case SelfLoopReject:
		return "reject"
	default:
		return fmt.Sprintf("SelfLoopPolicy(%d)", int(p))
	}
}

// ParseSelfLoopPolicy maps a config value to a policy.
func ParseSelfLoopPolicy(s string) (SelfLoopPolicy, error) {
	switch s {
	case "", "skip":
		return SelfLoopSkip, nil
	case "reject":
		return SelfLoopReject, nil
	default:
		return 0, fmt.Errorf("unknown self-loop policy %q (want skip or reject)", s)
	}
}

// Build errors.
var (
	ErrSelfLoop   = errors.New("self-referential edge")
	ErrNegativeID = errors.New("edge endpoint is negative")
)

// Graph is an undirected adjacency list keyed by player ID.
// Every neighbor list is sorted and free of duplicates.
type Graph struct {
	adj     map[models.PlayerID][]models.PlayerID
	edges   int
	skipped int
}

// Build constructs a graph from the edge multiset. The result depends only on
// which pairs appear: order and duplicates are irrelevant.
func Build(edges []models.Edge, policy SelfLoopPolicy) (*Graph, error) {
	sets := make(map[models.PlayerID]map[models.PlayerID]struct{})
	skipped := 0

	link := func(a, b models.PlayerID) {
		s, ok := sets[a]
		if !ok {
			s = make(map[models.PlayerID]struct{}, 4)
			sets[a] = s
		}

		s[b] = struct{}{}
	}

	for _, e := range edges {
		if err := checkEdge(e); err != nil {
			if policy == SelfLoopReject {
				return nil, err
			}

			skipped++

			continue
		}

		link(e.A, e.B)
		link(e.B, e.A)
	}

	g := &Graph{
		adj:     make(map[models.PlayerID][]models.PlayerID, len(sets)),
		skipped: skipped,
	}

	degreeSum := 0

	for id, s := range sets {
		list := make([]models.PlayerID, 0, len(s))
		for n := range s {
			list = append(list, n)
		}

		slices.Sort(list)
		g.adj[id] = list
		degreeSum += len(list)
	}

	g.edges = degreeSum / 2

	return g, nil
}

func checkEdge(e models.Edge) error {
	if e.A < 0 || e.B < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrNegativeID, e.A, e.B)
	}

	if e.IsSelfLoop() {
		return fmt.Errorf("%w: player %d", ErrSelfLoop, e.A)
	}

	return nil
}

// Has reports whether id has at least one edge.
func (g *Graph) Has(id models.PlayerID) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the sorted neighbor list of id. The slice is shared with
// the graph and must not be modified.
func (g *Graph) Neighbors(id models.PlayerID) []models.PlayerID {
	return g.adj[id]
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id models.PlayerID) int {
	return len(g.adj[id])
}

// Adjacent reports whether a and b share an edge.
func (g *Graph) Adjacent(a, b models.PlayerID) bool {
	_, ok := slices.BinarySearch(g.adj[a], b)
	return ok
}

// NodeCount returns the number of players with at least one edge.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// SkippedEdges returns how many malformed records Build dropped.
func (g *Graph) SkippedEdges() int { return g.skipped }

// ForEachNode calls fn for every node until fn returns false. Iteration order
// is unspecified.
func (g *Graph) ForEachNode(fn func(id models.PlayerID) bool) {
	for id := range g.adj {
		if !fn(id) {
			return
		}
	}
}
