package graph

import (
	"slices"
	"time"

	"github.com/futbolpath/futbolpath/internal/models"
)

// Default search bounds.
const (
	DefaultMaxDepth = 10
	DefaultTimeout  = 10 * time.Second
)

// Limits bounds one bidirectional search. MaxDepth counts rounds, where each
// round expands one full level of one frontier. A zero Timeout disables the
// wall-clock check.
type Limits struct {
	MaxDepth int
	Timeout  time.Duration
}

// DefaultLimits returns the bounds used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth, Timeout: DefaultTimeout}
}

// StopReason records why a search ended. Callers expose it only as a
// diagnostic; every reason other than StopMet is a plain "not found".
type StopReason string

// Stop reasons.
const (
	StopMet         StopReason = "met"
	StopSameNode    StopReason = "same_node"
	StopUnknownNode StopReason = "unknown_node"
	StopExhausted   StopReason = "exhausted"
	StopMaxDepth    StopReason = "max_depth"
	StopTimeout     StopReason = "timeout"
)

// Outcome is the raw result of a search, before entity resolution.
type Outcome struct {
	// Path runs from source to target inclusive. Empty when not found.
	Path     []models.PlayerID
	Explored int
	Rounds   int
	Reason   StopReason
}

// Found reports whether a path was produced.
func (o Outcome) Found() bool { return len(o.Path) > 0 }

// Hops returns the number of edges on the path.
func (o Outcome) Hops() int {
	if len(o.Path) == 0 {
		return 0
	}

	return len(o.Path) - 1
}

type side uint8

const (
	forward side = iota
	backward
)

// noParent marks a tree root in the arena.
const noParent int32 = -1

// searchNode is one arena record. parent indexes into the same arena.
type searchNode struct {
	id     models.PlayerID
	parent int32
	side   side
}

// tree is one direction of the search: which nodes it has discovered and the
// current frontier level.
type tree struct {
	side  side
	index map[models.PlayerID]int32
	queue []models.PlayerID
}

type search struct {
	g     *Graph
	arena []searchNode
	fwd   *tree
	bwd   *tree
}

// BidirectionalSearch finds a shortest path between source and target by
// growing one tree from each end and always expanding the smaller frontier.
// started is the moment the enclosing query began; the timeout is measured
// from it and checked once per round.
func BidirectionalSearch(g *Graph, source, target models.PlayerID, limits Limits, started time.Time) Outcome {
	if !g.Has(source) || !g.Has(target) {
		return Outcome{Reason: StopUnknownNode}
	}

	if source == target {
		return Outcome{Path: []models.PlayerID{source}, Explored: 1, Reason: StopSameNode}
	}

	s := &search{
		g:     g,
		arena: make([]searchNode, 0, 64),
		fwd:   &tree{side: forward, index: make(map[models.PlayerID]int32)},
		bwd:   &tree{side: backward, index: make(map[models.PlayerID]int32)},
	}

	s.seed(s.fwd, source)
	s.seed(s.bwd, target)

	for round := 0; ; round++ {
		var reason StopReason

		switch {
		case len(s.fwd.queue) == 0 || len(s.bwd.queue) == 0:
			reason = StopExhausted
		case round >= limits.MaxDepth:
			reason = StopMaxDepth
		case limits.Timeout > 0 && time.Since(started) > limits.Timeout:
			reason = StopTimeout
		}

		if reason != "" {
			return Outcome{Explored: s.explored(), Rounds: round, Reason: reason}
		}

		this, other := s.fwd, s.bwd
		if len(s.bwd.queue) < len(s.fwd.queue) {
			this, other = s.bwd, s.fwd
		}

		if meet, ok := s.expand(this, other); ok {
			return Outcome{
				Path:     s.reconstruct(meet),
				Explored: s.explored(),
				Rounds:   round + 1,
				Reason:   StopMet,
			}
		}
	}
}

func (s *search) seed(t *tree, id models.PlayerID) {
	t.index[id] = s.add(id, noParent, t.side)
	t.queue = append(t.queue, id)
}

func (s *search) add(id models.PlayerID, parent int32, sd side) int32 {
	s.arena = append(s.arena, searchNode{id: id, parent: parent, side: sd})
	return int32(len(s.arena) - 1) //nolint:gosec // arena is bounded by graph size.
}

func (s *search) explored() int {
	return len(s.fwd.index) + len(s.bwd.index)
}

// expand consumes one full level of this tree's frontier. It stops at the
// first neighbor already discovered by the other tree and returns it.
func (s *search) expand(this, other *tree) (models.PlayerID, bool) {
	level := this.queue
	next := make([]models.PlayerID, 0, len(level))

	for _, cur := range level {
		curIdx := this.index[cur]
		neighbors := s.g.Neighbors(cur)

		// Any other-tree node adjacent to cur must sit on the other frontier,
		// so probing that frontier is enough when it is the smaller side.
		if len(other.queue) < len(neighbors) {
			for _, o := range other.queue {
				if _, ok := slices.BinarySearch(neighbors, o); ok {
					s.attach(this, o, curIdx)
					return o, true
				}
			}
		}

		for _, n := range neighbors {
			if _, ok := other.index[n]; ok {
				s.attach(this, n, curIdx)
				return n, true
			}

			if _, ok := this.index[n]; !ok {
				this.index[n] = s.add(n, curIdx, this.side)
				next = append(next, n)
			}
		}
	}

	this.queue = next

	return 0, false
}

// attach records the meeting node in this tree so both trees can be walked
// from it.
func (s *search) attach(this *tree, id models.PlayerID, parent int32) {
	if _, ok := this.index[id]; !ok {
		this.index[id] = s.add(id, parent, this.side)
	}
}

// reconstruct joins the forward chain source..meet with the backward chain
// after meet..target.
func (s *search) reconstruct(meet models.PlayerID) []models.PlayerID {
	var path []models.PlayerID

	for i := s.fwd.index[meet]; i != noParent; i = s.arena[i].parent {
		path = append(path, s.arena[i].id)
	}

	slices.Reverse(path)

	for i := s.arena[s.bwd.index[meet]].parent; i != noParent; i = s.arena[i].parent {
		path = append(path, s.arena[i].id)
	}

	return path
}
