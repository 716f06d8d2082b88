package graph_test

import (
	"slices"
	"testing"
	"time"

	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/models"
)

// unbounded lets exhaustion be the only terminating condition on small fixtures.
var unbounded = graph.Limits{MaxDepth: 1 << 20}

// bfsDistance is a plain single-source BFS used as an oracle.
func bfsDistance(g *graph.Graph, from, to models.PlayerID) (int, bool) {
	if !g.Has(from) || !g.Has(to) {
		return 0, false
	}

	dist := map[models.PlayerID]int{from: 0}
	queue := []models.PlayerID{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == to {
			return dist[cur], true
		}

		for _, n := range g.Neighbors(cur) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}

	return 0, false
}

// chain builds 0-1-2-...-n.
func chain(n int) []models.Edge {
	out := make([]models.Edge, 0, n)
	for i := range n {
		out = append(out, models.Edge{A: models.PlayerID(i), B: models.PlayerID(i + 1)})
	}

	return out
}

func assertValidPath(t *testing.T, g *graph.Graph, out graph.Outcome, from, to models.PlayerID) {
	t.Helper()

	if len(out.Path) == 0 {
		t.Fatalf("expected a path from %d to %d", from, to)
	}

	if out.Path[0] != from || out.Path[len(out.Path)-1] != to {
		t.Fatalf("path %v does not run %d -> %d", out.Path, from, to)
	}

	for i := 1; i < len(out.Path); i++ {
		if !g.Adjacent(out.Path[i-1], out.Path[i]) {
			t.Fatalf("path %v uses missing edge %d-%d", out.Path, out.Path[i-1], out.Path[i])
		}
	}

	seen := make(map[models.PlayerID]bool, len(out.Path))
	for _, id := range out.Path {
		if seen[id] {
			t.Fatalf("path %v repeats node %d", out.Path, id)
		}

		seen[id] = true
	}
}

func TestSearch_Chain(t *testing.T) {
	g := mustBuild(t, edges([2]models.PlayerID{1, 2}, [2]models.PlayerID{2, 3}, [2]models.PlayerID{3, 4}))

	out := graph.BidirectionalSearch(g, 1, 4, graph.DefaultLimits(), time.Now())

	if out.Reason != graph.StopMet {
		t.Fatalf("Reason = %s, want met", out.Reason)
	}

	if !slices.Equal(out.Path, []models.PlayerID{1, 2, 3, 4}) {
		t.Errorf("Path = %v, want [1 2 3 4]", out.Path)
	}

	if out.Hops() != 3 {
		t.Errorf("Hops = %d, want 3", out.Hops())
	}
}

func TestSearch_Disjoint(t *testing.T) {
	g := mustBuild(t, edges([2]models.PlayerID{1, 2}, [2]models.PlayerID{3, 4}))

	out := graph.BidirectionalSearch(g, 1, 4, graph.DefaultLimits(), time.Now())

	if out.Found() {
		t.Fatalf("expected not found, got %v", out.Path)
	}

	if out.Reason != graph.StopExhausted {
		t.Errorf("Reason = %s, want exhausted", out.Reason)
	}

	if out.Hops() != 0 {
		t.Errorf("Hops = %d, want 0", out.Hops())
	}
}

func TestSearch_SameNode(t *testing.T) {
	g := mustBuild(t, edges([2]models.PlayerID{1, 2}))

	out := graph.BidirectionalSearch(g, 1, 1, graph.DefaultLimits(), time.Now())

	if !slices.Equal(out.Path, []models.PlayerID{1}) {
		t.Errorf("Path = %v, want [1]", out.Path)
	}

	if out.Hops() != 0 {
		t.Errorf("Hops = %d, want 0", out.Hops())
	}
}

func TestSearch_UnknownNode(t *testing.T) {
	g := mustBuild(t, edges([2]models.PlayerID{1, 2}))

	for _, pair := range [][2]models.PlayerID{{1, 99}, {99, 1}, {99, 99}} {
		out := graph.BidirectionalSearch(g, pair[0], pair[1], graph.DefaultLimits(), time.Now())

		if out.Found() {
			t.Errorf("%v: expected not found", pair)
		}

		if out.Reason != graph.StopUnknownNode {
			t.Errorf("%v: Reason = %s, want unknown_node", pair, out.Reason)
		}

		if out.Explored != 0 {
			t.Errorf("%v: Explored = %d, want 0", pair, out.Explored)
		}
	}
}

func TestSearch_Star(t *testing.T) {
	const leaves = 1000

	es := make([]models.Edge, 0, leaves)
	for i := 1; i <= leaves; i++ {
		es = append(es, models.Edge{A: 0, B: models.PlayerID(i)})
	}

	g := mustBuild(t, es)

	for _, pair := range [][2]models.PlayerID{{1, leaves}, {leaves, 1}, {500, 7}} {
		out := graph.BidirectionalSearch(g, pair[0], pair[1], graph.DefaultLimits(), time.Now())

		want := []models.PlayerID{pair[0], 0, pair[1]}
		if !slices.Equal(out.Path, want) {
			t.Errorf("%v: Path = %v, want %v", pair, out.Path, want)
		}

		if out.Explored >= 100 {
			t.Errorf("%v: Explored = %d, expected far fewer than %d", pair, out.Explored, leaves)
		}
	}
}

func TestSearch_MaxDepth(t *testing.T) {
	g := mustBuild(t, chain(11))

	out := graph.BidirectionalSearch(g, 0, 10, graph.DefaultLimits(), time.Now())
	if out.Hops() != 10 {
		t.Fatalf("10-hop chain: Hops = %d (reason %s), want 10", out.Hops(), out.Reason)
	}

	out = graph.BidirectionalSearch(g, 0, 11, graph.DefaultLimits(), time.Now())
	if out.Found() {
		t.Fatalf("11-hop chain should exceed the default bound, got %v", out.Path)
	}

	if out.Reason != graph.StopMaxDepth {
		t.Errorf("Reason = %s, want max_depth", out.Reason)
	}

	out = graph.BidirectionalSearch(g, 0, 11, graph.Limits{MaxDepth: 11}, time.Now())
	if out.Hops() != 11 {
		t.Errorf("with MaxDepth 11: Hops = %d, want 11", out.Hops())
	}
}

func TestSearch_Timeout(t *testing.T) {
	g := mustBuild(t, chain(5))
	started := time.Now().Add(-time.Minute)

	out := graph.BidirectionalSearch(g, 0, 5, graph.Limits{MaxDepth: 10, Timeout: time.Second}, started)
	if out.Found() {
		t.Fatalf("expected timeout, got %v", out.Path)
	}

	if out.Reason != graph.StopTimeout {
		t.Errorf("Reason = %s, want timeout", out.Reason)
	}

	out = graph.BidirectionalSearch(g, 0, 5, graph.Limits{MaxDepth: 10}, started)
	if out.Hops() != 5 {
		t.Errorf("zero timeout should disable the budget: Hops = %d, reason %s", out.Hops(), out.Reason)
	}
}

func TestSearch_MatchesBFSOracle(t *testing.T) {
	for seed := uint64(1); seed <= 4; seed++ {
		g := mustBuild(t, randomEdges(seed, 400, 450))
		dijkstra := newOracle(g)

		for a := models.PlayerID(0); a < 400; a += 17 {
			for b := models.PlayerID(3); b < 400; b += 23 {
				want, reachable := bfsDistance(g, a, b)
				if dw, dok := dijkstra.distance(a, b); dok != reachable || dw != want {
					t.Fatalf("seed %d %d->%d: oracles disagree: bfs %d/%v, dijkstra %d/%v", seed, a, b, want, reachable, dw, dok)
				}

				out := graph.BidirectionalSearch(g, a, b, unbounded, time.Now())

				if out.Found() != reachable {
					t.Fatalf("seed %d %d->%d: found = %v, oracle reachable = %v", seed, a, b, out.Found(), reachable)
				}

				if !reachable {
					continue
				}

				assertValidPath(t, g, out, a, b)

				if out.Hops() != want {
					t.Errorf("seed %d %d->%d: hops = %d, oracle = %d", seed, a, b, out.Hops(), want)
				}
			}
		}
	}
}

func TestSearch_QuerySymmetryAndDeterminism(t *testing.T) {
	g := mustBuild(t, randomEdges(42, 300, 420))

	for a := models.PlayerID(0); a < 300; a += 11 {
		for b := models.PlayerID(1); b < 300; b += 13 {
			ab := graph.BidirectionalSearch(g, a, b, unbounded, time.Now())
			ba := graph.BidirectionalSearch(g, b, a, unbounded, time.Now())

			if ab.Found() != ba.Found() || ab.Hops() != ba.Hops() {
				t.Errorf("%d<->%d: forward %d hops (found %v), reverse %d hops (found %v)",
					a, b, ab.Hops(), ab.Found(), ba.Hops(), ba.Found())
			}

			again := graph.BidirectionalSearch(g, a, b, unbounded, time.Now())
			if again.Hops() != ab.Hops() {
				t.Errorf("%d->%d: repeated query hops %d, first %d", a, b, again.Hops(), ab.Hops())
			}
		}
	}
}

func TestSearch_MonotoneInDepth(t *testing.T) {
	g := mustBuild(t, randomEdges(9, 250, 300))

	for a := models.PlayerID(0); a < 250; a += 19 {
		for b := models.PlayerID(2); b < 250; b += 29 {
			wasFound := false
			hops := 0

			for depth := 1; depth <= 15; depth++ {
				out := graph.BidirectionalSearch(g, a, b, graph.Limits{MaxDepth: depth}, time.Now())

				if wasFound {
					if !out.Found() {
						t.Fatalf("%d->%d: found at a smaller depth but not at depth %d", a, b, depth)
					}

					if out.Hops() != hops {
						t.Fatalf("%d->%d: hops changed from %d to %d at depth %d", a, b, hops, out.Hops(), depth)
					}
				}

				if out.Found() && !wasFound {
					wasFound = true
					hops = out.Hops()
				}
			}
		}
	}
}

func TestSearch_DisjointComponentsAnyBound(t *testing.T) {
	// Two chains of diameter 6 with no edge between them.
	left := chain(6)
	right := make([]models.Edge, 0, 6)

	for _, e := range chain(6) {
		right = append(right, models.Edge{A: e.A + 100, B: e.B + 100})
	}

	g := mustBuild(t, append(left, right...))

	for _, depth := range []int{1, 3, 10, 1000} {
		out := graph.BidirectionalSearch(g, 0, 106, graph.Limits{MaxDepth: depth}, time.Now())
		if out.Found() {
			t.Errorf("depth %d: disjoint components reported connected: %v", depth, out.Path)
		}
	}

	out := graph.BidirectionalSearch(g, 0, 106, unbounded, time.Now())
	if out.Reason != graph.StopExhausted {
		t.Errorf("Reason = %s, want exhausted", out.Reason)
	}

	if out.Explored > 14 {
		t.Errorf("Explored = %d, cannot exceed the 14 nodes in both components", out.Explored)
	}
}

func TestSearch_UniqueShortestPathThroughBridge(t *testing.T) {
	// Two cliques joined by a single bridge 4-10.
	var es []models.Edge

	for i := models.PlayerID(0); i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			es = append(es, models.Edge{A: i, B: j}, models.Edge{A: i + 10, B: j + 10})
		}
	}

	es = append(es, models.Edge{A: 4, B: 10})
	g := mustBuild(t, es)

	out := graph.BidirectionalSearch(g, 0, 14, graph.DefaultLimits(), time.Now())
	want := []models.PlayerID{0, 4, 10, 14}

	if !slices.Equal(out.Path, want) {
		t.Errorf("Path = %v, want %v", out.Path, want)
	}
}
