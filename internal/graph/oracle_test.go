package graph_test

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/models"
)

// oracle mirrors a built graph into gonum so hop distances can be checked
// against an independent shortest path implementation.
type oracle struct {
	g *simple.UndirectedGraph
}

func newOracle(g *graph.Graph) *oracle {
	o := &oracle{g: simple.NewUndirectedGraph()}

	g.ForEachNode(func(id models.PlayerID) bool {
		from, _ := o.g.NodeWithID(int64(id))

		for _, n := range g.Neighbors(id) {
			if n < id {
				continue
			}

			to, _ := o.g.NodeWithID(int64(n))
			o.g.SetEdge(o.g.NewEdge(from, to))
		}

		return true
	})

	return o
}

// distance returns the hop count between a and b and whether b is reachable.
func (o *oracle) distance(a, b models.PlayerID) (int, bool) {
	from := o.g.Node(int64(a))
	if from == nil || o.g.Node(int64(b)) == nil {
		return 0, false
	}

	w := path.DijkstraFrom(from, o.g).WeightTo(int64(b))
	if math.IsInf(w, 1) {
		return 0, false
	}

	return int(w), true
}
