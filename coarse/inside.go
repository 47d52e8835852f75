package coarse

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/semiring"
)

// insideOutside computes both score tables over graph in one pass each:
// inside bottom-up (ascending NodeID, which compose.ComposeCKY's
// construction order already keeps tails-before-head), outside top-down by
// iterating nodes in reverse.
func insideOutside(graph *hypergraph.Graph, fn semiring.Function, kind semiring.Semiring) (map[hypergraph.NodeID]semiring.Value, map[hypergraph.NodeID]semiring.Value) {
	nodes := graph.Nodes()
	inside := make(map[hypergraph.NodeID]semiring.Value, len(nodes))

	for _, n := range nodes {
		if n == nil {
			continue
		}
		total := semiring.Zero(kind)
		for _, eid := range n.Incoming {
			edge, err := graph.Edge(eid)
			if err != nil {
				continue
			}
			w := fn(edge.Features)
			for _, t := range edge.Tails {
				w = w.Mul(inside[t])
			}
			total = total.Add(w)
		}
		if len(n.Incoming) == 0 {
			total = semiring.One(kind)
		}
		inside[n.ID] = total
	}

	outside := make(map[hypergraph.NodeID]semiring.Value, len(nodes))
	for _, n := range nodes {
		if n != nil {
			outside[n.ID] = semiring.Zero(kind)
		}
	}
	if goal := graph.Goal(); goal != hypergraph.InvalidNode {
		outside[goal] = semiring.One(kind)
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if n == nil {
			continue
		}
		for _, eid := range n.Incoming {
			edge, err := graph.Edge(eid)
			if err != nil {
				continue
			}
			w := fn(edge.Features).Mul(outside[n.ID])
			for k, tk := range edge.Tails {
				contribution := w
				for m, tm := range edge.Tails {
					if m == k {
						continue
					}
					contribution = contribution.Mul(inside[tm])
				}
				outside[tk] = outside[tk].Add(contribution)
			}
		}
	}

	return inside, outside
}
