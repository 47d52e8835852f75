package compose

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
)

// ComposePhrase implements spec.md §4.2's phrase variant: "enumerates
// contiguous source spans up to distortion." Unlike ComposeCKY it never
// recurses through non-terminal antecedents — every phrase pair is a
// flat terminal-to-terminal rule — so composition is a single pass:
// walk every lattice arc chain of length <= distortion out of every
// start position i, and for every transducer state that reaches a
// non-empty rule set, emit one goal-bound edge per rule directly.
func ComposePhrase(goal symbol.Symbol, grammars []transducer.Transducer, lat *lattice.Lattice, distortion int) (*hypergraph.Graph, error) {
	if len(grammars) == 0 {
		return nil, ErrNoGrammars
	}
	if distortion < 1 {
		distortion = 1
	}

	width := lat.Width()
	graph := hypergraph.New()
	// node[i][j] is the shared node for every phrase spanning [i, j).
	node := make([][]hypergraph.NodeID, width+1)
	for i := range node {
		node[i] = make([]hypergraph.NodeID, width+1)
		for j := range node[i] {
			node[i][j] = hypergraph.InvalidNode
		}
	}
	getNode := func(i, j int) hypergraph.NodeID {
		if node[i][j] == hypergraph.InvalidNode {
			node[i][j] = graph.AddNode()
		}

		return node[i][j]
	}

	for _, g := range grammars {
		for i := 0; i < width; i++ {
			state := g.Root()
			for j := i; j < width && j-i < distortion; j++ {
				arcs, err := lat.ArcsFrom(j)
				if err != nil {
					break
				}
				// Phrase composition only walks single-word steps;
				// multi-distance arcs are treated as atomic phrase tokens
				// in their own right and do not chain further.
				advanced := false
				for _, arc := range arcs {
					next := g.Next(state, arc.Label)
					if next == transducer.InvalidState {
						continue
					}
					state = next
					advanced = true
					end := j + arc.Distance
					dist, _ := lat.ShortestDistance(i, end)
					if !g.ValidSpan(state, i, end, dist) {
						continue
					}
					for _, rp := range g.Rules(state) {
						n := getNode(i, end)
						eid, err := graph.AddEdge(nil, rp.Rule, nil, nil)
						if err != nil {
							continue
						}
						_ = graph.ConnectEdge(eid, n)
					}

					break
				}
				if !advanced {
					break
				}
			}
		}
	}

	if node[0][width] == hypergraph.InvalidNode {
		return graph, ErrGoalUnreachable
	}
	_ = graph.SetGoal(node[0][width])

	return graph, nil
}
