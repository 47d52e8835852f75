package compose

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
	"github.com/nishiharu/cicada-go/vector"
)

// activeItem is one partial match of a single transducer: state is the
// transducer state reached after consuming everything between the span's
// start and the current position, tails holds the hypergraph nodes
// accumulated from completed non-terminal antecedents so far (in order),
// and features holds terminal-arc feature scores multiplied in along the
// way (spec.md §4.2 step 2's "multiply accumulated weight by the arc's
// feature score", rendered additively since every weight here is a
// log-linear FeatureVector).
type activeItem struct {
	state    transducer.StateID
	tails    []hypergraph.NodeID
	features *vector.FeatureVector
}

// chart holds, for one transducer, every activeItem ending exactly at
// (start, end): chart[start][end].
type chart [][][]activeItem

func newChart(width int) chart {
	c := make(chart, width+1)
	for i := range c {
		c[i] = make([][]activeItem, width+1)
	}

	return c
}

// passiveCell maps a completed lhs to the single hypergraph Node sharing
// that (span, lhs) signature.
type passiveCell map[symbol.Symbol]hypergraph.NodeID

// ComposeCKY builds a hypergraph from lat using grammars, under goal and
// flags, following spec.md §4.2's reference algorithm: bottom-up by span
// length, extending actives across completed passive spans, consuming
// lattice terminals, and completing passive items from transducer rule
// sets.
func ComposeCKY(goal symbol.Symbol, grammars []transducer.Transducer, lat *lattice.Lattice, flags Flags) (*hypergraph.Graph, error) {
	return composeCKY(goal, grammars, lat, flags, nil)
}

// ComposeCKYPruned is ComposeCKY with an extra cell gate: a completed
// (span, lhs) item is only added to the passive chart if allow(i, j, lhs)
// reports true. Package coarse drives this with a posterior-score
// threshold to implement spec.md §4.4's coarse-to-fine passes without
// duplicating the chart algorithm.
func ComposeCKYPruned(goal symbol.Symbol, grammars []transducer.Transducer, lat *lattice.Lattice, flags Flags, allow func(i, j int, lhs symbol.Symbol) bool) (*hypergraph.Graph, error) {
	return composeCKY(goal, grammars, lat, flags, allow)
}

func composeCKY(goal symbol.Symbol, grammars []transducer.Transducer, lat *lattice.Lattice, flags Flags, allow func(i, j int, lhs symbol.Symbol) bool) (*hypergraph.Graph, error) {
	if len(grammars) == 0 {
		return nil, ErrNoGrammars
	}

	width := lat.Width()
	graph := hypergraph.New()
	passive := make([][]passiveCell, width+1)
	for i := range passive {
		passive[i] = make([]passiveCell, width+1)
	}
	actives := make([]chart, len(grammars))
	for t := range grammars {
		actives[t] = newChart(width)
	}

	// Seed each transducer's zero-length active at every start position.
	for t, g := range grammars {
		for i := 0; i <= width; i++ {
			actives[t][i][i] = []activeItem{{state: g.Root(), tails: nil, features: vector.New()}}
		}
	}

	for span := 1; span <= width; span++ {
		for i := 0; i+span <= width; i++ {
			j := i + span
			if passive[i][j] == nil {
				passive[i][j] = make(passiveCell)
			}

			for t, g := range grammars {
				// Step 1: extend actives across strictly-shorter completed
				// passive spans.
				for m := i + 1; m < j; m++ {
					if passive[m][j] == nil {
						continue
					}
					for _, a := range actives[t][i][m] {
						for lhs, node := range passive[m][j] {
							next := g.Next(a.state, lhs)
							if next == transducer.InvalidState {
								continue
							}
							actives[t][i][j] = append(actives[t][i][j], activeItem{
								state:    next,
								tails:    appendNode(a.tails, node),
								features: a.features,
							})
						}
					}
				}

				// Step 2: consume lattice terminals reaching j from any
				// position p in [i, j).
				for p := i; p < j; p++ {
					arcs, err := lat.ArcsFrom(p)
					if err != nil {
						continue
					}
					for _, a := range actives[t][i][p] {
						for _, arc := range arcs {
							if p+arc.Distance != j {
								continue
							}
							next := g.Next(a.state, arc.Label)
							if next == transducer.InvalidState {
								next = g.Next(a.state, symbol.Epsilon())
							}
							if next == transducer.InvalidState {
								continue
							}
							actives[t][i][j] = append(actives[t][i][j], activeItem{
								state:    next,
								tails:    a.tails,
								features: a.features.Add(arc.Features),
							})
						}
					}
				}

				// Step 3: complete items.
				dist, _ := lat.ShortestDistance(i, j)
				for _, a := range actives[t][i][j] {
					rules := g.Rules(a.state)
					if len(rules) == 0 {
						continue
					}
					if !g.ValidSpan(a.state, i, j, dist) {
						continue
					}
					for _, rp := range rules {
						lhs := rp.Rule.LHS
						if allow != nil && !allow(i, j, lhs) {
							continue
						}
						node, ok := passive[i][j][lhs]
						if !ok {
							node = graph.AddNode()
							passive[i][j][lhs] = node
						}
						edgeFeatures := rp.Rule.Features.Add(a.features)
						eid, err := graph.AddEdge(a.tails, rp.Rule, edgeFeatures, nil)
						if err != nil {
							continue
						}
						_ = graph.ConnectEdge(eid, node)
					}
				}
			}

			// Step 4: advance each zero-width seed active at i over every lhs
			// completed in [i, j]; longer spans extend the result.
			for t, g := range grammars {
				for lhs, node := range passive[i][j] {
					for _, a := range actives[t][i][i] {
						if next := g.Next(a.state, lhs); next != transducer.InvalidState {
							actives[t][i][j] = append(actives[t][i][j], activeItem{state: next, tails: appendNode(a.tails, node), features: a.features})
						}
					}
				}
			}
		}
	}

	goalNodes := goalNodesFor(passive, width, goal)
	if len(goalNodes) == 0 {
		return graph, ErrGoalUnreachable
	}
	finalizeGoal(graph, goalNodes, flags)

	return graph, nil
}

func appendNode(tails []hypergraph.NodeID, node hypergraph.NodeID) []hypergraph.NodeID {
	out := make([]hypergraph.NodeID, len(tails)+1)
	copy(out, tails)
	out[len(tails)] = node

	return out
}

func goalNodesFor(passive [][]passiveCell, width int, goal symbol.Symbol) []hypergraph.NodeID {
	if width < 0 || len(passive) <= width {
		return nil
	}
	cell := passive[0][width]
	if cell == nil {
		return nil
	}
	if node, ok := cell[goal]; ok {
		return []hypergraph.NodeID{node}
	}

	return nil
}

// finalizeGoal sets the goal node. A single candidate (the only case
// goalNodesFor produces, since all transducers share one passive node per
// (span, lhs)) becomes the goal itself; with more than one, a fresh node
// is created and joined to each candidate by an epsilon edge. flags is
// not read.
func finalizeGoal(graph *hypergraph.Graph, candidates []hypergraph.NodeID, flags Flags) {
	if len(candidates) == 1 {
		_ = graph.SetGoal(candidates[0])

		return
	}

	goalNode := graph.AddNode()
	eps := symbol.Epsilon()
	for _, c := range candidates {
		r, err := epsilonRule(eps)
		if err != nil {
			continue
		}
		eid, err := graph.AddEdge([]hypergraph.NodeID{c}, r, nil, nil)
		if err != nil {
			continue
		}
		_ = graph.ConnectEdge(eid, goalNode)
	}
	_ = graph.SetGoal(goalNode)
}
