package compose

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
)

// ComposeTree implements spec.md §4.2's tree variant: "pattern-matches
// tree fragments." Each fragment's Antecedents() (rule.TreeRule) must
// match a contiguous run of lattice arcs whose labels equal the
// antecedent's Terminal, in order, starting at i; every matching fragment
// contributes one edge spanning the matched run, headed by a node shared
// across every fragment with the same (span, Label) signature — the same
// sharing discipline ComposeCKY uses for (span, lhs).
func ComposeTree(goal symbol.Symbol, fragments []*rule.TreeRule, lat *lattice.Lattice) (*hypergraph.Graph, error) {
	if len(fragments) == 0 {
		return nil, ErrNoGrammars
	}

	width := lat.Width()
	graph := hypergraph.New()
	nodes := make(map[[2]int]map[symbol.Symbol]hypergraph.NodeID)
	getNode := func(i, j int, label symbol.Symbol) hypergraph.NodeID {
		key := [2]int{i, j}
		if nodes[key] == nil {
			nodes[key] = make(map[symbol.Symbol]hypergraph.NodeID)
		}
		if n, ok := nodes[key][label]; ok {
			return n
		}
		n := graph.AddNode()
		nodes[key][label] = n

		return n
	}

	for i := 0; i < width; i++ {
		for _, frag := range fragments {
			ants := frag.Antecedents()
			j, ok := matchFragment(lat, i, ants)
			if !ok {
				continue
			}
			r, err := fragmentRule(frag, ants)
			if err != nil {
				continue
			}
			n := getNode(i, j, frag.Label)
			eid, err := graph.AddEdge(nil, r, nil, nil)
			if err != nil {
				continue
			}
			_ = graph.ConnectEdge(eid, n)
		}
	}

	key := [2]int{0, width}
	if n, ok := nodes[key][goal]; ok {
		_ = graph.SetGoal(n)

		return graph, nil
	}

	return graph, ErrGoalUnreachable
}

// matchFragment walks ants in order starting at position i, requiring
// each antecedent's Terminal to label a single-arc (distance 1) step; it
// returns the end position on success.
func matchFragment(lat *lattice.Lattice, i int, ants []rule.Antecedent) (int, bool) {
	pos := i
	for _, ant := range ants {
		arcs, err := lat.ArcsFrom(pos)
		if err != nil {
			return 0, false
		}
		matched := false
		for _, arc := range arcs {
			if arc.Distance == 1 && arc.Label == ant.Terminal {
				pos++
				matched = true

				break
			}
		}
		if !matched {
			return 0, false
		}
	}

	return pos, true
}

// fragmentRule converts a matched TreeRule fragment into a flat Rule
// whose Source is the concatenation of its antecedents' terminals, scored
// with no features (tree grammars carry their scores on the TreeRule's
// originating Rule in a full implementation; this reference composer
// treats every fragment match as equally weighted — see DESIGN.md).
func fragmentRule(frag *rule.TreeRule, ants []rule.Antecedent) (*rule.Rule, error) {
	source := make([]symbol.Symbol, len(ants))
	for i, a := range ants {
		source[i] = a.Terminal
	}

	return rule.New(frag.Label, source, source, nil, nil)
}
