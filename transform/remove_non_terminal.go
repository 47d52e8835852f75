package transform

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

// alt is one surviving way to derive a node once RemoveNonTerminal has
// finished resolving everything below it: a tail list plus the rule and
// scores an edge would have carried, kept detached from any concrete
// hypergraph.Edge until the final node/edge materialization pass.
type alt struct {
	tails    []hypergraph.NodeID
	rule     *rule.Rule
	features *vector.FeatureVector
	attrs    *vector.AttributeVector
}

// RemoveNonTerminal splices out every node whose label satisfies
// predicate, substituting each edge that references such a node as a
// tail with the cross product of that node's own alternative
// derivations — summing features and renumbering rule indices through
// rule.New — grounded on original_source/cicada/debinarize.hpp's
// generalized remove_non_terminal, which this mirrors exactly except
// that nodes are resolved bottom-up by ascending hypergraph.NodeID (the
// same tails-before-head ordering compose.ComposeCKY already
// establishes) instead of a single pass with deferred re-splicing.
func RemoveNonTerminal(g *hypergraph.Graph, predicate func(symbol.Symbol) bool) (*hypergraph.Graph, error) {
	nodes := g.Nodes()

	marked := make(map[hypergraph.NodeID]bool)
	for _, n := range nodes {
		if n == nil || len(n.Incoming) == 0 {
			continue
		}
		e, err := g.Edge(n.Incoming[0])
		if err != nil || e.Rule == nil {
			continue
		}
		if predicate(e.Rule.LHS) {
			marked[n.ID] = true
		}
	}

	alts := make(map[hypergraph.NodeID][]alt, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		for _, eid := range n.Incoming {
			e, err := g.Edge(eid)
			if err != nil {
				continue
			}
			spliced, err := spliceEdge(e, marked, alts)
			if err != nil {
				return nil, err
			}
			alts[n.ID] = append(alts[n.ID], spliced...)
		}
	}

	goal := g.Goal()
	if goal != hypergraph.InvalidNode && marked[goal] {
		return nil, ErrMalformedGraph
	}

	out := hypergraph.New()
	newNode := make(map[hypergraph.NodeID]hypergraph.NodeID)
	for _, n := range nodes {
		if n == nil || marked[n.ID] {
			continue
		}
		newNode[n.ID] = out.AddNode()
	}

	for _, n := range nodes {
		if n == nil || marked[n.ID] {
			continue
		}
		for _, a := range alts[n.ID] {
			tails := make([]hypergraph.NodeID, len(a.tails))
			for i, t := range a.tails {
				tails[i] = newNode[t]
			}
			eid, err := out.AddEdge(tails, a.rule, a.features.Clone(), a.attrs.Clone())
			if err != nil {
				continue
			}
			_ = out.ConnectEdge(eid, newNode[n.ID])
		}
	}

	if goal != hypergraph.InvalidNode {
		_ = out.SetGoal(newNode[goal])
	}

	return out, nil
}

// spliceEdge expands a single edge into every combination its marked
// tails admit, by substituting each marked tail's own alternatives in
// turn. An edge with no marked tails returns a single alt that is e
// itself, unchanged.
func spliceEdge(e *hypergraph.Edge, marked map[hypergraph.NodeID]bool, alts map[hypergraph.NodeID][]alt) ([]alt, error) {
	anyMarked := false
	for _, t := range e.Tails {
		if marked[t] {
			anyMarked = true

			break
		}
	}
	if !anyMarked {
		return []alt{{tails: e.Tails, rule: e.Rule, features: e.Features, attrs: e.Attributes}}, nil
	}

	choices := make([][]alt, len(e.Tails))
	for i, t := range e.Tails {
		if marked[t] {
			choices[i] = alts[t]

			continue
		}
		choices[i] = []alt{{tails: []hypergraph.NodeID{t}}}
	}

	var results []alt
	combo := make([]alt, len(choices))
	var recurse func(pos int) error
	recurse = func(pos int) error {
		if pos == len(choices) {
			spliced, err := buildSpliced(e, combo)
			if err != nil {
				return err
			}
			results = append(results, spliced)

			return nil
		}
		for _, c := range choices[pos] {
			combo[pos] = c
			if err := recurse(pos + 1); err != nil {
				return err
			}
		}

		return nil
	}
	if err := recurse(0); err != nil {
		return nil, err
	}

	return results, nil
}

// buildSpliced reconstructs e's source/target symbol sequences with
// every marked-tail occurrence replaced by the chosen alternative's own
// sequence, accumulating tails and features as it goes.
func buildSpliced(e *hypergraph.Edge, combo []alt) (alt, error) {
	var newTails []hypergraph.NodeID
	var newSource []symbol.Symbol
	features := e.Features.Clone()

	ntPos := 0
	for _, s := range e.Rule.Source {
		if !s.IsNonTerminal() {
			newSource = append(newSource, s)

			continue
		}
		chosen := combo[ntPos]
		ntPos++
		if chosen.rule == nil {
			newTails = append(newTails, chosen.tails[0])
			newSource = append(newSource, s)

			continue
		}
		newTails = append(newTails, chosen.tails...)
		newSource = append(newSource, chosen.rule.Source...)
		features.AddInPlace(chosen.features)
	}

	var newTarget []symbol.Symbol
	ntPos = 0
	for _, s := range e.Rule.Target {
		if !s.IsNonTerminal() {
			newTarget = append(newTarget, s)

			continue
		}
		idx := s.NonTerminalIndex()
		if idx == 0 || idx > e.Rule.Arity {
			idx = ntPos + 1
		}
		ntPos++
		chosen := combo[idx-1]
		if chosen.rule == nil {
			newTarget = append(newTarget, s)

			continue
		}
		newTarget = append(newTarget, chosen.rule.Target...)
	}

	r, err := rule.New(e.Rule.LHS, newSource, newTarget, vector.New(), vector.NewAttributes())
	if err != nil {
		return alt{}, err
	}

	return alt{tails: newTails, rule: r, features: features, attrs: e.Attributes}, nil
}
