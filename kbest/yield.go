package kbest

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/symbol"
)

// TraversalFunc builds one edge's output yield from its rule's target side
// and its antecedents' already-built yields, in the shape spec.md §4.5
// names explicitly: "(edge, &out_yield, antecedent_yields_begin, end)". The
// Go rendering returns the new slice instead of writing through a pointer,
// since Go has no out-parameter idiom the teacher's corpus would reach for.
type TraversalFunc func(edge *hypergraph.Edge, tailYields [][]symbol.Symbol) []symbol.Symbol

// DefaultTraversal is the reference TraversalFunc: it walks edge.Rule's
// target sequence, copying terminals through and splicing in the
// appropriate antecedent's yield at each non-terminal occurrence.
func DefaultTraversal(edge *hypergraph.Edge, tailYields [][]symbol.Symbol) []symbol.Symbol {
	if edge.Rule == nil {
		return nil
	}
	var out []symbol.Symbol
	pos := 0
	for _, s := range edge.Rule.Target {
		if !s.IsNonTerminal() {
			out = append(out, s)

			continue
		}
		idx := s.NonTerminalIndex()
		if idx == 0 || idx > edge.Rule.Arity {
			idx = pos + 1
		}
		pos++
		if idx-1 >= 0 && idx-1 < len(tailYields) {
			out = append(out, tailYields[idx-1]...)
		}
	}

	return out
}
