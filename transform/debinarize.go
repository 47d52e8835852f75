package transform

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/symbol"
)

// Debinarize removes every node synthesized by grammar binarization,
// splicing its edges into whatever referenced it — spec.md §4.1:
// "debinarize = remove_non_terminal(Symbol.Binarized)", mirroring
// original_source/cicada/debinarize.hpp's detail::debinarize predicate.
func Debinarize(g *hypergraph.Graph) (*hypergraph.Graph, error) {
	return RemoveNonTerminal(g, symbol.Symbol.Binarized)
}
