package apply

import (
	"math"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/model"
	"github.com/nishiharu/cicada-go/semiring"
)

// ApplyExact implements spec.md §4.3's exact variant: "expands all
// items (no k)." It is ApplyCubePrune with the per-node retention bound
// raised past any real hypergraph's antecedent cross product, so every
// candidate the cube-pruning border search can reach is retained —
// cube pruning with k == infinity degenerates to exhaustive expansion,
// since the only thing k bounds is how many candidates are popped per
// node.
func ApplyExact(m model.Model, fn semiring.Function, kind semiring.Semiring, graphIn *hypergraph.Graph) (*hypergraph.Graph, error) {
	return ApplyCubePrune(m, fn, kind, graphIn, math.MaxInt32)
}
