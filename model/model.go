package model

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/vector"
)

// State is an opaque, fixed-size (per Model) byte blob. Two states are
// equal iff their bytes are equal (spec.md §3's State definition); Key
// gives a comparable/hashable representation for recombination maps.
type State []byte

// Key returns a string usable as a map key for state recombination
// (spec.md §9's "state recombination... merging derivations equivalent
// under the model's state abstraction").
func (s State) Key() string { return string(s) }

// Equal reports whether s and other hold the same bytes.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Model is the non-local feature-function capability interface spec.md
// §4.3 names:
//
//	Model = { state_size; apply(graph_context, prev_states[], edge,
//	out_features) -> state; apply_final(state, edge, out_features);
//	initialize() }
//
// Implementations must be safe to call concurrently from multiple
// decoders over disjoint (Model, Hypergraph) pairs (spec.md §5), but
// Initialize is explicitly a per-decode reset hook, not expected to be
// concurrency-safe against other calls on the same Model instance during
// the same decode.
type Model interface {
	// StateSize returns this model's fixed per-edge state size in bytes.
	StateSize() int
	// Apply scores edge given the already-computed antecedent states
	// prevStates (one per edge.Tails, in order), writing any additional
	// heuristic/actual feature contributions into outFeatures, and
	// returns this edge's own new State. graph is the hypergraph being
	// built, supplied for models that need node-local context (e.g. span
	// boundaries) beyond the edge itself.
	Apply(graph *hypergraph.Graph, prevStates []State, edge *hypergraph.Edge, outFeatures *vector.FeatureVector) State
	// ApplyFinal applies any goal-only scoring (e.g. a language model's
	// end-of-sentence cost) for state at the goal node's edge, writing
	// into outFeatures.
	ApplyFinal(state State, edge *hypergraph.Edge, outFeatures *vector.FeatureVector)
	// Initialize resets any per-decode mutable state. Called once at the
	// start and once at the end of each decoding call (spec.md §5).
	Initialize()
}
