package model

import (
	"encoding/binary"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

// Mock is a reference Model: its state is the 8-byte big-endian encoding
// of the derivation depth (one more than the deepest antecedent's), and
// its only feature contribution is a
// constant per-edge penalty under FeatureKey. It exists so apply/coarse/
// kbest tests can exercise the Model contract without depending on a real
// scoring model.
type Mock struct {
	// Penalty is added to FeatureKey for every edge Apply scores.
	Penalty float64
	// FinalPenalty is added to FeatureKey by ApplyFinal.
	FinalPenalty float64

	initCount int
}

// FeatureKey is the feature Mock writes its penalty under.
var FeatureKey = symbol.MustIntern("mock-penalty")

// NewMock returns a Mock with the given per-edge and goal-only penalties.
func NewMock(penalty, finalPenalty float64) *Mock {
	return &Mock{Penalty: penalty, FinalPenalty: finalPenalty}
}

// StateSize implements Model: Mock's state is always 8 bytes.
func (m *Mock) StateSize() int { return 8 }

// Apply implements Model: the new state is one more than the maximum
// antecedent state (so derivations built from deeper sub-trees get a
// visibly different state, exercising recombination logic in tests), and
// the edge is charged Penalty.
func (m *Mock) Apply(_ *hypergraph.Graph, prevStates []State, _ *hypergraph.Edge, outFeatures *vector.FeatureVector) State {
	var maxPrev uint64
	for _, s := range prevStates {
		if len(s) != 8 {
			continue
		}
		v := binary.BigEndian.Uint64(s)
		if v > maxPrev {
			maxPrev = v
		}
	}
	out := make(State, 8)
	binary.BigEndian.PutUint64(out, maxPrev+1)
	outFeatures.Set(FeatureKey, outFeatures.Get(FeatureKey)+m.Penalty)

	return out
}

// ApplyFinal implements Model by charging the goal-only FinalPenalty.
func (m *Mock) ApplyFinal(_ State, _ *hypergraph.Edge, outFeatures *vector.FeatureVector) {
	outFeatures.Set(FeatureKey, outFeatures.Get(FeatureKey)+m.FinalPenalty)
}

// Initialize implements Model by counting how many decode cycles have
// started, for tests that assert Initialize was actually invoked.
func (m *Mock) Initialize() {
	m.initCount++
}

// InitCount reports how many times Initialize has run.
func (m *Mock) InitCount() int { return m.initCount }
