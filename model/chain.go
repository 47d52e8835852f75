package model

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/vector"
)

// Chain composes several Models into one, concatenating their states and
// summing their feature contributions. Real deployments run several
// feature functions together (an n-gram LM plus penalty features plus a
// tree RNN); Chain lets callers supply Model = Chain(lm, penalty, ...) to
// apply/coarse/kbest without those packages knowing about multiple
// models.
type Chain struct {
	models []Model
	sizes  []int
}

// NewChain returns a Chain over models, in the order their states are
// concatenated and ApplyFinal/Initialize are invoked.
func NewChain(models ...Model) *Chain {
	sizes := make([]int, len(models))
	for i, m := range models {
		sizes[i] = m.StateSize()
	}

	return &Chain{models: models, sizes: sizes}
}

// StateSize implements Model: the sum of every sub-model's state size.
func (c *Chain) StateSize() int {
	total := 0
	for _, s := range c.sizes {
		total += s
	}

	return total
}

// Apply implements Model by splitting each prevState into per-sub-model
// segments, calling each sub-model's Apply, and concatenating the
// resulting states back together in order.
func (c *Chain) Apply(graph *hypergraph.Graph, prevStates []State, edge *hypergraph.Edge, outFeatures *vector.FeatureVector) State {
	out := make(State, 0, c.StateSize())
	for i, m := range c.models {
		sub := make([]State, len(prevStates))
		for j, s := range prevStates {
			sub[j] = c.segment(i, s)
		}
		out = append(out, m.Apply(graph, sub, edge, outFeatures)...)
	}

	return out
}

// ApplyFinal implements Model by splitting state into segments and
// delegating to each sub-model in order.
func (c *Chain) ApplyFinal(state State, edge *hypergraph.Edge, outFeatures *vector.FeatureVector) {
	for i, m := range c.models {
		m.ApplyFinal(c.segment(i, state), edge, outFeatures)
	}
}

// Initialize implements Model by resetting every sub-model.
func (c *Chain) Initialize() {
	for _, m := range c.models {
		m.Initialize()
	}
}

// segment returns the byte range of s belonging to sub-model i.
func (c *Chain) segment(i int, s State) State {
	offset := 0
	for j := 0; j < i; j++ {
		offset += c.sizes[j]
	}
	if offset+c.sizes[i] > len(s) {
		return nil
	}

	return s[offset : offset+c.sizes[i]]
}
