package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/model"
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

func mustEdge(t *testing.T) *hypergraph.Edge {
	t.Helper()
	r, err := rule.Parse("a ||| a")
	require.NoError(t, err)

	return &hypergraph.Edge{Rule: r}
}

func TestMock_ApplyChargesPenalty(t *testing.T) {
	symbol.ResetForTest()
	m := model.NewMock(0.5, 1.0)
	feats := vector.New()
	state := m.Apply(nil, nil, mustEdge(t), feats)
	require.Len(t, state, 8)
	require.Equal(t, 0.5, feats.Get(model.FeatureKey))

	m.ApplyFinal(state, mustEdge(t), feats)
	require.Equal(t, 1.5, feats.Get(model.FeatureKey))
}

func TestMock_StateGrowsWithDepth(t *testing.T) {
	symbol.ResetForTest()
	m := model.NewMock(0, 0)
	feats := vector.New()
	leaf := m.Apply(nil, nil, mustEdge(t), feats)
	parent := m.Apply(nil, []model.State{leaf}, mustEdge(t), feats)
	require.False(t, leaf.Equal(parent))
}

func TestMock_Initialize(t *testing.T) {
	m := model.NewMock(0, 0)
	require.Equal(t, 0, m.InitCount())
	m.Initialize()
	m.Initialize()
	require.Equal(t, 2, m.InitCount())
}

func TestChain_StateSizeAndApply(t *testing.T) {
	symbol.ResetForTest()
	a := model.NewMock(0.1, 0)
	b := model.NewMock(0.2, 0)
	c := model.NewChain(a, b)
	require.Equal(t, 16, c.StateSize())

	feats := vector.New()
	state := c.Apply(nil, nil, mustEdge(t), feats)
	require.Len(t, state, 16)
	require.InDelta(t, 0.3, feats.Get(model.FeatureKey), 1e-9)
}
