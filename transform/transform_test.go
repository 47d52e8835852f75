package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transform"
	"github.com/nishiharu/cicada-go/vector"
)

func mustRule(t *testing.T, text string) *rule.Rule {
	t.Helper()
	r, err := rule.Parse(text)
	require.NoError(t, err)

	return r
}

func TestTopologicalSort_OrdersTailsBeforeHead(t *testing.T) {
	symbol.ResetForTest()
	g := hypergraph.New()
	leafA := g.AddNode()
	leafB := g.AddNode()
	head := g.AddNode()

	r := mustRule(t, "[S] ||| [X,1] [X,2] ||| [X,1] [X,2]")
	eid, err := g.AddEdge([]hypergraph.NodeID{leafA, leafB}, r, vector.New(), vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(eid, head))
	require.NoError(t, g.SetGoal(head))

	out := transform.TopologicalSort(g)
	require.True(t, out.IsValid())
	require.Equal(t, 3, out.NodeCount())
	goalEdge, err := out.Edge(out.Nodes()[out.Goal()].Incoming[0])
	require.NoError(t, err)
	for _, tail := range goalEdge.Tails {
		require.Less(t, int(tail), int(out.Goal()))
	}
}

func TestRemoveEpsilon_MergesHeadIntoTail(t *testing.T) {
	symbol.ResetForTest()
	eps := symbol.Epsilon()
	g := hypergraph.New()
	leaf := g.AddNode()
	mid := g.AddNode()
	top := g.AddNode()

	passR := mustRule(t, "a ||| a")
	passID, err := g.AddEdge(nil, passR, vector.New(), vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(passID, leaf))

	// rule.New rejects a target with fewer non-terminals than the source,
	// so the epsilon target is set after construction.
	epsR, err := rule.New(symbol.MustIntern("[X]"), []symbol.Symbol{symbol.MustIntern("[X]").NonTerminal(1)}, nil, nil, nil)
	require.NoError(t, err)
	epsR.Target = []symbol.Symbol{eps}
	epsFeatures := vector.New()
	epsFeatures.Set(symbol.MustIntern("skip"), 1.0)
	epsID, err := g.AddEdge([]hypergraph.NodeID{leaf}, epsR, epsFeatures, vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(epsID, mid))

	outerR := mustRule(t, "[S] ||| [X,1] ||| [X,1]")
	outerFeatures := vector.New()
	outerFeatures.Set(symbol.MustIntern("w"), 2.0)
	outerID, err := g.AddEdge([]hypergraph.NodeID{mid}, outerR, outerFeatures, vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(outerID, top))
	require.NoError(t, g.SetGoal(top))

	out, err := transform.RemoveEpsilon(g)
	require.NoError(t, err)
	require.True(t, out.IsValid())

	node, err := out.Node(out.Goal())
	require.NoError(t, err)
	require.Len(t, node.Incoming, 1)
	edge, err := out.Edge(node.Incoming[0])
	require.NoError(t, err)
	require.Equal(t, 1.0, edge.Features.Get(symbol.MustIntern("skip")))
	require.Equal(t, 2.0, edge.Features.Get(symbol.MustIntern("w")))
}

func TestRemoveEpsilon_RejectsWrongArity(t *testing.T) {
	symbol.ResetForTest()
	eps := symbol.Epsilon()
	g := hypergraph.New()
	a := g.AddNode()
	b := g.AddNode()
	head := g.AddNode()

	// Hand-craft a Rule with Target == [eps] but two tails, bypassing
	// rule.New's own arity check, to exercise RemoveEpsilon's guard
	// against a malformed epsilon edge.
	r := &rule.Rule{LHS: symbol.MustIntern("[X]"), Source: nil, Target: []symbol.Symbol{eps}, Features: vector.New(), Attributes: vector.NewAttributes(), Arity: 2}
	eid, err := g.AddEdge([]hypergraph.NodeID{a, b}, r, vector.New(), vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(eid, head))
	require.NoError(t, g.SetGoal(head))

	_, err = transform.RemoveEpsilon(g)
	require.ErrorIs(t, err, transform.ErrMalformedGraph)
}

func TestDebinarize_SplicesBinarizedNode(t *testing.T) {
	symbol.ResetForTest()
	g := hypergraph.New()
	wordA := g.AddNode()
	wordB := g.AddNode()
	wordC := g.AddNode()
	binNode := g.AddNode()
	top := g.AddNode()

	leafR := func(text string) *rule.Rule { return mustRule(t, text) }

	idA, err := g.AddEdge(nil, leafR("a ||| a"), vector.New(), vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(idA, wordA))
	idB, err := g.AddEdge(nil, leafR("b ||| b"), vector.New(), vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(idB, wordB))
	idC, err := g.AddEdge(nil, leafR("c ||| c"), vector.New(), vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(idC, wordC))

	binR := mustRule(t, "[X^] ||| [X,1] [X,2] ||| [X,1] [X,2]")
	binFeatures := vector.New()
	binFeatures.Set(symbol.MustIntern("bin"), 1.0)
	binID, err := g.AddEdge([]hypergraph.NodeID{wordA, wordB}, binR, binFeatures, vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(binID, binNode))

	topR := mustRule(t, "[S] ||| [X,1] [X,2] ||| [X,1] [X,2]")
	topFeatures := vector.New()
	topFeatures.Set(symbol.MustIntern("top"), 1.0)
	topID, err := g.AddEdge([]hypergraph.NodeID{binNode, wordC}, topR, topFeatures, vector.NewAttributes())
	require.NoError(t, err)
	require.NoError(t, g.ConnectEdge(topID, top))
	require.NoError(t, g.SetGoal(top))

	out, err := transform.Debinarize(g)
	require.NoError(t, err)
	require.True(t, out.IsValid())

	node, err := out.Node(out.Goal())
	require.NoError(t, err)
	require.Len(t, node.Incoming, 1)
	edge, err := out.Edge(node.Incoming[0])
	require.NoError(t, err)
	require.Len(t, edge.Tails, 3)
	require.Equal(t, 1.0, edge.Features.Get(symbol.MustIntern("bin")))
	require.Equal(t, 1.0, edge.Features.Get(symbol.MustIntern("top")))
}
