package compose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/compose"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
)

func TestComposeEarley_MatchesCKY(t *testing.T) {
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	lat := lattice.New(1)
	require.NoError(t, lat.AddArc(0, a, nil, 1))

	g := buildGrammar(t, "[S] ||| a ||| a")
	graph, err := compose.ComposeEarley(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.NoError(t, err)
	require.True(t, graph.IsValid())

	ckyGraph, err := compose.ComposeCKY(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.NoError(t, err)
	require.Equal(t, ckyGraph.NodeCount(), graph.NodeCount())
	require.Equal(t, ckyGraph.EdgeCount(), graph.EdgeCount())
}

func TestComposePhrase_ContiguousSpan(t *testing.T) {
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	b := symbol.MustIntern("b")
	lat := lattice.New(2)
	require.NoError(t, lat.AddArc(0, a, nil, 1))
	require.NoError(t, lat.AddArc(1, b, nil, 1))

	g := transducer.NewMemory()
	r, err := rule.Parse("a b ||| a b")
	require.NoError(t, err)
	g.AddRule(r.Source, r)

	graph, err := compose.ComposePhrase(symbol.MustIntern("[X]"), []transducer.Transducer{g}, lat, 3)
	require.NoError(t, err)
	require.True(t, graph.IsValid())
}

func TestComposeTree_MatchesFragment(t *testing.T) {
	symbol.ResetForTest()
	x := symbol.MustIntern("x")
	y := symbol.MustIntern("y")
	lat := lattice.New(2)
	require.NoError(t, lat.AddArc(0, x, nil, 1))
	require.NoError(t, lat.AddArc(1, y, nil, 1))

	frag, err := rule.ParseTree("(A (B x) (C y))")
	require.NoError(t, err)

	graph, err := compose.ComposeTree(symbol.MustIntern("A"), []*rule.TreeRule{frag}, lat)
	require.NoError(t, err)
	require.True(t, graph.IsValid())
}

func TestComposeDependencyArcStandard_TagsAttributes(t *testing.T) {
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	lat := lattice.New(1)
	require.NoError(t, lat.AddArc(0, a, nil, 1))

	g := buildGrammar(t, "[S] ||| a ||| a")
	graph, err := compose.ComposeDependencyArcStandard(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.NoError(t, err)

	goalNode, err := graph.Node(graph.Goal())
	require.NoError(t, err)
	require.Len(t, goalNode.Incoming, 1)
	edge, err := graph.Edge(goalNode.Incoming[0])
	require.NoError(t, err)
	_, ok := edge.Attributes.Get(compose.AttrDependencyPos)
	require.True(t, ok)
}
