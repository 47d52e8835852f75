package apply_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/apply"
	"github.com/nishiharu/cicada-go/compose"
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/model"
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
	"github.com/nishiharu/cicada-go/vector"
)

func buildTwoWordGraph(t *testing.T) *hypergraph.Graph {
	t.Helper()
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	b := symbol.MustIntern("b")
	lat := lattice.New(2)
	require.NoError(t, lat.AddArc(0, a, nil, 1))
	require.NoError(t, lat.AddArc(1, b, nil, 1))

	m := transducer.NewMemory()
	for _, text := range []string{
		"[X] ||| a ||| a ||| w=1",
		"[X] ||| b ||| b ||| w=1",
		"[S] ||| [X,1] [X,2] ||| [X,1] [X,2] ||| w=1",
	} {
		r, err := rule.Parse(text)
		require.NoError(t, err)
		m.AddRule(r.Source, r)
	}

	graph, err := compose.ComposeCKY(symbol.MustIntern("[S]"), []transducer.Transducer{m}, lat, compose.Flags{})
	require.NoError(t, err)
	require.True(t, graph.IsValid())

	return graph
}

func dotFn() semiring.Function {
	weights := vector.New()
	weights.Set(symbol.MustIntern("w"), 1.0)
	weights.Set(model.FeatureKey, 1.0)

	return semiring.DotProduct(semiring.Tropical, weights)
}

func TestApplyCubePrune_ProducesValidGraph(t *testing.T) {
	graphIn := buildTwoWordGraph(t)
	m := model.NewMock(0.1, 0.2)
	out, err := apply.ApplyCubePrune(m, dotFn(), semiring.Tropical, graphIn, 4)
	require.NoError(t, err)
	require.True(t, out.IsValid())
	require.Equal(t, 2, m.InitCount())
}

func TestApplyCubePrune_RejectsInvalidGraph(t *testing.T) {
	empty := hypergraph.New()
	_, err := apply.ApplyCubePrune(model.NewMock(0, 0), dotFn(), semiring.Tropical, empty, 4)
	require.ErrorIs(t, err, apply.ErrInvalidGraph)
}

func TestApplyCubePrune_RejectsBadBeam(t *testing.T) {
	graphIn := buildTwoWordGraph(t)
	_, err := apply.ApplyCubePrune(model.NewMock(0, 0), dotFn(), semiring.Tropical, graphIn, 0)
	require.ErrorIs(t, err, apply.ErrBadBeam)
}

func TestApplyExact_MatchesCubePruneOnSmallGraph(t *testing.T) {
	graphIn := buildTwoWordGraph(t)
	out, err := apply.ApplyExact(model.NewMock(0, 0), dotFn(), semiring.Tropical, graphIn)
	require.NoError(t, err)
	require.True(t, out.IsValid())
}

func TestApplyCubeGrow_ProducesValidGraph(t *testing.T) {
	graphIn := buildTwoWordGraph(t)
	out, err := apply.ApplyCubeGrow(model.NewMock(0, 0), dotFn(), semiring.Tropical, graphIn, 4)
	require.NoError(t, err)
	require.True(t, out.IsValid())
}

func TestApplyIncremental_GlobalBeamProducesValidGraph(t *testing.T) {
	graphIn := buildTwoWordGraph(t)
	out, err := apply.ApplyIncremental(model.NewMock(0, 0), dotFn(), semiring.Tropical, graphIn, 8)
	require.NoError(t, err)
	require.True(t, out.IsValid())
}
