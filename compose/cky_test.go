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

// buildGrammar wires a Memory transducer over the given rule texts,
// trie-keyed by each rule's Source symbols.
func buildGrammar(t *testing.T, texts ...string) *transducer.Memory {
	t.Helper()
	m := transducer.NewMemory()
	for _, text := range texts {
		r, err := rule.Parse(text)
		require.NoError(t, err)
		m.AddRule(r.Source, r)
	}

	return m
}

// TestComposeCKY_MonotoneTwoWord is spec.md §8 scenario 1: lattice
// ["a","b"], grammar [X]->a, [X]->b, [S]->[X,1][X,2]. Expect one goal
// reachable with a single derivation.
func TestComposeCKY_MonotoneTwoWord(t *testing.T) {
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	b := symbol.MustIntern("b")

	lat := lattice.New(2)
	require.NoError(t, lat.AddArc(0, a, nil, 1))
	require.NoError(t, lat.AddArc(1, b, nil, 1))

	g := buildGrammar(t, "[X] ||| a ||| a", "[X] ||| b ||| b", "[S] ||| [X,1] [X,2] ||| [X,1] [X,2]")

	graph, err := compose.ComposeCKY(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.NoError(t, err)
	require.True(t, graph.IsValid())

	goalNode, err := graph.Node(graph.Goal())
	require.NoError(t, err)
	require.Len(t, goalNode.Incoming, 1)
}

func TestComposeCKY_NoGrammars(t *testing.T) {
	lat := lattice.New(1)
	_, err := compose.ComposeCKY(symbol.MustIntern("[S]"), nil, lat, compose.Flags{})
	require.ErrorIs(t, err, compose.ErrNoGrammars)
}

func TestComposeCKY_GoalUnreachable(t *testing.T) {
	symbol.ResetForTest()
	lat := lattice.New(1)
	require.NoError(t, lat.AddArc(0, symbol.MustIntern("z"), nil, 1))
	g := buildGrammar(t, "[X] ||| z ||| z")

	_, err := compose.ComposeCKY(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.ErrorIs(t, err, compose.ErrGoalUnreachable)
}
