package transducer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
)

func TestMemory_RootHasNoRules(t *testing.T) {
	m := transducer.NewMemory()
	require.Empty(t, m.Rules(m.Root()))
	require.False(t, m.HasNext(m.Root()))
}

func TestMemory_AddRuleAndWalk(t *testing.T) {
	symbol.ResetForTest()
	r, err := rule.Parse("a b ||| a b")
	require.NoError(t, err)

	m := transducer.NewMemory()
	m.AddRule(r.Source, r)

	require.True(t, m.HasNext(m.Root()))
	s1 := m.Next(m.Root(), symbol.MustIntern("a"))
	require.NotEqual(t, transducer.InvalidState, s1)
	require.Empty(t, m.Rules(s1))

	s2 := m.Next(s1, symbol.MustIntern("b"))
	require.NotEqual(t, transducer.InvalidState, s2)
	rules := m.Rules(s2)
	require.Len(t, rules, 1)
	require.Same(t, r, rules[0].Rule)
}

func TestMemory_NextOnUnknownLabel(t *testing.T) {
	m := transducer.NewMemory()
	require.Equal(t, transducer.InvalidState, m.Next(m.Root(), symbol.MustIntern("z")))
}

func TestMemory_ValidSpanAlwaysTrue(t *testing.T) {
	m := transducer.NewMemory()
	require.True(t, m.ValidSpan(m.Root(), 0, 3, 3))
}
