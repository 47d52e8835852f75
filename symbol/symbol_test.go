package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/symbol"
)

func TestMain(m *testing.M) {
	symbol.ResetForTest()
	m.Run()
}

func TestIntern_TerminalVsNonTerminal(t *testing.T) {
	word, err := symbol.Intern("house")
	require.NoError(t, err)
	require.True(t, word.IsTerminal())
	require.False(t, word.IsNonTerminal())
	require.Equal(t, "house", word.String())

	nt, err := symbol.Intern("[X]")
	require.NoError(t, err)
	require.True(t, nt.IsNonTerminal())
	require.Equal(t, 0, nt.NonTerminalIndex())
}

func TestIntern_IndexSuffix(t *testing.T) {
	nt, err := symbol.Intern("[X,2]")
	require.NoError(t, err)
	require.True(t, nt.IsNonTerminal())
	require.Equal(t, 2, nt.NonTerminalIndex())
}

func TestIntern_Idempotent(t *testing.T) {
	a, err := symbol.Intern("[NP]")
	require.NoError(t, err)
	b, err := symbol.Intern("[NP]")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestIntern_Empty(t *testing.T) {
	_, err := symbol.Intern("")
	require.ErrorIs(t, err, symbol.ErrEmptyText)
}

func TestNonTerminal_ReplacesIndex(t *testing.T) {
	base := symbol.MustIntern("[X]")
	indexed := base.NonTerminal(3)
	require.Equal(t, "[X,3]", indexed.String())
	require.Equal(t, 3, indexed.NonTerminalIndex())

	dropped := indexed.NonTerminal(0)
	require.Equal(t, "[X]", dropped.String())
}

func TestBinarized(t *testing.T) {
	plain := symbol.MustIntern("[X]")
	require.False(t, plain.Binarized())

	binarized := symbol.MustIntern("[X^]")
	require.True(t, binarized.Binarized())
}

func TestCoarse_Deterministic(t *testing.T) {
	fine := symbol.MustIntern("[NP-SBJ]")
	c1 := fine.Coarse(3)
	c2 := fine.Coarse(3)
	require.Equal(t, c1, c2)
	require.True(t, c1.IsNonTerminal())
}

func TestCoarse_TerminalIsIdentity(t *testing.T) {
	word := symbol.MustIntern("dog")
	require.Equal(t, word, word.Coarse(4))
}

func TestInvalidSymbol(t *testing.T) {
	require.False(t, symbol.Invalid.IsValid())
	require.Equal(t, "<invalid>", symbol.Invalid.String())
}
