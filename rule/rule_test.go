package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
)

func TestParse_DefaultLHS(t *testing.T) {
	r, err := rule.Parse("a b ||| a b")
	require.NoError(t, err)
	require.Equal(t, "[X]", r.LHS.String())
	require.Equal(t, 0, r.Arity)
}

func TestParse_ExplicitLHS(t *testing.T) {
	r, err := rule.Parse("[S] ||| [X,1] [X,2] ||| [X,2] [X,1] ||| weight=0.5")
	require.NoError(t, err)
	require.Equal(t, "[S]", r.LHS.String())
	require.Equal(t, 2, r.Arity)
	w := r.Features.Get(symbol.MustIntern("weight"))
	require.Equal(t, 0.5, w)
}

func TestParse_ArityMismatch(t *testing.T) {
	_, err := rule.Parse("[S] ||| [X,1] [X,2] ||| [X,1]")
	require.ErrorIs(t, err, rule.ErrArityMismatch)
}

func TestRule_SerializeParseRoundTrip(t *testing.T) {
	r, err := rule.Parse("[S] ||| [X,1] [X,2] ||| [X,2] [X,1] ||| a=1 b=2.5")
	require.NoError(t, err)
	text := r.String()

	r2, err := rule.Parse(text)
	require.NoError(t, err)
	require.Equal(t, text, r2.String())
}

func TestParseTree(t *testing.T) {
	tr, err := rule.ParseTree("(A (B x) (C y))")
	require.NoError(t, err)
	require.Equal(t, "A", tr.Label.String())

	ants := tr.Antecedents()
	require.Len(t, ants, 2)
	require.Equal(t, "B", ants[0].Label.String())
	require.Equal(t, "x", ants[0].Terminal.String())
	require.Equal(t, "C", ants[1].Label.String())
	require.Equal(t, "y", ants[1].Terminal.String())
}

func TestParseTree_EscapeRoundTrip(t *testing.T) {
	original := `(A\(1\) (B x\\y))`
	tr, err := rule.ParseTree(original)
	require.NoError(t, err)
	require.Equal(t, original, tr.String())
}
