package coarse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/coarse"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
	"github.com/nishiharu/cicada-go/vector"
)

func buildLadder(t *testing.T) ([]transducer.Transducer, *lattice.Lattice) {
	t.Helper()
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	b := symbol.MustIntern("b")
	lat := lattice.New(2)
	require.NoError(t, lat.AddArc(0, a, nil, 1))
	require.NoError(t, lat.AddArc(1, b, nil, 1))

	texts := []string{
		"[X] ||| a ||| a ||| w=1",
		"[X] ||| b ||| b ||| w=1",
		"[S] ||| [X,1] [X,2] ||| [X,1] [X,2] ||| w=1",
	}
	coarseG := transducer.NewMemory()
	fineG := transducer.NewMemory()
	for _, text := range texts {
		r, err := rule.Parse(text)
		require.NoError(t, err)
		coarseG.AddRule(r.Source, r)
		fineG.AddRule(r.Source, r)
	}

	return []transducer.Transducer{coarseG, fineG}, lat
}

func weightFn() semiring.Function {
	weights := vector.New()
	weights.Set(symbol.MustIntern("w"), 1.0)

	return semiring.DotProduct(semiring.Logprob, weights)
}

func TestParseCoarse_TwoLevelLadderReachesGoal(t *testing.T) {
	grammars, lat := buildLadder(t)

	opts := coarse.DefaultOptions()
	opts.Thresholds = []float64{-100}

	out, err := coarse.ParseCoarse(symbol.MustIntern("[S]"), grammars, lat, weightFn(), semiring.Logprob, opts)
	require.NoError(t, err)
	require.True(t, out.IsValid())
}

func TestParseCoarse_SingleGrammarDelegatesToComposeCKY(t *testing.T) {
	grammars, lat := buildLadder(t)
	out, err := coarse.ParseCoarse(symbol.MustIntern("[S]"), grammars[:1], lat, weightFn(), semiring.Logprob, coarse.DefaultOptions())
	require.NoError(t, err)
	require.True(t, out.IsValid())
}

func TestParseCoarse_RetriesRelaxOverlyAggressiveThreshold(t *testing.T) {
	grammars, lat := buildLadder(t)

	opts := coarse.DefaultOptions()
	opts.Thresholds = []float64{5} // above the label class's summed posterior gap of log 3, so the goal is reached only after relaxation

	out, err := coarse.ParseCoarse(symbol.MustIntern("[S]"), grammars, lat, weightFn(), semiring.Logprob, opts)
	require.NoError(t, err)
	require.True(t, out.IsValid())
}
