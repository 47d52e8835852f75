package apply_test

import (
	"fmt"
	"math"
	"strings"
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

// stateMock is a Model stand-in whose state is derived from the edge
// being scored via keyFn, unlike model.Mock's depth-only state. It lets
// tests control exactly which derivations recombine: keyFn returning a
// distinct string per edge never recombines (stands in for a bigram LM
// keyed on the chosen target word); keyFn collapsing several edges to
// the same string forces recombination the way a real LM collapses
// derivations sharing its context window.
type stateMock struct {
	keyFn   func(e *hypergraph.Edge) string
	penalty float64
}

func (s *stateMock) StateSize() int { return 0 }

func (s *stateMock) Apply(_ *hypergraph.Graph, _ []model.State, e *hypergraph.Edge, outFeatures *vector.FeatureVector) model.State {
	outFeatures.Set(model.FeatureKey, outFeatures.Get(model.FeatureKey)+s.penalty)

	return model.State(s.keyFn(e))
}

func (s *stateMock) ApplyFinal(_ model.State, _ *hypergraph.Edge, _ *vector.FeatureVector) {}

func (s *stateMock) Initialize() {}

// targetKey keys state on the edge's own target yield, so every distinct
// translation is its own state — the bigram-LM-like "last word" context
// never collides between different translations in these tests.
func targetKey(e *hypergraph.Edge) string {
	parts := make([]string, len(e.Rule.Target))
	for i, s := range e.Rule.Target {
		parts[i] = s.String()
	}

	return strings.Join(parts, " ")
}

// buildBranchingGraph composes a two-word lattice where each word has
// perWord candidate translations, weighted by weight(idx) so scores are
// strictly ordered by translation index — spec.md §8 scenario 2's "two
// source symbols with N translations each".
func buildBranchingGraph(t *testing.T, perWord int, weight func(idx int) float64) *hypergraph.Graph {
	t.Helper()
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	b := symbol.MustIntern("b")
	lat := lattice.New(2)
	require.NoError(t, lat.AddArc(0, a, nil, 1))
	require.NoError(t, lat.AddArc(1, b, nil, 1))

	g := transducer.NewMemory()
	for idx := 0; idx < perWord; idx++ {
		for _, src := range []string{"a", "b"} {
			text := fmt.Sprintf("[X] ||| %s ||| t%d_%s ||| w=%g", src, idx, src, weight(idx))
			r, err := rule.Parse(text)
			require.NoError(t, err)
			g.AddRule(r.Source, r)
		}
	}
	r, err := rule.Parse("[S] ||| [X,1] [X,2] ||| [X,1] [X,2] ||| w=1")
	require.NoError(t, err)
	g.AddRule(r.Source, r)

	graph, err := compose.ComposeCKY(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.NoError(t, err)
	require.True(t, graph.IsValid())

	return graph
}

// derivationScore recomputes a surviving edge's total score by walking
// down through its Tails, since ApplyCubePrune's output Features hold
// only that edge's own rule/model contribution, not its antecedents'.
func derivationScore(t *testing.T, g *hypergraph.Graph, fn semiring.Function, edge *hypergraph.Edge) float64 {
	t.Helper()
	total := fn(edge.Features).Score
	for _, tail := range edge.Tails {
		node, err := g.Node(tail)
		require.NoError(t, err)
		require.NotEmpty(t, node.Incoming)
		childEdge, err := g.Edge(node.Incoming[0])
		require.NoError(t, err)
		total += derivationScore(t, g, fn, childEdge)
	}

	return total
}

// TestApplyCubePrune_TwoSymbolTenTranslationsBigramLM implements spec.md
// §8 scenario 2: two source symbols, 10 translations each, scored by a
// model whose state tracks the chosen target word (standing in for a
// bigram LM's "last word" context, unlike model.Mock's depth-only
// state). With k=5 and weights strictly decreasing in translation index,
// the goal must retain exactly 5 items, ordered by score descending,
// and the top item must match ApplyExact's single best derivation.
func TestApplyCubePrune_TwoSymbolTenTranslationsBigramLM(t *testing.T) {
	weight := func(idx int) float64 { return 100.0 / math.Pow(2, float64(idx)) }
	graphIn := buildBranchingGraph(t, 10, weight)
	fn := dotFn()

	const k = 5
	out, err := apply.ApplyCubePrune(&stateMock{keyFn: targetKey}, fn, semiring.Tropical, graphIn, k)
	require.NoError(t, err)
	require.True(t, out.IsValid())

	goalNode, err := out.Node(out.Goal())
	require.NoError(t, err)
	require.Len(t, goalNode.Incoming, k, "cube-prune size invariant: exactly k items at the goal")

	scores := make([]float64, len(goalNode.Incoming))
	for i, eid := range goalNode.Incoming {
		edge, err := out.Edge(eid)
		require.NoError(t, err)
		scores[i] = derivationScore(t, out, fn, edge)
	}
	for i := 1; i < len(scores); i++ {
		require.LessOrEqual(t, scores[i], scores[i-1], "goal items must be ordered by estimate descending")
	}

	exactOut, err := apply.ApplyExact(&stateMock{keyFn: targetKey}, fn, semiring.Tropical, graphIn)
	require.NoError(t, err)
	exactGoalNode, err := exactOut.Node(exactOut.Goal())
	require.NoError(t, err)
	require.NotEmpty(t, exactGoalNode.Incoming)

	bestExact := math.Inf(-1)
	for _, eid := range exactGoalNode.Incoming {
		edge, err := exactOut.Edge(eid)
		require.NoError(t, err)
		if s := derivationScore(t, exactOut, fn, edge); s > bestExact {
			bestExact = s
		}
	}
	require.InDelta(t, bestExact, scores[0], 1e-9, "cube-prune's top item must match ApplyExact's best")
}

// TestApplyCubePrune_CapsItemsPerNodeAtBeamWidth implements spec.md §4.3's
// len(D[v]) <= k invariant for a non-goal node: word "a" offers 10
// distinct-state translations, but a beam of 3 must cap how many reach
// the unary goal rule to 3, not 10, regardless of how many raw
// candidates the antecedent actually has.
func TestApplyCubePrune_CapsItemsPerNodeAtBeamWidth(t *testing.T) {
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	lat := lattice.New(1)
	require.NoError(t, lat.AddArc(0, a, nil, 1))

	g := transducer.NewMemory()
	for idx := 0; idx < 10; idx++ {
		text := fmt.Sprintf("[X] ||| a ||| t%d ||| w=%g", idx, 100.0/math.Pow(2, float64(idx)))
		r, err := rule.Parse(text)
		require.NoError(t, err)
		g.AddRule(r.Source, r)
	}
	unary, err := rule.Parse("[S] ||| [X,1] ||| [X,1] ||| w=1")
	require.NoError(t, err)
	g.AddRule(unary.Source, unary)

	graphIn, err := compose.ComposeCKY(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.NoError(t, err)
	require.True(t, graphIn.IsValid())

	const k = 3
	out, err := apply.ApplyCubePrune(&stateMock{keyFn: targetKey}, dotFn(), semiring.Tropical, graphIn, k)
	require.NoError(t, err)

	goalNode, err := out.Node(out.Goal())
	require.NoError(t, err)
	require.Len(t, goalNode.Incoming, k)
}

// TestApplyCubePrune_RecombinesSharedModelStates demonstrates the "no
// two retained items share the same model state" invariant: word "a"'s
// 4 translations collapse to only 2 distinct states (by parity of their
// index), so even though the goal's unary rule bypasses recombination
// at the goal itself, the number of distinct antecedent items it can
// ever see is bounded by however many distinct states survived at the
// word node beneath it — 2, not 4 — regardless of how large k is.
func TestApplyCubePrune_RecombinesSharedModelStates(t *testing.T) {
	symbol.ResetForTest()
	a := symbol.MustIntern("a")
	lat := lattice.New(1)
	require.NoError(t, lat.AddArc(0, a, nil, 1))

	g := transducer.NewMemory()
	for idx := 0; idx < 4; idx++ {
		text := fmt.Sprintf("[X] ||| a ||| t%d ||| w=%g", idx, 100.0/math.Pow(2, float64(idx)))
		r, err := rule.Parse(text)
		require.NoError(t, err)
		g.AddRule(r.Source, r)
	}
	unary, err := rule.Parse("[S] ||| [X,1] ||| [X,1] ||| w=1")
	require.NoError(t, err)
	g.AddRule(unary.Source, unary)

	graphIn, err := compose.ComposeCKY(symbol.MustIntern("[S]"), []transducer.Transducer{g}, lat, compose.Flags{})
	require.NoError(t, err)
	require.True(t, graphIn.IsValid())

	parityKey := func(e *hypergraph.Edge) string {
		if len(e.Rule.Target) == 0 {
			return targetKey(e)
		}
		text := e.Rule.Target[0].String()
		digit := text[len(text)-1] - '0'
		if digit%2 == 0 {
			return "even"
		}

		return "odd"
	}

	const k = 10 // far larger than the 2 distinct states available
	out, err := apply.ApplyCubePrune(&stateMock{keyFn: parityKey}, dotFn(), semiring.Tropical, graphIn, k)
	require.NoError(t, err)

	goalNode, err := out.Node(out.Goal())
	require.NoError(t, err)
	require.Len(t, goalNode.Incoming, 2, "only the 2 distinct recombined states beneath the goal should ever be reachable")
}
