package coarse

import (
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/symbol"
)

// ClosureEdge is one max-score path from a child label to a reachable
// parent label via a chain of unary rules.
type ClosureEdge struct {
	Parent symbol.Symbol
	Weight semiring.Value
}

// UnaryClosure computes, for every child lhs `c` appearing in rules, the
// set of parent labels reachable via chains of unary rules (arity 1,
// single non-terminal source), keeping only the max-weight path to each
// parent and forbidding any chain that would return to `c` itself —
// spec.md §4.4: "a fixed-point over G that for each child lhs c computes
// the set of reachable parents with max-score paths; cycles c→…→c are
// forbidden; closures are cached per child id." The returned map is the
// cache: call once per grammar and reuse across cells.
func UnaryClosure(rules []*rule.Rule, fn semiring.Function, kind semiring.Semiring) map[symbol.Symbol][]ClosureEdge {
	type step struct {
		parent symbol.Symbol
		weight semiring.Value
	}
	direct := make(map[symbol.Symbol][]step)
	for _, r := range rules {
		if r.Arity != 1 || len(r.Source) != 1 || !r.Source[0].IsNonTerminal() {
			continue
		}
		child := r.Source[0].NonTerminal(0)
		direct[child] = append(direct[child], step{parent: r.LHS, weight: fn(r.Features)})
	}

	closure := make(map[symbol.Symbol]map[symbol.Symbol]semiring.Value)
	for child := range direct {
		closure[child] = map[symbol.Symbol]semiring.Value{child: semiring.One(kind)}
	}

	changed := true
	for iter := 0; changed && iter < len(direct)+1; iter++ {
		changed = false
		for child, reached := range closure {
			for origin, originWeight := range reached {
				for _, s := range direct[origin] {
					if s.parent == child {
						continue // cycle back to the child itself: forbidden
					}
					candidate := originWeight.Mul(s.weight)
					if existing, ok := reached[s.parent]; !ok || candidate.Score > existing.Score {
						reached[s.parent] = candidate
						changed = true
					}
				}
			}
		}
	}

	out := make(map[symbol.Symbol][]ClosureEdge, len(closure))
	for child, reached := range closure {
		for parent, w := range reached {
			if parent == child {
				continue
			}
			out[child] = append(out[child], ClosureEdge{Parent: parent, Weight: w})
		}
	}

	return out
}
