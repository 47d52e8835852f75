package compose

import (
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
)

// epsilonRule returns a single-antecedent passthrough rule with source and
// target [X,1] and the epsilon symbol as its lhs, used to join a fresh
// goal node to each of its candidate
// goal items, per spec.md §4.2's "collapse all such items into a single
// goal node joined by ε-labeled GOAL edges".
func epsilonRule(eps symbol.Symbol) (*rule.Rule, error) {
	nt := symbol.DefaultLHS().NonTerminal(1)

	return rule.New(eps, []symbol.Symbol{nt}, []symbol.Symbol{nt}, nil, nil)
}
