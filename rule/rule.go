package rule

import (
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

// Rule is a synchronous grammar production: an LHS non-terminal rewriting
// to Source (with Target optionally giving the output-side yield), scored
// by Features/Attributes. Arity is the count of non-terminals on the
// source side, which by construction (see normalize) equals the count on
// the target side whenever Target is non-empty.
type Rule struct {
	LHS        symbol.Symbol
	Source     []symbol.Symbol
	Target     []symbol.Symbol
	Features   *vector.FeatureVector
	Attributes *vector.AttributeVector
	Arity      int
}

// New constructs a Rule from its parts, normalizing non-terminal index
// numbering and validating the arity invariant from spec.md §3. A nil or
// empty lhs defaults to "[X]"; nil Features/Attributes are replaced with
// empty vectors.
func New(lhs symbol.Symbol, source, target []symbol.Symbol, features *vector.FeatureVector, attrs *vector.AttributeVector) (*Rule, error) {
	if !lhs.IsValid() {
		lhs = symbol.DefaultLHS()
	}
	if features == nil {
		features = vector.New()
	}
	if attrs == nil {
		attrs = vector.NewAttributes()
	}
	r := &Rule{
		LHS:        lhs,
		Source:     append([]symbol.Symbol(nil), source...),
		Target:     append([]symbol.Symbol(nil), target...),
		Features:   features,
		Attributes: attrs,
		Arity:      countNonTerminals(source),
	}
	if err := r.normalize(); err != nil {
		return nil, err
	}

	return r, nil
}

// countNonTerminals returns how many elements of syms are non-terminals.
func countNonTerminals(syms []symbol.Symbol) int {
	n := 0
	for _, s := range syms {
		if s.IsNonTerminal() {
			n++
		}
	}

	return n
}

// normalize renumbers Source's non-terminals to canonical 1..arity indices
// in left-to-right order, and rewrites Target's non-terminal indices to
// match via the permutation implied by each symbol's original index (or
// its left-to-right occurrence position, if the original index was 0).
// This is the Go rendering of rule.cpp's sort_source_index, grounded on
// original_source/cicada/rule.cpp.
func (r *Rule) normalize() error {
	if r.Arity == 0 {
		return nil
	}
	if len(r.Target) > 0 && countNonTerminals(r.Target) != r.Arity {
		return ErrArityMismatch
	}
	if r.Arity <= 1 || len(r.Target) == 0 {
		// Still canonicalize a single source non-terminal to index 1, and
		// any target copy with matching arity, for consistent serialization.
		if r.Arity == 1 {
			r.canonicalizeSingle()
		}

		return nil
	}

	index := make([]int, r.Arity+1)
	pos := 1
	newSource := append([]symbol.Symbol(nil), r.Source...)
	for i, s := range newSource {
		if !s.IsNonTerminal() {
			continue
		}
		key := s.NonTerminalIndex()
		if key == 0 || key > r.Arity {
			key = pos
		}
		index[key] = pos
		newSource[i] = s.NonTerminal(pos)
		pos++
	}

	pos = 1
	newTarget := append([]symbol.Symbol(nil), r.Target...)
	for i, s := range newTarget {
		if !s.IsNonTerminal() {
			continue
		}
		key := s.NonTerminalIndex()
		if key == 0 || key > r.Arity {
			key = pos
		}
		newPos := index[key]
		if newPos == 0 {
			return ErrArityMismatch
		}
		newTarget[i] = s.NonTerminal(newPos)
		pos++
	}

	r.Source = newSource
	r.Target = newTarget

	return nil
}

// canonicalizeSingle handles the arity==1 case, where no permutation is
// needed but index suffixes should still read "1" on both sides.
func (r *Rule) canonicalizeSingle() {
	for i, s := range r.Source {
		if s.IsNonTerminal() {
			r.Source[i] = s.NonTerminal(1)
		}
	}
	for i, s := range r.Target {
		if s.IsNonTerminal() {
			r.Target[i] = s.NonTerminal(1)
		}
	}
}

// Clone returns a deep copy of r.
func (r *Rule) Clone() *Rule {
	return &Rule{
		LHS:        r.LHS,
		Source:     append([]symbol.Symbol(nil), r.Source...),
		Target:     append([]symbol.Symbol(nil), r.Target...),
		Features:   r.Features.Clone(),
		Attributes: r.Attributes.Clone(),
		Arity:      r.Arity,
	}
}
