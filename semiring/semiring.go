package semiring

import (
	"math"

	"github.com/nishiharu/cicada-go/vector"
)

// Semiring names one of the three weight algebras a Value belongs to.
type Semiring int

const (
	// Tropical is max-plus: Add takes the max, Mul adds, Zero is -Inf,
	// One is 0. Used for best-derivation (Viterbi) search.
	Tropical Semiring = iota
	// Logprob is log-sum-exp: Add combines two log-masses additively in
	// probability space, Mul adds logs, Zero is -Inf, One is 0. Used for
	// inside/outside marginal mass.
	Logprob
	// Viterbi is Tropical under a distinct name, for call sites that want
	// to say "the best-path semiring" without naming Tropical directly.
	Viterbi
)

// Value is a scored weight in one of the three semirings. The zero Value
// (Kind: Tropical, Score: 0) equals One(Tropical), not Zero(Tropical) —
// use Zero(kind) or One(kind) explicitly.
type Value struct {
	Kind  Semiring
	Score float64
}

// Zero returns the additive identity of kind: -Inf in all three algebras
// (the score of a derivation that does not exist).
func Zero(kind Semiring) Value {
	return Value{Kind: kind, Score: math.Inf(-1)}
}

// One returns the multiplicative identity of kind: 0 in all three
// algebras (the score of an empty derivation).
func One(kind Semiring) Value {
	return Value{Kind: kind, Score: 0}
}

// Add computes v ⊕ other. Both operands must share Kind; Add panics on a
// Kind mismatch, since mixing algebras mid-computation is always a caller
// bug, not a recoverable runtime condition.
func (v Value) Add(other Value) Value {
	if v.Kind != other.Kind {
		panic("semiring: Add across mismatched Kind")
	}
	switch v.Kind {
	case Tropical, Viterbi:
		return Value{Kind: v.Kind, Score: math.Max(v.Score, other.Score)}
	case Logprob:
		return Value{Kind: v.Kind, Score: logAdd(v.Score, other.Score)}
	default:
		panic("semiring: unknown Kind")
	}
}

// Mul computes v ⊗ other: log-addition in all three algebras, since every
// one of them represents its weights in log space.
func (v Value) Mul(other Value) Value {
	if v.Kind != other.Kind {
		panic("semiring: Mul across mismatched Kind")
	}

	return Value{Kind: v.Kind, Score: v.Score + other.Score}
}

// Less reports whether v sorts strictly before other under the algebra's
// natural best-first order (both are scored so that a larger Score is
// "better" — this just exposes that comparison for heap/sort callers).
func (v Value) Less(other Value) bool {
	return v.Score < other.Score
}

// logAdd computes log(exp(a) + exp(b)) without overflow, via the standard
// max-shift identity: log(exp(a)+exp(b)) = m + log(exp(a-m) + exp(b-m))
// where m = max(a, b). Handles -Inf operands (an absent derivation) as
// the additive identity.
func logAdd(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	m := math.Max(a, b)

	return m + math.Log(math.Exp(a-m)+math.Exp(b-m))
}

// Function maps a vector.FeatureVector-scored edge to a semiring Value,
// the "Function: FeatureVector -> Semiring" contract spec.md §6 requires
// of every feature function and model weight vector.
type Function func(features *vector.FeatureVector) Value

// DotProduct builds a Function that scores a FeatureVector as the
// kind-semiring Mul-identity-seeded accumulation of weights[k]*features[k]
// summed in log/linear space as Score, the common "linear model" case
// (spec.md §6's Model weight vector): Score = Σ weights.Get(k) *
// features.Get(k) over every key present in features.
func DotProduct(kind Semiring, weights *vector.FeatureVector) Function {
	return func(features *vector.FeatureVector) Value {
		sum := 0.0
		for _, key := range features.Keys() {
			sum += weights.Get(key) * features.Get(key)
		}

		return Value{Kind: kind, Score: sum}
	}
}
