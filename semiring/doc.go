// Package semiring implements the three weight algebras spec.md §6 names
// for inside/outside scoring and feature-function composition: Tropical
// (max-plus, used for Viterbi-best score search), Logprob (log-sum-exp,
// used for marginal/inside-outside mass), and Viterbi (an alias of
// Tropical retained as a distinct type so model code can request "the
// best-derivation semiring" without committing to the name "Tropical").
//
// Each Value is a float64 wrapper with Add (semiring ⊕) and Mul (semiring
// ⊗) methods plus the algebra's Zero and One identities. Logprob's Add
// uses the standard max-shifted log-sum-exp formulation for numerical
// stability with very negative (near-zero-probability) operands, per
// spec.md §9's "log-domain stability" design note.
package semiring
