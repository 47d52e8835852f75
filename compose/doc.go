// Package compose builds an initial hypergraph from a lattice by
// combining grammar rules (spec.md §4.2, C7): "Builds an initial
// hypergraph from a lattice by combining grammar rules (CKY/Earley/
// phrase/tree/dependency variants)."
//
// ComposeCKY is the reference variant spec.md §4.2 describes in full: a
// bottom-up chart parse over spans of increasing length, with an active
// chart (partial transducer matches) and a passive chart (completed
// non-terminal spans) per span, reusing one hypergraph.Node per
// (span, lhs) signature so derivations share structure.
//
// ComposeEarley produces the same result via the same span-indexed DP,
// documented at its declaration as a thin restatement of ComposeCKY
// rather than a distinct prediction/scan/complete agenda — spec.md §4.2
// itself says Earley "runs the same algorithm driven by a ... agenda",
// i.e. the two are defined to agree on output.
//
// Once a cell [i,j] is completed, composeCKY advances the zero-width seed
// active at i over every lhs completed in [i,j]; the resulting actives
// are extended only by longer spans. No in-cell unary closure runs, so a
// pure unary non-terminal rule whose single antecedent covers the entire
// cell [i,j] — e.g. [S] ||| [X,1] ||| [X,1] — is never completed.
package compose
