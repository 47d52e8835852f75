// Package apply rescores a composed hypergraph with a non-local Model
// (spec.md §4.3, C8): "Rescores the hypergraph with the model: exact,
// cube-prune, cube-grow, incremental."
//
// ApplyCubePrune is the reference variant spec.md §4.3 describes in
// full, a faithful rendering of Huang & Chiang 2007's cube pruning
// (grounded on original_source/cicada/apply_cube_prune.hpp): per input
// node v, seed a max-heap of Candidates (one per incoming edge, at the
// zero index vector), pop up to k times expanding "border" successors
// along each antecedent dimension, and recombine completed output items
// by Model state into a bounded, estimate-sorted D[v].
//
// Candidates are allocated from plain Go slices rather than a pointer
// arena (spec.md §9's "candidate allocation" design note calls for a
// bump-style arena scoped to one kbest/apply invocation; a slice of
// *candidate values already gives that — freed in bulk when the calling
// apply/kbest invocation returns, never individually).
package apply
