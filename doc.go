// Package cicada is a statistical machine translation / structured
// prediction decoding core: lattice and hypergraph composition (CKY,
// Earley, phrase, tree, dependency arc-standard), cube-pruning and
// cube-growing k-best application of feature models over a transducer
// grammar, coarse-to-fine pruning, epsilon-removal and debinarization,
// k-best derivation enumeration and Monte-Carlo sampling.
//
// Subpackages:
//
//	symbol/     — interned terminal/non-terminal labels
//	vector/     — sparse feature/attribute vectors and their compact codec
//	semiring/   — Tropical/Logprob/Viterbi score algebra
//	rule/       — synchronous grammar rules, parsing, and rule trees
//	lattice/    — input word lattice with a shortest-distance table
//	hypergraph/ — the decoding search space: nodes, edges, goal
//	transducer/ — grammar abstraction over rule sets by state transitions
//	model/      — feature function chains scoring edges and states
//	compose/    — CKY/Earley/phrase/tree/dependency composition into a hypergraph
//	apply/      — cube pruning, cube growing, and exact model application
//	transform/  — epsilon-removal, debinarization, topological sort
//	coarse/     — coarse-to-fine parsing with posterior pruning
//	kbest/      — k-best derivation enumeration and Monte-Carlo sampling
//	cluster/    — word-id to cluster-id repository
//	stemmer/    — word-form normalization variants
package cicada
