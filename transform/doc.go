// Package transform implements the hypergraph structural rewrites
// spec.md §4.1 names: TopologicalSort, RemoveEpsilon, RemoveNonTerminal,
// and Debinarize (= RemoveNonTerminal(Symbol.Binarized)). Every
// transform builds a fresh hypergraph.Graph and returns it rather than
// mutating its input in place, per spec.md §9's "append-only during
// composition; transform produces new graph then swap" design note —
// callers that want in-place semantics assign the result back over their
// own variable, the same "build new, then swap" pattern package
// hypergraph's own doc.go describes.
package transform
