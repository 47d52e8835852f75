// Package rule implements the synchronous grammar Rule type (spec.md §3)
// together with its on-disk text format and tree-fragment format (§6).
//
// A Rule is a tuple (lhs, source, target, features, attributes, arity).
// Every non-terminal in Source carries a 1-based index; when Target is
// non-empty, the multiset of non-terminal indices on both sides matches.
// Parse followed by String is the identity after Normalize canonicalizes
// index numbering, which is the round-trip law spec.md §8 requires.
//
// Text format:
//
//	LHS ||| source_symbols ||| target_symbols [||| key=value ...]
//
// LHS defaults to "[X]" when omitted; symbols are space-separated;
// key=value pairs are space-separated floating-point features.
//
// Tree fragments use `(label child child …)` pre-order notation with
// `\`, `\(`, `\)` as the only recognized escapes, grounded on
// original_source/cicada/tree_rule.cpp.
package rule
