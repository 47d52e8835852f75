// Package vector implements the sparse FeatureVector and AttributeVector
// types that hang off every hypergraph.Edge and rule.Rule (spec.md §3).
//
// FeatureVector maps interned feature keys (symbol.Symbol) to float64
// values; AttributeVector maps keys to a tagged {int, float, string}
// variant. Both are "ordered" in the sense that Keys() always returns keys
// sorted by symbol.Symbol.ID(), making iteration, serialization, and the
// compact byte codec deterministic regardless of insertion order.
//
// Zero-valued features are never stored: Set(k, 0) is equivalent to
// deleting k, preserving the "feature sparsity" invariant spec.md §8
// requires ("no feature/attribute vector contains a key with value equal to
// the semiring zero" — for the additive identity of a FeatureVector that
// zero is float64(0)).
//
// A compact, read-only byte encoding (Encode/Decode) is provided for
// hot-storage scenarios, matching the "compact feature encoding" wire
// format in spec.md §6: one tag byte per entry encoding (kind, size),
// little-endian value bytes, and delta-varint-coded keys.
package vector
