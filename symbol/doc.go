// Package symbol implements interned terminal/non-terminal labels shared
// across a decoding run.
//
// A Symbol is a small, comparable value (two uint32 fields) that never
// carries the label text itself; text lookup goes through the package-level
// Vocab. This keeps Rule, Edge, and Lattice arcs cheap to copy while still
// supporting string round-tripping, coarsening, and binarization markers.
//
// What:
//
//   - Intern(text) parses a bracketed non-terminal ("[X]", "[X,2]") or a bare
//     terminal and returns its Symbol, allocating a new vocabulary slot only
//     on first sight.
//   - Coarse(bits) projects a fine label onto one of 2^bits coarse buckets,
//     used by the coarse-to-fine parser (package coarse) to prune spans under
//     successively finer grammars.
//   - Binarized() reports whether the label was synthesized by grammar
//     binarization (base name ends in '^'), consumed by transform.Debinarize.
//
// Why:
//
//   - A single global, append-only table lets Rule/Edge/Lattice structs store
//     Symbol by value and compare with ==, while still being able to recover
//     the textual form for serialization (rule package) and diagnostics.
//
// Concurrency:
//
//   - The vocabulary is sharded across 16 independent RWMutex-guarded tables
//     (sharded by FNV hash of the text) so concurrent interning from parallel
//     decoders does not serialize on one lock. Each shard also exposes a
//     monotonically increasing version counter; readers that only need "has
//     this shard grown" semantics can poll it instead of taking the lock.
//
// See doc comments on Symbol and Vocab for the full contract.
package symbol
