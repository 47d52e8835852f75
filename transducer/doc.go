// Package transducer defines the capability interface composers read
// grammars through (spec.md §4.3/§9, C5): "Grammar storage ... treat as
// an opaque Transducer supplying rule sets by state transitions." A real
// grammar (on-disk indexed rule tables) implements Transducer by loading
// lazily from disk; this package also ships Memory, a small in-memory
// trie-backed implementation good enough for tests and for grammars small
// enough to load whole.
//
// This mirrors the teacher's capability-interface style (see
// graph.Graph's Dijkstra/BFS/DFS operating purely through exported
// methods, never through an embedded base type) applied to spec.md §9's
// explicit "Polymorphism over capabilities... implement as interface
// abstractions with variants; do not use inheritance chains" design note.
package transducer
