// Package hypergraph implements the packed-forest data structure at the
// center of the decoding core (spec.md §3): a mutable DAG of Nodes and
// Edges, where an Edge may have many tail Nodes (one per antecedent
// non-terminal of its Rule), representing a whole set of derivations in
// shared structure.
//
// Mutation follows the teacher's append-only discipline (core.Graph never
// removes a vertex mid-algorithm either — RemoveVertex is an explicit,
// rarely-used operation, not part of the hot composition path): AddNode
// and AddEdge only ever grow the nodes/edges slices, and ConnectEdge wires
// an already-added edge to its head. Structural transforms that need to
// drop nodes/edges (topological sort, debinarize, remove-epsilon — package
// transform) build a fresh Graph and swap it in, rather than mutating
// in place, exactly as spec.md §9's "append-only during composition;
// transform produces new graph then swap" design note requires.
//
// Node/Edge identity is a typed int index (NodeID/EdgeID) into the Graph's
// internal slices, never a pointer — spec.md §9's "cyclic references"
// design note calls for integer IDs with a side table rather than raw
// C++-style back-pointers.
package hypergraph
