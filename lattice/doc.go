// Package lattice implements the input-side structure composers read from
// (spec.md §3, C3): a DAG of positions, each with outgoing Arcs labeled by
// a terminal Symbol, scored by a FeatureVector, and spanning `distance`
// positions (distance >= 1, so a lattice degenerates to a plain sentence
// when every arc has distance 1 and each position has exactly one
// outgoing arc).
//
// Lattice also maintains the shortest-distance table spec.md §3 calls for
// (ShortestDistance(i, j)), computed via a single forward DP pass over
// positions in index order — valid because positions are implicitly
// topologically ordered by construction (an arc from i always reaches a
// strictly larger position).
package lattice
