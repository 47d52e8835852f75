// Package kbest implements C10: lazy k-best derivation enumeration over a
// hypergraph ("algorithm 3" of Huang & Chiang 2007 — spec.md §4.5) and a
// Monte-Carlo sampler. Both expose an iterator contract, `Next()` returning
// a (weight, yield) pair or end-of-stream, mirroring the candidate/heap
// shape already established by package apply's cube pruning (itself
// grounded on the teacher's graph/dijkstra.go priority queue) but demand-
// driven per node the way apply.ApplyCubeGrow recurses, since k-best
// genuinely only expands the nodes a request reaches.
package kbest
