package kbest

import "errors"

// ErrInvalidGraph indicates the supplied hypergraph has no goal node or no
// edges reachable from it, mirroring hypergraph.Graph.IsValid.
var ErrInvalidGraph = errors.New("kbest: invalid graph")
