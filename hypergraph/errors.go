package hypergraph

import "errors"

// ErrInvalidNode indicates a NodeID did not come from this Graph, or was
// InvalidNode.
var ErrInvalidNode = errors.New("hypergraph: invalid node id")

// ErrInvalidEdge indicates an EdgeID did not come from this Graph, or was
// InvalidEdge.
var ErrInvalidEdge = errors.New("hypergraph: invalid edge id")

// ErrAlreadyConnected indicates ConnectEdge was called on an Edge that
// already has a Head.
var ErrAlreadyConnected = errors.New("hypergraph: edge already connected")

// ErrNilRule indicates AddEdge was called with a nil rule.Rule.
var ErrNilRule = errors.New("hypergraph: nil rule")
