package hypergraph

import (
	"sync"

	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/vector"
)

// NodeID indexes a Node within a Graph. The zero value is a valid index
// (node 0); use InvalidNode, not the zero value, to test for "no node".
type NodeID int

// EdgeID indexes an Edge within a Graph. See NodeID for the zero-value
// caveat.
type EdgeID int

// InvalidNode is the sentinel NodeID meaning "no such node".
const InvalidNode NodeID = -1

// InvalidEdge is the sentinel EdgeID meaning "no such edge".
const InvalidEdge EdgeID = -1

// Node is a forest vertex: a set of derivations that all produce the same
// (source-span, non-terminal) signature. Incoming lists every Edge whose
// Head is this node, i.e. every way to derive it.
type Node struct {
	ID       NodeID
	Incoming []EdgeID
}

// Edge is a hyperedge: one Rule applied to a specific tuple of antecedent
// Nodes (Tails, one per non-terminal of Rule in source order), producing
// Head. Head is InvalidNode until ConnectEdge wires it.
type Edge struct {
	ID         EdgeID
	Head       NodeID
	Tails      []NodeID
	Rule       *rule.Rule
	Features   *vector.FeatureVector
	Attributes *vector.AttributeVector
}

// Graph is a packed forest: an append-only collection of Nodes and Edges
// plus a distinguished Goal node. Mutation is append-only during
// composition (AddNode, AddEdge, ConnectEdge only ever grow the graph);
// packages that need to drop nodes/edges build a new Graph instead (see
// package transform).
//
// Thread-safe: every exported method acquires mu, mirroring the teacher's
// core.Graph discipline, though a single decode call is expected to mutate
// one Graph from a single goroutine (spec.md §5's concurrency guarantee).
type Graph struct {
	mu    sync.RWMutex
	nodes []*Node
	edges []*Edge
	goal  NodeID
}

// New returns an empty Graph with no nodes, no edges, and Goal ==
// InvalidNode.
func New() *Graph {
	return &Graph{goal: InvalidNode}
}

// AddNode appends a fresh Node with no incoming edges and returns its ID.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node{ID: id})

	return id
}

// AddEdge appends a new, unconnected Edge over the given tail Nodes and
// Rule, with the given Features/Attributes (nil becomes an empty vector),
// and returns its ID. The edge has no Head until ConnectEdge is called on
// it. tails must each be a valid NodeID previously returned by AddNode.
//
// Complexity: O(1) amortized, plus O(len(tails)) to validate.
func (g *Graph) AddEdge(tails []NodeID, r *rule.Rule, features *vector.FeatureVector, attrs *vector.AttributeVector) (EdgeID, error) {
	if r == nil {
		return InvalidEdge, ErrNilRule
	}
	if features == nil {
		features = vector.New()
	}
	if attrs == nil {
		attrs = vector.NewAttributes()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range tails {
		if t < 0 || int(t) >= len(g.nodes) {
			return InvalidEdge, ErrInvalidNode
		}
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, &Edge{
		ID:         id,
		Head:       InvalidNode,
		Tails:      append([]NodeID(nil), tails...),
		Rule:       r,
		Features:   features,
		Attributes: attrs,
	})

	return id, nil
}

// ConnectEdge wires edgeID's Head to headID, and registers edgeID in
// headID's Incoming list. Returns ErrInvalidEdge/ErrInvalidNode for
// out-of-range IDs, and ErrAlreadyConnected if edgeID already has a Head.
//
// Complexity: O(1) amortized.
func (g *Graph) ConnectEdge(edgeID EdgeID, headID NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if edgeID < 0 || int(edgeID) >= len(g.edges) {
		return ErrInvalidEdge
	}
	if headID < 0 || int(headID) >= len(g.nodes) {
		return ErrInvalidNode
	}
	e := g.edges[edgeID]
	if e.Head != InvalidNode {
		return ErrAlreadyConnected
	}
	e.Head = headID
	g.nodes[headID].Incoming = append(g.nodes[headID].Incoming, edgeID)

	return nil
}

// SetGoal designates nodeID as the Graph's goal node. Passing InvalidNode
// clears the goal.
func (g *Graph) SetGoal(nodeID NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if nodeID != InvalidNode && (nodeID < 0 || int(nodeID) >= len(g.nodes)) {
		return ErrInvalidNode
	}
	g.goal = nodeID

	return nil
}

// Goal returns the current goal NodeID, or InvalidNode if unset.
func (g *Graph) Goal() NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Node returns the Node at id, or (nil, ErrInvalidNode) if id is
// out of range. The returned Node's Incoming slice aliases internal
// state and must not be mutated by the caller.
func (g *Graph) Node(id NodeID) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.nodes) {
		return nil, ErrInvalidNode
	}

	return g.nodes[id], nil
}

// Edge returns the Edge at id, or (nil, ErrInvalidEdge) if id is out of
// range.
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.edges) {
		return nil, ErrInvalidEdge
	}

	return g.edges[id], nil
}

// Nodes returns a snapshot slice of every Node in the graph, indexed by
// NodeID.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a snapshot slice of every Edge in the graph, indexed by
// EdgeID.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// IsValid reports whether the graph is a well-formed forest per spec.md
// §3: Goal is set, and at least one Edge is reachable by following
// Incoming edges and their Tails down from Goal — i.e. Goal actually has
// a derivation, not just bare existence as a node.
//
// Complexity: O(V + E) reachable from Goal.
func (g *Graph) IsValid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.goal == InvalidNode || int(g.goal) >= len(g.nodes) {
		return false
	}

	visited := make(map[NodeID]bool)
	edgeCount := 0
	var visit func(NodeID)
	visit = func(n NodeID) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, eid := range g.nodes[n].Incoming {
			edgeCount++
			for _, t := range g.edges[eid].Tails {
				visit(t)
			}
		}
	}
	visit(g.goal)

	return edgeCount > 0
}
