package transform

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

// RemoveEpsilon eliminates every edge whose rule target is exactly the
// distinguished epsilon terminal, merging its head with its single tail
// and propagating the eliminated edge's features additively onto
// every edge that takes the merged node as a tail — spec.md §4.1:
// "eliminates edges whose rule RHS is the single distinguished ε
// terminal, by merging the head with its unique tail and propagating
// features additively; fails with MalformedGraph if an ε-edge has arity
// != 1."
func RemoveEpsilon(g *hypergraph.Graph) (*hypergraph.Graph, error) {
	eps := symbol.Epsilon()
	uf := newUnionFind()
	edges := g.Edges()
	nodes := g.Nodes()
	for _, n := range nodes {
		if n != nil {
			uf.find(n.ID)
		}
	}

	propagated := make(map[hypergraph.NodeID]*vector.FeatureVector)
	isEpsilonEdge := make([]bool, len(edges))

	for _, e := range edges {
		if e == nil || !isEpsilonRule(e, eps) {
			continue
		}
		if len(e.Tails) != 1 {
			return nil, ErrMalformedGraph
		}
		isEpsilonEdge[e.ID] = true
		uf.union(e.Head, e.Tails[0])
	}

	for _, e := range edges {
		if !isEpsilonEdge[e.ID] {
			continue
		}
		root := uf.find(e.Head)
		if propagated[root] == nil {
			propagated[root] = vector.New()
		}
		propagated[root].AddInPlace(e.Features)
	}

	out := hypergraph.New()
	newNode := make(map[hypergraph.NodeID]hypergraph.NodeID)
	nodeFor := func(n hypergraph.NodeID) hypergraph.NodeID {
		root := uf.find(n)
		if id, ok := newNode[root]; ok {
			return id
		}
		id := out.AddNode()
		newNode[root] = id

		return id
	}

	for _, e := range edges {
		if e == nil || isEpsilonEdge[e.ID] {
			continue
		}
		tails := make([]hypergraph.NodeID, len(e.Tails))
		features := e.Features.Clone()
		for i, t := range e.Tails {
			tails[i] = nodeFor(t)
			// An antecedent that used to require a separate ε-step to
			// reach now resolves directly to the merged node; fold that
			// step's cost into every edge that consumes it.
			if bonus, ok := propagated[uf.find(t)]; ok {
				features.AddInPlace(bonus)
			}
		}
		head := nodeFor(e.Head)
		eid, err := out.AddEdge(tails, e.Rule, features, e.Attributes.Clone())
		if err != nil {
			continue
		}
		_ = out.ConnectEdge(eid, head)
	}

	if goal := g.Goal(); goal != hypergraph.InvalidNode {
		_ = out.SetGoal(nodeFor(goal))
	}

	return out, nil
}

func isEpsilonRule(e *hypergraph.Edge, eps symbol.Symbol) bool {
	return e.Rule != nil && len(e.Rule.Target) == 1 && e.Rule.Target[0] == eps
}

// unionFind is a plain path-halving union-find over hypergraph.NodeID,
// sized lazily as new IDs are seen.
type unionFind struct {
	parent map[hypergraph.NodeID]hypergraph.NodeID
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[hypergraph.NodeID]hypergraph.NodeID)}
}

func (u *unionFind) find(n hypergraph.NodeID) hypergraph.NodeID {
	if _, ok := u.parent[n]; !ok {
		u.parent[n] = n

		return n
	}
	for u.parent[n] != n {
		u.parent[n] = u.parent[u.parent[n]]
		n = u.parent[n]
	}

	return n
}

func (u *unionFind) union(a, b hypergraph.NodeID) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
