package transform

import "github.com/nishiharu/cicada-go/hypergraph"

// TopologicalSort reorders nodes and edges so every tail index is
// strictly less than its head index, dropping anything not reachable
// from goal — spec.md §4.1: "Implementation is a DFS from goal with
// post-order numbering; ties broken by insertion order."
func TopologicalSort(g *hypergraph.Graph) *hypergraph.Graph {
	out := hypergraph.New()
	goal := g.Goal()
	if goal == hypergraph.InvalidNode {
		return out
	}

	visited := make(map[hypergraph.NodeID]bool)
	var order []hypergraph.NodeID
	var visit func(hypergraph.NodeID)
	visit = func(n hypergraph.NodeID) {
		if visited[n] {
			return
		}
		visited[n] = true
		node, err := g.Node(n)
		if err != nil {
			return
		}
		for _, eid := range node.Incoming {
			edge, err := g.Edge(eid)
			if err != nil {
				continue
			}
			for _, t := range edge.Tails {
				visit(t)
			}
		}
		order = append(order, n)
	}
	visit(goal)

	oldToNew := make(map[hypergraph.NodeID]hypergraph.NodeID, len(order))
	for _, n := range order {
		oldToNew[n] = out.AddNode()
	}

	for _, n := range order {
		node, err := g.Node(n)
		if err != nil {
			continue
		}
		for _, eid := range node.Incoming {
			edge, err := g.Edge(eid)
			if err != nil {
				continue
			}
			newTails := make([]hypergraph.NodeID, len(edge.Tails))
			for i, t := range edge.Tails {
				newTails[i] = oldToNew[t]
			}
			newEID, err := out.AddEdge(newTails, edge.Rule, edge.Features.Clone(), edge.Attributes.Clone())
			if err != nil {
				continue
			}
			_ = out.ConnectEdge(newEID, oldToNew[n])
		}
	}
	_ = out.SetGoal(oldToNew[goal])

	return out
}
