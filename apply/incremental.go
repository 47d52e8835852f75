package apply

import (
	"container/heap"
	"sort"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/model"
	"github.com/nishiharu/cicada-go/semiring"
)

// ApplyIncremental is spec.md §4.3's incremental variant. Unlike
// ApplyCubePrune, which bounds each node's D[v] to k items independently,
// ApplyIncremental enumerates every candidate at every node with no
// per-node cap and writes every resulting item to the output graph. It
// then keeps only the k best items across the whole graph in each node's
// D-list, but that selection runs after the output graph is complete, so
// the returned graph still holds every item of every node.
func ApplyIncremental(m model.Model, fn semiring.Function, kind semiring.Semiring, graphIn *hypergraph.Graph, k int) (*hypergraph.Graph, error) {
	if !graphIn.IsValid() {
		return nil, ErrInvalidGraph
	}
	if k < 1 {
		return nil, ErrBadBeam
	}

	m.Initialize()
	defer m.Initialize()

	graphOut := hypergraph.New()
	nodesIn := graphIn.Nodes()
	goalIn := graphIn.Goal()

	d := make([][]ditem, len(nodesIn))
	var goalOut hypergraph.NodeID = hypergraph.InvalidNode
	if goalIn != hypergraph.InvalidNode {
		goalOut = graphOut.AddNode()
	}

	type globalItem struct {
		node hypergraph.NodeID // which input node this item belongs to
		idx  int               // index within d[node] at the time of recording
		item ditem
	}
	var pool []globalItem

	for _, node := range nodesIn {
		if node == nil {
			continue
		}
		v := node.ID
		isGoal := v == goalIn

		cand := &candidateHeap{}
		heap.Init(cand)
		seen := make(map[string]bool)

		for _, eid := range node.Incoming {
			e, err := graphIn.Edge(eid)
			if err != nil {
				continue
			}
			j := make([]int, len(e.Tails))
			c, ok := makeCandidate(e, j, d, kind, fn, m, graphOut, isGoal)
			if !ok {
				continue
			}
			seen[candidateKey(e.ID, j)] = true
			heap.Push(cand, c)
		}

		recombined := make(map[string]*ditem)
		var order []string
		for cand.Len() > 0 { // no per-node cap: global beam prunes instead
			c := heap.Pop(cand).(*candidate)
			pushSucc(c, d, kind, fn, m, graphOut, isGoal, seen, cand)

			if isGoal {
				eid, err := graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
				if err == nil {
					_ = graphOut.ConnectEdge(eid, goalOut)
				}

				continue
			}

			key := c.state.Key()
			existing, ok := recombined[key]
			if !ok {
				n := graphOut.AddNode()
				eid, err := graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
				if err != nil {
					continue
				}
				_ = graphOut.ConnectEdge(eid, n)
				recombined[key] = &ditem{node: n, score: c.score, estimate: c.estimate, state: c.state}
				order = append(order, key)

				continue
			}
			eid, err := graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
			if err != nil {
				continue
			}
			_ = graphOut.ConnectEdge(eid, existing.node)
			if existing.score.Less(c.score) {
				existing.score = c.score
				existing.estimate = c.estimate
			}
		}

		items := make([]ditem, 0, len(order))
		for _, key := range order {
			items = append(items, *recombined[key])
		}
		sort.SliceStable(items, func(i, j int) bool { return items[j].estimate.Less(items[i].estimate) })
		d[v] = items
		for i, it := range items {
			pool = append(pool, globalItem{node: v, idx: i, item: it})
		}
	}

	// Global beam: keep only the k best items across the whole graph in
	// each node's D-list. Every item was already written to graphOut
	// above and d is not read after this point, so this does not prune
	// the returned graph.
	sort.SliceStable(pool, func(i, j int) bool { return pool[j].item.estimate.Less(pool[i].item.estimate) })
	keep := make(map[hypergraph.NodeID]map[int]bool)
	limit := k
	if limit > len(pool) {
		limit = len(pool)
	}
	for _, g := range pool[:limit] {
		if keep[g.node] == nil {
			keep[g.node] = make(map[int]bool)
		}
		keep[g.node][g.idx] = true
	}
	for v, items := range d {
		if items == nil {
			continue
		}
		kept := items[:0:0]
		for i, it := range items {
			if keep[hypergraph.NodeID(v)][i] {
				kept = append(kept, it)
			}
		}
		d[v] = kept
	}

	if goalOut == hypergraph.InvalidNode {
		return graphOut, ErrInvalidGraph
	}
	_ = graphOut.SetGoal(goalOut)

	return graphOut, nil
}
