package apply

import (
	"container/heap"
	"sort"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/model"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/vector"
)

// ApplyCubeGrow implements spec.md §4.3's cube-grow variant: "demand-
// driving D[v] lazily from the goal" instead of ApplyCubePrune's
// eager bottom-up sweep over every input node. Nodes never reachable
// from the goal (dead branches a coarse-to-fine pass failed to prune
// away, or an earlier apply pass's leftover structure) never get a D[v]
// computed at all, which is the variant's whole point — on a hypergraph
// where most nodes do feed the goal the two variants do the same work,
// but on one with substantial dead structure cube-grow does strictly
// less.
func ApplyCubeGrow(m model.Model, fn semiring.Function, kind semiring.Semiring, graphIn *hypergraph.Graph, k int) (*hypergraph.Graph, error) {
	if !graphIn.IsValid() {
		return nil, ErrInvalidGraph
	}
	if k < 1 {
		return nil, ErrBadBeam
	}

	m.Initialize()
	defer m.Initialize()

	graphOut := hypergraph.New()
	goalIn := graphIn.Goal()

	g := &cubeGrowState{
		graphIn:  graphIn,
		graphOut: graphOut,
		d:        make(map[hypergraph.NodeID][]ditem),
		kind:     kind,
		fn:       fn,
		model:    m,
		k:        k,
		goalIn:   goalIn,
	}

	goalOut := graphOut.AddNode()
	g.goalOut = goalOut
	g.demand(goalIn)

	// Goal items attach straight to goalOut and never enter d[goalIn].
	if n, err := graphOut.Node(goalOut); err != nil || len(n.Incoming) == 0 {
		return graphOut, ErrInvalidGraph
	}
	_ = graphOut.SetGoal(goalOut)

	return graphOut, nil
}

type cubeGrowState struct {
	graphIn  *hypergraph.Graph
	graphOut *hypergraph.Graph
	d        map[hypergraph.NodeID][]ditem
	kind     semiring.Semiring
	fn       semiring.Function
	model    model.Model
	k        int
	goalIn   hypergraph.NodeID
	goalOut  hypergraph.NodeID
}

// demand computes d[v] if not already memoized, first recursing into
// every antecedent of every incoming edge (so D lists are always complete
// before a node's own candidates are built), then running the same
// seed/push_succ/append_item loop ApplyCubePrune uses per node.
func (g *cubeGrowState) demand(v hypergraph.NodeID) {
	if _, ok := g.d[v]; ok {
		return
	}
	g.d[v] = nil // mark in-progress to guard against (invalid) cycles

	node, err := g.graphIn.Node(v)
	if err != nil {
		return
	}
	for _, eid := range node.Incoming {
		e, err := g.graphIn.Edge(eid)
		if err != nil {
			continue
		}
		for _, tail := range e.Tails {
			g.demand(tail)
		}
	}

	isGoal := v == g.goalIn
	cand := &candidateHeap{}
	heap.Init(cand)
	seen := make(map[string]bool)

	wrapD := func(id hypergraph.NodeID) []ditem { return g.d[id] }

	for _, eid := range node.Incoming {
		e, err := g.graphIn.Edge(eid)
		if err != nil {
			continue
		}
		j := make([]int, len(e.Tails))
		c, ok := makeCandidateD(e, j, wrapD, g.kind, g.fn, g.model, g.graphOut, isGoal)
		if !ok {
			continue
		}
		seen[candidateKey(e.ID, j)] = true
		heap.Push(cand, c)
	}

	recombined := make(map[string]*ditem)
	var order []string
	popped := 0
	for cand.Len() > 0 && popped < g.k {
		c := heap.Pop(cand).(*candidate)
		popped++
		pushSuccD(c, wrapD, g.kind, g.fn, g.model, g.graphOut, isGoal, seen, cand)

		if isGoal {
			eid, err := g.graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
			if err == nil {
				_ = g.graphOut.ConnectEdge(eid, g.goalOut)
			}

			continue
		}

		key := c.state.Key()
		existing, ok := recombined[key]
		if !ok {
			n := g.graphOut.AddNode()
			eid, err := g.graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
			if err != nil {
				continue
			}
			_ = g.graphOut.ConnectEdge(eid, n)
			recombined[key] = &ditem{node: n, score: c.score, estimate: c.estimate, state: c.state}
			order = append(order, key)

			continue
		}
		eid, err := g.graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
		if err != nil {
			continue
		}
		_ = g.graphOut.ConnectEdge(eid, existing.node)
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
	g.d[v] = items
}

// makeCandidateD and pushSuccD are makeCandidate/pushSucc generalized to
// read D via a function instead of a dense slice, since cube-grow's D is
// a sparse map keyed by only the nodes it actually visited.
func makeCandidateD(e *hypergraph.Edge, j []int, d func(hypergraph.NodeID) []ditem, kind semiring.Semiring, fn semiring.Function, m model.Model, graphOut *hypergraph.Graph, isGoal bool) (*candidate, bool) {
	tails := make([]hypergraph.NodeID, len(e.Tails))
	prevStates := make([]model.State, len(e.Tails))
	score := semiring.One(kind)
	for i, tailNode := range e.Tails {
		list := d(tailNode)
		if j[i] >= len(list) {
			return nil, false
		}
		item := list[j[i]]
		tails[i] = item.node
		prevStates[i] = item.state
		score = score.Mul(item.score)
	}

	outFeatures := vector.New()
	state := m.Apply(graphOut, prevStates, e, outFeatures)
	if isGoal {
		m.ApplyFinal(state, e, outFeatures)
	}
	score = score.Mul(fn(e.Features)).Mul(fn(outFeatures))

	return &candidate{
		inEdge:   e,
		j:        append([]int(nil), j...),
		outTails: tails,
		state:    state,
		score:    score,
		estimate: score,
		features: e.Features.Add(outFeatures),
	}, true
}

func pushSuccD(c *candidate, d func(hypergraph.NodeID) []ditem, kind semiring.Semiring, fn semiring.Function, m model.Model, graphOut *hypergraph.Graph, isGoal bool, seen map[string]bool, cand *candidateHeap) {
	for i := range c.j {
		nj := append([]int(nil), c.j...)
		nj[i]++
		if nj[i] >= len(d(c.inEdge.Tails[i])) {
			continue
		}
		key := candidateKey(c.inEdge.ID, nj)
		if seen[key] {
			continue
		}
		seen[key] = true
		nc, ok := makeCandidateD(c.inEdge, nj, d, kind, fn, m, graphOut, isGoal)
		if !ok {
			continue
		}
		heap.Push(cand, nc)
	}
}
