package apply

import (
	"container/heap"
	"sort"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/model"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/vector"
)

// ApplyCubePrune rescores graphIn with m, scoring edges via fn over kind's
// semiring, retaining at most k output items per input node, per spec.md
// §4.3. It returns a fresh output hypergraph; graphIn is read-only.
//
// This reference implementation's Model contract (package model) does
// not distinguish a cheap pruning "estimate" from the model's actual
// feature contribution the way cicada's heuristic-feature split does, so
// a candidate's score and estimate are equal here — cube pruning still
// bounds work to O(k) candidates per node, it just orders by the same
// value it retains by. See DESIGN.md.
func ApplyCubePrune(m model.Model, fn semiring.Function, kind semiring.Semiring, graphIn *hypergraph.Graph, k int) (*hypergraph.Graph, error) {
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
		popped := 0
		for cand.Len() > 0 && popped < k {
			c := heap.Pop(cand).(*candidate)
			popped++
			pushSucc(c, d, kind, fn, m, graphOut, isGoal, seen, cand)

			key := ""
			if !isGoal {
				key = c.state.Key()
			}
			if isGoal {
				eid, err := graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
				if err == nil {
					_ = graphOut.ConnectEdge(eid, goalOut)
				}

				continue
			}

			existing, ok := recombined[key]
			if !ok {
				node := graphOut.AddNode()
				eid, err := graphOut.AddEdge(c.outTails, c.inEdge.Rule, c.features, c.inEdge.Attributes.Clone())
				if err != nil {
					continue
				}
				_ = graphOut.ConnectEdge(eid, node)
				recombined[key] = &ditem{node: node, score: c.score, estimate: c.estimate, state: c.state}
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
	}

	if goalOut == hypergraph.InvalidNode {
		return graphOut, ErrInvalidGraph
	}
	_ = graphOut.SetGoal(goalOut)

	return graphOut, nil
}

// makeCandidate builds the output edge/state/score for incoming edge e at
// antecedent index vector j, or returns ok=false if any required
// antecedent's D-list is too short (spec.md §4.3's failure semantics).
func makeCandidate(e *hypergraph.Edge, j []int, d [][]ditem, kind semiring.Semiring, fn semiring.Function, m model.Model, graphOut *hypergraph.Graph, isGoal bool) (*candidate, bool) {
	tails := make([]hypergraph.NodeID, len(e.Tails))
	prevStates := make([]model.State, len(e.Tails))
	score := semiring.One(kind)
	for i, tailNode := range e.Tails {
		list := d[tailNode]
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

	jCopy := append([]int(nil), j...)

	return &candidate{
		inEdge:   e,
		j:        jCopy,
		outTails: tails,
		state:    state,
		score:    score,
		estimate: score,
		features: e.Features.Add(outFeatures),
	}, true
}

// pushSucc pushes, for each antecedent dimension, the "border" successor
// candidate (j with that dimension advanced by one), skipping dimensions
// already out of range or already seen — spec.md §4.3's push_succ.
func pushSucc(c *candidate, d [][]ditem, kind semiring.Semiring, fn semiring.Function, m model.Model, graphOut *hypergraph.Graph, isGoal bool, seen map[string]bool, cand *candidateHeap) {
	for i := range c.j {
		nj := append([]int(nil), c.j...)
		nj[i]++
		if nj[i] >= len(d[c.inEdge.Tails[i]]) {
			continue
		}
		key := candidateKey(c.inEdge.ID, nj)
		if seen[key] {
			continue
		}
		seen[key] = true
		nc, ok := makeCandidate(c.inEdge, nj, d, kind, fn, m, graphOut, isGoal)
		if !ok {
			continue
		}
		heap.Push(cand, nc)
	}
}
