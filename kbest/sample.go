package kbest

import (
	"math"
	"math/rand"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/symbol"
)

// Sample is a top-down Monte-Carlo sampler over a hypergraph's derivations,
// grounded on original_source/cicada/sample.hpp: inside scores are computed
// once, then each draw walks from goal choosing an incoming edge with
// probability proportional to f(edge) * Π inside(tail), falling back to a
// uniform choice when every candidate scores zero.
type Sample struct {
	graph     *hypergraph.Graph
	fn        semiring.Function
	kind      semiring.Semiring
	traversal TraversalFunc
	rng       *rand.Rand

	inside map[hypergraph.NodeID]semiring.Value

	kPrime int
	drawn  int
}

// NewSample constructs a Sample over graph. rng is used as given, with no
// default: callers supply the *rand.Rand, so draws stay reproducible
// across test runs, the same "caller
// owns the RNG" contract spec.md §5 implies by keeping all per-call state
// scoped to the call.
func NewSample(graph *hypergraph.Graph, fn semiring.Function, kind semiring.Semiring, traversal TraversalFunc, rng *rand.Rand, kPrime int) (*Sample, error) {
	if !graph.IsValid() {
		return nil, ErrInvalidGraph
	}
	if traversal == nil {
		traversal = DefaultTraversal
	}
	s := &Sample{
		graph:     graph,
		fn:        fn,
		kind:      kind,
		traversal: traversal,
		rng:       rng,
		inside:    make(map[hypergraph.NodeID]semiring.Value),
		kPrime:    kPrime,
	}
	s.computeInside()

	return s, nil
}

// computeInside fills s.inside bottom-up in ascending NodeID order, which
// compose.ComposeCKY and friends already guarantee is tails-before-head.
func (s *Sample) computeInside() {
	for _, n := range s.graph.Nodes() {
		if n == nil {
			continue
		}
		total := semiring.Zero(s.kind)
		for _, eid := range n.Incoming {
			edge, err := s.graph.Edge(eid)
			if err != nil {
				continue
			}
			w := s.fn(edge.Features)
			for _, t := range edge.Tails {
				w = w.Mul(s.inside[t])
			}
			total = total.Add(w)
		}
		if len(n.Incoming) == 0 {
			total = semiring.One(s.kind)
		}
		s.inside[n.ID] = total
	}
}

// Next draws one derivation, or returns ok == false once kPrime draws have
// been produced.
func (s *Sample) Next() (Derivation, bool) {
	if s.drawn >= s.kPrime {
		return Derivation{}, false
	}
	s.drawn++

	yield, weight := s.walk(s.graph.Goal())

	return Derivation{Weight: weight, Yield: yield}, true
}

func (s *Sample) walk(node hypergraph.NodeID) ([]symbol.Symbol, semiring.Value) {
	n, err := s.graph.Node(node)
	if err != nil || len(n.Incoming) == 0 {
		return nil, semiring.One(s.kind)
	}

	edge := s.choose(n)
	if edge == nil {
		return nil, semiring.Zero(s.kind)
	}

	tailYields := make([][]symbol.Symbol, len(edge.Tails))
	weight := s.fn(edge.Features)
	for i, t := range edge.Tails {
		yield, tw := s.walk(t)
		tailYields[i] = yield
		weight = weight.Mul(tw)
	}

	return s.traversal(edge, tailYields), weight
}

// choose draws one of n's incoming edges with probability proportional to
// f(edge) * Π inside(tail), falling back to uniform when every weight
// collapses to the semiring's zero.
func (s *Sample) choose(n *hypergraph.Node) *hypergraph.Edge {
	edges := make([]*hypergraph.Edge, 0, len(n.Incoming))
	masses := make([]float64, 0, len(n.Incoming))
	total := 0.0
	for _, eid := range n.Incoming {
		edge, err := s.graph.Edge(eid)
		if err != nil {
			continue
		}
		w := s.fn(edge.Features)
		for _, t := range edge.Tails {
			w = w.Mul(s.inside[t])
		}
		mass := mass(w)
		edges = append(edges, edge)
		masses = append(masses, mass)
		total += mass
	}
	if len(edges) == 0 {
		return nil
	}
	if total <= 0 {
		return edges[s.rng.Intn(len(edges))]
	}

	draw := s.rng.Float64() * total
	acc := 0.0
	for i, m := range masses {
		acc += m
		if draw <= acc {
			return edges[i]
		}
	}

	return edges[len(edges)-1]
}

// mass converts a semiring.Value into a non-negative sampling weight: the
// tropical/Viterbi score is an exponent of a max-plus semiring, so e^score
// recovers a probability-proportional mass; Logprob's Score is already a
// log-probability, so the same exponential applies uniformly.
func mass(v semiring.Value) float64 {
	if v.Score <= -700 {
		return 0
	}
	if v.Score > 700 {
		return math.MaxFloat64
	}

	return math.Exp(v.Score)
}
