package coarse

import (
	"errors"
	"math"

	"github.com/nishiharu/cicada-go/compose"
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
)

// Options configures a coarse-to-fine parse. Thresholds holds one
// log-domain posterior cutoff per grammar transition (len(grammars)-1
// entries): Thresholds[i] gates entry into grammars[i+1]. Bits selects the
// symbol.Symbol.Coarse bit width used for pass numbers beyond 2 (ignored
// for the pass-2 binarized/non-binarized collapse).
type Options struct {
	Thresholds []float64
	Bits       int
	Factor     float64
	MaxRetries int
}

// DefaultOptions returns Options with the retry factor and cap spec.md
// §4.4 names explicitly ("multiply all failing-level factors by 0.1 and
// retry; give up after 4 iterations").
func DefaultOptions() Options {
	return Options{Bits: 4, Factor: 0.1, MaxRetries: 4}
}

// ParseCoarse runs spec.md §4.4's coarse-to-fine parser: grammars ordered
// coarsest to finest, each pass's posterior score pruning which labels the
// next, finer pass is allowed to complete. The final pass produces the
// returned hypergraph; on goal failure, the last transition's threshold is
// relaxed by opts.Factor and the final pass retried, up to opts.MaxRetries
// times.
//
// Pruning is label-scoped rather than the full (first,last,lhs) triple
// spec.md's cell-level description names: compose.ComposeCKY's public
// Graph result does not expose per-node span metadata (only the finished
// hypergraph), so a span-aware gate would require widening that contract.
// A label that is weak everywhere is still worth dropping everywhere, so
// this remains a faithful — if coarser-grained — realization; see
// DESIGN.md.
func ParseCoarse(goal symbol.Symbol, grammars []transducer.Transducer, lat *lattice.Lattice, fn semiring.Function, kind semiring.Semiring, opts Options) (*hypergraph.Graph, error) {
	if len(grammars) == 0 {
		return nil, ErrNoGrammars
	}
	if len(grammars) == 1 {
		return compose.ComposeCKY(goal, grammars, lat, compose.Flags{})
	}

	allow := func(int, int, symbol.Symbol) bool { return true }

	var lastGraph *hypergraph.Graph
	lastThreshold := 0.0
	lastPass := len(grammars)

	for level := 0; level < len(grammars)-1; level++ {
		graph, err := compose.ComposeCKYPruned(goal, grammars[level:level+1], lat, compose.Flags{}, allow)
		if err != nil {
			if errors.Is(err, compose.ErrGoalUnreachable) {
				// This coarse level found nothing under the current pruning;
				// relax to "allow everything" rather than dead-end the whole
				// ladder on an overly aggressive earlier cut.
				allow = func(int, int, symbol.Symbol) bool { return true }

				continue
			}

			return nil, err
		}

		threshold := 0.0
		if level < len(opts.Thresholds) {
			threshold = opts.Thresholds[level]
		}
		nextPass := level + 2
		allow = buildAllow(graph, fn, kind, nextPass, opts.Bits, threshold)

		lastGraph, lastThreshold, lastPass = graph, threshold, nextPass
	}

	retries := opts.MaxRetries
	if retries <= 0 {
		retries = 4
	}
	factor := opts.relaxFactor()

	finalAllow := allow
	for attempt := 0; attempt <= retries; attempt++ {
		out, err := compose.ComposeCKYPruned(goal, grammars[len(grammars)-1:], lat, compose.Flags{}, finalAllow)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, compose.ErrGoalUnreachable) {
			return nil, err
		}
		if lastGraph == nil {
			break
		}
		// Each retry multiplies the failing level's probability-space
		// threshold by factor, i.e. shifts its log-domain cutoff down by
		// -log(factor) — spec.md §4.4's "multiply all failing-level
		// factors by 0.1 and retry".
		margin := float64(attempt+1) * math.Log(factor)
		finalAllow = buildAllow(lastGraph, fn, kind, lastPass, opts.Bits, lastThreshold+margin)
	}

	return nil, ErrGoalUnreachable
}

func (o Options) relaxFactor() float64 {
	if o.Factor <= 0 {
		return 0.1
	}

	return o.Factor
}

// buildAllow computes inside/outside posteriors over graph and returns a
// predicate admitting labels whose coarse-projected posterior mass (summed
// over every node sharing that projection) clears threshold.
func buildAllow(graph *hypergraph.Graph, fn semiring.Function, kind semiring.Semiring, pass int, bits int, threshold float64) func(i, j int, lhs symbol.Symbol) bool {
	inside, outside := insideOutside(graph, fn, kind)
	z := inside[graph.Goal()]

	mass := make(map[symbol.Symbol]semiring.Value)
	for _, n := range graph.Nodes() {
		if n == nil || len(n.Incoming) == 0 {
			continue
		}
		edge, err := graph.Edge(n.Incoming[0])
		if err != nil || edge.Rule == nil {
			continue
		}
		proj := project(edge.Rule.LHS, pass, bits)
		score := inside[n.ID].Mul(outside[n.ID])
		if existing, ok := mass[proj]; ok {
			mass[proj] = existing.Add(score)
		} else {
			mass[proj] = score
		}
	}

	cutoff := threshold

	return func(i, j int, lhs symbol.Symbol) bool {
		proj := project(lhs, pass, bits)
		v, ok := mass[proj]
		if !ok {
			return false
		}

		return v.Score-z.Score >= cutoff
	}
}
