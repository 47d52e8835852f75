package lattice

import (
	"math"
	"sync"

	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

// Arc is a single labeled transition out of some position i, reaching
// position i+Distance.
type Arc struct {
	Label    symbol.Symbol
	Features *vector.FeatureVector
	Distance int
}

// Lattice is a DAG of positions 0..Len(), each with zero or more outgoing
// Arcs. Position Len() is the implicit final position; a Lattice with no
// arcs at all represents the empty input.
//
// Thread-safe: every exported method acquires mu. Lattices are typically
// built once by a tokenizer/arc-generator and then read concurrently by
// many composer calls, so RLock-heavy read paths are the expected usage.
type Lattice struct {
	mu   sync.RWMutex
	arcs [][]Arc // arcs[i] = outgoing arcs from position i
	dist [][]float64
	computed bool
}

// New returns a Lattice with the given number of positions (not counting
// the implicit final position past the last arc) pre-allocated with no
// arcs.
func New(positions int) *Lattice {
	return &Lattice{arcs: make([][]Arc, positions)}
}

// Len returns the number of non-final positions in the lattice (the arcs
// slice length passed to New, grown as needed by AddArc).
func (l *Lattice) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.arcs)
}

// AddArc appends an arc leaving position `from`, labeled label, scored by
// features (nil becomes an empty vector), spanning distance positions.
// Growing `from` past the current position count extends the lattice.
func (l *Lattice) AddArc(from int, label symbol.Symbol, features *vector.FeatureVector, distance int) error {
	if distance < 1 {
		return ErrBadDistance
	}
	if from < 0 {
		return ErrInvalidPosition
	}
	if features == nil {
		features = vector.New()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for from >= len(l.arcs) {
		l.arcs = append(l.arcs, nil)
	}
	l.arcs[from] = append(l.arcs[from], Arc{Label: label, Features: features, Distance: distance})
	l.computed = false

	return nil
}

// ArcsFrom returns a snapshot of the arcs leaving position i.
func (l *Lattice) ArcsFrom(i int) ([]Arc, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i < 0 || i >= len(l.arcs) {
		return nil, ErrInvalidPosition
	}
	out := make([]Arc, len(l.arcs[i]))
	copy(out, l.arcs[i])

	return out, nil
}

// Width returns the final position of the lattice: the largest position
// any arc reaches, or Len()-1 if that is larger. This is the `|L|`
// composers iterate spans up to; the whole input is the span [0, Width()].
func (l *Lattice) Width() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n := l.finalPosition(); n > 0 {
		return n - 1
	}

	return 0
}

// finalPosition is the position count including the implicit sink: the
// largest `from + distance` reached by any arc, or len(arcs) if larger
// (covers a lattice ending in a dead position with no outgoing arcs).
func (l *Lattice) finalPosition() int {
	n := len(l.arcs)
	for from, arcs := range l.arcs {
		for _, a := range arcs {
			if to := from + a.Distance; to+1 > n {
				n = to + 1
			}
		}
	}

	return n
}

// ShortestDistance returns the minimum total arc-count span from position
// from to position to, or ErrUnreachable if no path connects them. Scores
// are not considered — this is a pure topological-span shortest path, the
// "shortest-distance(first,last)" primitive spec.md §3 names.
//
// Complexity: O(positions + arcs) for the first call (memoized forward DP
// from position 0); O(1) thereafter until the next AddArc invalidates the
// cache.
func (l *Lattice) ShortestDistance(from, to int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.computed {
		l.recomputeLocked()
	}
	if from < 0 || from >= len(l.dist) || to < 0 || to >= len(l.dist[from]) {
		return 0, ErrInvalidPosition
	}
	d := l.dist[from][to]
	if math.IsInf(d, 1) {
		return 0, ErrUnreachable
	}

	return int(d), nil
}

// recomputeLocked rebuilds the full pairwise shortest-distance table via
// one forward DP sweep per source position, relying on positions already
// being in topological order (every arc strictly increases position).
// Caller must hold l.mu for writing.
func (l *Lattice) recomputeLocked() {
	n := l.finalPosition()
	l.dist = make([][]float64, n)
	for src := 0; src < n; src++ {
		row := make([]float64, n)
		for i := range row {
			row[i] = math.Inf(1)
		}
		row[src] = 0
		for i := src; i < n; i++ {
			if math.IsInf(row[i], 1) {
				continue
			}
			if i >= len(l.arcs) {
				continue
			}
			for _, a := range l.arcs[i] {
				to := i + a.Distance
				if to < n && row[i]+1 < row[to] {
					row[to] = row[i] + 1
				}
			}
		}
		l.dist[src] = row
	}
	l.computed = true
}
