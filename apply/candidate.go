package apply

import (
	"strconv"
	"strings"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/model"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/vector"
)

// candidate is one in-progress cube-pruning candidate: the incoming edge
// it is built from, the antecedent index vector j (j[i] indexes
// D[e.Tails[i]]), and the output edge/state/score computed by
// makeCandidate once every antecedent is resolved.
type candidate struct {
	inEdge   *hypergraph.Edge
	j        []int
	outTails []hypergraph.NodeID
	state    model.State
	score    semiring.Value
	estimate semiring.Value
	features *vector.FeatureVector
}

// candidateKey returns the (edge.ID, j) dedup key spec.md §4.3's
// cand_unique set is keyed by.
func candidateKey(edgeID hypergraph.EdgeID, j []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(edgeID)))
	for _, v := range j {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// ditem is one bounded, retained output item in D[v]: an output node
// sharing a recombined Model state, its best score/estimate so far.
type ditem struct {
	node     hypergraph.NodeID
	score    semiring.Value
	estimate semiring.Value
	state    model.State
}

// candidateHeap is a max-heap over candidate.estimate, implementing
// container/heap.Interface the way the teacher's graph.nodePQ does for
// Dijkstra (graph/dijkstra.go), inverted for "largest estimate first".
type candidateHeap []*candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[j].estimate.Less(h[i].estimate) }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(*candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}
