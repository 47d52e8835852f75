package kbest

import (
	"container/heap"
	"strconv"
	"strings"

	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/semiring"
	"github.com/nishiharu/cicada-go/symbol"
)

// Derivation is one complete k-best result: its score and its built-up
// output yield.
type Derivation struct {
	Weight semiring.Value
	Yield  []symbol.Symbol
}

// item is one lazily-discovered derivation at a node: the edge it is
// rooted at, the antecedent index vector j (j[i] selects the j[i]-th
// best derivation of tail i), and the score/yield once resolved.
type item struct {
	edge   *hypergraph.Edge
	j      []int
	weight semiring.Value
	yield  []symbol.Symbol
}

func itemKey(edgeID hypergraph.EdgeID, j []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(edgeID)))
	for _, v := range j {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// itemHeap is a max-heap on weight, the same container/heap shape as
// apply's candidateHeap, grounded on graph/dijkstra.go's nodePQ.
type itemHeap []*item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[j].weight.Less(h[i].weight) }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// KBest lazily enumerates derivations of a hypergraph, node by node,
// memoizing each node's growing best-list so repeated or overlapping
// requests (e.g. an antecedent shared by several edges) never redo work —
// spec.md §4.5's "algorithm 3": a priority queue per node, popped
// top-first, with successors generated by advancing one antecedent slot.
type KBest struct {
	graph     *hypergraph.Graph
	fn        semiring.Function
	kind      semiring.Semiring
	traversal TraversalFunc

	lists map[hypergraph.NodeID][]*item
	heaps map[hypergraph.NodeID]*itemHeap
	seen  map[hypergraph.NodeID]map[string]bool
	yseen map[hypergraph.NodeID]map[string]bool
}

// New constructs a KBest enumerator over graph, scoring edges with fn
// under the given semiring and building yields with traversal (DefaultTraversal
// if nil). Returns ErrInvalidGraph if graph has no goal or no reachable edge.
func New(graph *hypergraph.Graph, fn semiring.Function, kind semiring.Semiring, traversal TraversalFunc) (*KBest, error) {
	if !graph.IsValid() {
		return nil, ErrInvalidGraph
	}
	if traversal == nil {
		traversal = DefaultTraversal
	}

	return &KBest{
		graph:     graph,
		fn:        fn,
		kind:      kind,
		traversal: traversal,
		lists:     make(map[hypergraph.NodeID][]*item),
		heaps:     make(map[hypergraph.NodeID]*itemHeap),
		seen:      make(map[hypergraph.NodeID]map[string]bool),
		yseen:     make(map[hypergraph.NodeID]map[string]bool),
	}, nil
}

// Best returns up to k best derivations at the goal node, in descending
// score order. Returns fewer than k if the forest does not admit that
// many distinct-yield derivations.
func (kb *KBest) Best(k int) []Derivation {
	items := kb.expand(kb.graph.Goal(), k)
	out := make([]Derivation, len(items))
	for i, it := range items {
		out[i] = Derivation{Weight: it.weight, Yield: it.yield}
	}

	return out
}

// expand grows lists[node] until it holds min(k, available) items,
// recursing into antecedents on demand exactly as apply.ApplyCubeGrow's
// cubeGrowState.demand does for non-local feature application.
func (kb *KBest) expand(node hypergraph.NodeID, k int) []*item {
	if node == hypergraph.InvalidNode {
		return nil
	}
	if existing := kb.lists[node]; len(existing) >= k {
		return existing[:k]
	}

	h, ok := kb.heaps[node]
	if !ok {
		kb.seen[node] = make(map[string]bool)
		kb.yseen[node] = make(map[string]bool)
		h = kb.seed(node)
		kb.heaps[node] = h
	}

	for len(kb.lists[node]) < k && h.Len() > 0 {
		top := heap.Pop(h).(*item)
		sig := yieldSignature(top.yield)
		if !kb.yseen[node][sig] {
			kb.yseen[node][sig] = true
			kb.lists[node] = append(kb.lists[node], top)
		}
		kb.pushSuccessors(node, h, top)
	}

	return kb.lists[node]
}

func yieldSignature(yield []symbol.Symbol) string {
	var b strings.Builder
	for _, s := range yield {
		b.WriteString(strconv.FormatUint(s.ID(), 36))
		b.WriteByte('|')
	}

	return b.String()
}

// seed builds the initial heap for node: one item per incoming edge, with
// every antecedent index at 0.
func (kb *KBest) seed(node hypergraph.NodeID) *itemHeap {
	h := &itemHeap{}
	heap.Init(h)

	n, err := kb.graph.Node(node)
	if err != nil {
		return h
	}
	for _, eid := range n.Incoming {
		edge, err := kb.graph.Edge(eid)
		if err != nil {
			continue
		}
		j := make([]int, len(edge.Tails))
		if it := kb.makeItem(node, edge, j); it != nil {
			key := itemKey(edge.ID, j)
			if !kb.seen[node][key] {
				kb.seen[node][key] = true
				heap.Push(h, it)
			}
		}
	}

	return h
}

// makeItem resolves the antecedent lists named by j and, if every one is
// available, computes the item's score and yield; returns nil if any
// antecedent's j[i]-th derivation does not exist.
func (kb *KBest) makeItem(node hypergraph.NodeID, edge *hypergraph.Edge, j []int) *item {
	tailYields := make([][]symbol.Symbol, len(edge.Tails))
	weight := kb.fn(edge.Features)
	for i, tail := range edge.Tails {
		tailItems := kb.expand(tail, j[i]+1)
		if j[i] >= len(tailItems) {
			return nil
		}
		weight = weight.Mul(tailItems[j[i]].weight)
		tailYields[i] = tailItems[j[i]].yield
	}
	yield := kb.traversal(edge, tailYields)

	return &item{edge: edge, j: append([]int(nil), j...), weight: weight, yield: yield}
}

// pushSuccessors advances each antecedent dimension of top by one,
// restoring it afterward, the same border-expansion apply.pushSucc uses.
func (kb *KBest) pushSuccessors(node hypergraph.NodeID, h *itemHeap, top *item) {
	for i := range top.j {
		next := append([]int(nil), top.j...)
		next[i]++
		key := itemKey(top.edge.ID, next)
		if kb.seen[node][key] {
			continue
		}
		if it := kb.makeItem(node, top.edge, next); it != nil {
			kb.seen[node][key] = true
			heap.Push(h, it)
		}
	}
}
