package compose

import (
	"github.com/nishiharu/cicada-go/hypergraph"
	"github.com/nishiharu/cicada-go/lattice"
	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/transducer"
	"github.com/nishiharu/cicada-go/vector"
)

// Dependency attribute keys written onto every edge ComposeDependencyArcStandard
// produces, per spec.md §4.2's "attributes dependency-head,
// dependency-dependent, dependency-pos".
var (
	AttrDependencyHead      = symbol.MustIntern("dependency-head")
	AttrDependencyDependent = symbol.MustIntern("dependency-dependent")
	AttrDependencyPos       = symbol.MustIntern("dependency-pos")
)

// ComposeDependencyArcStandard runs ComposeCKY and then annotates every
// produced edge's Attributes with the arc-standard head/dependent/pos
// triple derived from its Rule: head is the ID of the rule's LHS,
// dependent is the ID of the first source-side symbol (terminal or not;
// omitted when Source is empty), and pos is the LHS's full text (e.g.
// "[S]"). Cell construction itself is unchanged from
// ComposeCKY — spec.md §4.2 describes this variant as "parameterizing
// cell construction," which in this reference implementation reduces to
// post-hoc attribute tagging since cicada's arc-standard shift/reduce
// decisions are themselves encoded as ordinary grammar rules consumed via
// the shared Transducer contract.
func ComposeDependencyArcStandard(goal symbol.Symbol, grammars []transducer.Transducer, lat *lattice.Lattice, flags Flags) (*hypergraph.Graph, error) {
	graph, err := ComposeCKY(goal, grammars, lat, flags)
	if err != nil {
		return graph, err
	}

	for _, e := range graph.Edges() {
		if e == nil || e.Rule == nil {
			continue
		}
		if e.Attributes == nil {
			e.Attributes = vector.NewAttributes()
		}
		e.Attributes.Set(AttrDependencyHead, vector.IntAttr(int64(e.Rule.LHS.ID())))
		if len(e.Rule.Source) > 0 {
			e.Attributes.Set(AttrDependencyDependent, vector.IntAttr(int64(e.Rule.Source[0].ID())))
		}
		e.Attributes.Set(AttrDependencyPos, vector.StringAttr(e.Rule.LHS.String()))
	}

	return graph, nil
}
