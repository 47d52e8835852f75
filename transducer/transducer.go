package transducer

import (
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
)

// StateID identifies a transducer state. RootState is always the state
// returned by a fresh Transducer's Root(); InvalidState means "no such
// transition".
type StateID int

// RootState is the state every Transducer starts composition from.
const RootState StateID = 0

// InvalidState is returned by Next when no transition exists for the
// given (state, label) pair.
const InvalidState StateID = -1

// RulePair is one grammar rule reachable from a transducer state, the
// element type of Transducer.Rules' result.
type RulePair struct {
	Rule *rule.Rule
}

// Transducer is the capability interface spec.md §4.3/§9 names: "Grammar
// viewed as a trie-like state machine: root/next/rules/valid_span."
// Implementations are read-only during composition (spec.md §5's
// concurrency guarantee: "Model and Grammar objects are shared read-only
// across decoding threads").
type Transducer interface {
	// Root returns the transducer's start state.
	Root() StateID
	// Next advances state by consuming label, or returns InvalidState if
	// no such transition exists.
	Next(state StateID, label symbol.Symbol) StateID
	// Rules returns every rule completed at state (empty if state is not
	// an accepting state).
	Rules(state StateID) []RulePair
	// ValidSpan reports whether a rule spanning source positions [i, j)
	// with precomputed shortest-distance distance is allowed to complete
	// at state; most transducers always return true, but span-restricted
	// grammars (e.g. POS-tag-gated rules) use this to reject otherwise
	// syntactically-matching spans.
	ValidSpan(state StateID, i, j, distance int) bool
	// HasNext reports whether state has at least one outgoing transition,
	// letting composers skip further advance attempts from a dead state.
	HasNext(state StateID) bool
	// Assign gives the transducer the full input sequence for the current
	// decode, called once before composition begins. Transducers that do
	// not need global input context (the common case) may ignore it.
	Assign(input []symbol.Symbol)
}
