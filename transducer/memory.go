package transducer

import (
	"github.com/nishiharu/cicada-go/rule"
	"github.com/nishiharu/cicada-go/symbol"
)

// Memory is an in-memory, trie-backed Transducer: grammar rules are
// inserted by their source-side symbol path, and Next/Rules/HasNext walk
// the resulting trie. Good for tests and for grammars small enough to
// load whole (spec.md §4.3's "grammar storage" is explicitly opaque to
// the core; Memory is one concrete, simple implementation of that
// contract).
type Memory struct {
	transitions []map[symbol.Symbol]StateID // transitions[state][label] = next state
	rules       [][]RulePair                // rules[state] = completed rules at state
	input       []symbol.Symbol
}

// NewMemory returns an empty Memory transducer with just the root state.
func NewMemory() *Memory {
	m := &Memory{}
	m.newState()

	return m
}

func (m *Memory) newState() StateID {
	id := StateID(len(m.transitions))
	m.transitions = append(m.transitions, make(map[symbol.Symbol]StateID))
	m.rules = append(m.rules, nil)

	return id
}

// AddRule inserts r into the trie along path (typically r.Source),
// creating intermediate states as needed, and appends r as a RulePair
// completed at the terminal state reached by path.
func (m *Memory) AddRule(path []symbol.Symbol, r *rule.Rule) {
	state := RootState
	for _, label := range path {
		key := canonicalLabel(label)
		next, ok := m.transitions[state][key]
		if !ok {
			next = m.newState()
			m.transitions[state][key] = next
		}
		state = next
	}
	m.rules[state] = append(m.rules[state], RulePair{Rule: r})
}

// canonicalLabel strips a non-terminal's index suffix before using it as
// a trie key: a source-side "[X,2]" matches any completed "[X]" span
// regardless of which antecedent position it occupies — the index only
// matters for target-side reordering, already captured by Rule.Target and
// by the order tails are appended in during composition.
func canonicalLabel(label symbol.Symbol) symbol.Symbol {
	if label.IsNonTerminal() {
		return label.NonTerminal(0)
	}

	return label
}

// Root implements Transducer.
func (m *Memory) Root() StateID { return RootState }

// Next implements Transducer.
func (m *Memory) Next(state StateID, label symbol.Symbol) StateID {
	if int(state) < 0 || int(state) >= len(m.transitions) {
		return InvalidState
	}
	next, ok := m.transitions[state][canonicalLabel(label)]
	if !ok {
		return InvalidState
	}

	return next
}

// Rules implements Transducer.
func (m *Memory) Rules(state StateID) []RulePair {
	if int(state) < 0 || int(state) >= len(m.rules) {
		return nil
	}

	return m.rules[state]
}

// ValidSpan implements Transducer. Memory places no span restrictions.
func (m *Memory) ValidSpan(StateID, int, int, int) bool { return true }

// HasNext implements Transducer.
func (m *Memory) HasNext(state StateID) bool {
	if int(state) < 0 || int(state) >= len(m.transitions) {
		return false
	}

	return len(m.transitions[state]) > 0
}

// Assign implements Transducer by recording the input for callers that
// want to inspect it (Memory itself never consults it).
func (m *Memory) Assign(input []symbol.Symbol) {
	m.input = input
}

// AllRules returns every rule inserted into the trie, in insertion order.
// It is not part of the Transducer interface — grammar storage and
// enumeration stay an external concern per spec.md §1 — but package
// coarse needs a concrete grammar's full rule set to build unary
// closures, and Memory is the one reference transducer this module
// ships, so it exposes the list directly.
func (m *Memory) AllRules() []*rule.Rule {
	var out []*rule.Rule
	for _, rules := range m.rules {
		for _, rp := range rules {
			out = append(out, rp.Rule)
		}
	}

	return out
}
