package compose

import "errors"

// ErrNoGrammars indicates Compose was called with an empty grammar set.
var ErrNoGrammars = errors.New("compose: no grammars given")

// ErrGoalUnreachable indicates the composed hypergraph has no derivation
// of goal over the full lattice span.
var ErrGoalUnreachable = errors.New("compose: goal unreachable")
