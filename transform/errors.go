package transform

import "errors"

// ErrMalformedGraph indicates an epsilon-labeled edge had arity != 1,
// which spec.md §4.1's remove_epsilon explicitly rejects.
var ErrMalformedGraph = errors.New("transform: malformed graph")
