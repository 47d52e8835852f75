package coarse

import "errors"

// ErrNoGrammars indicates an empty grammar ladder was supplied.
var ErrNoGrammars = errors.New("coarse: no grammars")

// ErrGoalUnreachable indicates the final pass failed to reach goal even
// after exhausting every threshold-relaxation retry.
var ErrGoalUnreachable = errors.New("coarse: goal unreachable after retries")
