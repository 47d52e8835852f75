package apply

import "errors"

// ErrInvalidGraph indicates the input hypergraph was not IsValid().
var ErrInvalidGraph = errors.New("apply: input graph is not valid")

// ErrBadBeam indicates a non-positive k was given to a beam-bounded
// variant.
var ErrBadBeam = errors.New("apply: k must be >= 1")
