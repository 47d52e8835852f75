package lattice

import "errors"

// ErrBadDistance indicates AddArc was called with distance < 1.
var ErrBadDistance = errors.New("lattice: arc distance must be >= 1")

// ErrInvalidPosition indicates a position index was out of range for the
// Lattice it was used with.
var ErrInvalidPosition = errors.New("lattice: invalid position index")

// ErrUnreachable indicates ShortestDistance was asked for a (from, to)
// pair with no path between them.
var ErrUnreachable = errors.New("lattice: positions are not connected")
