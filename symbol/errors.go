package symbol

import "errors"

// ErrEmptyText indicates Intern was called with the empty string.
var ErrEmptyText = errors.New("symbol: empty text")

// ErrUnknownSymbol indicates a Symbol value did not originate from this
// package's Vocab (zero value, or from a Vocab that was Reset after the
// Symbol was created).
var ErrUnknownSymbol = errors.New("symbol: unknown symbol")
