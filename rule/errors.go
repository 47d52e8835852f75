package rule

import "errors"

// ErrMalformedRule indicates a rule text string failed to parse (§7.1
// MalformedInput): wrong field count, or bad symbol or feature syntax. An
// arity mismatch is reported as ErrArityMismatch instead.
var ErrMalformedRule = errors.New("rule: malformed rule text")

// ErrArityMismatch indicates the non-terminal multiset of Target does not
// match that of Source.
var ErrArityMismatch = errors.New("rule: source/target arity mismatch")

// ErrMalformedTree indicates a tree-rule fragment string was not balanced
// or contained an unrecognized escape.
var ErrMalformedTree = errors.New("rule: malformed tree fragment")
