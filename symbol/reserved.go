package symbol

// Epsilon returns the distinguished terminal used by grammar rules whose
// right-hand side is empty (spec.md §4.1's "distinguished ε terminal",
// consumed by transform.RemoveEpsilon).
func Epsilon() Symbol {
	return MustIntern("<epsilon>")
}

// DefaultLHS returns "[X]", the default left-hand side used by the rule
// text grammar (§6) when no LHS is given.
func DefaultLHS() Symbol {
	return MustIntern("[X]")
}
