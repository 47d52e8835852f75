package compose

// Flags parameterizes a composer call (spec.md §4.2's `{yield_source,
// treebank, pos_mode, unique_goal}`).
type Flags struct {
	// YieldSource selects which side's lhs indexes a completed passive
	// item: Source's rule.LHS when true (the common case; rule.Rule only
	// carries one LHS in this implementation, so this flag is currently a
	// documented no-op retained for interface completeness — see
	// DESIGN.md).
	YieldSource bool
	// Treebank marks that Source/Target already carry treebank-style
	// bracketing. No composer reads it; ComposeTree takes no Flags.
	Treebank bool
	// PosMode matches terminals by label's POS tag rather than its literal
	// surface form, per spec.md §4.2's "match on label.terminal() and
	// retain label.pos() as the lhs" — a documented simplification treats
	// the arc's Label symbol itself as the literal the grammar matches
	// against (see DESIGN.md: POS-mode requires a Symbol.POS() accessor
	// the distilled spec does not define).
	PosMode bool
	// UniqueGoal is not read by any composer. ComposeCKY and the variants
	// built on it always produce at most one goal node, since all
	// transducers share one passive node per (span, lhs).
	UniqueGoal bool
}
