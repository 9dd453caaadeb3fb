package life

// Rule is a transition rule with its precomputed implication tables.
// A Rule is pure and immutable once constructed; the same Rule value
// may be shared by any number of Worlds (spec §5's "shared-resource
// policy").
//
// Unlike the Rust original, which parameterizes World by a Rule type
// at compile time, this Go port keeps one concrete World and dispatches
// through this interface at runtime: simpler, and the table lookup
// itself dominates cost either way.
type Rule interface {
	// IsGen reports whether this is a Generations rule (Gen() > 2).
	IsGen() bool
	// HasB0 reports whether a dead cell with zero living neighbors is
	// born (B0 is present in the rule's birth set).
	HasB0() bool
	// HasB0S8 reports whether the rule simultaneously has B0 and the
	// all-neighbors-alive survival case, the one combination this
	// engine rejects at Config.Build (spec §9 open question (a)).
	HasB0S8() bool
	// Gen is the number of states: 2 for ordinary rules, g>2 for
	// Generations rules.
	Gen() int

	// NewDesc builds the descriptor for a freshly allocated cell whose
	// entire Moore neighborhood is assumed to equal state (used for
	// background-only cells at construction, before any real neighbor
	// links are wired in).
	NewDesc(state, succState State) Desc

	// UpdateDesc applies the XOR/count delta that results from cell
	// idx's state changing to/from state. isNew is true when state is
	// being installed, false when it is being undone (clearCell).
	// It updates idx's eight neighbors' descriptors, idx's own
	// descriptor's self-state field, and idx's predecessor's
	// descriptor's successor-state field.
	UpdateDesc(w *World, idx Ref, state State, isNew bool)

	// Consistify reads idx's current descriptor, looks it up in the
	// impl table, and applies every implication by calling w.setCell.
	// The two-state rules (Life, NtLife) tag each deduction with
	// Reason Rule naming idx; the Generations rules (LifeGen, NtLifeGen)
	// tag them with Reason Deduce. It returns false on CONFLICT or on a
	// downstream setCell failure.
	Consistify(w *World, idx Ref) bool
}
