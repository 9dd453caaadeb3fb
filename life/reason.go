package life

// ReasonKind tags why a cell's state was pushed onto the set-stack.
// Known, Decide, Deduce, and TryAnother come from world construction
// and the search loops; Rule (two-state rule propagation) and Sym
// (symmetry propagation) come from proceed under either algorithm;
// Clause is produced only by Backjump. Rule, Sym, and Clause let
// conflict analysis trace back through the implications that led to a
// contradiction (spec §4.6).
type ReasonKind int

const (
	ReasonKnown ReasonKind = iota
	ReasonDecide
	ReasonDeduce
	ReasonTryAnother
	ReasonRule
	ReasonSym
	ReasonClause
)

// Reason records why a set-stack entry exists. Only the field relevant
// to Kind is populated.
type Reason struct {
	Kind ReasonKind

	// N is the remaining flip count for TryAnother, used by Generations
	// retreat to cycle through dying states before forcing Deduce.
	N int

	// Cell is the other cell that forced this assignment, for Rule
	// (consistifying Cell implied the set cell) and Sym (Cell is the
	// symmetry peer that forced equality).
	Cell Ref

	// Clause is the learnt-clause cell list for ReasonClause.
	Clause []Ref
}

// cells returns the cells conflict analysis should charge against this
// reason, excluding the cell the reason explains (self). Grounded on
// ReasonBackjump::cells in original_source/lib/src/search/backjump.rs.
func (r Reason) cells(w *World, self Ref) []Ref {
	switch r.Kind {
	case ReasonRule:
		out := make([]Ref, 0, 10)
		if r.Cell != self {
			out = append(out, r.Cell)
		}
		c := &w.cells[r.Cell]
		if c.Succ.Valid() && c.Succ != self {
			out = append(out, c.Succ)
		}
		for _, n := range c.Nbhd {
			if n.Valid() && n != self {
				out = append(out, n)
			}
		}
		return out
	case ReasonSym:
		if r.Cell == self {
			return nil
		}
		return []Ref{r.Cell}
	case ReasonClause:
		out := make([]Ref, 0, len(r.Clause))
		for _, c := range r.Clause {
			if c != self {
				out = append(out, c)
			}
		}
		return out
	default:
		return nil
	}
}

// ConflictKind distinguishes an identifiable conflict (one conflict
// analysis can trace through Rule/Sym reasons) from a generic one
// (max_cell_count, empty-front) that only supports plain retreat.
type ConflictKind int

const (
	ConflictGeneric ConflictKind = iota
	ConflictRule
	ConflictSym
)

// Conflict is the reason proceed() returned false, used by Backjump's
// conflict analysis. LifeSrc ignores it entirely and always retreats.
type Conflict struct {
	Kind         ConflictKind
	Cell1, Cell2 Ref
}

// cells returns the cells analysis should seed from, per ConflReason::cells.
func (c Conflict) cells() []Ref {
	switch c.Kind {
	case ConflictRule:
		return []Ref{c.Cell1}
	case ConflictSym:
		return []Ref{c.Cell1, c.Cell2}
	default:
		return nil
	}
}

// setEntry is one record on the set-stack: the cell that was set and
// why it was set. The cell was unknown before the assignment.
type setEntry struct {
	Cell   Ref
	Reason Reason
}
