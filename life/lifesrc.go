package life

// LifeSrc is the classical chronological-backtracking search (spec
// §4.5), grounded on original_source/lib/src/search/search_order.rs
// and the LifeSrc-mode decide/proceed/retreat loop described in
// lib/src/world.rs.
type LifeSrc struct {
	*World
}

// NewLifeSrc wraps w for chronological search.
func NewLifeSrc(w *World) *LifeSrc { return &LifeSrc{w} }

// Search advances the search by at most maxSteps proceed-plus-decide
// iterations (maxSteps <= 0 means unbounded), returning Found, None,
// or Searching if the budget ran out first.
func (ls *LifeSrc) Search(maxSteps int) Status {
	w := ls.World
	for step := 0; maxSteps <= 0 || step < maxSteps; step++ {
		if !w.cursor.Valid() {
			if !w.retreat() {
				return StatusNone
			}
		}

		if !w.proceed() {
			w.conflicts++
			if !w.retreat() {
				return StatusNone
			}
			continue
		}

		w.advanceCursor()
		if !w.cursor.Valid() {
			if w.isBoring() {
				w.conflicts++
				if !w.retreat() {
					return StatusNone
				}
				continue
			}
			if w.cfg.ReduceMax {
				n := int(w.cellCountMin()) - 1
				w.cfg.MaxCellCount = &n
			}
			return StatusFound
		}

		if !w.decide() {
			w.conflicts++
			if !w.retreat() {
				return StatusNone
			}
		}
	}
	return StatusSearching
}

// decide assigns the cursor cell a state per the configured NewState
// policy and pushes it as a plain Decide entry.
func (w *World) decide() bool {
	if !w.cursor.Valid() {
		return false
	}
	idx := w.cursor
	cell := &w.cells[idx]

	var state State
	switch w.cfg.NewState {
	case ChooseAlive:
		state = cell.Background.Not()
	case ChooseRandom:
		state = State(w.rng.Intn(w.gen()))
	default: // ChooseDead
		state = cell.Background
	}

	w.level++
	cell.Level = w.level
	return w.setCell(idx, state, Reason{Kind: ReasonDecide})
}

// retreat pops set-stack entries, clearing each cell, until it finds a
// Decide or TryAnother entry, which it advances to the next state mod
// gen and re-pushes; if that re-assignment itself fails, the loop
// keeps popping (the failed attempt is now back on top of the stack).
// Reaching a Known entry or emptying the stack means the search space
// is exhausted. Grounded verbatim on LifeSrc::retreat_impl in
// original_source/lib/src/search/lifesrc.rs: a 2-state Decide only
// ever gets one flip (gen-2 == 0 collapses TryAnother straight to
// Deduce), a Generations Decide gets gen-1 flips total.
//
// The level decrement on a Decide/TryAnother flip is not read by
// LifeSrc itself (it never consults w.level), but this function is
// also Backjump's fallback retreat for conflicts with no rule/sym
// reason (backjump.go's backjumpRetreat), so it must keep w.level in
// step with decide()'s increment the same way backjump.rs's own
// retreat() does, or Backjump's analyze would compare against a stale
// level.
func (w *World) retreat() bool {
	for len(w.setStack) > 0 {
		entry := w.setStack[len(w.setStack)-1]
		w.setStack = w.setStack[:len(w.setStack)-1]
		if w.checkIndex > len(w.setStack) {
			w.checkIndex = len(w.setStack)
		}
		idx := entry.Cell
		old := w.cells[idx].State

		switch entry.Reason.Kind {
		case ReasonDecide, ReasonTryAnother:
			w.level--
			w.clearCell(idx)
			next := State((int(old) + 1) % w.gen())
			remaining := w.gen() - 2
			if entry.Reason.Kind == ReasonTryAnother {
				remaining = entry.Reason.N - 1
			}
			var reason Reason
			if remaining <= 0 {
				reason = Reason{Kind: ReasonDeduce}
			} else {
				reason = Reason{Kind: ReasonTryAnother, N: remaining}
			}
			cell := &w.cells[idx]
			cell.Level = w.level
			if w.setCell(idx, next, reason) {
				w.cursor = idx
				return true
			}
		case ReasonKnown:
			// A Known cell's state was never decided by search and
			// must survive the retreat; only discard the stack below
			// it, matching retreat_impl's bare `break` (no clear_cell).
			w.setStack = w.setStack[:0]
			w.checkIndex = 0
			return false
		default:
			w.clearCell(idx)
		}
	}
	return false
}
