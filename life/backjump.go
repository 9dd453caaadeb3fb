package life

// Backjump is the conflict-directed backjumping search with clause
// learning (spec §4.6), grounded on the analyze/decide loop in
// original_source/lib/src/search/backjump.rs. It shares World's cell
// graph, rule tables, and plain retreat with LifeSrc, adding decision
// levels and learnt clauses on top.
//
// Disabled for Generations rules: Config.Build already rejects that
// combination, so Backjump never needs to special-case it.
type Backjump struct {
	*World
}

// NewBackjump wraps w for conflict-directed search.
func NewBackjump(w *World) *Backjump { return &Backjump{w} }

func (bj *Backjump) Search(maxSteps int) Status {
	w := bj.World
	for step := 0; maxSteps <= 0 || step < maxSteps; step++ {
		if !w.cursor.Valid() {
			if !w.backjumpRetreat() {
				return StatusNone
			}
		}

		if !w.proceed() {
			w.conflicts++
			if !w.backjumpRetreat() {
				return StatusNone
			}
			continue
		}

		w.advanceCursor()
		if !w.cursor.Valid() {
			if w.isBoring() {
				w.conflicts++
				w.lastConflict = Conflict{Kind: ConflictGeneric}
				if !w.backjumpRetreat() {
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
			if !w.backjumpRetreat() {
				return StatusNone
			}
		}
	}
	return StatusSearching
}

// backjumpRetreat dispatches to conflict analysis when the last
// conflict carries an identifying reason, falling back to plain
// retreat otherwise (spec §4.6).
func (w *World) backjumpRetreat() bool {
	switch w.lastConflict.Kind {
	case ConflictRule, ConflictSym:
		return w.analyze(w.lastConflict.cells())
	default:
		return w.retreat()
	}
}

// analyze implements the learn-and-jump step (spec §4.6). It seeds a
// same-level counter and a learnt clause from cells, then walks the
// set-stack backward. A popped Decide is flipped unconditionally —
// this is the chronological case, where analysis never had to unwind
// past the most recent decision. Any other reason is expanded into the
// same counter/clause bookkeeping if it was "seen"; once the counter
// reaches zero before the current level's Decide is reached, the
// first unique implication point has been found, so the walk pops
// every remaining Decide/TryAnother without flipping — purely
// degrading the level — until the level matches the learnt clause's
// shallowest (maxLevel), at which point it recurses into a fresh
// analyze seeded by that clause.
//
// Grounded verbatim on World::analyze in
// original_source/lib/src/search/backjump.rs:317-405. cells is empty
// only for a ConflictGeneric, which backjumpRetreat already routes to
// plain retreat instead of calling analyze; the empty check here
// mirrors the original's own defensive `reason.is_empty()` guard.
func (w *World) analyze(cells []Ref) bool {
	if len(cells) == 0 {
		return w.retreat()
	}

	clause := map[Ref]bool{}
	counter := 0
	maxLevel := uint32(0)

	seed := func(c Ref) {
		cell := &w.cells[c]
		if !cell.State.Known() {
			return
		}
		if cell.Level == w.level {
			if !cell.Seen {
				cell.Seen = true
				counter++
			}
			return
		}
		clause[c] = true
		if cell.Level > maxLevel {
			maxLevel = cell.Level
		}
	}
	for _, c := range cells {
		seed(c)
	}

	for len(w.setStack) > 0 {
		top := w.setStack[len(w.setStack)-1]
		w.setStack = w.setStack[:len(w.setStack)-1]
		if w.checkIndex > len(w.setStack) {
			w.checkIndex = len(w.setStack)
		}
		idx := top.Cell
		cell := &w.cells[idx]

		switch top.Reason.Kind {
		case ReasonDecide:
			old := cell.State
			w.level--
			w.clearCell(idx)
			// Backjump is 2-state only (Config.validate rejects it for
			// Generations rules), so a Decide always has exactly one
			// alternate value, just like retreat's gen-2==0 collapse.
			next := State((int(old) + 1) % w.gen())
			clauseList := make([]Ref, 0, len(clause))
			for c := range clause {
				clauseList = append(clauseList, c)
			}
			cell.Level = w.level
			if w.setCell(idx, next, Reason{Kind: ReasonClause, Clause: clauseList}) {
				w.cursor = idx
				return true
			}
			return w.retreat()

		case ReasonKnown:
			// A Known cell's state must survive analysis, just as in
			// retreat: discard the stack below it and stop.
			w.setStack = w.setStack[:0]
			w.checkIndex = 0
			return false

		case ReasonDeduce:
			w.clearCell(idx)
			return w.retreat()

		default: // Rule, Sym, Clause (TryAnother never occurs: 2-state only)
			if !cell.Seen {
				w.clearCell(idx)
				continue
			}
			w.clearCell(idx)
			cell.Seen = false
			counter--
			for _, c := range top.Reason.cells(w, idx) {
				seed(c)
			}

			if counter != 0 {
				continue
			}

			// First unique implication point: pop every remaining
			// Decide/TryAnother without flipping, degrading the level,
			// until it matches the learnt clause's shallowest level,
			// then resume analysis from there.
			for len(w.setStack) > 0 {
				next := w.setStack[len(w.setStack)-1]
				w.setStack = w.setStack[:len(w.setStack)-1]
				if w.checkIndex > len(w.setStack) {
					w.checkIndex = len(w.setStack)
				}
				nidx := next.Cell
				w.clearCell(nidx)
				if next.Reason.Kind == ReasonDecide || next.Reason.Kind == ReasonTryAnother {
					w.level--
					if w.level == maxLevel {
						clauseList := make([]Ref, 0, len(clause))
						for c := range clause {
							clauseList = append(clauseList, c)
						}
						return w.analyze(clauseList)
					}
				}
			}
			break
		}
	}
	w.setStack = w.setStack[:0]
	w.checkIndex = 0
	return false
}
