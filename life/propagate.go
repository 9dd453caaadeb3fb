package life

// setCell assigns state to the cell at idx, updates its descriptor and
// its neighbors'/predecessor's descriptors, maintains the population
// and front counters, and pushes a set-stack entry recording reason.
// It returns false if the cell already held an incompatible state, or
// if the assignment trips max_cell_count or empties a required-nonempty
// front — in both cases the entry is still pushed so the caller's
// retreat can undo it cleanly (spec §4.4's set_cell).
func (w *World) setCell(idx Ref, state State, reason Reason) bool {
	cell := &w.cells[idx]
	if cell.State.Known() {
		if cell.State == state {
			return true
		}
		w.lastConflict = Conflict{Kind: ConflictGeneric}
		return false
	}

	cell.State = state
	w.cfg.Rule.UpdateDesc(w, idx, state, true)

	nonBackground := state != cell.Background
	if nonBackground {
		w.cellCount[cell.Coord.T]++
	}
	if cell.IsFront {
		w.frontKnown++
		if nonBackground {
			w.frontAlive++
		}
	}

	w.setStack = append(w.setStack, setEntry{Cell: idx, Reason: reason})

	if w.cfg.MaxCellCount != nil && int(w.cellCount[cell.Coord.T]) > *w.cfg.MaxCellCount {
		w.lastConflict = Conflict{Kind: ConflictGeneric}
		return false
	}
	if w.frontValid && w.frontTotal > 0 && w.frontKnown == w.frontTotal && w.frontAlive == 0 {
		w.lastConflict = Conflict{Kind: ConflictGeneric}
		return false
	}
	return true
}

// clearCell reverses setCell exactly; it does not touch the set-stack,
// which the caller (retreat) pops separately.
func (w *World) clearCell(idx Ref) {
	cell := &w.cells[idx]
	state := cell.State
	nonBackground := state != cell.Background
	if nonBackground {
		w.cellCount[cell.Coord.T]--
	}
	if cell.IsFront {
		w.frontKnown--
		if nonBackground {
			w.frontAlive--
		}
	}
	w.cfg.Rule.UpdateDesc(w, idx, state, false)
	cell.State = UnknownState
}

// proceed walks the set-stack forward from the last checked index,
// propagating symmetry equalities and consistifying every cell whose
// descriptor could now imply something new: the cell itself, its
// predecessor, and its eight neighbors (spec §4.4's "Proceed loop").
// It returns false and leaves the offending entries on the stack the
// moment any step reports a conflict.
func (w *World) proceed() bool {
	for w.checkIndex < len(w.setStack) {
		entry := w.setStack[w.checkIndex]
		idx := entry.Cell
		cell := &w.cells[idx]
		state := cell.State

		for _, peer := range cell.Sym {
			p := &w.cells[peer]
			if p.State == UnknownState {
				if !w.setCell(peer, state, Reason{Kind: ReasonSym, Cell: idx}) {
					return false
				}
			} else if p.State != state {
				w.lastConflict = Conflict{Kind: ConflictSym, Cell1: idx, Cell2: peer}
				return false
			}
		}

		if !w.cfg.Rule.Consistify(w, idx) {
			w.lastConflict = Conflict{Kind: ConflictRule, Cell1: idx}
			return false
		}
		if cell.Pred.Valid() && !w.cfg.Rule.Consistify(w, cell.Pred) {
			w.lastConflict = Conflict{Kind: ConflictRule, Cell1: cell.Pred}
			return false
		}
		for _, n := range cell.Nbhd {
			if n.Valid() && !w.cfg.Rule.Consistify(w, n) {
				w.lastConflict = Conflict{Kind: ConflictRule, Cell1: n}
				return false
			}
		}
		w.checkIndex++
	}
	return true
}
