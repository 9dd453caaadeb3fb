package life

// isBoring reports whether the current fully-assigned world is a
// result the search should reject and retreat past: trivial, stable,
// subperiodic, or (optionally) subsymmetric (spec §4.7).
func (w *World) isBoring() bool {
	if w.CellCountGen(0) == 0 {
		return true
	}
	if w.period > 1 && w.isStable() {
		return true
	}
	if w.cfg.SkipSubperiod && w.isSubperiodic() {
		return true
	}
	if w.cfg.SkipSubsymmetry && w.isSubsymmetric() {
		return true
	}
	return false
}

func (w *World) cellAt(x, y, t int32) State {
	return w.cells[w.idx(x, y, t)].State
}

// isStable reports whether every interior cell's state is identical
// across all phases, i.e. the pattern never actually changes.
func (w *World) isStable() bool {
	for x := int32(0); x < w.width; x++ {
		for y := int32(0); y < w.height; y++ {
			s0 := w.cellAt(x, y, 0)
			for t := int32(1); t < w.period; t++ {
				if w.cellAt(x, y, t) != s0 {
					return false
				}
			}
		}
	}
	return true
}

// isSubperiodic reports whether some proper divisor f of the period,
// compatible with the translation, already explains the whole
// pattern — i.e. the search over-searched a smaller true period.
func (w *World) isSubperiodic() bool {
	for f := int32(2); f <= w.period; f++ {
		if w.period%f != 0 {
			continue
		}
		subPeriod := w.period / f
		if subPeriod == w.period {
			continue
		}
		if w.cfg.Dx%f != 0 || w.cfg.Dy%f != 0 {
			continue
		}
		sdx, sdy := w.cfg.Dx/f, w.cfg.Dy/f
		if w.matchesSubperiod(subPeriod, sdx, sdy) {
			return true
		}
	}
	return false
}

func (w *World) matchesSubperiod(subPeriod, dx, dy int32) bool {
	for x := int32(0); x < w.width; x++ {
		for y := int32(0); y < w.height; y++ {
			want := w.cellAt(x, y, 0)
			c := w.cfg.Translate(Coord{X: x - dx, Y: y - dy, T: subPeriod})
			if !w.inBounds(c.X, c.Y) {
				if want != w.backgroundAt(0) {
					return false
				}
				continue
			}
			if w.cellAt(c.X, c.Y, c.T) != want {
				return false
			}
		}
	}
	return true
}

// isSubsymmetric reports whether the pattern is invariant under some
// coset representative outside the configured symmetry group, i.e.
// its true symmetry group is strictly larger than requested.
func (w *World) isSubsymmetric() bool {
	for _, rep := range w.cfg.Symmetry.Cosets() {
		if rep == Id {
			continue
		}
		if w.matchesTransform(rep) {
			return true
		}
	}
	return false
}

func (w *World) matchesTransform(t Transform) bool {
	for x := int32(0); x < w.width; x++ {
		for y := int32(0); y < w.height; y++ {
			for ti := int32(0); ti < w.period; ti++ {
				want := w.cellAt(x, y, ti)
				img := t.ActOn(Coord{X: x, Y: y, T: ti}, w.width, w.height)
				if img.X < 0 || img.X >= w.width || img.Y < 0 || img.Y >= w.height {
					if want != w.backgroundAt(ti) {
						return false
					}
					continue
				}
				if w.cellAt(img.X, img.Y, img.T) != want {
					return false
				}
			}
		}
	}
	return true
}
