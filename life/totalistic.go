package life

// Life is a totalistic two-state Life-like rule, defined by a birth set
// B and a survival set S of neighbor counts in 0..8 (a cell with k
// living neighbors is born if k is in B, survives if alive and k is in
// S). The descriptor is the 12-bit `aaaa bbbb cc dd` packing from
// spec §4.1: aaaa = dead-neighbor count, bbbb = alive-neighbor count,
// cc = successor state, dd = the cell's own state.
//
// Grounded on original_source/lib/src/rules/tmp.rs's expansion of the
// `Life` rule (mod life): new_desc/update_desc/consistify and the
// init_trans/init_conflict/init_impl/init_impl_nbhd induction.
type Life struct {
	b, s      [9]bool
	b0, s8    bool
	implTable [1 << 12]ImplFlags
}

// NewLife constructs the rule tables for birth counts b and survival
// counts s, each a subset of 0..8.
func NewLife(b, s []int) *Life {
	l := &Life{}
	for _, v := range b {
		if v >= 0 && v <= 8 {
			l.b[v] = true
		}
	}
	for _, v := range s {
		if v >= 0 && v <= 8 {
			l.s[v] = true
		}
	}
	l.b0 = l.b[0]
	l.s8 = l.s[8]
	l.initTrans()
	l.initConflict()
	l.initImpl()
	l.initImplNbhd()
	return l
}

func (l *Life) IsGen() bool   { return false }
func (l *Life) HasB0() bool   { return l.b0 }
func (l *Life) HasB0S8() bool { return l.b0 && l.s8 }
func (l *Life) Gen() int      { return 2 }

func (l *Life) NewDesc(state, succState State) Desc {
	nbhd := uint32(0x80)
	if state == ALIVE {
		nbhd = 0x08
	}
	bits := nbhd<<4 | stateBits(succState)<<2 | stateBits(state)
	return Desc{Bits: bits, GenSucc: noGenSucc}
}

func (l *Life) UpdateDesc(w *World, idx Ref, state State, isNew bool) {
	cell := &w.cells[idx]
	stateNum := uint32(0x10)
	switch state {
	case ALIVE:
		stateNum = 0x01
	case UnknownState:
		stateNum = 0
	}
	delta := stateNum << 4
	for _, n := range cell.Nbhd {
		if !n.Valid() {
			continue
		}
		nc := &w.cells[n]
		if isNew {
			nc.Desc.Bits += delta
		} else {
			nc.Desc.Bits -= delta
		}
	}
	change := changeNum(state)
	if cell.Pred.Valid() {
		pred := &w.cells[cell.Pred]
		pred.Desc.Bits ^= change << 2
	}
	cell.Desc.Bits ^= change
}

func (l *Life) Consistify(w *World, idx Ref) bool {
	cell := &w.cells[idx]
	flags := l.implTable[cell.Desc.Bits]
	if flags == 0 {
		return true
	}
	if flags&FlagConflict != 0 {
		return false
	}
	if flags&FlagSucc != 0 {
		state := ALIVE
		if flags&FlagSuccDead != 0 {
			state = DEAD
		}
		return w.setCell(cell.Succ, state, Reason{Kind: ReasonRule, Cell: idx})
	}
	if flags&FlagSelf != 0 {
		state := ALIVE
		if flags&FlagSelfDead != 0 {
			state = DEAD
		}
		if !w.setCell(idx, state, Reason{Kind: ReasonRule, Cell: idx}) {
			return false
		}
	}
	if flags&FlagNbhd != 0 {
		state := ALIVE
		if flags&FlagNbhdDead != 0 {
			state = DEAD
		}
		for _, n := range cell.Nbhd {
			if n.Valid() && w.cells[n].State == UnknownState {
				if !w.setCell(n, state, Reason{Kind: ReasonRule, Cell: idx}) {
					return false
				}
			}
		}
	}
	return true
}

// initTrans deduces the successor implication for every fully- and
// partially-determined neighbor-count descriptor by induction on the
// number of unknown neighbors.
func (l *Life) initTrans() {
	for alive := 0; alive <= 8; alive++ {
		desc := uint32((8-alive)<<8 | alive<<4)
		l.implTable[desc|0b10] |= succFlag(l.b[alive])
		l.implTable[desc|0b01] |= succFlag(l.s[alive])
		switch {
		case l.b[alive] && l.s[alive]:
			l.implTable[desc] |= FlagSuccAlive
		case !l.b[alive] && !l.s[alive]:
			l.implTable[desc] |= FlagSuccDead
		}
	}
	for unknown := 1; unknown <= 8; unknown++ {
		for alive := 0; alive <= 8-unknown; alive++ {
			desc := uint32((8-alive-unknown)<<8 | alive<<4)
			desc0 := uint32((8-alive-unknown+1)<<8 | alive<<4)
			desc1 := uint32((8-alive-unknown)<<8 | (alive+1)<<4)
			for state := uint32(0); state <= 2; state++ {
				trans0 := l.implTable[desc0|state]
				if trans0 == l.implTable[desc1|state] {
					l.implTable[desc|state] |= trans0
				}
			}
		}
	}
}

func succFlag(in bool) ImplFlags {
	if in {
		return FlagSuccAlive
	}
	return FlagSuccDead
}

// initConflict marks, for every descriptor whose cell-known-self
// transition is already forced, the opposite successor assignment as a
// conflict.
func (l *Life) initConflict() {
	for nbhd := uint32(0); nbhd < 0xff; nbhd++ {
		for state := uint32(0); state <= 2; state++ {
			desc := nbhd<<4 | state
			switch {
			case l.implTable[desc]&FlagSuccAlive != 0:
				l.implTable[desc|(0b10<<2)] = FlagConflict
			case l.implTable[desc]&FlagSuccDead != 0:
				l.implTable[desc|(0b01<<2)] = FlagConflict
			}
		}
	}
}

// initImpl deduces, given a forced successor and a neighbor count, the
// implied (or contradictory) state of the cell itself.
func (l *Life) initImpl() {
	for unknown := 0; unknown <= 8; unknown++ {
		for alive := 0; alive <= 8-unknown; alive++ {
			desc := uint32((8-alive-unknown)<<8 | alive<<4)
			for succState := uint32(1); succState <= 2; succState++ {
				flag := succConflictFlag(succState)
				possiblyDead := l.implTable[desc|0b10]&flag == 0
				possiblyAlive := l.implTable[desc|0b01]&flag == 0
				index := desc | succState<<2
				switch {
				case possiblyDead && !possiblyAlive:
					l.implTable[index] |= FlagSelfDead
				case !possiblyDead && possiblyAlive:
					l.implTable[index] |= FlagSelfAlive
				case !possiblyDead && !possiblyAlive:
					l.implTable[index] = FlagConflict
				}
			}
		}
	}
}

func succConflictFlag(succState uint32) ImplFlags {
	if succState == 0b10 {
		return FlagSuccAlive | FlagConflict
	}
	return FlagSuccDead | FlagConflict
}

// initImplNbhd deduces, given a forced successor and the cell's own
// state, whether every unknown neighbor is forced to a single state
// (totalistic rules cannot force just one neighbor among several
// unknowns, only "all of them").
func (l *Life) initImplNbhd() {
	for unknown := 1; unknown <= 8; unknown++ {
		for alive := 0; alive <= 8-unknown; alive++ {
			desc := uint32((8-alive-unknown)<<8 | alive<<4)
			desc0 := uint32((8-alive-unknown+1)<<8 | alive<<4)
			desc1 := uint32((8-alive-unknown)<<8 | (alive+1)<<4)
			for succState := uint32(1); succState <= 2; succState++ {
				flag := succConflictFlag(succState)
				index := desc | succState<<2
				for state := uint32(0); state <= 2; state++ {
					possiblyDead := l.implTable[desc0|state]&flag == 0
					possiblyAlive := l.implTable[desc1|state]&flag == 0
					switch {
					case possiblyDead && !possiblyAlive:
						l.implTable[index|state] |= FlagNbhdDead
					case !possiblyDead && possiblyAlive:
						l.implTable[index|state] |= FlagNbhdAlive
					case !possiblyDead && !possiblyAlive:
						l.implTable[index|state] = FlagConflict
					}
				}
			}
		}
	}
}

// LifeGen is the Generations variant of Life: gen-2 is the number of
// dying states a cell ages through after being alive before returning
// to DEAD. It reuses Life's impl_table verbatim (the birth/survival
// logic is unchanged) and layers Generations state arithmetic around
// the lookup, per spec §4.4's "Generations semantics".
type LifeGen struct {
	life *Life
	gen  int
}

// NewLifeGen constructs a Generations rule from birth/survival counts
// and the number of states g (g must be >= 2).
func NewLifeGen(b, s []int, g int) *LifeGen {
	return &LifeGen{life: NewLife(b, s), gen: g}
}

func (lg *LifeGen) IsGen() bool   { return true }
func (lg *LifeGen) HasB0() bool   { return lg.life.b0 }
func (lg *LifeGen) HasB0S8() bool { return lg.life.b0 && lg.life.s8 }
func (lg *LifeGen) Gen() int      { return lg.gen }

func (lg *LifeGen) NewDesc(state, succState State) Desc {
	d := lg.life.NewDesc(state, succState)
	d.GenSucc = int8(normalizeGenState(succState))
	return d
}

func (lg *LifeGen) UpdateDesc(w *World, idx Ref, state State, isNew bool) {
	cell := &w.cells[idx]
	stateNum := uint32(0x10)
	switch state {
	case ALIVE:
		stateNum = 0x01
	case UnknownState:
		stateNum = 0
	}
	delta := stateNum << 4
	for _, n := range cell.Nbhd {
		if !n.Valid() {
			continue
		}
		nc := &w.cells[n]
		if isNew {
			nc.Desc.Bits += delta
		} else {
			nc.Desc.Bits -= delta
		}
	}
	change := changeNum(state)
	if cell.Pred.Valid() {
		pred := &w.cells[cell.Pred]
		pred.Desc.Bits ^= change << 2
		if isNew {
			pred.Desc.GenSucc = int8(normalizeGenState(state))
		} else {
			pred.Desc.GenSucc = noGenSucc
		}
	}
	cell.Desc.Bits ^= change
}

// normalizeGenState maps UnknownState to itself (never stored) and
// every other state to its plain int value; callers only call this
// with concrete states.
func normalizeGenState(s State) int {
	if s == UnknownState {
		return int(noGenSucc)
	}
	return int(s)
}

func (lg *LifeGen) Consistify(w *World, idx Ref) bool {
	cell := &w.cells[idx]
	desc := cell.Desc
	flags := lg.life.implTable[desc.Bits]
	gen := lg.gen

	switch {
	case cell.State == DEAD:
		if desc.GenSucc != noGenSucc && desc.GenSucc >= 2 {
			return false
		}
		if flags&FlagSucc != 0 {
			state := ALIVE
			if flags&FlagSuccDead != 0 {
				state = DEAD
			}
			return w.setCell(cell.Succ, state, Reason{Kind: ReasonDeduce})
		}
	case cell.State == ALIVE:
		if desc.GenSucc != noGenSucc && (desc.GenSucc == 0 || desc.GenSucc > 2) {
			return false
		}
		if flags&FlagSucc != 0 {
			state := ALIVE
			if flags&FlagSuccDead != 0 {
				state = State(2)
			}
			return w.setCell(cell.Succ, state, Reason{Kind: ReasonDeduce})
		}
	case cell.State >= 2:
		i := int(cell.State)
		if desc.GenSucc != noGenSucc {
			return int(desc.GenSucc) == (i+1)%gen
		}
		return w.setCell(cell.Succ, State((i+1)%gen), Reason{Kind: ReasonDeduce})
	default: // UnknownState: reason about the cell from its successor
		switch {
		case desc.GenSucc == int8(DEAD):
			if flags&FlagSelfAlive != 0 {
				return w.setCell(idx, State(gen-1), Reason{Kind: ReasonDeduce})
			}
			return true
		case desc.GenSucc == int8(ALIVE):
			if flags&FlagSelf != 0 {
				state := ALIVE
				if flags&FlagSelfDead != 0 {
					state = DEAD
				}
				if !w.setCell(idx, state, Reason{Kind: ReasonDeduce}) {
					return false
				}
			}
		case desc.GenSucc >= 2:
			return w.setCell(idx, State(desc.GenSucc-1), Reason{Kind: ReasonDeduce})
		default:
			return true
		}
	}

	if flags == 0 {
		return true
	}
	if flags&FlagConflict != 0 {
		return false
	}
	// Totalistic Generations rules only force neighbors alive, never
	// dead, from the NBHD_ALIVE bit; grounded verbatim on LifeGen's
	// consistify in original_source/lib/src/rules/tmp.rs.
	if flags&FlagNbhdAlive != 0 {
		for _, n := range cell.Nbhd {
			if n.Valid() && w.cells[n].State == UnknownState {
				if !w.setCell(n, ALIVE, Reason{Kind: ReasonDeduce}) {
					return false
				}
			}
		}
	}
	return true
}
