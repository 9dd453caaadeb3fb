package life

import "math/bits"

// NtLife is an isotropic non-totalistic two-state Life-like rule. B and
// S are sets of 8-bit neighbor bitmasks (bit i set means neighbor i is
// alive) rather than bare counts: a cell is born/survives according to
// exactly which neighbors are alive, not merely how many. Neither
// this constructor nor rulestring.ParseIsotropic expands masks into
// their rotation/reflection closure, and NtLife itself does not
// enforce isotropy: the masks are used exactly as given.
//
// The descriptor is the 20-bit packing `deadmask<<12 | alivemask<<4 |
// succ<<2 | self` from spec §4.1: deadmask/alivemask are 8-bit fields,
// bit i of exactly one of them set when neighbor i's state is known,
// neither set when it is unknown.
//
// Grounded on original_source/lib/src/rules/tmp.rs's expansion of the
// `NtLife` rule (mod ntlife).
type NtLife struct {
	b, s      map[uint8]bool
	b0, s8    bool
	implTable []ImplFlags
}

// NewNtLife constructs the rule tables for birth masks b and survival
// masks s, each values in 0..255.
func NewNtLife(b, s []int) *NtLife {
	n := &NtLife{
		b:         make(map[uint8]bool, len(b)),
		s:         make(map[uint8]bool, len(s)),
		implTable: make([]ImplFlags, 1<<20),
	}
	for _, v := range b {
		n.b[uint8(v)] = true
	}
	for _, v := range s {
		n.s[uint8(v)] = true
	}
	n.b0 = n.b[0x00]
	n.s8 = n.s[0xff]
	n.initTrans()
	n.initConflict()
	n.initImpl()
	n.initImplNbhd()
	return n
}

func (n *NtLife) IsGen() bool   { return false }
func (n *NtLife) HasB0() bool   { return n.b0 }
func (n *NtLife) HasB0S8() bool { return n.b0 && n.s8 }
func (n *NtLife) Gen() int      { return 2 }

func (n *NtLife) NewDesc(state, succState State) Desc {
	nbhd := uint32(0xff00)
	if state == ALIVE {
		nbhd = 0x00ff
	}
	bits := nbhd<<4 | stateBits(succState)<<2 | stateBits(state)
	return Desc{Bits: bits, GenSucc: noGenSucc}
}

func (n *NtLife) UpdateDesc(w *World, idx Ref, state State, isNew bool) {
	_ = isNew // XOR toggle is its own inverse; direction does not matter here.
	cell := &w.cells[idx]
	var nbhdChange uint32
	switch state {
	case ALIVE:
		nbhdChange = 0x0001
	case UnknownState:
		nbhdChange = 0
	default:
		nbhdChange = 0x0100
	}
	for i, nb := range cell.Nbhd {
		if !nb.Valid() {
			continue
		}
		// idx is neighbor 7-i of nb (the opposite offset).
		nc := &w.cells[nb]
		nc.Desc.Bits ^= nbhdChange << uint(7-i+4)
	}
	change := changeNum(state)
	if cell.Pred.Valid() {
		pred := &w.cells[cell.Pred]
		pred.Desc.Bits ^= change << 2
	}
	cell.Desc.Bits ^= change
}

func (n *NtLife) Consistify(w *World, idx Ref) bool {
	cell := &w.cells[idx]
	flags := n.implTable[cell.Desc.Bits]
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
	for i, nb := range cell.Nbhd {
		if !nb.Valid() {
			continue
		}
		pair := neighborAliveBit(i) | neighborDeadBit(i)
		if flags&pair == 0 || w.cells[nb].State != UnknownState {
			continue
		}
		state := ALIVE
		if flags&neighborDeadBit(i) != 0 {
			state = DEAD
		}
		if !w.setCell(nb, state, Reason{Kind: ReasonRule, Cell: idx}) {
			return false
		}
	}
	return true
}

func highestBit(x int) int {
	if x == 0 {
		return 0
	}
	return 1 << uint(bits.Len(uint(x))-1)
}

func (n *NtLife) initTrans() {
	contains := func(set map[uint8]bool, v int) bool { return set[uint8(v)] }
	for alive := 0; alive <= 0xff; alive++ {
		desc := uint32((0xff&^alive)<<12 | alive<<4)
		n.implTable[desc|0b10] |= succFlag(contains(n.b, alive))
		n.implTable[desc|0b01] |= succFlag(contains(n.s, alive))
		switch {
		case contains(n.b, alive) && contains(n.s, alive):
			n.implTable[desc] |= FlagSuccAlive
		case !contains(n.b, alive) && !contains(n.s, alive):
			n.implTable[desc] |= FlagSuccDead
		}
	}
	for unknown := 1; unknown <= 0xff; unknown++ {
		bit := highestBit(unknown)
		for alive := 0; alive <= 0xff; alive++ {
			if alive&unknown != 0 {
				continue
			}
			base := 0xff &^ alive &^ unknown
			desc := uint32(base<<12 | alive<<4)
			desc0 := uint32((base|bit)<<12 | alive<<4)
			desc1 := uint32(base<<12 | (alive|bit)<<4)
			for state := uint32(0); state <= 2; state++ {
				trans0 := n.implTable[desc0|state]
				if trans0 == n.implTable[desc1|state] {
					n.implTable[desc|state] |= trans0
				}
			}
		}
	}
}

func (n *NtLife) initConflict() {
	for nbhd := uint32(0); nbhd < 0xffff; nbhd++ {
		for state := uint32(0); state <= 2; state++ {
			desc := nbhd<<4 | state
			switch {
			case n.implTable[desc]&FlagSuccAlive != 0:
				n.implTable[desc|(0b10<<2)] = FlagConflict
			case n.implTable[desc]&FlagSuccDead != 0:
				n.implTable[desc|(0b01<<2)] = FlagConflict
			}
		}
	}
}

func (n *NtLife) initImpl() {
	for unknown := 0; unknown <= 0xff; unknown++ {
		for alive := 0; alive <= 0xff; alive++ {
			if alive&unknown != 0 {
				continue
			}
			base := 0xff &^ alive &^ unknown
			desc := uint32(base<<12 | alive<<4)
			for succState := uint32(1); succState <= 2; succState++ {
				flag := succConflictFlag(succState)
				possiblyDead := n.implTable[desc|0b10]&flag == 0
				possiblyAlive := n.implTable[desc|0b01]&flag == 0
				index := desc | succState<<2
				switch {
				case possiblyDead && !possiblyAlive:
					n.implTable[index] |= FlagSelfDead
				case !possiblyDead && possiblyAlive:
					n.implTable[index] |= FlagSelfAlive
				case !possiblyDead && !possiblyAlive:
					n.implTable[index] = FlagConflict
				}
			}
		}
	}
}

func (n *NtLife) initImplNbhd() {
	for unknown := 1; unknown <= 0xff; unknown++ {
		for i := 0; i < 8; i++ {
			bit := 1 << uint(i)
			if unknown&bit == 0 {
				continue
			}
			for alive := 0; alive <= 0xff; alive++ {
				base := 0xff &^ alive &^ unknown
				desc := uint32(base<<12 | alive<<4)
				desc0 := uint32((base|bit)<<12 | alive<<4)
				desc1 := uint32(base<<12 | (alive|bit)<<4)
				for succState := uint32(1); succState <= 2; succState++ {
					flag := succConflictFlag(succState)
					index := desc | succState<<2
					for state := uint32(0); state <= 2; state++ {
						possiblyDead := n.implTable[desc0|state]&flag == 0
						possiblyAlive := n.implTable[desc1|state]&flag == 0
						switch {
						case possiblyDead && !possiblyAlive:
							n.implTable[index|state] |= neighborDeadBit(i)
						case !possiblyDead && possiblyAlive:
							n.implTable[index|state] |= neighborAliveBit(i)
						case !possiblyDead && !possiblyAlive:
							n.implTable[index|state] = FlagConflict
						}
					}
				}
			}
		}
	}
}

// NtLifeGen is the Generations variant of NtLife, symmetric to LifeGen.
type NtLifeGen struct {
	life *NtLife
	gen  int
}

// NewNtLifeGen constructs a Generations isotropic rule.
func NewNtLifeGen(b, s []int, g int) *NtLifeGen {
	return &NtLifeGen{life: NewNtLife(b, s), gen: g}
}

func (ng *NtLifeGen) IsGen() bool   { return true }
func (ng *NtLifeGen) HasB0() bool   { return ng.life.b0 }
func (ng *NtLifeGen) HasB0S8() bool { return ng.life.b0 && ng.life.s8 }
func (ng *NtLifeGen) Gen() int      { return ng.gen }

func (ng *NtLifeGen) NewDesc(state, succState State) Desc {
	d := ng.life.NewDesc(state, succState)
	d.GenSucc = int8(normalizeGenState(succState))
	return d
}

func (ng *NtLifeGen) UpdateDesc(w *World, idx Ref, state State, isNew bool) {
	cell := &w.cells[idx]
	var nbhdChange uint32
	switch state {
	case ALIVE:
		nbhdChange = 0x0001
	case UnknownState:
		nbhdChange = 0
	default:
		nbhdChange = 0x0100
	}
	for i, nb := range cell.Nbhd {
		if !nb.Valid() {
			continue
		}
		// idx is neighbor 7-i of nb (the opposite offset).
		nc := &w.cells[nb]
		nc.Desc.Bits ^= nbhdChange << uint(7-i+4)
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

func (ng *NtLifeGen) Consistify(w *World, idx Ref) bool {
	cell := &w.cells[idx]
	desc := cell.Desc
	flags := ng.life.implTable[desc.Bits]
	gen := ng.gen

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
	default:
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
	for i, nb := range cell.Nbhd {
		if !nb.Valid() {
			continue
		}
		if flags&neighborAliveBit(i) != 0 {
			if !w.setCell(nb, ALIVE, Reason{Kind: ReasonDeduce}) {
				return false
			}
		}
	}
	return true
}
