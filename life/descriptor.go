package life

// ImplFlags is the result of looking up a neighborhood descriptor in a
// rule's impl_table: a bitmask of everything the descriptor forces.
//
// Bit layout (shared by totalistic and isotropic non-totalistic rules,
// grounded on lib/src/rules/ntlife.rs's ImplFlags and the Life table in
// lib/src/rules/tmp.rs):
//
//	bit 0       CONFLICT    the descriptor is contradictory
//	bit 2       SUCC_ALIVE  the successor is forced alive
//	bit 3       SUCC_DEAD   the successor is forced dead
//	bit 4       SELF_ALIVE  the cell itself is forced alive
//	bit 5       SELF_DEAD   the cell itself is forced dead
//	bit 6       NBHD_ALIVE  (totalistic only) every unknown neighbor is forced alive
//	bit 7       NBHD_DEAD   (totalistic only) every unknown neighbor is forced dead
//	bits 6..21  per-neighbor forced state (isotropic only), 2 bits per
//	            neighbor i at position 2*i+6: bit 2*i+6 forces alive,
//	            bit 2*i+7 forces dead.
type ImplFlags uint32

const (
	FlagConflict ImplFlags = 1 << 0
	FlagSuccAlive ImplFlags = 1 << 2
	FlagSuccDead  ImplFlags = 1 << 3
	FlagSucc      ImplFlags = FlagSuccAlive | FlagSuccDead
	FlagSelfAlive ImplFlags = 1 << 4
	FlagSelfDead  ImplFlags = 1 << 5
	FlagSelf      ImplFlags = FlagSelfAlive | FlagSelfDead
	FlagNbhdAlive ImplFlags = 1 << 6
	FlagNbhdDead  ImplFlags = 1 << 7
	FlagNbhd      ImplFlags = FlagNbhdAlive | FlagNbhdDead

	// nbhdMask covers all sixteen per-neighbor bits used by isotropic
	// non-totalistic rules: bits 6..21.
	nbhdMask ImplFlags = 0xffff << 6
)

// neighborAliveBit and neighborDeadBit return the two bits of the
// per-neighbor field for neighbor index i (0..7) in an isotropic table.
func neighborAliveBit(i int) ImplFlags { return 1 << uint(2*i+6) }
func neighborDeadBit(i int) ImplFlags  { return 1 << uint(2*i+7) }

// stateBits encodes a State for embedding in a descriptor: UNKNOWN=00,
// ALIVE=01, DEAD=10. Any state 2 and above (Generations dying states)
// also encodes as DEAD for the purposes of the 2-state descriptor; the
// Generations layer tracks the exact successor value out of band (see
// Desc.GenSucc in cell.go).
func stateBits(s State) uint32 {
	switch {
	case s == UnknownState:
		return 0b00
	case s == ALIVE:
		return 0b01
	default:
		return 0b10
	}
}

// changeNum is the descriptor delta contributed by a state, used by
// update_desc to XOR the right bits in and out when a cell's state
// changes. nil (no previous/new state) contributes zero.
func changeNum(s State) uint32 {
	switch {
	case s == UnknownState:
		return 0
	case s == ALIVE:
		return 0b01
	default:
		return 0b10
	}
}
