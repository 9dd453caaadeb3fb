package life

// Ref is a weak reference to a cell: an index into a World's cells
// arena. The arena is allocated once at build time and never resized,
// so a Ref stays valid for the lifetime of its World. NoRef marks an
// absent link (a halo neighbor, a missing predecessor at t=0 with no
// wrap, ...).
type Ref int32

// NoRef is the zero value of an absent cell reference.
const NoRef Ref = -1

// Valid reports whether r refers to an actual cell.
func (r Ref) Valid() bool { return r >= 0 }

// Desc is a cell's neighborhood descriptor: the compact bit-packed
// summary of its own state, its neighbors' states, and its successor's
// state, used as a rule table index. Bits holds the 12-bit totalistic
// or 20-bit isotropic descriptor described in descriptor.go. GenSucc
// additionally tracks the successor's exact Generations state (DEAD,
// ALIVE, or a dying value 2..gen-1) once it is known, since the base
// descriptor folds every dying value into DEAD; it is -1 when not
// applicable or not yet known, mirroring Option<State> on NbhdDescGen.
type Desc struct {
	Bits    uint32
	GenSucc int8
}

// noGenSucc is the sentinel for "no known dying successor state".
const noGenSucc int8 = -1

// Cell is one point in the W×H×P space-time volume. Cells are
// allocated once in World.cells and never move; all mutable state is
// touched only through World.setCell/clearCell so that the set-stack
// remains an authoritative undo history.
type Cell struct {
	Coord      Coord
	Background State

	State State
	Desc  Desc

	Pred, Succ Ref
	Nbhd       [8]Ref
	Sym        []Ref
	Next       Ref

	IsFront bool

	// pinned marks a cell permanently fixed to Background: halo cells,
	// diagonal-width-excluded cells, and cells whose symmetry image
	// falls outside the bounding box. Pinned cells are never added to
	// the decide chain.
	pinned bool

	// Level and Seen are used only by the backjumping search; they are
	// left at their zero values when backjump is disabled.
	Level uint32
	Seen  bool
}
