// Package life is the constraint-propagation search engine for still
// lifes, oscillators, and spaceships in two-state and Generations
// cellular automata. It is single-threaded, synchronous, and does no
// I/O; everything outside this package is glue that drives a Search
// through its public interface.
package life

// State is a cell state in 0..Gen-1. DEAD is 0, ALIVE is 1; for
// Generations rules, 2..Gen-1 are dying states that age towards DEAD.
type State int

// UnknownState marks a cell whose state has not yet been decided.
const UnknownState State = -1

// DEAD and ALIVE are the two states every rule has.
const (
	DEAD  State = 0
	ALIVE State = 1
)

// Not flips a 2-state value. For a dying state it returns ALIVE, matching
// the Generations convention that "undoing" a decay step reactivates the
// cell rather than picking a specific earlier dying state.
func (s State) Not() State {
	if s == ALIVE {
		return DEAD
	}
	return ALIVE
}

// Known reports whether s is a concrete state rather than UnknownState.
func (s State) Known() bool { return s != UnknownState }

// Coord is a cell position: (x, y) in the bounding box plus a temporal
// phase t within one period. -1 <= x <= W and -1 <= y <= H address the
// one-cell halo around the box; 0 <= t < P.
type Coord struct {
	X, Y, T int32
}
