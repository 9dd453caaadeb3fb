package life

import (
	"math/rand"
	"time"
)

// Status is the outcome of one Search call.
type Status int

const (
	StatusFound Status = iota
	StatusNone
	StatusSearching
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "Found"
	case StatusNone:
		return "None"
	default:
		return "Searching"
	}
}

// Search is the single abstract capability the core exposes (spec §6):
// a world paired with one of the two backtracking algorithms. LifeSrc
// and Backjump both implement it over the same World.
type Search interface {
	Search(maxSteps int) Status
	CellCountGen(t int32) int32
	CellCount() int32
	Conflicts() int64
	GetCellState(c Coord) (State, bool)
	SetMaxCellCount(n *int)
	Config() Config
	IsGenRule() bool
	IsB0Rule() bool
}

// World is the space-time cell graph plus everything a search needs to
// drive it: the rule, the set-stack, and the bookkeeping counters from
// spec §3's world invariants. A World is built once by Config.Build
// and then exclusively owned by whichever Search wraps it.
type World struct {
	cfg Config

	width, height, period int32

	cells []Cell
	// yStride converts (x,y,t) to an index: (x+1)*yStride + (y+1)*period + t,
	// where yStride = (height+2)*period.
	yStride int32

	head   Ref // first cell in search order, fixed at construction
	cursor Ref // next unknown cell to decide, NoRef when none remain

	setStack   []setEntry
	checkIndex int

	cellCount []int32 // non-background population per phase

	frontValid bool
	frontTotal int32
	frontKnown int32
	frontAlive int32

	conflicts int64

	rng *rand.Rand

	// level is the current decision depth, incremented by decide() and
	// stamped onto Cell.Level; only consulted by Backjump's conflict
	// analysis, ignored by LifeSrc.
	level uint32

	// lastConflict records the identifying reason (if any) for the most
	// recent proceed()/setCell() failure, consumed by Backjump.Search.
	lastConflict Conflict
}

// idx converts a coordinate already known to be in range into an
// index into World.cells.
func (w *World) idx(x, y, t int32) Ref {
	return Ref((x+1)*w.yStride + (y+1)*w.period + t)
}

func (w *World) inBounds(x, y int32) bool {
	return x >= -1 && x <= w.width && y >= -1 && y <= w.height
}

func (w *World) gen() int { return w.cfg.Rule.Gen() }

// newWorld builds the cell arena and wires every link described in
// spec §4.2, grounded on LifeCell/World construction in
// original_source/lib/src/cells.rs and lib/src/world.rs.
func newWorld(c *Config) (*World, error) {
	w := &World{
		cfg:       *c,
		width:     c.Width,
		height:    c.Height,
		period:    c.Period,
		cellCount: make([]int32, c.Period),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	w.yStride = (c.Height + 2) * c.Period
	w.cells = make([]Cell, int(c.Width+2)*int(c.Height+2)*int(c.Period))

	for x := int32(-1); x <= w.width; x++ {
		for y := int32(-1); y <= w.height; y++ {
			for t := int32(0); t < w.period; t++ {
				cell := &w.cells[w.idx(x, y, t)]
				cell.Coord = Coord{X: x, Y: y, T: t}
				cell.Background = w.backgroundAt(t)
				cell.State = UnknownState
				cell.Pred, cell.Succ = NoRef, NoRef
				for i := range cell.Nbhd {
					cell.Nbhd[i] = NoRef
				}
				cell.Desc = c.Rule.NewDesc(cell.Background, w.backgroundAt((t+1)%w.period))
			}
		}
	}

	w.linkNeighbors()
	w.linkPredSucc()
	w.pinDiagonalWidth()
	w.linkSymmetry()
	w.computeFront()
	w.buildSearchOrder()

	for x := int32(-1); x <= w.width; x++ {
		for y := int32(-1); y <= w.height; y++ {
			halo := x == -1 || x == w.width || y == -1 || y == w.height
			for t := int32(0); t < w.period; t++ {
				ref := w.idx(x, y, t)
				cell := &w.cells[ref]
				if !halo && !cell.pinned {
					continue
				}
				if !w.setCell(ref, cell.Background, Reason{Kind: ReasonKnown}) {
					return nil, newBuildError(ErrInvalidState, "fixed cell at %v rejected its own background", cell.Coord)
				}
			}
		}
	}

	for _, kc := range c.KnownCells {
		coord := c.Translate(kc.Coord)
		if !w.inBounds(coord.X, coord.Y) {
			continue
		}
		ref := w.idx(coord.X, coord.Y, coord.T)
		if !w.setCell(ref, kc.State, Reason{Kind: ReasonKnown}) {
			return nil, newBuildError(ErrInvalidState, "known cell at %v conflicts with world constraints", kc.Coord)
		}
	}

	if !w.proceed() {
		return nil, newBuildError(ErrInvalidState, "known cells are jointly contradictory")
	}
	// Pre-search: fold whatever was deduced into the starting state by
	// discarding the set-stack, so it is no longer a backtrack target
	// (spec §4.3's "pre-searches").
	w.setStack = w.setStack[:0]
	w.checkIndex = 0
	w.cursor = w.head
	w.advanceCursor()

	return w, nil
}

// backgroundAt returns the background state for phase t: constant DEAD
// for rules without B0, otherwise a 2-cycle alternation (spec's "DEAD
// for rules without B0, else alternating with t modulo g" — this port
// always alternates DEAD/ALIVE rather than cycling through every one
// of g states, since background is never a dying value).
func (w *World) backgroundAt(t int32) State {
	if !w.cfg.Rule.HasB0() {
		return DEAD
	}
	if ((t % 2) + 2) % 2 == 0 {
		return DEAD
	}
	return ALIVE
}

func (w *World) linkNeighbors() {
	offsets := [8][2]int32{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for x := int32(-1); x <= w.width; x++ {
		for y := int32(-1); y <= w.height; y++ {
			for t := int32(0); t < w.period; t++ {
				cell := &w.cells[w.idx(x, y, t)]
				for i, off := range offsets {
					nx, ny := x+off[0], y+off[1]
					if w.inBounds(nx, ny) {
						cell.Nbhd[i] = w.idx(nx, ny, t)
					}
				}
			}
		}
	}
}

func (w *World) linkPredSucc() {
	for x := int32(0); x < w.width; x++ {
		for y := int32(0); y < w.height; y++ {
			for t := int32(0); t < w.period; t++ {
				self := w.idx(x, y, t)
				if t > 0 {
					w.cells[self].Pred = w.idx(x, y, t-1)
				} else {
					pc := w.cfg.Translate(Coord{X: x, Y: y, T: -1})
					if w.inBounds(pc.X, pc.Y) {
						w.cells[self].Pred = w.idx(pc.X, pc.Y, pc.T)
					}
				}
				if t < w.period-1 {
					w.cells[self].Succ = w.idx(x, y, t+1)
				} else {
					sc := w.cfg.Translate(Coord{X: x, Y: y, T: w.period})
					if w.inBounds(sc.X, sc.Y) {
						w.cells[self].Succ = w.idx(sc.X, sc.Y, sc.T)
					}
				}
			}
		}
	}
}

// pinDiagonalWidth forces cells outside the diagonal-width band to
// permanent DEAD background, per spec §4.2.
func (w *World) pinDiagonalWidth() {
	if w.cfg.DiagonalWidth == nil {
		return
	}
	d := *w.cfg.DiagonalWidth
	for x := int32(0); x < w.width; x++ {
		for y := int32(0); y < w.height; y++ {
			dist := x - y
			if dist < 0 {
				dist = -dist
			}
			if dist < d {
				continue
			}
			for t := int32(0); t < w.period; t++ {
				cell := &w.cells[w.idx(x, y, t)]
				cell.Background = DEAD
				cell.pinned = true
			}
		}
	}
}

func (w *World) linkSymmetry() {
	members := w.cfg.Symmetry.Members()
	for x := int32(0); x < w.width; x++ {
		for y := int32(0); y < w.height; y++ {
			for t := int32(0); t < w.period; t++ {
				self := w.idx(x, y, t)
				cell := &w.cells[self]
				if cell.pinned {
					continue
				}
				for _, m := range members {
					if m == Id {
						continue
					}
					img := m.ActOn(Coord{X: x, Y: y, T: t}, w.width, w.height)
					if img.X < 0 || img.X >= w.width || img.Y < 0 || img.Y >= w.height {
						cell.Background = DEAD
						cell.pinned = true
						cell.Sym = nil
						break
					}
					cell.Sym = append(cell.Sym, w.idx(img.X, img.Y, t))
				}
			}
		}
	}
}

func (w *World) computeFront() {
	switch w.cfg.SearchOrder {
	case ColumnFirst:
		w.frontValid = !w.cfg.Symmetry.RequireSquareWorld() || w.width == w.height
	default:
		w.frontValid = true
	}
	if w.cfg.DiagonalWidth != nil {
		w.frontValid = false
	}
	if !w.frontValid {
		return
	}
	for x := int32(0); x < w.width; x++ {
		for y := int32(0); y < w.height; y++ {
			isFront := false
			switch w.cfg.SearchOrder {
			case ColumnFirst:
				isFront = x == 0
			case Diagonal:
				isFront = x == 0 || y == 0
			default: // RowFirst, AutoOrder
				isFront = y == 0
			}
			if !isFront {
				continue
			}
			for t := int32(0); t < w.period; t++ {
				cell := &w.cells[w.idx(x, y, t)]
				if cell.pinned {
					continue
				}
				cell.IsFront = true
				w.frontTotal++
			}
		}
	}
}

// buildSearchOrder lays out the decide order and wires Cell.Next in
// reverse so the chain head is the first cell considered (spec §4.2).
// Only one cell per symmetry orbit is included: the lexicographically
// first among itself and its Sym peers, since propagate's symmetry
// step forces the rest.
func (w *World) buildSearchOrder() {
	var order []Ref
	add := func(x, y int32) {
		for t := int32(0); t < w.period; t++ {
			self := w.idx(x, y, t)
			cell := &w.cells[self]
			if cell.pinned {
				continue
			}
			canonical := true
			for _, p := range cell.Sym {
				if p < self {
					canonical = false
					break
				}
			}
			if canonical {
				order = append(order, self)
			}
		}
	}
	switch w.cfg.SearchOrder {
	case ColumnFirst:
		for x := int32(0); x < w.width; x++ {
			for y := int32(0); y < w.height; y++ {
				add(x, y)
			}
		}
	case Diagonal:
		for s := int32(0); s < w.width+w.height-1; s++ {
			for x := int32(0); x <= s; x++ {
				y := s - x
				if x < w.width && y >= 0 && y < w.height {
					add(x, y)
				}
			}
		}
	default: // RowFirst, AutoOrder
		for y := int32(0); y < w.height; y++ {
			for x := int32(0); x < w.width; x++ {
				add(x, y)
			}
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		self := order[i]
		w.cells[self].Next = w.head
		w.head = self
	}
	w.cursor = w.head
}

func (w *World) advanceCursor() {
	for w.cursor.Valid() && w.cells[w.cursor].State != UnknownState {
		w.cursor = w.cells[w.cursor].Next
	}
}

// Config returns a copy of the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

func (w *World) IsGenRule() bool { return w.cfg.Rule.IsGen() }
func (w *World) IsB0Rule() bool  { return w.cfg.Rule.HasB0() }

func (w *World) Conflicts() int64 { return w.conflicts }

func (w *World) CellCountGen(t int32) int32 {
	if t < 0 || t >= w.period {
		return 0
	}
	return w.cellCount[t]
}

func (w *World) cellCountMin() int32 {
	min := w.cellCount[0]
	for _, c := range w.cellCount[1:] {
		if c < min {
			min = c
		}
	}
	return min
}

func (w *World) CellCount() int32 { return w.cellCountMin() }

func (w *World) SetMaxCellCount(n *int) {
	w.cfg.MaxCellCount = n
}

func (w *World) GetCellState(c Coord) (State, bool) {
	c = w.cfg.Translate(c)
	if !w.inBounds(c.X, c.Y) {
		return UnknownState, false
	}
	cell := &w.cells[w.idx(c.X, c.Y, c.T)]
	if cell.State == UnknownState {
		return UnknownState, false
	}
	return cell.State, true
}
