package life

// Transform is one of the 8 elements of the dihedral group D8: the
// rotations and reflections that a world's time translation can carry
// a coordinate through between one period and the next (spec §4.1's
// "transform" configuration option).
type Transform int

const (
	Id Transform = iota
	Rotate90
	Rotate180
	Rotate270
	FlipRow
	FlipCol
	FlipDiag
	FlipAntidiag
)

// transformMul is the D8 Cayley table, indexed [self][rhs], giving the
// transform equivalent to applying rhs then self. Grounded on the
// `impl Mul for Transform` match in original_source/lib/src/config/d8.rs.
var transformMul = [8][8]Transform{
	Id:           {Id, Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag},
	Rotate90:     {Rotate90, Rotate180, Rotate270, Id, FlipAntidiag, FlipDiag, FlipRow, FlipCol},
	Rotate180:    {Rotate180, Rotate270, Id, Rotate90, FlipCol, FlipRow, FlipAntidiag, FlipDiag},
	Rotate270:    {Rotate270, Id, Rotate90, Rotate180, FlipDiag, FlipAntidiag, FlipCol, FlipRow},
	FlipRow:      {FlipRow, FlipDiag, FlipCol, FlipAntidiag, Id, Rotate180, Rotate90, Rotate270},
	FlipCol:      {FlipCol, FlipAntidiag, FlipRow, FlipDiag, Rotate180, Id, Rotate270, Rotate90},
	FlipDiag:     {FlipDiag, FlipCol, FlipAntidiag, FlipRow, Rotate270, Rotate90, Id, Rotate180},
	FlipAntidiag: {FlipAntidiag, FlipRow, FlipDiag, FlipCol, Rotate90, Rotate270, Rotate180, Id},
}

// Mul returns the transform equivalent to applying rhs first, then self.
func (t Transform) Mul(rhs Transform) Transform {
	return transformMul[t][rhs]
}

// Order is the order of t in the symmetry group: 1 for Id, 4 for the
// two quarter turns, 2 for everything else.
func (t Transform) Order() int {
	switch t {
	case Id:
		return 1
	case Rotate90, Rotate270:
		return 4
	default:
		return 2
	}
}

// Inverse returns t's inverse transform.
func (t Transform) Inverse() Transform {
	switch t {
	case Rotate90:
		return Rotate270
	case Rotate270:
		return Rotate90
	default:
		return t
	}
}

// IsIn reports whether sym's symmetry group contains t, i.e. whether a
// pattern with symmetry sym is invariant under t.
func (t Transform) IsIn(sym Symmetry) bool {
	if t == Id || sym == D8 {
		return true
	}
	switch {
	case t == Rotate90 && sym == C4:
		return true
	case t == Rotate180 && (sym == C2 || sym == C4 || sym == D4Ortho || sym == D4Diag):
		return true
	case t == Rotate270 && sym == C4:
		return true
	case t == FlipRow && (sym == D2Row || sym == D4Ortho):
		return true
	case t == FlipCol && (sym == D2Col || sym == D4Ortho):
		return true
	case t == FlipDiag && (sym == D2Diag || sym == D4Diag):
		return true
	case t == FlipAntidiag && (sym == D2Antidiag || sym == D4Diag):
		return true
	default:
		return false
	}
}

// RequireSquareWorld reports whether t only makes sense when width
// equals height: true for R90, R270, F\ and F/.
func (t Transform) RequireSquareWorld() bool {
	return !t.IsIn(D4Ortho)
}

// RequireNoDiagonalWidth reports whether t only makes sense when the
// rule has no diagonal width: true for R90, R270, F- and F|.
func (t Transform) RequireNoDiagonalWidth() bool {
	return !t.IsIn(D4Diag)
}

// ActOn applies t to coord, leaving the generation component
// untouched. width and height are the world's dimensions.
func (t Transform) ActOn(coord Coord, width, height int32) Coord {
	x, y := coord.X, coord.Y
	switch t {
	case Id:
		return coord
	case Rotate90:
		return Coord{X: y, Y: width - 1 - x, T: coord.T}
	case Rotate180:
		return Coord{X: width - 1 - x, Y: height - 1 - y, T: coord.T}
	case Rotate270:
		return Coord{X: height - 1 - y, Y: x, T: coord.T}
	case FlipRow:
		return Coord{X: x, Y: height - 1 - y, T: coord.T}
	case FlipCol:
		return Coord{X: width - 1 - x, Y: y, T: coord.T}
	case FlipDiag:
		return Coord{X: y, Y: x, T: coord.T}
	case FlipAntidiag:
		return Coord{X: height - 1 - y, Y: width - 1 - x, T: coord.T}
	default:
		return coord
	}
}

// String names t the way rule-string-adjacent tooling and error
// messages spell it in the original.
func (t Transform) String() string {
	switch t {
	case Id:
		return "Id"
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	case FlipRow:
		return "FlipRow"
	case FlipCol:
		return "FlipCol"
	case FlipDiag:
		return "FlipDiag"
	case FlipAntidiag:
		return "FlipAntidiag"
	default:
		return "Transform(?)"
	}
}

// Symmetry is one of the 10 subgroups of D8 a pattern may be
// constrained to, spec §4.1's "symmetry" configuration option.
type Symmetry int

const (
	C1 Symmetry = iota
	C2
	C4
	D2Row
	D2Col
	D2Diag
	D2Antidiag
	D4Ortho
	D4Diag
	D8
)

// symmetryNames and symmetryByName back Symmetry's String/parse pair,
// using the notation borrowed from Logic Life Search that the rule
// string and CLI surfaces print and accept.
var symmetryNames = [...]string{"C1", "C2", "C4", "D2-", "D2|", "D2\\", "D2/", "D4+", "D4X", "D8"}

func (s Symmetry) String() string {
	if s < C1 || s > D8 {
		return "Symmetry(?)"
	}
	return symmetryNames[s]
}

// ParseSymmetry parses the Logic-Life-Search notation for a symmetry.
func ParseSymmetry(s string) (Symmetry, bool) {
	for i, name := range symmetryNames {
		if name == s {
			return Symmetry(i), true
		}
	}
	return C1, false
}

// isSubgroupOf is the subgroup table behind IsSubgroupOf, grounded on
// Symmetry::is_subgroup_of.
func (s Symmetry) isSubgroupOf(other Symmetry) bool {
	if s == C1 || other == D8 {
		return true
	}
	switch {
	case s == C2 && (other == C2 || other == C4 || other == D4Ortho || other == D4Diag):
		return true
	case s == C4 && other == C4:
		return true
	case s == D2Row && (other == D2Row || other == D4Ortho):
		return true
	case s == D2Col && (other == D2Col || other == D4Ortho):
		return true
	case s == D2Diag && (other == D2Diag || other == D4Diag):
		return true
	case s == D2Antidiag && (other == D2Antidiag || other == D4Diag):
		return true
	case s == D4Ortho && other == D4Ortho:
		return true
	case s == D4Diag && other == D4Diag:
		return true
	default:
		return false
	}
}

// IsSubgroupOf reports whether every pattern with symmetry other also
// has symmetry s, i.e. s's symmetry group is a subgroup of other's.
func (s Symmetry) IsSubgroupOf(other Symmetry) bool { return s.isSubgroupOf(other) }

// Less orders symmetries by subgroup containment: C1 is smallest,
// everything is smaller than D8. Returns false when the two are
// incomparable (neither is a subgroup of the other), matching the
// partial order in the original; callers that need a strict order
// should not rely on Less alone for equal/incomparable discrimination.
func (s Symmetry) Less(other Symmetry) bool {
	return s != other && s.isSubgroupOf(other)
}

// RequireSquareWorld reports whether s only makes sense for a square
// world: true for C4, D2\, D2/, D4X and D8.
func (s Symmetry) RequireSquareWorld() bool {
	return !s.isSubgroupOf(D4Ortho)
}

// RequireNoDiagonalWidth reports whether s only makes sense for a
// rule with no diagonal width: true for C4, D2-, D2|, D4+ and D8.
func (s Symmetry) RequireNoDiagonalWidth() bool {
	return !s.isSubgroupOf(D4Diag)
}

// Members lists the transforms in s's symmetry group, Id first.
func (s Symmetry) Members() []Transform {
	switch s {
	case C1:
		return []Transform{Id}
	case C2:
		return []Transform{Id, Rotate180}
	case C4:
		return []Transform{Id, Rotate90, Rotate180, Rotate270}
	case D2Row:
		return []Transform{Id, FlipRow}
	case D2Col:
		return []Transform{Id, FlipCol}
	case D2Diag:
		return []Transform{Id, FlipDiag}
	case D2Antidiag:
		return []Transform{Id, FlipAntidiag}
	case D4Ortho:
		return []Transform{Id, FlipRow, FlipCol, Rotate180}
	case D4Diag:
		return []Transform{Id, FlipDiag, FlipAntidiag, Rotate180}
	case D8:
		return []Transform{Id, Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	default:
		return []Transform{Id}
	}
}

// Cosets lists coset representatives of s's symmetry group seen as a
// subgroup of D8, Id first. Used by the subsymmetry filter
// (isSubsymmetric); Cell.Sym is wired from Members instead.
func (s Symmetry) Cosets() []Transform {
	switch s {
	case C1:
		return []Transform{Id, Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	case C2:
		return []Transform{Id, Rotate90, FlipRow, FlipDiag}
	case C4:
		return []Transform{Id, FlipRow}
	case D2Row:
		return []Transform{Id, FlipCol, FlipDiag, FlipAntidiag}
	case D2Col:
		return []Transform{Id, FlipRow, FlipDiag, FlipAntidiag}
	case D2Diag:
		return []Transform{Id, FlipRow, FlipCol, FlipAntidiag}
	case D2Antidiag:
		return []Transform{Id, FlipRow, FlipCol, FlipDiag}
	case D4Ortho:
		return []Transform{Id, FlipDiag}
	case D4Diag:
		return []Transform{Id, FlipRow}
	case D8:
		return []Transform{Id}
	default:
		return []Transform{Id}
	}
}

// Translate maps coord into the fundamental period range [0, period)
// by repeatedly applying the configured transform/offset/period, the
// same loop as Config::translate. It is used to resolve a cell's
// predecessor/successor across a period boundary under a non-trivial
// transform.
func (c *Config) Translate(coord Coord) Coord {
	for coord.T < 0 {
		coord = c.Transform.Inverse().ActOn(coord, c.Width, c.Height)
		coord.X -= c.Dx
		coord.Y -= c.Dy
		coord.T += c.Period
	}
	for coord.T >= c.Period {
		coord.X += c.Dx
		coord.Y += c.Dy
		coord.T -= c.Period
		coord = c.Transform.ActOn(coord, c.Width, c.Height)
	}
	return coord
}
