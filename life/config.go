package life

// SearchOrder chooses the order cells are visited by the decide step.
type SearchOrder int

const (
	RowFirst SearchOrder = iota
	ColumnFirst
	Diagonal
	AutoOrder
)

// NewState is the policy used to pick a state when Decide assigns one
// to an otherwise-unconstrained cell.
type NewState int

const (
	ChooseDead NewState = iota
	ChooseAlive
	ChooseRandom
)

// KnownCell is one entry of Config.KnownCells: a coordinate the caller
// already knows the state of before search begins.
type KnownCell struct {
	Coord Coord
	State State
}

// Config describes a search instance end to end: a bounding box, a
// period and period-closure isometry, a symmetry constraint, and a
// rule, plus the tuning knobs from spec §6's configuration table.
// RuleString is carried only for display/round-tripping; Rule is the
// already-built table the World actually consults, since parsing rule
// strings is peripheral glue left to the rulestring package.
type Config struct {
	Width, Height, Period int32
	Dx, Dy                int32
	Transform             Transform
	Symmetry              Symmetry

	Rule       Rule
	RuleString string

	SearchOrder SearchOrder
	NewState    NewState

	MaxCellCount    *int
	ReduceMax       bool
	DiagonalWidth   *int32
	SkipSubperiod   bool
	SkipSubsymmetry bool
	KnownCells      []KnownCell
	Backjump        bool
}

// NewConfig returns a Config with the documented defaults: SkipSubperiod
// on, everything else at its zero value (RowFirst order, ChooseDead,
// no cell cap, chronological LifeSrc search).
func NewConfig(width, height, period int32, rule Rule) *Config {
	return &Config{
		Width:         width,
		Height:        height,
		Period:        period,
		Rule:          rule,
		SkipSubperiod: true,
	}
}

// Build validates c, constructs the World it describes, and wraps it
// in the selected search algorithm (spec §4.3's builder plus §6's
// "a world is obtained by Config.build()"). It never runs search; it
// only wires the cell graph, descriptors, known cells, and a
// pre-search to quiescence.
func (c *Config) Build() (Search, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	w, err := newWorld(c)
	if err != nil {
		return nil, err
	}
	if c.Backjump {
		return NewBackjump(w), nil
	}
	return NewLifeSrc(w), nil
}

func (c *Config) validate() error {
	if c.Width <= 0 {
		return newBuildError(ErrNonPositive, "width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return newBuildError(ErrNonPositive, "height must be positive, got %d", c.Height)
	}
	if c.Period <= 0 {
		return newBuildError(ErrNonPositive, "period must be positive, got %d", c.Period)
	}
	if c.DiagonalWidth != nil && *c.DiagonalWidth <= 0 {
		return newBuildError(ErrNonPositive, "diagonal_width must be positive, got %d", *c.DiagonalWidth)
	}
	if c.Rule == nil {
		return newBuildError(ErrParseRule, "no rule configured")
	}
	if c.Transform.RequireSquareWorld() && c.Width != c.Height {
		return newBuildError(ErrSquareWorld, "transform %v requires a square world, got %dx%d", c.Transform, c.Width, c.Height)
	}
	if c.Symmetry.RequireSquareWorld() && c.Width != c.Height {
		return newBuildError(ErrSquareWorld, "symmetry %v requires a square world, got %dx%d", c.Symmetry, c.Width, c.Height)
	}
	if c.DiagonalWidth != nil {
		if c.Transform.RequireNoDiagonalWidth() {
			return newBuildError(ErrDiagonalWidth, "transform %v is incompatible with a diagonal width restriction", c.Transform)
		}
		if c.Symmetry.RequireNoDiagonalWidth() {
			return newBuildError(ErrDiagonalWidth, "symmetry %v is incompatible with a diagonal width restriction", c.Symmetry)
		}
	}
	if c.Rule.HasB0() && c.Rule.HasB0S8() {
		return newBuildError(ErrB0S8Rule, "rule has both B0 and S8, which this engine does not support")
	}
	if c.Rule.IsGen() && c.Backjump {
		return newBuildError(ErrParseRule, "backjump search is not supported for Generations rules")
	}
	gen := c.Rule.Gen()
	for _, kc := range c.KnownCells {
		if kc.State.Known() && (int(kc.State) < 0 || int(kc.State) >= gen) {
			return newBuildError(ErrInvalidState, "known cell state %d out of range for %d-state rule", kc.State, gen)
		}
	}
	return nil
}
