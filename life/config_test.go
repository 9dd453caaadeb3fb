package life

import (
	"errors"
	"testing"
)

func wantBuildErrorKind(t *testing.T, err error, kind BuildErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("Build() = nil error, want BuildErrorKind %d", kind)
	}
	if !errors.Is(err, &BuildError{Kind: kind}) {
		t.Fatalf("Build() error = %v, want BuildErrorKind %d", err, kind)
	}
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	cases := []*Config{
		NewConfig(0, 4, 1, NewLife([]int{3}, []int{2, 3})),
		NewConfig(4, 0, 1, NewLife([]int{3}, []int{2, 3})),
		NewConfig(4, 4, 0, NewLife([]int{3}, []int{2, 3})),
	}
	for i, cfg := range cases {
		_, err := cfg.Build()
		wantBuildErrorKind(t, err, ErrNonPositive)
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestValidateRejectsNonPositiveDiagonalWidth(t *testing.T) {
	cfg := NewConfig(4, 4, 1, NewLife([]int{3}, []int{2, 3}))
	n := int32(0)
	cfg.DiagonalWidth = &n
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrNonPositive)
}

func TestValidateRejectsNilRule(t *testing.T) {
	cfg := NewConfig(4, 4, 1, nil)
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrParseRule)
}

func TestValidateRejectsNonSquareWorldForDiagonalTransform(t *testing.T) {
	cfg := NewConfig(4, 6, 1, NewLife([]int{3}, []int{2, 3}))
	cfg.Transform = Rotate90
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrSquareWorld)
}

func TestValidateRejectsNonSquareWorldForDiagonalSymmetry(t *testing.T) {
	cfg := NewConfig(4, 6, 1, NewLife([]int{3}, []int{2, 3}))
	cfg.Symmetry = D8
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrSquareWorld)
}

func TestValidateRejectsDiagonalWidthWithIncompatibleTransform(t *testing.T) {
	cfg := NewConfig(4, 4, 1, NewLife([]int{3}, []int{2, 3}))
	cfg.Transform = Rotate90
	n := int32(2)
	cfg.DiagonalWidth = &n
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrDiagonalWidth)
}

func TestValidateRejectsDiagonalWidthWithIncompatibleSymmetry(t *testing.T) {
	cfg := NewConfig(4, 4, 1, NewLife([]int{3}, []int{2, 3}))
	cfg.Symmetry = C4
	n := int32(2)
	cfg.DiagonalWidth = &n
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrDiagonalWidth)
}

func TestValidateRejectsB0S8Rule(t *testing.T) {
	birth := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	survive := []int{8}
	cfg := NewConfig(4, 4, 1, NewLife(birth, survive))
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrB0S8Rule)
}

func TestValidateRejectsBackjumpWithGenerationsRule(t *testing.T) {
	cfg := NewConfig(4, 4, 1, NewLifeGen([]int{3}, []int{2, 3}, 4))
	cfg.Backjump = true
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrParseRule)
}

func TestValidateRejectsOutOfRangeKnownCellState(t *testing.T) {
	cfg := NewConfig(4, 4, 1, NewLifeGen([]int{3}, []int{2, 3}, 3))
	cfg.KnownCells = []KnownCell{
		{Coord: Coord{X: 0, Y: 0, T: 0}, State: State(5)},
	}
	_, err := cfg.Build()
	wantBuildErrorKind(t, err, ErrInvalidState)
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := NewConfig(4, 4, 1, NewLife([]int{3}, []int{2, 3}))
	if _, err := cfg.Build(); err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
}

func TestNewConfigDefaultsSkipSubperiodOn(t *testing.T) {
	cfg := NewConfig(4, 4, 1, NewLife([]int{3}, []int{2, 3}))
	if !cfg.SkipSubperiod {
		t.Fatalf("NewConfig: SkipSubperiod = false, want true")
	}
	if cfg.SearchOrder != RowFirst {
		t.Fatalf("NewConfig: SearchOrder = %v, want RowFirst", cfg.SearchOrder)
	}
	if cfg.NewState != ChooseDead {
		t.Fatalf("NewConfig: NewState = %v, want ChooseDead", cfg.NewState)
	}
	if cfg.Backjump {
		t.Fatalf("NewConfig: Backjump = true, want false")
	}
}

func TestBuildWithBackjumpReturnsBackjumpSearch(t *testing.T) {
	cfg := NewConfig(3, 3, 1, NewLife([]int{3}, []int{2, 3}))
	cfg.Backjump = true
	s, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if _, ok := s.(*Backjump); !ok {
		t.Fatalf("Build() = %T, want *Backjump", s)
	}
}

func TestBuildWithoutBackjumpReturnsLifeSrc(t *testing.T) {
	cfg := NewConfig(3, 3, 1, NewLife([]int{3}, []int{2, 3}))
	s, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if _, ok := s.(*LifeSrc); !ok {
		t.Fatalf("Build() = %T, want *LifeSrc", s)
	}
}
