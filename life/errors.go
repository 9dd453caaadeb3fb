package life

import "fmt"

// BuildError is returned by Config.Build when the configuration is
// self-contradictory and no World can be constructed from it. Search
// ever reaching a contradictory cell state is a Conflict, not an
// error; BuildError only ever comes from the one-time build step
// (spec §8's construction-time error taxonomy).
type BuildError struct {
	Kind BuildErrorKind
	msg  string
}

func (e *BuildError) Error() string { return e.msg }

// BuildErrorKind enumerates the ways a Config can fail to build.
type BuildErrorKind int

const (
	ErrNonPositive BuildErrorKind = iota
	ErrSquareWorld
	ErrDiagonalWidth
	ErrB0S8Rule
	ErrInvalidState
	ErrParseRule
)

func newBuildError(kind BuildErrorKind, format string, args ...any) *BuildError {
	return &BuildError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Is lets errors.Is(err, &life.BuildError{Kind: life.ErrNonPositive})
// style checks match any BuildError of the same Kind, using a
// Kind-only BuildError as the sentinel value.
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	return ok && t.Kind == e.Kind
}
