// Package rulestring parses Life-like rule strings into the tables
// life.Config needs, so callers can hand search a "B3/S23" rather than
// build a life.Rule by hand.
//
// Grounded on LifeLike::from_str in
// original_source/src/rule.rs: a rule string is `B<digits>S<digits>`
// or `B<digits>/S<digits>`, case-insensitive on the B/S letters,
// digits restricted to 0-8 (9 neighbors never occurs for an 8-cell
// Moore neighborhood). A Generations rule appends `/C<n>` or `/G<n>`
// giving the state count.
//
// Parsing a rule string is explicitly peripheral to this engine (spec
// lists rule-string syntax as a core Non-goal): this package exists so
// callers have a convenient entry point, not because the engine itself
// depends on any particular textual notation. Isotropic non-totalistic
// letter suffixes (Golly's "2c3q..." notation) are accordingly out of
// scope; ParseIsotropic takes birth/survival neighbor bitmasks
// directly rather than expanding letter codes.
package rulestring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/telepair/lifesearch/life"
)

// ParseError reports a rule string that could not be parsed.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rulestring: %q: %s", e.Input, e.Msg)
}

// Parse reads a totalistic Life-like rule string such as "B3/S23" or
// "B36/S23/C3" (Generations, three states) and returns the life.Rule
// it describes.
func Parse(input string) (life.Rule, error) {
	b, s, gen, err := parseBSC(input)
	if err != nil {
		return nil, err
	}
	if gen > 2 {
		return life.NewLifeGen(b, s, gen), nil
	}
	return life.NewLife(b, s), nil
}

// parseBSC splits input into birth digits, survival digits, and an
// optional trailing generation count (default 2, meaning non-Gen).
func parseBSC(input string) (b, s []int, gen int, err error) {
	fail := func(msg string) ([]int, []int, int, error) {
		return nil, nil, 0, &ParseError{Input: input, Msg: msg}
	}

	fields := strings.Split(input, "/")
	var bPart, sPart, cPart string
	switch len(fields) {
	case 1:
		// "B3S23" with no slash at all, only valid if a lone 'S' or
		// 's' appears somewhere after the birth digits.
		idx := strings.IndexAny(fields[0], "sS")
		if idx < 0 {
			return fail("missing S term")
		}
		bPart, sPart = fields[0][:idx], fields[0][idx:]
	case 2:
		bPart, sPart = fields[0], fields[1]
	case 3:
		bPart, sPart, cPart = fields[0], fields[1], fields[2]
	default:
		return fail("too many '/'-separated fields")
	}

	bDigits, ok := stripLetter(bPart, 'b')
	if !ok {
		return fail("birth field must start with B")
	}
	sDigits, ok := stripLetter(sPart, 's')
	if !ok {
		return fail("survival field must start with S")
	}

	b, err2 := parseDigits(bDigits)
	if err2 != nil {
		return fail(err2.Error())
	}
	s, err2 = parseDigits(sDigits)
	if err2 != nil {
		return fail(err2.Error())
	}

	gen = 2
	if cPart != "" {
		cDigits, ok := stripLetter(cPart, 'c')
		if !ok {
			cDigits, ok = stripLetter(cPart, 'g')
		}
		if !ok {
			return fail("generation field must start with C or G")
		}
		n, convErr := strconv.Atoi(cDigits)
		if convErr != nil || n < 2 {
			return fail("generation count must be an integer >= 2")
		}
		gen = n
	}
	return b, s, gen, nil
}

// stripLetter reports whether s begins with letter (either case),
// returning the remainder.
func stripLetter(s string, letter byte) (string, bool) {
	if len(s) == 0 {
		return "", false
	}
	c := s[0]
	if c != letter && c != letter-('a'-'A') {
		return "", false
	}
	return s[1:], true
}

// parseDigits converts a run of decimal digits, each 0-8, into the
// neighbor-count set it names.
func parseDigits(digits string) ([]int, error) {
	out := make([]int, 0, len(digits))
	for _, c := range digits {
		if c < '0' || c > '8' {
			return nil, fmt.Errorf("neighbor count %q out of range 0-8", c)
		}
		out = append(out, int(c-'0'))
	}
	return out, nil
}

// ParseIsotropic builds an isotropic non-totalistic rule directly from
// birth/survival neighbor bitmasks (bit i set means neighbor i must be
// alive, neighbors numbered row by row from the top-left: 0 top-left,
// 1 top, 2 top-right, 3 left, 4 right, 5 bottom-left, 6 bottom,
// 7 bottom-right). This is the engine-native form; expanding
// Golly's letter-suffixed notation into these masks is left to the
// caller.
func ParseIsotropic(b, s []int, gen int) life.Rule {
	if gen > 2 {
		return life.NewNtLifeGen(b, s, gen)
	}
	return life.NewNtLife(b, s)
}
