// Package rle reads and writes the run-length-encoded pattern format
// used throughout Life tooling (the `#C`/`#R`/header-line/run-data
// format referenced by the fixtures under original_source). It is
// pure I/O glue around life.Search/life.Config: the search engine
// itself never touches a file or a byte stream.
package rle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/telepair/lifesearch/life"
)

// Pattern is a decoded RLE document: its bounding box, rule string,
// and the list of live cells (generation 0 only; RLE has no notion of
// multiple time phases).
type Pattern struct {
	Width, Height int
	RuleString    string
	Cells         []life.KnownCell
}

// Decode parses an RLE document from r. Comment lines (`#C`, `#N`,
// `#O`, ...) are skipped; the lone `#R` header, if present, populates
// nothing here since a bounding offset is not meaningful without a
// target Config and is left to the caller.
func Decode(r io.Reader) (*Pattern, error) {
	scanner := bufio.NewScanner(r)
	p := &Pattern{}
	var headerSeen bool
	var body strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if !headerSeen {
			if err := parseHeader(line, p); err != nil {
				return nil, err
			}
			headerSeen = true
			continue
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rle: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("rle: missing header line")
	}

	cells, err := decodeRuns(body.String(), p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	p.Cells = cells
	return p, nil
}

// parseHeader parses the `x = .., y = .., rule = ..` header line.
func parseHeader(line string, p *Pattern) error {
	fields := strings.Split(line, ",")
	for _, field := range fields {
		kv := strings.SplitN(field, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		switch key {
		case "x":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("rle: bad x value %q", val)
			}
			p.Width = n
		case "y":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("rle: bad y value %q", val)
			}
			p.Height = n
		case "rule":
			p.RuleString = val
		}
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("rle: header missing x/y")
	}
	return nil
}

// decodeRuns walks the run-length-encoded cell body: digits give a run
// count, `b`/`o` give dead/alive, `$` ends a row, `!` ends the pattern.
func decodeRuns(body string, width, height int) ([]life.KnownCell, error) {
	var cells []life.KnownCell
	x, y := 0, 0
	count := 0

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
		case c == 'b' || c == 'o':
			n := count
			if n == 0 {
				n = 1
			}
			if c == 'o' {
				for k := 0; k < n; k++ {
					cells = append(cells, life.KnownCell{
						Coord: life.Coord{X: int32(x + k), Y: int32(y), T: 0},
						State: life.ALIVE,
					})
				}
			}
			x += n
			count = 0
		case c == '$':
			n := count
			if n == 0 {
				n = 1
			}
			y += n
			x = 0
			count = 0
		case c == '!':
			return cells, nil
		default:
			return nil, fmt.Errorf("rle: unexpected character %q in run data", c)
		}
	}
	return nil, fmt.Errorf("rle: run data missing terminating '!'")
}

// Encode writes generation 0 of s as an RLE document to w. A cell is
// written as `o` when its state is ALIVE and as `b` otherwise (DEAD,
// a Generations dying state, or unknown); the background state of B0
// rules is not taken into account.
func Encode(w io.Writer, s life.Search, width, height int) error {
	cfg := s.Config()
	if _, err := fmt.Fprintf(w, "x = %d, y = %d, rule = %s\n", width, height, cfg.RuleString); err != nil {
		return err
	}

	var b strings.Builder
	lineLen := 0
	writeToken := func(tok string) error {
		if lineLen+len(tok) > 70 {
			b.WriteByte('\n')
			lineLen = 0
		}
		b.WriteString(tok)
		lineLen += len(tok)
		return nil
	}

	for y := 0; y < height; y++ {
		runState := life.DEAD
		runLen := 0
		flush := func() {
			if runLen == 0 {
				return
			}
			tok := runToken(runLen, runState)
			writeToken(tok)
			runLen = 0
		}
		for x := 0; x < width; x++ {
			state, _ := s.GetCellState(life.Coord{X: int32(x), Y: int32(y), T: 0})
			if state == life.UnknownState {
				state = life.DEAD
			}
			cellState := life.DEAD
			if state == life.ALIVE {
				cellState = life.ALIVE
			}
			if runLen > 0 && cellState == runState {
				runLen++
				continue
			}
			flush()
			runState = cellState
			runLen = 1
		}
		flush()
		if y < height-1 {
			writeToken("$")
		}
	}
	writeToken("!")
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func runToken(n int, state life.State) string {
	letter := byte('b')
	if state == life.ALIVE {
		letter = 'o'
	}
	if n == 1 {
		return string(letter)
	}
	return strconv.Itoa(n) + string(letter)
}
