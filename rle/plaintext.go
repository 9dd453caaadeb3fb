package rle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/telepair/lifesearch/life"
)

// DecodePlaintext parses the simpler `.cells` format: comment lines
// start with `!`, every other line is a row of `.` (dead) and `O` or
// `o` (alive) characters. Used for the --known-cells CLI flag, since
// it needs no header and is trivial to hand-author for a partial
// seed pattern.
func DecodePlaintext(r io.Reader) ([]life.KnownCell, error) {
	scanner := bufio.NewScanner(r)
	var cells []life.KnownCell
	y := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, c := range line {
			switch c {
			case '.':
				// dead is the implicit background; no KnownCell needed.
			case 'O', 'o':
				cells = append(cells, life.KnownCell{
					Coord: life.Coord{X: int32(x), Y: int32(y), T: 0},
					State: life.ALIVE,
				})
			default:
				return nil, fmt.Errorf("plaintext: unexpected character %q at line %d", c, y)
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("plaintext: %w", err)
	}
	return cells, nil
}
