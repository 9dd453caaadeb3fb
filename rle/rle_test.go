package rle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepair/lifesearch/life"
)

const glider = `x = 3, y = 3, rule = B3/S23
bob$2bo$3o!
`

func TestDecodeGlider(t *testing.T) {
	p, err := Decode(strings.NewReader(glider))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 3, p.Height)
	assert.Equal(t, "B3/S23", p.RuleString)
	assert.Len(t, p.Cells, 5)

	has := func(x, y int32) bool {
		for _, c := range p.Cells {
			if c.Coord.X == x && c.Coord.Y == y {
				return true
			}
		}
		return false
	}
	assert.True(t, has(1, 0))
	assert.True(t, has(2, 1))
	assert.True(t, has(0, 2))
	assert.True(t, has(1, 2))
	assert.True(t, has(2, 2))
}

func TestDecodeSkipsComments(t *testing.T) {
	doc := "#C a comment\n#N name\nx = 1, y = 1, rule = B3/S23\no!\n"
	p, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, p.Cells, 1)
}

func TestDecodeMissingHeader(t *testing.T) {
	_, err := Decode(strings.NewReader("bo$!\n"))
	require.Error(t, err)
}

func TestDecodeMissingTerminator(t *testing.T) {
	_, err := Decode(strings.NewReader("x = 1, y = 1, rule = B3/S23\no\n"))
	require.Error(t, err)
}

func TestDecodePlaintextGlider(t *testing.T) {
	doc := "!Name: Glider\n.O.\n..O\nOOO\n"
	cells, err := DecodePlaintext(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, cells, 5)
	assert.Equal(t, life.Coord{X: 1, Y: 0, T: 0}, cells[0].Coord)
}

func TestDecodePlaintextRejectsBadChar(t *testing.T) {
	_, err := DecodePlaintext(strings.NewReader(".X.\n"))
	require.Error(t, err)
}
