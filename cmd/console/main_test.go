package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kings-valley/internal/game"
)

func TestParseMove(t *testing.T) {
	from, to, err := parseMove(" 1 3  3 3\n")
	require.NoError(t, err)
	assert.Equal(t, game.Position{Row: 0, Col: 2}, from)
	assert.Equal(t, game.Center, to)

	for _, line := range []string{"", "1 3 3", "1 3 3 x", "1 2 3 4 5"} {
		_, _, err := parseMove(line)
		assert.ErrorIs(t, err, errMoveFormat, line)
	}
}

func TestPrintBoard(t *testing.T) {
	var buf bytes.Buffer
	printBoard(&buf, game.NewBoard())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, game.Size+1)
	assert.Equal(t, "1 r r R r r", lines[1])
	assert.Equal(t, "3 . . * . .", lines[3])
	assert.Equal(t, "5 b b B b b", lines[5])
}
