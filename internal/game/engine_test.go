package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(r, c int) Position { return Position{Row: r, Col: c} }

// randomBoard scatters four pieces and a king per side over the grid.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	cells := []Cell{RedKing, RedPiece, RedPiece, RedPiece, RedPiece, BlueKing, BluePiece, BluePiece, BluePiece, BluePiece}
	perm := rng.Perm(Size * Size)
	for i, cell := range cells {
		b[perm[i]/Size][perm[i]%Size] = cell
	}
	return b
}

func TestSlideDestination_FreshBoard(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, pos(3, 2), SlideDestination(b, pos(0, 2), Direction{1, 0}))
	assert.Equal(t, pos(3, 3), SlideDestination(b, pos(0, 0), Direction{1, 1}))
	assert.Equal(t, pos(0, 0), SlideDestination(b, pos(0, 0), Direction{-1, 0}), "off board")
	assert.Equal(t, pos(0, 0), SlideDestination(b, pos(0, 0), Direction{0, 1}), "blocked by own piece")
	assert.Equal(t, pos(1, 2), SlideDestination(b, pos(4, 2), Direction{-1, 0}), "blocked by red king")
}

func TestSlideDestination_RandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		b := randomBoard(rng)
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				from := pos(r, c)
				for _, d := range Directions {
					dest := SlideDestination(b, from, d)
					require.True(t, dest.InBounds(), "board %v from %v dir %v", b, from, d)

					next := from.Add(d)
					blocked := !next.InBounds() || b.At(next) != Empty
					if blocked {
						require.Equal(t, from, dest)
						continue
					}
					require.NotEqual(t, from, dest)
					require.Equal(t, Empty, b.At(dest))
				}
			}
		}
	}
}

func TestResolveExactMove(t *testing.T) {
	b := NewBoard()
	before := b

	tests := []struct {
		name     string
		from, to Position
		side     Side
		want     Position
		ok       bool
	}{
		{"king to the valley", pos(0, 2), pos(2, 2), Red, pos(2, 2), true},
		{"one diagonal step", pos(0, 0), pos(1, 1), Red, pos(1, 1), true},
		{"stop short of the wall", pos(0, 1), pos(2, 1), Red, pos(2, 1), true},
		{"blue moves up", pos(4, 4), pos(2, 2), Blue, pos(2, 2), true},
		{"not own piece", pos(0, 0), pos(1, 1), Blue, pos(0, 0), false},
		{"empty origin", pos(2, 2), pos(3, 2), Red, pos(2, 2), false},
		{"knight jump", pos(0, 0), pos(2, 1), Red, pos(0, 0), false},
		{"zero vector", pos(0, 0), pos(0, 0), Red, pos(0, 0), false},
		{"first step blocked", pos(0, 0), pos(0, 3), Red, pos(0, 0), false},
		{"landing on a piece", pos(0, 2), pos(4, 2), Red, pos(0, 2), false},
		{"origin off board", pos(-1, 0), pos(1, 0), Red, pos(-1, 0), false},
		{"target off board", pos(0, 0), pos(5, 5), Red, pos(0, 0), false},
		{"no side", pos(0, 0), pos(1, 0), NoSide, pos(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveExactMove(b, tt.from, tt.to, tt.side)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, before, b)
}

func TestResolveMove_Farthest(t *testing.T) {
	b := NewBoard()

	got, ok := ResolveMove(b, pos(0, 2), pos(1, 2), Red)
	require.True(t, ok)
	assert.Equal(t, pos(3, 2), got, "slides past the valley up to the blue king")

	got, ok = ResolveMove(b, pos(0, 0), pos(1, 1), Red)
	require.True(t, ok)
	assert.Equal(t, pos(3, 3), got)

	// Direction only: a far blocked square still names a usable direction.
	got, ok = ResolveMove(b, pos(0, 2), pos(4, 2), Red)
	require.True(t, ok)
	assert.Equal(t, pos(3, 2), got)

	_, ok = ResolveMove(b, pos(0, 0), pos(0, 1), Red)
	assert.False(t, ok)
	_, ok = ResolveMove(b, pos(4, 0), pos(2, 1), Blue)
	assert.False(t, ok)
}

func TestResolve_RejectsForeignOrCrookedMovesOnRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		b := randomBoard(rng)
		from := pos(rng.Intn(Size), rng.Intn(Size))
		to := pos(rng.Intn(Size), rng.Intn(Size))
		for _, side := range []Side{Red, Blue} {
			dr, dc := to.Row-from.Row, to.Col-from.Col
			crooked := dr != 0 && dc != 0 && abs(dr) != abs(dc)
			if b.At(from).Side() != side || crooked {
				for _, rule := range []Rule{RuleExact, RuleFarthest} {
					_, ok := rule.Resolve(b, from, to, side)
					require.False(t, ok, "rule %v board %v %v→%v", rule, b, from, to)
				}
			}
		}
	}
}

func TestApply(t *testing.T) {
	b := NewBoard()
	Apply(&b, pos(0, 2), pos(2, 2))

	assert.Equal(t, Empty, b.At(pos(0, 2)))
	assert.Equal(t, RedKing, b.At(pos(2, 2)))
	assert.Equal(t, 5, PieceCount(b, Red))
	assert.Equal(t, 5, PieceCount(b, Blue))
}

func TestCheckWin(t *testing.T) {
	b := NewBoard()
	Apply(&b, pos(0, 2), pos(2, 2))

	side, ok := CheckWin(b, Center)
	require.True(t, ok)
	assert.Equal(t, Red, side)

	again, ok := CheckWin(b, Center)
	assert.True(t, ok)
	assert.Equal(t, side, again)

	_, ok = CheckWin(b, pos(0, 0))
	assert.False(t, ok, "last move elsewhere")

	b = NewBoard()
	Apply(&b, pos(4, 0), pos(2, 2))
	_, ok = CheckWin(b, Center)
	assert.False(t, ok, "a regular piece in the valley does not win")
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("")
	require.NoError(t, err)
	assert.Equal(t, RuleExact, r)

	r, err = ParseRule("farthest")
	require.NoError(t, err)
	assert.Equal(t, RuleFarthest, r)

	_, err = ParseRule("jump")
	assert.Error(t, err)
}
