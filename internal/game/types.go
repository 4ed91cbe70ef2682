package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 5

// Cell values match the numbers the browser client renders.
type Cell int

const (
	Empty     Cell = 0
	RedPiece  Cell = 1
	BluePiece Cell = 2
	RedKing   Cell = 3
	BlueKing  Cell = 4
)

// Side returns the owner of the cell, NoSide when empty.
func (c Cell) Side() Side {
	switch c {
	case RedPiece, RedKing:
		return Red
	case BluePiece, BlueKing:
		return Blue
	}
	return NoSide
}

func (c Cell) IsKing() bool { return c == RedKing || c == BlueKing }

type Side int

const (
	NoSide Side = iota
	Red
	Blue
)

// SideForSeat maps seat 0 to Red and seat 1 to Blue.
func SideForSeat(seat int) Side {
	switch seat {
	case 0:
		return Red
	case 1:
		return Blue
	}
	return NoSide
}

// Seat is the inverse of SideForSeat; -1 for NoSide.
func (s Side) Seat() int {
	switch s {
	case Red:
		return 0
	case Blue:
		return 1
	}
	return -1
}

func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

// ParseSide accepts "red"/"blue" in any case.
func ParseSide(v string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "red":
		return Red, true
	case "blue":
		return Blue, true
	}
	return NoSide, false
}

// MarshalJSON encodes NoSide as null so "no winner yet" reads naturally on the client.
func (s Side) MarshalJSON() ([]byte, error) {
	if s == NoSide {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoSide
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	side, ok := ParseSide(v)
	if !ok {
		return fmt.Errorf("unknown side %q", v)
	}
	*s = side
	return nil
}

// Position is a (row, col) pair. On the wire it is a two element array.
type Position struct {
	Row int
	Col int
}

// Center is the King's Valley.
var Center = Position{Row: Size / 2, Col: Size / 2}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

var errPositionFormat = errors.New("position must be [row,col]")

// UnmarshalJSON accepts exactly two integers; null and short or long arrays are rejected.
func (p *Position) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", errPositionFormat, err)
	}
	if len(v) != 2 {
		return errPositionFormat
	}
	p.Row, p.Col = v[0], v[1]
	return nil
}

// Direction is a unit step; both components are in {-1, 0, 1}.
type Direction struct {
	DRow int
	DCol int
}

// Directions lists the four orthogonal and four diagonal unit steps.
var Directions = [8]Direction{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Orthogonal
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, // Diagonal
}

// Board is a fixed 5x5 grid indexed [row][col]. It is a value type: passing it
// copies it, so engine functions never alias the caller's board.
type Board [Size][Size]Cell

// NewBoard returns the starting position: Red on row 0, Blue on row 4, kings in the middle column.
func NewBoard() Board {
	return Board{
		{RedPiece, RedPiece, RedKing, RedPiece, RedPiece},
		{Empty, Empty, Empty, Empty, Empty},
		{Empty, Empty, Empty, Empty, Empty},
		{Empty, Empty, Empty, Empty, Empty},
		{BluePiece, BluePiece, BlueKing, BluePiece, BluePiece},
	}
}

// At returns the cell at p, Empty when p is off the board.
func (b Board) At(p Position) Cell {
	if !p.InBounds() {
		return Empty
	}
	return b[p.Row][p.Col]
}

// Move is a from/to pair as resolved by the engine.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
