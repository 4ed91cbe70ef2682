package room

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"kings-valley/internal/game"
)

// MinCodeLength is the shortest room code a client may use.
const MinCodeLength = 4

type Status string

const (
	StatusEmpty    Status = "empty"
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// Room is the authoritative state of one game. Fields are guarded by mu; only
// the Manager mutates them.
type Room struct {
	Code      string
	Board     game.Board
	Seats     [2]string // connection handles, "" when the seat is free
	Turn      game.Side
	Winner    game.Side
	CreatedAt time.Time

	mu     sync.Mutex
	closed bool // set once the room has been removed from the store
}

// NewRoom returns a room with the starting board and Red to move.
func NewRoom(code string, createdAt time.Time) *Room {
	return &Room{
		Code:      code,
		Board:     game.NewBoard(),
		Turn:      game.Red,
		CreatedAt: createdAt,
	}
}

// Snapshot is a read-only copy of a room.
type Snapshot struct {
	Code      string     `json:"code"`
	Board     game.Board `json:"board"`
	Turn      game.Side  `json:"turn"`
	Winner    game.Side  `json:"winner"`
	Status    Status     `json:"status"`
	Seats     [2]bool    `json:"seats"` // occupied flags, index 0 is Red
	CreatedAt time.Time  `json:"createdAt"`
}

// Store holds rooms by code.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Rooms() []*Room
}

// NormalizeCode trims and upper-cases a client supplied code.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if utf8.RuneCountInString(code) < MinCodeLength {
		return "", ErrInvalidRoomCode
	}
	return code, nil
}

func (r *Room) occupants() int {
	n := 0
	for _, id := range r.Seats {
		if id != "" {
			n++
		}
	}
	return n
}

// freeSeat returns the lowest empty seat or -1.
func (r *Room) freeSeat() int {
	for i, id := range r.Seats {
		if id == "" {
			return i
		}
	}
	return -1
}

func (r *Room) connIDs() []string {
	out := make([]string, 0, len(r.Seats))
	for _, id := range r.Seats {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func (r *Room) peersOf(connID string) []string {
	out := make([]string, 0, 1)
	for _, id := range r.Seats {
		if id != "" && id != connID {
			out = append(out, id)
		}
	}
	return out
}

func (r *Room) status() Status {
	switch {
	case r.Winner != game.NoSide:
		return StatusFinished
	case r.occupants() == 2:
		return StatusPlaying
	case r.occupants() == 1:
		return StatusWaiting
	}
	return StatusEmpty
}

func (r *Room) snapshot() Snapshot {
	return Snapshot{
		Code:      r.Code,
		Board:     r.Board,
		Turn:      r.Turn,
		Winner:    r.Winner,
		Status:    r.status(),
		Seats:     [2]bool{r.Seats[0] != "", r.Seats[1] != ""},
		CreatedAt: r.CreatedAt,
	}
}
