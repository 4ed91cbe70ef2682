package room

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRoomCode = errors.New("invalid room code")
	ErrRoomFull        = errors.New("room is full")
	ErrNoActiveRoom    = errors.New("invalid room")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalMove     = errors.New("invalid move")

	// ErrGameOver is a NotYourTurn rejection: nobody has a turn once a king reached the valley.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrNotYourTurn)
)
