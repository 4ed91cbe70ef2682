package ws

import (
	"kings-valley/internal/game"
	"kings-valley/internal/room"
)

// RoomManager is the part of room.Manager the gateway drives.
type RoomManager interface {
	Join(code, connID string) (room.JoinResult, error)
	Move(connID string, from, to game.Position) (room.MoveResult, error)
	Leave(connID string) (room.LeaveResult, bool)
}
