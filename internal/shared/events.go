package shared

import (
	"encoding/json"

	"kings-valley/internal/game"
)

// Inbound actions.
const (
	ActionJoin = "join"
	ActionMove = "move"
)

// Outbound events.
const (
	EventInit         = "init"
	EventPlayerJoined = "playerJoined"
	EventUpdate       = "update"
	EventPlayerLeft   = "playerLeft"
	EventError        = "error"
)

// Envelope is the frame exchanged in both directions over the websocket.
type Envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// MoveRequest is the data of an inbound move action. Both fields are required;
// a nil pointer means the client left it out or sent null.
type MoveRequest struct {
	From *game.Position `json:"from"`
	To   *game.Position `json:"to"`
}

// Complete reports whether both coordinates were supplied.
func (m MoveRequest) Complete() bool { return m.From != nil && m.To != nil }

// InitPayload goes only to the client that just joined.
type InitPayload struct {
	Seat     int        `json:"seat"`
	Side     game.Side  `json:"side"`
	Board    game.Board `json:"board"`
	Turn     game.Side  `json:"turn"`
	Winner   game.Side  `json:"winner"`
	RoomCode string     `json:"roomCode"`
}

// SeatPayload is used by playerJoined and playerLeft.
type SeatPayload struct {
	Seat int       `json:"seat"`
	Side game.Side `json:"side"`
}

// UpdatePayload goes to every occupant after a move. LastMove.To is the landing
// square the engine resolved.
type UpdatePayload struct {
	Board    game.Board `json:"board"`
	Turn     game.Side  `json:"turn"`
	Winner   game.Side  `json:"winner"`
	LastMove game.Move  `json:"lastMove"`
}
