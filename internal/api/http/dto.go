package http

import (
	"kings-valley/internal/game"
)

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MovesResponse lists the moves available to a side.
type MovesResponse struct {
	RoomCode string      `json:"roomCode"`
	Side     game.Side   `json:"side"`
	Rule     string      `json:"rule"`
	Moves    []game.Move `json:"moves"`
}

// StatsResponse reports process-wide counters.
type StatsResponse struct {
	Rooms       int `json:"rooms"`
	Players     int `json:"players"`
	Connections int `json:"connections"`
}

// ConfigResponse exposes the public, non-secret settings.
type ConfigResponse struct {
	SlideRule         string `json:"slideRule"`
	RoomRetention     string `json:"roomRetention"`
	SweepInterval     string `json:"sweepInterval"`
	MinRoomCodeLength int    `json:"minRoomCodeLength"`
	Production        bool   `json:"production"`
}
