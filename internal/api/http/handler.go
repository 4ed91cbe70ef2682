package http

import (
	"net/http"

	"kings-valley/internal/game"
	"kings-valley/internal/room"

	"github.com/gin-gonic/gin"
)

// RoomReader is the read-only side of room.Manager.
type RoomReader interface {
	Snapshot(code string) (room.Snapshot, bool)
	Stats() room.Stats
	Rule() game.Rule
}

// ConnCounter reports open realtime connections.
type ConnCounter interface {
	ClientCount() int
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /healthz [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Get room state
// @Description Read-only snapshot of a room: board, turn, winner, occupied seats
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} room.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/rooms/{code} [get]
func RoomHandler(rm RoomReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, ok := rm.Snapshot(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// @Summary Get possible moves
// @Description Every move a side can make under the server's slide rule. Defaults to the side to move.
// @Tags Game
// @Produce json
// @Param code path string true "Room Code"
// @Param side query string false "red or blue"
// @Success 200 {object} MovesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/rooms/{code}/moves [get]
func PossibleMovesHandler(rm RoomReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, ok := rm.Snapshot(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
			return
		}

		side := snap.Turn
		if v := c.Query("side"); v != "" {
			if side, ok = game.ParseSide(v); !ok {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "side must be red or blue"})
				return
			}
		}

		moves := []game.Move{}
		if snap.Winner == game.NoSide {
			moves = append(moves, game.LegalMoves(snap.Board, side, rm.Rule())...)
		}
		c.JSON(http.StatusOK, MovesResponse{
			RoomCode: snap.Code,
			Side:     side,
			Rule:     rm.Rule().String(),
			Moves:    moves,
		})
	}
}

// @Summary Server counters
// @Tags System
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/stats [get]
func StatsHandler(rm RoomReader, conns ConnCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := rm.Stats()
		c.JSON(http.StatusOK, StatsResponse{
			Rooms:       st.Rooms,
			Players:     st.Players,
			Connections: conns.ClientCount(),
		})
	}
}
