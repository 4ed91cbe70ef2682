package http

import (
	"net/http"

	"kings-valley/internal/config"
	"kings-valley/internal/room"

	"github.com/gin-gonic/gin"
)

// GetConfigHandler returns the settings a client may care about
// @Summary Get public server settings
// @Description Slide rule, sweep cadence and room code constraints
// @Tags Config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /api/config [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	resp := ConfigResponse{
		SlideRule:         cfg.SlideRule.String(),
		RoomRetention:     cfg.RoomRetention.String(),
		SweepInterval:     cfg.SweepInterval.String(),
		MinRoomCodeLength: room.MinCodeLength,
		Production:        cfg.Production,
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
