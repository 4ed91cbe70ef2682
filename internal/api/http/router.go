package http

import (
	"net/http"

	"kings-valley/internal/api/ws"
	"kings-valley/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires every HTTP and websocket route.
func SetupRouter(cfg config.Config, rm RoomReader, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())
	if cfg.Production {
		r.Use(HTTPSRedirect())
	}
	r.Use(cors.New(corsConfig(cfg)))

	// Realtime game traffic
	r.GET("/ws", hub.HandleWS)

	r.GET("/healthz", HealthHandler())

	api := r.Group("/api")
	{
		api.GET("/rooms/:code", RoomHandler(rm))
		api.GET("/rooms/:code/moves", PossibleMovesHandler(rm))
		api.GET("/stats", StatsHandler(rm, hub))
		api.GET("/config", GetConfigHandler(cfg))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	return r
}

func corsConfig(cfg config.Config) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	if cfg.AllowsAnyOrigin() {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.AllowedOrigins
	}
	return cc
}
