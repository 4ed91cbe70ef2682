package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "kings-valley/internal/api/http"
	"kings-valley/internal/api/ws"
	"kings-valley/internal/config"
	"kings-valley/internal/housekeeping"
	"kings-valley/internal/room"
	"kings-valley/internal/store"

	// swagger packages
	_ "kings-valley/docs"
)

// @title King's Valley API
// @version 1.0
// @description Realtime King's Valley rooms over websocket (/ws) plus read-only inspection endpoints.
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, nil, room.WithRule(cfg.SlideRule))
	hub := ws.NewHub(rm, cfg.AllowedOrigins)
	rm.SetHub(hub)
	r := httpapi.SetupRouter(cfg, rm, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go housekeeping.Run(ctx, rm, cfg.SweepInterval, cfg.RoomRetention)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Stringer("rule", cfg.SlideRule).
			Strs("origins", cfg.AllowedOrigins).
			Bool("production", cfg.Production).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
