package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kings-valley/internal/game"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "ALLOWED_ORIGINS", "APP_ENV", "NODE_ENV", "LOG_LEVEL", "SLIDE_RULE", "ROOM_RETENTION", "SWEEP_INTERVAL"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.HTTPAddr())
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.False(t, cfg.Production)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, game.RuleExact, cfg.SlideRule)
	assert.Equal(t, time.Hour, cfg.RoomRetention)
	assert.Equal(t, 30*time.Minute, cfg.SweepInterval)
	assert.False(t, cfg.AllowsAnyOrigin())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example ,, http://b.example ")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SLIDE_RULE", "Farthest")
	t.Setenv("ROOM_RETENTION", "90m")
	t.Setenv("SWEEP_INTERVAL", "5m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTPAddr())
	assert.Equal(t, []string{"https://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Production)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, game.RuleFarthest, cfg.SlideRule)
	assert.Equal(t, 90*time.Minute, cfg.RoomRetention)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
}

func TestFromEnv_AppEnvWinsOverNodeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("APP_ENV", "development")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Production)
}

func TestFromEnv_BadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	t.Setenv("ROOM_RETENTION", "-1h")
	t.Setenv("SWEEP_INTERVAL", "soon")
	t.Setenv("ALLOWED_ORIGINS", "*")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, time.Hour, cfg.RoomRetention)
	assert.Equal(t, 30*time.Minute, cfg.SweepInterval)
	assert.True(t, cfg.AllowsAnyOrigin())
}

func TestFromEnv_UnknownSlideRule(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLIDE_RULE", "teleport")

	_, err := FromEnv()
	assert.Error(t, err)
}
