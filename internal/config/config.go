package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"kings-valley/internal/game"
)

var DefaultAllowedOrigins = []string{
	"https://kings-valley-production.up.railway.app",
	"http://localhost:3000",
}

type Config struct {
	Port           int
	AllowedOrigins []string
	Production     bool
	LogLevel       string

	SlideRule     game.Rule
	RoomRetention time.Duration
	SweepInterval time.Duration
}

// HTTPAddr is the listen address for the HTTP server.
func (c Config) HTTPAddr() string { return fmt.Sprintf(":%d", c.Port) }

// AllowsAnyOrigin reports whether ALLOWED_ORIGINS contains "*".
func (c Config) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	env := getenv("APP_ENV", getenv("NODE_ENV", "development"))

	rule, err := game.ParseRule(strings.ToLower(getenv("SLIDE_RULE", "exact")))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:           getenvInt("PORT", 3000),
		AllowedOrigins: getenvList("ALLOWED_ORIGINS", DefaultAllowedOrigins),
		Production:     strings.EqualFold(env, "production"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		SlideRule:      rule,
		RoomRetention:  getenvDuration("ROOM_RETENTION", time.Hour),
		SweepInterval:  getenvDuration("SWEEP_INTERVAL", 30*time.Minute),
	}, nil
}
