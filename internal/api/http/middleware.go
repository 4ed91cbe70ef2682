package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs one line per request through zerolog.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Upgraded websocket requests are logged by the hub.
		if c.Writer.Status() == http.StatusSwitchingProtocols {
			return
		}
		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// HTTPSRedirect sends plain-HTTP requests behind a TLS-terminating proxy to
// the https URL. Requests without X-Forwarded-Proto are direct and served
// as-is. The health check is exempt so probes keep working.
func HTTPSRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" && proto != "https" {
			c.Redirect(http.StatusMovedPermanently, "https://"+c.Request.Host+c.Request.URL.RequestURI())
			c.Abort()
			return
		}
		c.Next()
	}
}
