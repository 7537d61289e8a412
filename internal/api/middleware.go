package api

import (
	"time"

	"hole-map-service/internal/platform/obs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// requestID propagates the caller's X-Request-ID or assigns a fresh one, and
// stores it on the request context for obs.Time.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLog logs end-to-end request duration and response size. Errors a
// handler attached with c.Error raise the entry to error level.
func accessLog(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Size is -1 until something has been written.
		bytes := max(c.Writer.Size(), 0)
		status := c.Writer.Status()

		ev := logger.Info()
		if last := c.Errors.Last(); last != nil {
			ev = logger.Error().Err(last.Err)
		} else if status >= 500 {
			ev = logger.Error()
		}
		ev.Str("req_id", obs.RequestID(c.Request.Context())).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.RequestURI()).
			Int("status", status).
			Int("bytes", bytes).
			Int64("dur_ms", time.Since(start).Milliseconds()).
			Msg("request")
	}
}
