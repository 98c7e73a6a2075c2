package middleware

import (
	"fmt"
	"net/http"
	"time"

	"ppocha-economy/pkg/apperror"
	"ppocha-economy/pkg/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	// Context keys set by handlers for the audit middleware
	CtxUserID     = "uid"
	CtxResourceID = "resource_id"

	maxRequestIDLen = 64
)

// RequestID propagates a caller-supplied X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(response.CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(response.CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("uid", c.GetString(CtxUserID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware. A panic fails only its own
// request; shared state is untouched because stores commit only on success.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Str("request_id", c.GetString(response.CtxRequestID)).
					Msg("panic recovered")
				response.Abort(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}

// CORS applies the cross-origin policy via gin-contrib/cors. Preflights pass
// through it and are answered here with 200 on any path, matched or not.
func CORS(allowOrigin string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:       []string{"Content-Type"},
		ExposeHeaders:      []string{HeaderRequestID},
		OptionsPassthrough: true,
	}
	if allowOrigin == "" || allowOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{allowOrigin}
	}
	policy := cors.New(cfg)

	return func(c *gin.Context) {
		policy(c)
		if c.IsAborted() {
			return
		}
		if c.Request.Method == http.MethodOptions {
			response.OK(c, gin.H{"ok": true})
			c.Abort()
			return
		}
		c.Next()
	}
}

// MaxBodySize limits the request body. Reads past the limit fail, which the
// JSON binding reports as a malformed body.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
