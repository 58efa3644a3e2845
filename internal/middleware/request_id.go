// Package middleware provides HTTP middleware components for the multilingual site.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/guttosm/multilingual/internal/logger"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength bounds client supplied ids before they reach logs.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// LoggerKey is the context key for the request-scoped logger.
	LoggerKey ContextKey = "logger"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client supplied X-Request-ID is reused when it is short enough;
// otherwise a new UUID v4 is generated. It also stores a logger tagged with
// the id for handlers to use.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Set(string(LoggerKey), logger.Logger().With().Str("request_id", requestID).Logger())
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// Logger returns the request-scoped logger, or the global logger when the
// RequestID middleware did not run.
func Logger(c *gin.Context) zerolog.Logger {
	if v, exists := c.Get(string(LoggerKey)); exists {
		if l, ok := v.(zerolog.Logger); ok {
			return l
		}
	}
	return logger.Logger()
}
