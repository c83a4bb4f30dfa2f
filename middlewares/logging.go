package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

// LoggingMiddleware tags each request with an id, exposes a request-scoped
// logger to handlers and logs one line once the request completes.
func LoggingMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		entry := log.WithField("request_id", requestID)
		c.Set(loggerKey, entry)

		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if claims, err := ExtractClaimsFromContext(c.Request.Context()); err == nil {
			fields["user_id"] = claims.UserID
			fields["role"] = claims.Role
		}

		line := entry.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			line.Error("request completed")
		case c.Writer.Status() >= 400:
			line.Warn("request completed")
		default:
			line.Info("request completed")
		}
	}
}

// Logger returns the request-scoped logger set by LoggingMiddleware.
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
