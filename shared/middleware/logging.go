package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// LoggingMiddleware tags each request with a request id (honoring an inbound
// X-Request-ID so ids survive service-to-service hops) and logs method, path,
// status and latency on completion.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestId", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		log.Printf("[%s] %s %s -> %d (%s)",
			requestID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}

// GetRequestID returns the request id assigned by LoggingMiddleware.
func GetRequestID(c *gin.Context) (string, bool) {
	requestID, exists := c.Get("requestId")
	if !exists {
		return "", false
	}
	return requestID.(string), true
}
