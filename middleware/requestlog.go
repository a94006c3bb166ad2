package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/logger"
)

// RequestLogger tags each request with an id and emits one access log
// line when it completes.
func RequestLogger(c *gin.Context) {
	requestID := uuid.NewString()
	c.Set("requestID", requestID)
	c.Writer.Header().Set("X-Request-ID", requestID)

	start := time.Now()
	c.Next()

	logger.Get().Info("request",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)))
}
