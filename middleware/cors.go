package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CorsMiddleware allows the SPA origin with credentials so the session
// cookie survives cross-origin requests.
func CorsMiddleware(c *gin.Context) {
	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
	c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(204)
		return
	}

	c.Next()
}
