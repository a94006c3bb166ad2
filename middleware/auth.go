package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/auth"
	"github.com/kshitijtanwar/wealthwise/logger"
)

// UserIDKey is the gin context key the authenticated user's id is
// stored under.
const UserIDKey = "userID"

// SessionCookie is the cookie the session token travels in.
const SessionCookie = "token"

// AuthMiddleware verifies the session token. The SPA sends it in an
// httpOnly cookie; an Authorization bearer header works as a fallback
// for API clients.
func AuthMiddleware(c *gin.Context) {
	tokenString := extractToken(c.Request)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
		c.Abort()
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Get().Error("JWT_SECRET environment variable not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString, []byte(secret))
	if err != nil {
		logger.Get().Warn("rejected session token", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	c.Set(UserIDKey, claims.UserID)
	c.Next()
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
