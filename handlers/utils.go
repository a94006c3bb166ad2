package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kshitijtanwar/wealthwise/middleware"
)

const sessionMaxAge = 30 * 24 * 60 * 60 // seconds

// currentUserID pulls the authenticated user's id out of the gin
// context. Writes the 401 itself so callers can just return.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return userID, true
}

func setSessionCookie(c *gin.Context, token string) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", secure, true)
}
