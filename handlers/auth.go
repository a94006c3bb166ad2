package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/auth"
	"github.com/kshitijtanwar/wealthwise/logger"
	"github.com/kshitijtanwar/wealthwise/models"
	"github.com/kshitijtanwar/wealthwise/mongodb"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := mongodb.GetUserByEmail(c, req.Email)
	if err != nil {
		logger.Get().Error("error checking existing user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Get().Error("error hashing password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create user"})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := mongodb.CreateUser(c, user); err != nil {
		logger.Get().Error("error creating user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !issueSession(c, user) {
		return
	}

	logger.Get().Info("user signed up", zap.String("user_id", user.ID.Hex()))
	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := mongodb.GetUserByEmail(c, req.Email)
	if err != nil {
		logger.Get().Error("error fetching user for login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	if !issueSession(c, user) {
		return
	}

	logger.Get().Info("user logged in", zap.String("user_id", user.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
	})
}

func Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := mongodb.GetUserByID(c, userID)
	if err != nil {
		logger.Get().Error("error fetching user", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID.Hex(),
		"name":      user.Name,
		"email":     user.Email,
		"salary":    user.Salary,
		"breakdown": user.Breakdown,
	})
}

func issueSession(c *gin.Context, user *models.User) bool {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Get().Error("JWT_SECRET environment variable not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured"})
		return false
	}

	token, err := auth.GenerateToken(user.ID.Hex(), []byte(secret), auth.TokenValidity)
	if err != nil {
		logger.Get().Error("error minting session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return false
	}

	setSessionCookie(c, token)
	return true
}
