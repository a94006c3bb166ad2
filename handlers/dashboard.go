package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/logger"
	"github.com/kshitijtanwar/wealthwise/mongodb"
	"github.com/kshitijtanwar/wealthwise/services"
)

func GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := services.GetDashboardStats(c, mongodb.Store{}, userID)
	if err != nil {
		logger.Get().Error("error building dashboard stats", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
