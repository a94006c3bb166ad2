package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/finance"
	"github.com/kshitijtanwar/wealthwise/logger"
	"github.com/kshitijtanwar/wealthwise/models"
	"github.com/kshitijtanwar/wealthwise/mongodb"
)

type CreateGoalRequest struct {
	Name          string             `json:"name" binding:"required"`
	TargetAmount  float64            `json:"targetAmount" binding:"required,gt=0"`
	DurationYears int                `json:"durationYears" binding:"required,gt=0"`
	Allocation    *models.Allocation `json:"allocation" binding:"required"`
}

type UpdateGoalRequest struct {
	Allocation *models.Allocation `json:"allocation" binding:"required"`
}

// CreateGoal validates the allocation against the user's declared
// savings and stores the goal with its projection precomputed.
func CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := mongodb.GetUserByID(c, userID)
	if err != nil {
		logger.Get().Error("error fetching user for goal", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	savings := user.SavingsAvailable()
	if !checkAllocation(c, *req.Allocation, savings) {
		return
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		DurationYears: req.DurationYears,
		TotalSavings:  savings,
		Allocation:    *req.Allocation,
	}
	applyProjection(goal)

	if err := mongodb.CreateGoal(c, goal); err != nil {
		logger.Get().Error("error creating goal", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("goal created",
		zap.String("user_id", userID),
		zap.String("goal_id", goal.ID.Hex()))
	c.JSON(http.StatusCreated, gin.H{
		"message": "Goal created successfully",
		"goal":    goal,
	})
}

func GetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := mongodb.ListGoals(c, userID)
	if err != nil {
		logger.Get().Error("error listing goals", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func GetGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goal, err := mongodb.GetGoalByID(c, userID, c.Param("id"))
	if err != nil {
		logger.Get().Error("error fetching goal", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateGoal replaces a goal's allocation and recomputes the derived
// fields, re-checking the allocation against current savings.
func UpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := mongodb.GetGoalByID(c, userID, c.Param("id"))
	if err != nil {
		logger.Get().Error("error fetching goal for update", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	user, err := mongodb.GetUserByID(c, userID)
	if err != nil {
		logger.Get().Error("error fetching user for goal update", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	savings := user.SavingsAvailable()
	if !checkAllocation(c, *req.Allocation, savings) {
		return
	}

	goal.Allocation = *req.Allocation
	goal.TotalSavings = savings
	applyProjection(goal)

	if err := mongodb.UpdateGoal(c, goal); err != nil {
		logger.Get().Error("error updating goal", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Goal updated",
		"goal":    goal,
	})
}

func DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	deleted, err := mongodb.DeleteGoal(c, userID, c.Param("id"))
	if err != nil {
		logger.Get().Error("error deleting goal", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

func checkAllocation(c *gin.Context, alloc models.Allocation, savings float64) bool {
	if err := finance.CheckAllocation(alloc, savings); err != nil {
		var exceeds *finance.AllocationExceedsSavingsError
		if errors.As(err, &exceeds) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  exceeds.Error(),
				"excess": exceeds.Excess,
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func applyProjection(goal *models.Goal) {
	p := finance.ProjectGoal(goal.Allocation, goal.DurationYears, goal.TargetAmount)
	goal.ExpectedReturns = p.ExpectedReturns
	goal.ProjectedValue = p.ProjectedValue
	goal.TotalInvested = p.TotalInvested
	goal.FinalValue = p.FinalValue
	goal.AchievementPct = p.AchievementPct
	goal.Shortfall = p.Shortfall
}
