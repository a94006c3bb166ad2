package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/finance"
	"github.com/kshitijtanwar/wealthwise/logger"
	"github.com/kshitijtanwar/wealthwise/models"
	"github.com/kshitijtanwar/wealthwise/mongodb"
)

type SetBudgetRequest struct {
	Category  string              `json:"category" binding:"required"`
	Amount    float64             `json:"amount" binding:"required,gt=0"`
	Period    models.BudgetPeriod `json:"period"`
	NotifyOn  *float64            `json:"notifyOn"`
	StartDate *time.Time          `json:"startDate"`
	EndDate   *time.Time          `json:"endDate"`
}

type SalaryBreakdownRequest struct {
	Salary   float64 `json:"salary"`
	Savings  float64 `json:"savings"`
	Expenses float64 `json:"expenses"`
	Misc     float64 `json:"misc"`
}

// SetBudget creates or replaces the budget for a category.
func SetBudget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period := req.Period
	if period == "" {
		period = models.PeriodMonthly
	}
	switch period {
	case models.PeriodWeekly, models.PeriodMonthly, models.PeriodYearly:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be weekly, monthly or yearly"})
		return
	}

	notifyOn := models.DefaultNotifyOn
	if req.NotifyOn != nil {
		if *req.NotifyOn < 0 || *req.NotifyOn > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "notifyOn must be between 0 and 1"})
			return
		}
		notifyOn = *req.NotifyOn
	}

	budget := &models.Budget{
		UserID:    userID,
		Category:  req.Category,
		Amount:    req.Amount,
		Period:    period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		NotifyOn:  notifyOn,
	}
	if err := mongodb.UpsertBudget(c, budget); err != nil {
		logger.Get().Error("error upserting budget",
			zap.String("user_id", userID),
			zap.String("category", req.Category),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Budget set successfully",
		"budget":  budget,
	})
}

func GetBudgets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	budgets, err := mongodb.ListBudgets(c, userID)
	if err != nil {
		logger.Get().Error("error listing budgets", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// SetSalaryBreakdown validates and replaces the user's declared salary
// split. The stored breakdown is replaced wholesale, never merged.
func SetSalaryBreakdown(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SalaryBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breakdown, err := finance.NewBreakdown(req.Salary, req.Savings, req.Expenses, req.Misc)
	if err != nil {
		var exceeds *finance.BreakdownExceedsSalaryError
		if errors.As(err, &exceeds) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  exceeds.Error(),
				"excess": exceeds.Excess,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mongodb.UpdateSalaryBreakdown(c, userID, req.Salary, breakdown); err != nil {
		logger.Get().Error("error storing salary breakdown", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salary":    req.Salary,
		"breakdown": breakdown,
	})
}
