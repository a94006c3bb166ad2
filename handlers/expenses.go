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
	"github.com/kshitijtanwar/wealthwise/services"
)

type AddExpenseRequest struct {
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Date        time.Time `json:"date" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description"`
	Merchant    string    `json:"merchant"`
}

func GetExpenses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	expenses, err := mongodb.ListExpenses(c, userID)
	if err != nil {
		logger.Get().Error("error listing expenses", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// AddExpense records an expense and evaluates the category's budget
// against the post-insert total. The alert is advisory: it rides along
// in the response and never rejects the expense.
func AddExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Merchant:    req.Merchant,
		Source:      models.SourceManual,
	}
	if err := mongodb.RecordExpense(c, expense); err != nil {
		if errors.Is(err, mongodb.ErrInvalidExpense) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Get().Error("error recording expense", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var alert *finance.Alert
	budget, err := mongodb.GetBudgetByCategory(c, userID, req.Category)
	if err != nil {
		logger.Get().Error("error fetching budget for alert",
			zap.String("user_id", userID),
			zap.String("category", req.Category),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if budget != nil {
		spent, err := mongodb.SumExpensesByCategory(c, userID, req.Category)
		if err != nil {
			logger.Get().Error("error summing category spend",
				zap.String("user_id", userID),
				zap.String("category", req.Category),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		alert = finance.EvaluateBudgetAlert(budget, spent)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense added successfully",
		"expense": expense,
		"alert":   alert,
	})
}

func ImportExpenses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := mongodb.Store{}
	imported, err := services.ImportExpenses(c, store, store, userID, req)
	if err != nil {
		if errors.Is(err, services.ErrBankAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		logger.Get().Error("error importing expenses", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Expenses imported",
		"importedCount": imported,
	})
}

// ExportExpenses is a stub; export formats are still being decided.
func ExportExpenses(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Expenses exported",
		"exported": []any{},
	})
}
