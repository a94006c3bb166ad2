package finance

import (
	"fmt"
	"math"

	"github.com/kshitijtanwar/wealthwise/models"
)

// AlertLevel orders budget alerts by severity.
type AlertLevel string

const (
	AlertWarning  AlertLevel = "warning"
	AlertExceeded AlertLevel = "exceeded"
)

// Alert is the advisory notification returned alongside a newly
// recorded expense. It never blocks the expense itself.
type Alert struct {
	Level        AlertLevel `json:"level"`
	Category     string     `json:"category"`
	BudgetAmount float64    `json:"budget_amount"`
	Spent        float64    `json:"spent"`
	PercentUsed  int        `json:"percent_used"`
	Message      string     `json:"message"`
}

// EvaluateBudgetAlert decides whether recording an expense should raise
// an alert. spent must be the category total inclusive of the expense
// just recorded. A nil budget means no alert is possible. Highest
// severity wins: Exceeded is checked before Warning, so once a budget is
// blown the result never regresses to a warning. A non-positive budget
// amount makes any spend Exceeded via the first check, which also keeps
// the Warning branch's division safe.
func EvaluateBudgetAlert(budget *models.Budget, spent float64) *Alert {
	if budget == nil {
		return nil
	}

	if spent >= budget.Amount {
		return &Alert{
			Level:        AlertExceeded,
			Category:     budget.Category,
			BudgetAmount: budget.Amount,
			Spent:        spent,
			PercentUsed:  percentUsed(spent, budget.Amount),
			Message: fmt.Sprintf("You have exceeded your budget of %g for '%s'. Total spent: %g",
				budget.Amount, budget.Category, spent),
		}
	}

	if budget.Amount > 0 && spent >= budget.Amount*budget.NotifyOn {
		pct := percentUsed(spent, budget.Amount)
		return &Alert{
			Level:        AlertWarning,
			Category:     budget.Category,
			BudgetAmount: budget.Amount,
			Spent:        spent,
			PercentUsed:  pct,
			Message: fmt.Sprintf("Warning: You have reached %d%% of your '%s' budget.",
				pct, budget.Category),
		}
	}

	return nil
}

func percentUsed(spent, amount float64) int {
	if amount <= 0 {
		return 100
	}
	return int(math.Round(spent / amount * 100))
}
