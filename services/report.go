package services

import "context"

// Counter is the slice of storage the dashboard needs.
type Counter interface {
	CountExpenses(ctx context.Context, userID string) (int64, error)
	CountBudgets(ctx context.Context, userID string) (int64, error)
	CountGoals(ctx context.Context, userID string) (int64, error)
}

// DashboardStats summarizes a user's records for the dashboard screen.
type DashboardStats struct {
	TotalExpenses int64 `json:"total_expenses"`
	TotalBudgets  int64 `json:"total_budgets"`
	TotalGoals    int64 `json:"total_goals"`
}

// GetDashboardStats returns per-user record counts.
func GetDashboardStats(ctx context.Context, store Counter, userID string) (DashboardStats, error) {
	expenses, err := store.CountExpenses(ctx, userID)
	if err != nil {
		return DashboardStats{}, err
	}
	budgets, err := store.CountBudgets(ctx, userID)
	if err != nil {
		return DashboardStats{}, err
	}
	goals, err := store.CountGoals(ctx, userID)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalExpenses: expenses,
		TotalBudgets:  budgets,
		TotalGoals:    goals,
	}, nil
}
