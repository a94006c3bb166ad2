package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kshitijtanwar/wealthwise/models"
)

// UpsertBudget creates or replaces the budget for (user, category), so
// at most one budget per category exists for a user.
func UpsertBudget(ctx context.Context, b *models.Budget) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	filter := bson.M{"user_id": b.UserID, "category": b.Category}
	opts := options.Replace().SetUpsert(true)

	result, err := collection(BudgetCollection).ReplaceOne(ctx, filter, b, opts)
	if err != nil {
		return fmt.Errorf("error upserting budget: %w", err)
	}
	if id, ok := result.UpsertedID.(bson.ObjectID); ok {
		b.ID = id
	}
	return nil
}

// GetBudgetByCategory returns the user's budget for a category, or nil
// when the category has no budget.
func GetBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error) {
	filter := bson.M{"user_id": userID, "category": category}

	var budget models.Budget
	err := collection(BudgetCollection).FindOne(ctx, filter).Decode(&budget)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching budget: %w", err)
	}

	return &budget, nil
}

// ListBudgets returns all budgets for a user, most recent start first.
func ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})

	cursor, err := collection(BudgetCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching budgets: %w", err)
	}
	defer cursor.Close(ctx)

	var budgets []models.Budget
	for cursor.Next(ctx) {
		var budget models.Budget
		if err := cursor.Decode(&budget); err != nil {
			return nil, fmt.Errorf("error decoding budget: %w", err)
		}
		budgets = append(budgets, budget)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return budgets, nil
}

// CountBudgets returns the number of budgets a user has set.
func CountBudgets(ctx context.Context, userID string) (int64, error) {
	count, err := collection(BudgetCollection).CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("error counting budgets: %w", err)
	}
	return count, nil
}

func (Store) CountBudgets(ctx context.Context, userID string) (int64, error) {
	return CountBudgets(ctx, userID)
}
