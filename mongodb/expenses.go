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

// ErrInvalidExpense rejects an expense missing any of its required
// fields before it reaches the collection.
var ErrInvalidExpense = errors.New("expense requires a positive amount, a date and a category")

// RecordExpense persists a new ledger entry. Expenses are immutable
// after this point.
func RecordExpense(ctx context.Context, e *models.Expense) error {
	if e.Amount <= 0 || e.Date.IsZero() || e.Category == "" {
		return ErrInvalidExpense
	}
	if e.Source == "" {
		e.Source = models.SourceManual
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	result, err := collection(ExpenseCollection).InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("error recording expense: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		e.ID = id
	}
	return nil
}

// ListExpenses returns all of a user's expenses, newest first.
func ListExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := collection(ExpenseCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	for cursor.Next(ctx) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err != nil {
			return nil, fmt.Errorf("error decoding expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return expenses, nil
}

// SumExpensesByCategory sums amounts over all of a user's expenses in a
// category, across all time. Budget alerts are evaluated against this
// total after the triggering expense has been recorded.
func SumExpensesByCategory(ctx context.Context, userID, category string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID, "category": category}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "sum": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := collection(ExpenseCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error summing expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Sum float64 `bson:"sum"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("error decoding expense sum: %w", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, fmt.Errorf("cursor error: %w", err)
	}

	return result.Sum, nil
}

// FindDuplicateByBankTransactionID looks up an already imported
// transaction for the user. Returns nil when none exists.
func FindDuplicateByBankTransactionID(ctx context.Context, userID, bankTransactionID string) (*models.Expense, error) {
	filter := bson.M{
		"user_id":             userID,
		"bank_transaction_id": bankTransactionID,
	}

	var expense models.Expense
	err := collection(ExpenseCollection).FindOne(ctx, filter).Decode(&expense)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error looking up duplicate transaction: %w", err)
	}

	return &expense, nil
}

// CountExpenses returns the number of ledger entries for a user.
func CountExpenses(ctx context.Context, userID string) (int64, error) {
	count, err := collection(ExpenseCollection).CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("error counting expenses: %w", err)
	}
	return count, nil
}

func (Store) RecordExpense(ctx context.Context, e *models.Expense) error {
	return RecordExpense(ctx, e)
}

func (Store) FindDuplicateByBankTransactionID(ctx context.Context, userID, bankTransactionID string) (*models.Expense, error) {
	return FindDuplicateByBankTransactionID(ctx, userID, bankTransactionID)
}

func (Store) CountExpenses(ctx context.Context, userID string) (int64, error) {
	return CountExpenses(ctx, userID)
}
